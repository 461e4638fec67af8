package models

import "time"

// Account is the accounts table row. System accounts (treasury, bonus pool,
// revenue) carry is_system = TRUE and no password.
type Account struct {
	AccountID      string    `json:"accountID"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsSystem       bool      `json:"isSystem"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}
