package domain

import "time"

// Well-known system account usernames. They must match the seed migration.
const (
	SystemTreasury  = "system_treasury"
	SystemBonusPool = "system_bonus_pool"
	SystemRevenue   = "system_revenue"
)

// Account represents either a real user or a system account (treasury, bonus
// pool, revenue sink). System accounts act as the source/sink side of the
// three canonical wallet operations.
type Account struct {
	AccountID      string    `json:"accountID"` // Primary Key (UUID)
	Username       string    `json:"username"`  // Unique handle
	Email          string    `json:"email"`     // Nullable
	HashedPassword string    `json:"-"`         // bcrypt hash; empty for system accounts
	IsSystem       bool      `json:"isSystem"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}
