package models

import "time"

// IdempotencyRecord is the idempotency_keys table row. key is unique; the
// row is written inside the same transaction as the mutation it caches.
type IdempotencyRecord struct {
	RecordID     string    `json:"recordID"`
	Key          string    `json:"key"`
	Endpoint     string    `json:"endpoint"`
	ResponseBody string    `json:"responseBody"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
