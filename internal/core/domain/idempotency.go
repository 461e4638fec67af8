package domain

import "time"

// IdempotencyRecord maps a client-supplied key plus the endpoint it was
// issued against to the serialized response produced the first time the key
// was seen. Created at most once per key, never mutated, reclaimable only
// after ExpiresAt.
type IdempotencyRecord struct {
	RecordID     string    `json:"recordID"` // Primary Key (UUID)
	Key          string    `json:"key"`      // Unique
	Endpoint     string    `json:"endpoint"`
	ResponseBody string    `json:"responseBody"` // JSON-serialized response
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
