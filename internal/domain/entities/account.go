package entities

import "time"

// Account is a registered client.
//
// Storage model (DynamoDB):
//   - PK: username (string)
//
// Accounts are immutable after creation: there is no update or delete
// operation. The password hash arrives pre-computed from the caller and
// is compared byte-for-byte on login; it must never be serialized into
// API responses.
type Account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
