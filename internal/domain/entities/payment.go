package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the provider-side processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is a checkout payment captured for a client's basket.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// ProviderPayloadRaw keeps the provider response body (JSON) for
// traceability; provider schemas vary, so it is stored as-is.
type Payment struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Amount   float64       `json:"amount"`
	Status   PaymentStatus `json:"status"`
	Date     time.Time     `json:"date"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
