package request

import "encoding/json"

// PaymentRequest is the /api/payments payload.
//
// `provider_payload` is forwarded to the payment provider as-is to
// support varying provider schemas.
type PaymentRequest struct {
	Username        string          `json:"username" binding:"required"`
	Amount          float64         `json:"amount" binding:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
