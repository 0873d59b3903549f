package response

import (
	"time"

	"foodcourt_api/internal/domain/entities"
)

// PaymentResponse exposes the receipt without the raw provider payload.
type PaymentResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	Date              time.Time `json:"date"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		Username:          p.Username,
		Amount:            p.Amount,
		Status:            string(p.Status),
		Date:              p.Date,
		ProviderPaymentID: p.ProviderPaymentID,
	}
}
