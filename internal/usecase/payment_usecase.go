package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrPaymentGatewayNotWired = errors.New("payment gateway not configured")
	ErrPaymentDenied          = errors.New("payment denied by provider")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
)

// IPaymentUseCase encapsulates basket checkout: process a payment with
// the provider and persist the result.

type IPaymentUseCase interface {
	Checkout(ctx context.Context, username string, amount float64, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) Checkout(ctx context.Context, username string, amount float64, providerPayload json.RawMessage) (entities.Payment, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.Payment{}, ErrInvalidUsername
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured username=%s", username)
		return entities.Payment{}, ErrPaymentGatewayNotWired
	}

	id := uuid.NewString()

	// The provider reconciles events through external_reference and
	// needs the amount inside its own payload.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = id
	}
	if _, ok := reqMap["transaction_amount"]; !ok {
		reqMap["transaction_amount"] = amount
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] provider create failed username=%s err=%v", username, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrPaymentDenied, err)
	}

	status := entities.PaymentStatusDenied
	switch providerStatus {
	case "approved":
		status = entities.PaymentStatusApproved
	case "pending", "in_process":
		status = entities.PaymentStatusPending
	}

	p := entities.Payment{
		ID:                 id,
		Username:           username,
		Amount:             amount,
		Status:             status,
		Date:               time.Now().UTC(),
		ProviderPaymentID:  providerID,
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] persist failed id=%s username=%s err=%v", id, username, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log.Printf("[payment][usecase] checkout done id=%s username=%s status=%s", id, username, status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] lookup failed id=%s err=%v", id, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
