package handlers

import (
	"errors"
	"net/http"

	request "foodcourt_api/internal/adapter/http/dto/request"
	response "foodcourt_api/internal/adapter/http/dto/response"
	"foodcourt_api/internal/usecase"
	"foodcourt_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for basket checkout.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Checkout godoc
//
//	@Summary	Process a basket payment
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		payment	body		request.PaymentRequest	true	"payment"
//	@Success	201		{object}	response.PaymentResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	402		{object}	pkg.HTTPError
//	@Router		/payments [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Checkout(c.Request.Context(), payload.Username, payload.Amount, payload.ProviderPayload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// GetByID godoc
//
//	@Summary	Fetch a payment receipt
//	@Tags		payments
//	@Produce	json
//	@Param		id	path		string	true	"payment id"
//	@Success	200	{object}	response.PaymentResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentDenied):
		return pkg.NewDomainError("PAYMENT_DENIED", "Payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Payment store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
