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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for the order ledger.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// AddOrder godoc
//
//	@Summary	Add or merge a food order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		request.OrderRequest	true	"order event"
//	@Success	200		{object}	response.OrderResponse
//	@Success	201		{object}	response.OrderResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/add_order [post]
func (h *OrderHandler) AddOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	agg, created, err := h.usecase.AddOrder(c.Request.Context(), payload.ToEvent())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOrderAggregate(agg, created))
}

// ListOrders godoc
//
//	@Summary	List accumulated food orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	response.OrderListResponse
//	@Router		/food_orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderAggregates(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRestaurantID),
		errors.Is(err, usecase.ErrInvalidMenuItem),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Order store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
