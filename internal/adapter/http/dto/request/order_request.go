package request

import (
	"strings"

	"foodcourt_api/internal/domain/entities"
)

// OrderRequest is the /api/add_order payload. Field names match the
// frontend basket wire format; `price` is the unit price and
// `total_price` is advisory.
type OrderRequest struct {
	RestaurantID int64   `json:"restaurant_id" binding:"required"`
	MenuItem     string  `json:"menu_item" binding:"required"`
	Quantity     int64   `json:"quantity" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	TotalPrice   float64 `json:"total_price"`
}

// ToEvent converts the payload to a domain event. A missing or
// non-positive advisory total falls back to price * quantity.
func (r OrderRequest) ToEvent() entities.OrderEvent {
	total := r.TotalPrice
	if total <= 0 {
		total = r.Price * float64(r.Quantity)
	}
	return entities.OrderEvent{
		RestaurantID: r.RestaurantID,
		MenuItem:     strings.TrimSpace(r.MenuItem),
		Quantity:     r.Quantity,
		UnitPrice:    r.Price,
		TotalPrice:   total,
	}
}
