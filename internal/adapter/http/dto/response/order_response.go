package response

import (
	"fmt"

	"foodcourt_api/internal/domain/entities"
)

type OrderResponse struct {
	Message string                  `json:"message"`
	Order   entities.OrderAggregate `json:"order"`
}

// FromOrderAggregate keeps the human-readable summary the frontend
// expects: created keys read "Inserted ...", merged keys "Updated ...".
func FromOrderAggregate(agg entities.OrderAggregate, created bool) OrderResponse {
	var msg string
	if created {
		msg = fmt.Sprintf("Inserted %s with quantity %d", agg.MenuItem, agg.Quantity)
	} else {
		msg = fmt.Sprintf("Updated %s quantity to %d", agg.MenuItem, agg.Quantity)
	}
	return OrderResponse{Message: msg, Order: agg}
}

// OrderListResponse matches the dashboard fetch, which reads the
// `food_orders` array.
type OrderListResponse struct {
	FoodOrders []entities.OrderAggregate `json:"food_orders"`
}

func FromOrderAggregates(orders []entities.OrderAggregate) OrderListResponse {
	if orders == nil {
		orders = []entities.OrderAggregate{}
	}
	return OrderListResponse{FoodOrders: orders}
}
