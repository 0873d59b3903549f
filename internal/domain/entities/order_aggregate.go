package entities

// OrderAggregate is the accumulated order line for one menu item at one
// restaurant.
//
// Storage model (DynamoDB):
//   - PK: restaurant_id (number)
//   - SK: menu_item (string)
//
// The composite primary key guarantees a single row per
// (restaurant_id, menu_item). After every committed write
// TotalPrice == UnitPrice * Quantity, except for the very first insert
// where the caller-supplied total is stored as given.
type OrderAggregate struct {
	RestaurantID int64   `json:"restaurant_id"`
	MenuItem     string  `json:"menu_item"`
	Quantity     int64   `json:"quantity"`
	UnitPrice    float64 `json:"price"`
	TotalPrice   float64 `json:"total_price"`
}

// OrderEvent is one inbound order for a menu item.
//
// TotalPrice is advisory: it is trusted verbatim when the event creates
// the aggregate and recomputed from UnitPrice on every merge.
type OrderEvent struct {
	RestaurantID int64
	MenuItem     string
	Quantity     int64
	UnitPrice    float64
	TotalPrice   float64
}
