package routes

import (
	"foodcourt_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAddOrder   = "/add_order"
	PathFoodOrders = "/food_orders"
	PathRegister   = "/register"
	PathLogin      = "/login"
	PathProfile    = "/profile"
	PathRatings    = "/ratings"
	PathPayments   = "/payments"
)

func addFoodCourtRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	accountHandler *handlers.AccountHandler,
	ratingHandler *handlers.RatingHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	// Order ledger.
	rg.POST(PathAddOrder, orderHandler.AddOrder)
	rg.GET(PathFoodOrders, orderHandler.ListOrders)

	// Accounts.
	rg.POST(PathRegister, accountHandler.Register)
	rg.POST(PathLogin, accountHandler.Login)
	rg.GET(PathProfile+"/:username", accountHandler.GetProfile)

	// Ratings.
	rg.POST(PathRatings, ratingHandler.Submit)

	// Checkout.
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Checkout)
		payments.GET("/:id", paymentHandler.GetByID)
	}
}
