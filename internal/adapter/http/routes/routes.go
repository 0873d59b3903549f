package routes

import (
	"context"
	"log"
	"os"
	"strings"

	_ "foodcourt_api/docs"
	"foodcourt_api/internal/adapter/http/handlers"
	repository "foodcourt_api/internal/adapter/persistence/repository"
	"foodcourt_api/internal/infrastructure/auth"
	"foodcourt_api/internal/infrastructure/database"
	"foodcourt_api/internal/infrastructure/payments"
	"foodcourt_api/internal/usecase"
	"foodcourt_api/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	if strings.EqualFold(os.Getenv("DYNAMODB_ENSURE_TABLES"), "true") {
		if err := database.EnsureTables(context.Background(), ddb); err != nil {
			log.Fatalf("Failed to ensure dynamodb tables: %v", err)
		}
	}

	orderRepo := repository.NewOrderLedgerDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)
	ratingRepo := repository.NewRatingDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	accountUseCase := usecase.NewAccountUseCase(accountRepo, auth.NewJWTIssuerFromEnv())
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, paymentGateway)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	accountHandler := handlers.NewAccountHandler(accountUseCase)
	ratingHandler := handlers.NewRatingHandler(ratingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addFoodCourtRoutes(api, orderHandler, accountHandler, ratingHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// The frontend dev server runs on :3000.
	origins := strings.Split(getenvDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"), ",")
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(cfg))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
