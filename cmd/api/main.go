package main

import (
	_ "foodcourt_api/docs"
	"foodcourt_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Food Court API
// @version         1.0
// @description     Food ordering backend (orders + accounts + ratings + checkout) backed by DynamoDB.

// @host localhost:8000

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
