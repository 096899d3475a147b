package main

import (
	_ "tahsilat/docs"
	"tahsilat/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tahsilat Payment API
// @version         1.0
// @description     Charge/void service in front of the external payment processor, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
