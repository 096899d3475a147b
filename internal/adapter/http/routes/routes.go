package routes

import (
	"log"
	"os"
	"strconv"

	_ "tahsilat/docs" // swag-generated swagger spec
	"tahsilat/internal/adapter/http/handlers"
	"tahsilat/internal/adapter/persistence/repository"
	"tahsilat/internal/domain/protocol"
	"tahsilat/internal/infrastructure/database"
	"tahsilat/internal/infrastructure/processor"
	"tahsilat/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	cardRepo := repository.NewCreditCardDynamoRepository(ddb)

	cfg := configFromEnv()
	client := processor.NewClient()

	cardUseCase := usecase.NewCreditCardUseCase(cardRepo)
	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, client, cfg)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, cardUseCase)
	cardHandler := handlers.NewCardHandler(cardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, cardHandler)
}

// configFromEnv resolves the orchestrator config the usecases get injected
// with: the request locale and the processor connection options.
func configFromEnv() usecase.Config {
	return usecase.Config{
		Locale: getenvDefault("PAYMENT_LOCALE", "tr"),
		Options: protocol.ConnectionOptions{
			APIKey:    os.Getenv("PROCESSOR_API_KEY"),
			SecretKey: os.Getenv("PROCESSOR_SECRET_KEY"),
			BaseURL:   getenvDefault("PROCESSOR_BASE_URL", "https://sandbox-api.processor.example"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
