package routes

import (
	"tahsilat/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathPayables = "/payables"
	PathCards    = "/cards"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, cardHandler *handlers.CardHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Charge)
		payments.POST("/:transaction_id/cancel", paymentHandler.Cancel)
		payments.GET("/:transaction_id", paymentHandler.GetByID)
	}

	payables := rg.Group(PathPayables)
	{
		payables.GET("/:payable_id/payments", paymentHandler.ListByPayableID)
	}

	cards := rg.Group(PathCards)
	{
		cards.POST("", cardHandler.Register)
		cards.GET("/:payable_id", cardHandler.GetByPayableID)
		cards.DELETE("/:payable_id", cardHandler.Remove)
	}
}
