package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tahsilat/internal/adapter/http/dto/request"
	response "tahsilat/internal/adapter/http/dto/response"
	"tahsilat/internal/domain/entities"
	"tahsilat/internal/usecase"
	"tahsilat/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for charges and voids.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	cards   usecase.ICreditCardUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, cards usecase.ICreditCardUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc, cards: cards}
}

// Charge validates the payload, resolves the card token (explicit or
// stored) and submits the charge.
//
// @Summary      Charge a payable
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body body request.ChargeRequest true "charge payload"
// @Success      200 {object} response.TransactionResponse
// @Router       /payments [post]
func (h *PaymentHandler) Charge(c *gin.Context) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	payable, err := payload.ResolvePayable()
	if err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	attrs, err := payload.ResolveAttributes()
	if err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge start payable_id=%s products=%d", payable.ID, len(attrs.Products))

	card := entities.CreditCard{Token: payload.CardToken}
	if card.Token == "" {
		stored, err := h.cards.GetByPayableID(c.Request.Context(), payable.ID)
		if err != nil {
			log.Printf("[payment][handler] stored card lookup failed payable_id=%s err=%v", payable.ID, err)
			appErr := mapPaymentError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		card = stored
	}

	created, err := h.usecase.Charge(c.Request.Context(), payable, card, attrs)
	if err != nil {
		log.Printf("[payment][handler] charge failed payable_id=%s err=%v", payable.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success payable_id=%s transaction_id=%s", payable.ID, created.ID)

	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Cancel voids a previously accepted charge.
//
// @Summary      Void a transaction
// @Tags         payments
// @Produce      json
// @Param        transaction_id path string true "transaction id"
// @Success      200 {object} response.TransactionResponse
// @Router       /payments/{transaction_id}/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	log.Printf("[payment][handler] void start transaction_id=%s", transactionID)

	voided, err := h.usecase.Void(c.Request.Context(), transactionID, c.ClientIP())
	if err != nil {
		log.Printf("[payment][handler] void failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] void success transaction_id=%s", transactionID)

	c.JSON(http.StatusOK, response.FromTransaction(voided))
}

// GetByID returns one transaction.
//
// @Summary      Get a transaction
// @Tags         payments
// @Produce      json
// @Param        transaction_id path string true "transaction id"
// @Success      200 {object} response.TransactionResponse
// @Router       /payments/{transaction_id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	t, err := h.usecase.GetByID(c.Request.Context(), transactionID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// ListByPayableID returns every transaction of a payable.
//
// @Summary      List a payable's transactions
// @Tags         payments
// @Produce      json
// @Param        payable_id path string true "payable id"
// @Success      200 {array} response.TransactionResponse
// @Router       /payables/{payable_id}/payments [get]
func (h *PaymentHandler) ListByPayableID(c *gin.Context) {
	payableID := c.Param("payable_id")

	ts, err := h.usecase.ListByPayableID(c.Request.Context(), payableID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(ts))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionFields),
		errors.Is(err, usecase.ErrInvalidPayableID),
		errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrMissingProcessorKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCreditCardNotFound):
		return pkg.NewDomainErrorSimple("CARD_NOT_FOUND", "No stored card for this payable", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionVoided):
		return pkg.NewDomainErrorSimple("TRANSACTION_ALREADY_VOIDED", "Transaction already voided", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionSave):
		return pkg.NewDomainError("CHARGE_REJECTED", rejectionMessage(err, "Charge rejected by the payment processor"), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransactionVoid):
		return pkg.NewDomainError("VOID_REJECTED", rejectionMessage(err, "Void rejected by the payment processor"), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// rejectionMessage surfaces the processor's own rejection text when there
// is one; transport failures fall back to the generic message so transport
// detail never reaches clients.
func rejectionMessage(err error, fallback string) string {
	var pe *usecase.ProcessorError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return fallback
}
