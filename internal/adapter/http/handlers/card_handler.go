package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tahsilat/internal/adapter/http/dto/request"
	response "tahsilat/internal/adapter/http/dto/response"
	"tahsilat/internal/usecase"
	"tahsilat/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCardPayload = pkg.NewDomainErrorSimple("INVALID_CARD_INPUT", "Invalid card payload", http.StatusBadRequest)

// CardHandler handles HTTP requests for stored card tokens.

type CardHandler struct {
	usecase usecase.ICreditCardUseCase
}

func NewCardHandler(uc usecase.ICreditCardUseCase) *CardHandler {
	return &CardHandler{usecase: uc}
}

// Register stores a processor-issued card token for a payable, replacing
// any previously stored one.
//
// @Summary      Register a card token
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        body body request.CardRegisterRequest true "card payload"
// @Success      200 {object} response.CreditCardResponse
// @Router       /cards [post]
func (h *CardHandler) Register(c *gin.Context) {
	var payload request.CardRegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCardPayload.HTTPStatus, errInvalidCardPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.PayableID, payload.Token, payload.Alias)
	if err != nil {
		log.Printf("[card][handler] register failed payable_id=%s err=%v", payload.PayableID, err)
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[card][handler] register success payable_id=%s card_id=%s", payload.PayableID, created.ID)

	c.JSON(http.StatusOK, response.FromCreditCard(created))
}

// GetByPayableID returns the stored card of a payable.
//
// @Summary      Get a payable's stored card
// @Tags         cards
// @Produce      json
// @Param        payable_id path string true "payable id"
// @Success      200 {object} response.CreditCardResponse
// @Router       /cards/{payable_id} [get]
func (h *CardHandler) GetByPayableID(c *gin.Context) {
	payableID := c.Param("payable_id")

	card, err := h.usecase.GetByPayableID(c.Request.Context(), payableID)
	if err != nil {
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditCard(card))
}

// Remove deletes the stored card of a payable.
//
// @Summary      Remove a payable's stored card
// @Tags         cards
// @Param        payable_id path string true "payable id"
// @Success      204
// @Router       /cards/{payable_id} [delete]
func (h *CardHandler) Remove(c *gin.Context) {
	payableID := c.Param("payable_id")

	if err := h.usecase.RemoveByPayableID(c.Request.Context(), payableID); err != nil {
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayableID), errors.Is(err, usecase.ErrInvalidCardToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCreditCardNotFound):
		return pkg.NewDomainErrorSimple("CARD_NOT_FOUND", "No stored card for this payable", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
