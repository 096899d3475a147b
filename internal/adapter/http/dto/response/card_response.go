package response

import (
	"time"

	"tahsilat/internal/domain/entities"
)

type CreditCardResponse struct {
	CardID    string    `json:"card_id"`
	PayableID string    `json:"payable_id"`
	Token     string    `json:"token"`
	Alias     string    `json:"alias,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCreditCard(c entities.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		CardID:    c.ID,
		PayableID: c.PayableID,
		Token:     c.Token,
		Alias:     c.Alias,
		CreatedAt: c.CreatedAt,
	}
}
