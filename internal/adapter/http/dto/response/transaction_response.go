package response

import (
	"time"

	"tahsilat/internal/domain/entities"
)

type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	PayableID     string    `json:"payable_id"`
	ProcessorKey  string    `json:"processor_key"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Installment   int       `json:"installment"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	ProviderRaw string `json:"provider_raw,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.ID,
		PayableID:     t.PayableID,
		ProcessorKey:  t.ProcessorKey,
		Amount:        t.Amount,
		Currency:      string(t.Currency),
		Installment:   t.Installment,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		ProviderRaw:   string(t.ProviderRaw),
	}
}

func FromTransactions(ts []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransaction(t))
	}
	return out
}
