package interfaces

import (
	"context"

	"tahsilat/internal/domain/entities"
)

// ICreditCardRepository abstracts DynamoDB persistence for stored card
// tokens. One payable keeps at most one active token in this service.

type ICreditCardRepository interface {
	Create(ctx context.Context, c entities.CreditCard) (entities.CreditCard, error)
	GetByPayableID(ctx context.Context, payableID string) (entities.CreditCard, error)
	DeleteByPayableID(ctx context.Context, payableID string) error
}
