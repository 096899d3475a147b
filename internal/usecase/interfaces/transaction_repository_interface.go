package interfaces

import (
	"context"

	"tahsilat/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByPayableID(ctx context.Context, payableID string) ([]entities.Transaction, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.TransactionStatus) (entities.Transaction, error)
}
