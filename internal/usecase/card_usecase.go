package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tahsilat/internal/domain/entities"
	"tahsilat/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCreditCardNotFound = errors.New("credit card not found")
	ErrInvalidCardToken   = errors.New("invalid card token")
)

// ICreditCardUseCase manages stored card tokens. Registering replaces any
// token the payable already had; charges without an explicit token fall
// back to the stored one.

type ICreditCardUseCase interface {
	Register(ctx context.Context, payableID, token, alias string) (entities.CreditCard, error)
	GetByPayableID(ctx context.Context, payableID string) (entities.CreditCard, error)
	RemoveByPayableID(ctx context.Context, payableID string) error
}

type CreditCardUseCase struct {
	repo interfaces.ICreditCardRepository
}

var _ ICreditCardUseCase = (*CreditCardUseCase)(nil)

func NewCreditCardUseCase(repo interfaces.ICreditCardRepository) *CreditCardUseCase {
	return &CreditCardUseCase{repo: repo}
}

func (u *CreditCardUseCase) Register(ctx context.Context, payableID, token, alias string) (entities.CreditCard, error) {
	payableID = strings.TrimSpace(payableID)
	if payableID == "" {
		return entities.CreditCard{}, ErrInvalidPayableID
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.CreditCard{}, ErrInvalidCardToken
	}

	// One active token per payable.
	if err := u.repo.DeleteByPayableID(ctx, payableID); err != nil {
		return entities.CreditCard{}, err
	}

	c := entities.CreditCard{
		ID:        uuid.NewString(),
		PayableID: payableID,
		Token:     token,
		Alias:     strings.TrimSpace(alias),
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[card][usecase] register failed payable_id=%s err=%v", payableID, err)
		return entities.CreditCard{}, err
	}
	log.Printf("[card][usecase] register success payable_id=%s card_id=%s", payableID, created.ID)
	return created, nil
}

func (u *CreditCardUseCase) GetByPayableID(ctx context.Context, payableID string) (entities.CreditCard, error) {
	payableID = strings.TrimSpace(payableID)
	if payableID == "" {
		return entities.CreditCard{}, ErrInvalidPayableID
	}

	c, err := u.repo.GetByPayableID(ctx, payableID)
	if err != nil {
		return entities.CreditCard{}, err
	}
	if c.ID == "" {
		return entities.CreditCard{}, ErrCreditCardNotFound
	}
	return c, nil
}

func (u *CreditCardUseCase) RemoveByPayableID(ctx context.Context, payableID string) error {
	payableID = strings.TrimSpace(payableID)
	if payableID == "" {
		return ErrInvalidPayableID
	}
	return u.repo.DeleteByPayableID(ctx, payableID)
}
