package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tahsilat/internal/domain/entities"
	"tahsilat/internal/domain/protocol"
	"tahsilat/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionSave      = errors.New("transaction could not be saved")
	ErrTransactionVoid      = errors.New("transaction could not be voided")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionVoided    = errors.New("transaction already voided")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidPayableID     = errors.New("invalid payable_id")
)

// ProcessorError is a business rejection reported by the processor. Its
// message comes from the processor and is safe for user display, unlike
// transport causes which stay in the logs.

type ProcessorError struct {
	Message string
}

func (e *ProcessorError) Error() string { return e.Message }

// Config carries the caller-level settings the orchestrators need: the
// request locale and the processor connection options.

type Config struct {
	Locale  string
	Options protocol.ConnectionOptions
}

// IPaymentUseCase exposes the charge/void operations.
//
//   - Charge validates the attributes, assembles the full payment request,
//     submits it once and persists the accepted charge.
//   - Void cancels a previously persisted charge on the processor.

type IPaymentUseCase interface {
	Charge(ctx context.Context, payable entities.Payable, card entities.CreditCard, attrs entities.TransactionAttributes) (entities.Transaction, error)
	Void(ctx context.Context, transactionID, clientIP string) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByPayableID(ctx context.Context, payableID string) ([]entities.Transaction, error)
}

type PaymentUseCase struct {
	repo   interfaces.ITransactionRepository
	client interfaces.IProcessorClient
	cfg    Config
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.ITransactionRepository, client interfaces.IProcessorClient, cfg Config) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, client: client, cfg: cfg}
}

func (u *PaymentUseCase) Charge(ctx context.Context, payable entities.Payable, card entities.CreditCard, attrs entities.TransactionAttributes) (entities.Transaction, error) {
	if payable == nil || strings.TrimSpace(payable.PayableID()) == "" {
		return entities.Transaction{}, ErrInvalidPayableID
	}
	if u.client == nil {
		return entities.Transaction{}, errors.New("processor client not configured")
	}
	if u.repo == nil {
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}
	log.Printf("[payment][usecase] charge start payable_id=%s products=%d currency=%s installment=%d",
		payable.PayableID(), len(attrs.Products), attrs.Currency, attrs.Installment)

	resp, err := u.createChargeOnProcessor(ctx, payable, card, attrs)
	if err != nil {
		log.Printf("[payment][usecase] charge failed payable_id=%s err=%v", payable.PayableID(), err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] charge accepted payable_id=%s payment_id=%s", payable.PayableID(), resp.PaymentID)

	now := time.Now().UTC()
	t := entities.Transaction{
		ID:           uuid.NewString(),
		PayableID:    payable.PayableID(),
		ProcessorKey: resp.PaymentID,
		Amount:       basketTotal(attrs.Products),
		Currency:     attrs.Currency,
		Installment:  attrs.Installment,
		Status:       entities.TransactionStatusCharged,
		CreatedAt:    now,
		UpdatedAt:    now,
		ProviderRaw:  resp.Raw,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[payment][usecase] transaction create failed payable_id=%s payment_id=%s err=%v",
			payable.PayableID(), resp.PaymentID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] charge success payable_id=%s transaction_id=%s", payable.PayableID(), created.ID)
	return created, nil
}

// createChargeOnProcessor runs the core pipeline: validate, assemble,
// submit once, classify. A transport failure and a processor rejection both
// surface as ErrTransactionSave; the transport cause stays wrapped for
// diagnostics while the rejection carries the processor's error message.
func (u *PaymentUseCase) createChargeOnProcessor(ctx context.Context, payable entities.Payable, card entities.CreditCard, attrs entities.TransactionAttributes) (protocol.PaymentResponse, error) {
	if err := validateTransactionFields(attrs); err != nil {
		return protocol.PaymentResponse{}, err
	}

	req := buildChargeRequest(u.cfg.Locale, attrs)

	paymentCard, err := preparePaymentCard(payable, card)
	if err != nil {
		return protocol.PaymentResponse{}, err
	}
	req.PaymentCard = paymentCard
	req.Buyer = prepareBuyer(payable)

	if req.ShippingAddress, err = prepareAddress(payable, entities.AddressTypeShipping); err != nil {
		return protocol.PaymentResponse{}, err
	}
	if req.BillingAddress, err = prepareAddress(payable, entities.AddressTypeBilling); err != nil {
		return protocol.PaymentResponse{}, err
	}
	req.BasketItems = prepareBasketItems(attrs.Products)

	resp, err := u.client.Charge(ctx, req, u.cfg.Options)
	if err != nil {
		return protocol.PaymentResponse{}, fmt.Errorf("%w: %w", ErrTransactionSave, err)
	}
	if !resp.Successful() {
		return protocol.PaymentResponse{}, fmt.Errorf("%w: %w", ErrTransactionSave, &ProcessorError{Message: resp.ErrorMessage})
	}
	return resp, nil
}

func (u *PaymentUseCase) Void(ctx context.Context, transactionID, clientIP string) (entities.Transaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if u.client == nil {
		return entities.Transaction{}, errors.New("processor client not configured")
	}
	if u.repo == nil {
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}
	log.Printf("[payment][usecase] void start transaction_id=%s", transactionID)

	t, err := u.repo.GetByID(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if t.Status == entities.TransactionStatusVoided {
		return entities.Transaction{}, ErrTransactionVoided
	}

	if _, err := u.createCancelOnProcessor(ctx, t.ProcessorKey, clientIP); err != nil {
		log.Printf("[payment][usecase] void failed transaction_id=%s err=%v", transactionID, err)
		return entities.Transaction{}, err
	}

	updated, err := u.repo.UpdateStatusByID(ctx, transactionID, entities.TransactionStatusVoided)
	if err != nil {
		log.Printf("[payment][usecase] void status update failed transaction_id=%s err=%v", transactionID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] void success transaction_id=%s", transactionID)
	return updated, nil
}

// createCancelOnProcessor submits the minimal cancel request, classifying
// failures the same way the charge path does, under ErrTransactionVoid.
func (u *PaymentUseCase) createCancelOnProcessor(ctx context.Context, processorKey, clientIP string) (protocol.PaymentResponse, error) {
	req := buildCancelRequest(u.cfg.Locale, processorKey, clientIP)

	resp, err := u.client.Cancel(ctx, req, u.cfg.Options)
	if err != nil {
		return protocol.PaymentResponse{}, fmt.Errorf("%w: %w", ErrTransactionVoid, err)
	}
	if !resp.Successful() {
		return protocol.PaymentResponse{}, fmt.Errorf("%w: %w", ErrTransactionVoid, &ProcessorError{Message: resp.ErrorMessage})
	}
	return resp, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *PaymentUseCase) ListByPayableID(ctx context.Context, payableID string) ([]entities.Transaction, error) {
	payableID = strings.TrimSpace(payableID)
	if payableID == "" {
		return nil, ErrInvalidPayableID
	}
	return u.repo.ListByPayableID(ctx, payableID)
}
