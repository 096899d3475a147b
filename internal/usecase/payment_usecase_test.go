package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tahsilat/internal/domain/entities"
	"tahsilat/internal/domain/protocol"
	mock_interfaces "tahsilat/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testConfig() Config {
	return Config{
		Locale: "tr",
		Options: protocol.ConnectionOptions{
			APIKey:    "api-key",
			SecretKey: "secret-key",
			BaseURL:   "https://sandbox.processor.example",
		},
	}
}

func TestPaymentUseCase_Charge_Guards(t *testing.T) {
	t.Run("nil payable", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testConfig())
		_, err := uc.Charge(context.Background(), nil, entities.CreditCard{}, validAttrs())
		if !errors.Is(err, ErrInvalidPayableID) {
			t.Fatalf("expected ErrInvalidPayableID, got %v", err)
		}
	})

	t.Run("empty payable id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testConfig())
		_, err := uc.Charge(context.Background(), entities.Customer{ID: " "}, entities.CreditCard{}, validAttrs())
		if !errors.Is(err, ErrInvalidPayableID) {
			t.Fatalf("expected ErrInvalidPayableID, got %v", err)
		}
	})

	t.Run("processor client not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testConfig())
		_, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{}, validAttrs())
		if err == nil || err.Error() != "processor client not configured" {
			t.Fatalf("expected client not configured error, got %v", err)
		}
	})

	t.Run("transaction repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(nil, client, testConfig())

		_, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{}, validAttrs())
		if err == nil || err.Error() != "transaction repository not configured" {
			t.Fatalf("expected repository not configured error, got %v", err)
		}
	})

	t.Run("validation failure short-circuits before the processor call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		attrs := validAttrs()
		attrs.Currency = "TRY"
		_, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{Token: "tok1"}, attrs)
		if !errors.Is(err, ErrInvalidTransactionFields) {
			t.Fatalf("expected ErrInvalidTransactionFields, got %v", err)
		}
	})

	t.Run("missing processor key short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		p := testPayable()
		p.BillFields.ProcessorKey = ""
		_, err := uc.Charge(context.Background(), p, entities.CreditCard{Token: "tok1"}, validAttrs())
		if !errors.Is(err, ErrMissingProcessorKey) {
			t.Fatalf("expected ErrMissingProcessorKey, got %v", err)
		}
	})
}

func TestPaymentUseCase_Charge(t *testing.T) {
	attrs := entities.TransactionAttributes{
		Products:    []entities.Product{entities.CatalogProduct{Key: "prod-a", Name: "Book", Category: "Media", ItemType: "PHYSICAL", Price: 100}},
		Currency:    entities.CurrencyTL,
		Installment: 1,
		PaidPrice:   100,
	}

	t.Run("success builds the full request and persists the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		client.EXPECT().Charge(gomock.Any(), gomock.Any(), testConfig().Options).DoAndReturn(
			func(_ context.Context, req protocol.ChargeRequest, _ protocol.ConnectionOptions) (protocol.PaymentResponse, error) {
				if req.Price != 100 || req.PaidPrice != 100 {
					t.Fatalf("expected price=paidPrice=100, got %+v", req)
				}
				if req.Currency != "TL" || req.Installment != 1 || req.Locale != "tr" {
					t.Fatalf("unexpected request header fields: %+v", req)
				}
				if req.PaymentChannel != protocol.PaymentChannelWeb || req.PaymentGroup != protocol.PaymentGroupProduct {
					t.Fatalf("unexpected channel/group: %+v", req)
				}
				if req.PaymentCard.CardToken != "tok1" || req.PaymentCard.CardUserKey != "pk1" {
					t.Fatalf("unexpected payment card: %+v", req.PaymentCard)
				}
				if req.Buyer.RegistrationAddress != "A St" || req.Buyer.City != "Ankara" {
					t.Fatalf("buyer must use the billing address: %+v", req.Buyer)
				}
				if req.ShippingAddress.City != "Istanbul" || req.BillingAddress.City != "Ankara" {
					t.Fatalf("unexpected addresses: %+v / %+v", req.ShippingAddress, req.BillingAddress)
				}
				if len(req.BasketItems) != 1 || req.BasketItems[0].ID != "prod-a" {
					t.Fatalf("unexpected basket: %+v", req.BasketItems)
				}
				return protocol.PaymentResponse{Status: "success", PaymentID: "pay-1"}, nil
			},
		)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				if tr.ID == "" {
					t.Fatalf("transaction id must be set")
				}
				if tr.PayableID != "payable-1" || tr.ProcessorKey != "pay-1" {
					t.Fatalf("unexpected transaction: %+v", tr)
				}
				if tr.Amount != 100 || tr.Currency != entities.CurrencyTL || tr.Installment != 1 {
					t.Fatalf("unexpected amount fields: %+v", tr)
				}
				if tr.Status != entities.TransactionStatusCharged || tr.CreatedAt.IsZero() {
					t.Fatalf("unexpected status/timestamps: %+v", tr)
				}
				return tr, nil
			},
		)

		created, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{Token: "tok1"}, attrs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ProcessorKey != "pay-1" {
			t.Fatalf("unexpected result: %+v", created)
		}
	})

	t.Run("processor rejection carries the error message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		client.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			protocol.PaymentResponse{Status: "failure", ErrorMessage: "card declined"}, nil)

		_, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{Token: "tok1"}, attrs)
		if !errors.Is(err, ErrTransactionSave) {
			t.Fatalf("expected ErrTransactionSave, got %v", err)
		}
		if !strings.Contains(err.Error(), "card declined") {
			t.Fatalf("expected processor message in error, got %v", err)
		}
	})

	t.Run("transport failure wraps the cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		cause := errors.New("connection reset")
		client.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Return(protocol.PaymentResponse{}, cause)

		_, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{Token: "tok1"}, attrs)
		if !errors.Is(err, ErrTransactionSave) {
			t.Fatalf("expected ErrTransactionSave, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped transport cause, got %v", err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		client.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			protocol.PaymentResponse{Status: "success", PaymentID: "pay-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("db-create"))

		_, err := uc.Charge(context.Background(), testPayable(), entities.CreditCard{Token: "tok1"}, attrs)
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Void(t *testing.T) {
	t.Run("invalid transaction id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testConfig())
		_, err := uc.Void(context.Background(), " ", "10.0.0.1")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("transaction not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{}, nil)

		_, err := uc.Void(context.Background(), "tx-1", "10.0.0.1")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("already voided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(
			entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusVoided}, nil)

		_, err := uc.Void(context.Background(), "tx-1", "10.0.0.1")
		if !errors.Is(err, ErrTransactionVoided) {
			t.Fatalf("expected ErrTransactionVoided, got %v", err)
		}
	})

	t.Run("success builds the cancel request from the stored key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(
			entities.Transaction{ID: "tx-1", ProcessorKey: "pk1", Status: entities.TransactionStatusCharged}, nil)

		client.EXPECT().Cancel(gomock.Any(), gomock.Any(), testConfig().Options).DoAndReturn(
			func(_ context.Context, req protocol.CancelRequest, _ protocol.ConnectionOptions) (protocol.PaymentResponse, error) {
				if req.PaymentID != "pk1" || req.IP != "10.0.0.1" || req.Locale != "tr" {
					t.Fatalf("unexpected cancel request: %+v", req)
				}
				return protocol.PaymentResponse{Status: "success", PaymentID: "pk1"}, nil
			},
		)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "tx-1", entities.TransactionStatusVoided).Return(
			entities.Transaction{ID: "tx-1", ProcessorKey: "pk1", Status: entities.TransactionStatusVoided}, nil)

		updated, err := uc.Void(context.Background(), "tx-1", "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.TransactionStatusVoided {
			t.Fatalf("expected voided status, got %+v", updated)
		}
	})

	t.Run("transport failure wraps the cause and leaves the record untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(
			entities.Transaction{ID: "tx-1", ProcessorKey: "pk1", Status: entities.TransactionStatusCharged}, nil)

		cause := errors.New("dial timeout")
		client.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Return(protocol.PaymentResponse{}, cause)

		_, err := uc.Void(context.Background(), "tx-1", "10.0.0.1")
		if !errors.Is(err, ErrTransactionVoid) {
			t.Fatalf("expected ErrTransactionVoid, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped transport cause, got %v", err)
		}
	})

	t.Run("processor rejection carries the error message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		client := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(repo, client, testConfig())

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(
			entities.Transaction{ID: "tx-1", ProcessorKey: "pk1", Status: entities.TransactionStatusCharged}, nil)
		client.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			protocol.PaymentResponse{Status: "failure", ErrorMessage: "payment not refundable"}, nil)

		_, err := uc.Void(context.Background(), "tx-1", "10.0.0.1")
		if !errors.Is(err, ErrTransactionVoid) {
			t.Fatalf("expected ErrTransactionVoid, got %v", err)
		}
		if !strings.Contains(err.Error(), "payment not refundable") {
			t.Fatalf("expected processor message in error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testConfig())
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, testConfig())
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{}, nil)

		_, err := uc.GetByID(context.Background(), "tx-1")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("GetByID success trims the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, testConfig())
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1"}, nil)

		res, err := uc.GetByID(context.Background(), " tx-1 ")
		if err != nil || res.ID != "tx-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByPayableID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testConfig())
		_, err := uc.ListByPayableID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPayableID) {
			t.Fatalf("expected ErrInvalidPayableID, got %v", err)
		}
	})

	t.Run("ListByPayableID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, testConfig())
		repo.EXPECT().ListByPayableID(gomock.Any(), "payable-1").Return([]entities.Transaction{{ID: "tx-1"}}, nil)

		res, err := uc.ListByPayableID(context.Background(), " payable-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "tx-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
