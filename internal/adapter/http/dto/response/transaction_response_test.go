package response

import (
	"encoding/json"
	"testing"
	"time"

	"tahsilat/internal/domain/entities"
)

func TestFromTransaction(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"status":"success","paymentId":"pay-1"}`)

	tx := entities.Transaction{
		ID:           "tx-1",
		PayableID:    "payable-1",
		ProcessorKey: "pay-1",
		Amount:       150.5,
		Currency:     entities.CurrencyTL,
		Installment:  3,
		Status:       entities.TransactionStatusCharged,
		CreatedAt:    now,
		UpdatedAt:    now,
		ProviderRaw:  raw,
	}

	res := FromTransaction(tx)
	if res.TransactionID != "tx-1" || res.PayableID != "payable-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ProcessorKey != "pay-1" || res.Amount != 150.5 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Currency != "TL" || res.Installment != 3 || res.Status != "charged" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.ProviderRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderRaw)
	}
}

func TestFromTransactions(t *testing.T) {
	out := FromTransactions([]entities.Transaction{{ID: "tx-1"}, {ID: "tx-2"}})
	if len(out) != 2 || out[0].TransactionID != "tx-1" || out[1].TransactionID != "tx-2" {
		t.Fatalf("unexpected slice: %+v", out)
	}

	if empty := FromTransactions(nil); len(empty) != 0 {
		t.Fatalf("expected empty slice, got %+v", empty)
	}
}

func TestFromCreditCard(t *testing.T) {
	now := time.Now().UTC()
	res := FromCreditCard(entities.CreditCard{ID: "card-1", PayableID: "payable-1", Token: "tok-1", Alias: "personal", CreatedAt: now})
	if res.CardID != "card-1" || res.PayableID != "payable-1" || res.Token != "tok-1" || res.Alias != "personal" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}
