package entities

import (
	"encoding/json"
	"time"
)

// TransactionStatus represents the charge outcome kept with the record.
//
// A transaction is only persisted after the processor accepted the charge,
// so the initial status is always charged; voided is set by a later cancel.

type TransactionStatus string

const (
	TransactionStatusCharged TransactionStatus = "charged"
	TransactionStatusVoided  TransactionStatus = "voided"
)

// Transaction is the charge record persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payable_id-index): payable_id
//
// Processor payload:
//   - ProviderRaw keeps the processor's response body (JSON) for
//     traceability/audit.
//   - ProcessorKey is the external charge identifier and is the only field
//     a later void needs.

type Transaction struct {
	ID           string            `json:"id"`
	PayableID    string            `json:"payable_id"`
	ProcessorKey string            `json:"processor_key"`
	Amount       float64           `json:"amount"`
	Currency     Currency          `json:"currency"`
	Installment  int               `json:"installment"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	ProviderRaw json.RawMessage `json:"provider_raw,omitempty"`
}
