package entities

import "time"

// CreditCard is a stored card token previously issued by the processor for
// a payable. The service never sees PANs; the token is all it keeps.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payable_id-index): payable_id

type CreditCard struct {
	ID        string    `json:"id"`
	PayableID string    `json:"payable_id"`
	Token     string    `json:"token"`
	Alias     string    `json:"alias,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
