package protocol

import "encoding/json"

// StatusSuccess is the only status the processor reports for an accepted
// operation; anything else is a business rejection.
const StatusSuccess = "success"

// PaymentResponse is the processor's answer to a charge or cancel.
//
// Raw carries the undecoded body so callers can persist the full provider
// payload for audit without this package tracking every provider field.

type PaymentResponse struct {
	Status       string `json:"status"`
	PaymentID    string `json:"paymentId"`
	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Successful reports whether the processor accepted the operation.
func (r PaymentResponse) Successful() bool {
	return r.Status == StatusSuccess
}
