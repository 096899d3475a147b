package interfaces

import (
	"context"

	"tahsilat/internal/domain/protocol"
)

// IProcessorClient abstracts the external payment processor RPC surface
// (e.g. the iyzico-style gateway). Transport, timeouts and credentials
// handling all live behind it; the usecases only classify its responses.

type IProcessorClient interface {
	Charge(ctx context.Context, req protocol.ChargeRequest, opts protocol.ConnectionOptions) (protocol.PaymentResponse, error)
	Cancel(ctx context.Context, req protocol.CancelRequest, opts protocol.ConnectionOptions) (protocol.PaymentResponse, error)
}
