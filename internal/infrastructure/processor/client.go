package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"tahsilat/internal/domain/protocol"
	"tahsilat/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrProcessorNotConfigured = errors.New("processor client not configured")

const defaultTimeout = 30 * time.Second

// Client talks to the payment processor's charge/cancel endpoints over
// JSON/HTTP. Credentials travel as static headers from ConnectionOptions;
// request signing is the processor SDK's concern in richer deployments and
// is deliberately not reproduced here.
//
// PROCESSOR_MOCK=1 answers every request locally with a success response
// so the service can run without processor credentials.

type Client struct {
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IProcessorClient = (*Client)(nil)

func NewClient() *Client {
	if isProcessorMockEnabled() {
		log.Printf("[processor][client] mock mode enabled")
		return &Client{mockMode: true}
	}
	return &Client{httpClient: &http.Client{Timeout: defaultTimeout}}
}

func (c *Client) Charge(ctx context.Context, req protocol.ChargeRequest, opts protocol.ConnectionOptions) (protocol.PaymentResponse, error) {
	if c != nil && c.mockMode {
		log.Printf("[processor][client] mock charge price=%.2f currency=%s", req.Price, req.Currency)
		return mockResponse(), nil
	}
	return c.post(ctx, "/payment/auth", req, opts)
}

func (c *Client) Cancel(ctx context.Context, req protocol.CancelRequest, opts protocol.ConnectionOptions) (protocol.PaymentResponse, error) {
	if c != nil && c.mockMode {
		log.Printf("[processor][client] mock cancel payment_id=%s", req.PaymentID)
		return mockResponse(), nil
	}
	return c.post(ctx, "/payment/cancel", req, opts)
}

func (c *Client) post(ctx context.Context, path string, payload any, opts protocol.ConnectionOptions) (protocol.PaymentResponse, error) {
	if c == nil || c.httpClient == nil {
		return protocol.PaymentResponse{}, ErrProcessorNotConfigured
	}
	if opts.BaseURL == "" || opts.APIKey == "" {
		return protocol.PaymentResponse{}, ErrProcessorNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return protocol.PaymentResponse{}, err
	}
	log.Printf("[processor][client] post start path=%s payload_len=%d", path, len(body))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(opts.BaseURL, "/")+path, bytes.NewReader(body))
	if err != nil {
		return protocol.PaymentResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", opts.APIKey)
	httpReq.Header.Set("x-secret-key", opts.SecretKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[processor][client] post failed path=%s err=%v", path, err)
		return protocol.PaymentResponse{}, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return protocol.PaymentResponse{}, err
	}
	// The processor reports business rejections as status="failure" inside a
	// 200 body; only non-2xx codes are transport-level failures.
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		log.Printf("[processor][client] post failed path=%s http_status=%d", path, httpResp.StatusCode)
		return protocol.PaymentResponse{}, fmt.Errorf("processor returned http %d: %s", httpResp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var resp protocol.PaymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("[processor][client] response unmarshal failed path=%s err=%v", path, err)
		return protocol.PaymentResponse{}, err
	}
	resp.Raw = raw
	log.Printf("[processor][client] post success path=%s status=%s payment_id=%s", path, resp.Status, resp.PaymentID)
	return resp, nil
}

func mockResponse() protocol.PaymentResponse {
	id := uuid.NewString()
	raw, _ := json.Marshal(map[string]any{
		"status":     protocol.StatusSuccess,
		"paymentId":  id,
		"systemTime": strconv.FormatInt(time.Now().UTC().UnixMilli(), 10),
	})
	return protocol.PaymentResponse{Status: protocol.StatusSuccess, PaymentID: id, Raw: raw}
}

func isProcessorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PROCESSOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
