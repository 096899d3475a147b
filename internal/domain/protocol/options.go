package protocol

// ConnectionOptions carries the processor credentials and endpoint. It is
// resolved once from the environment and injected into the usecase config;
// request signing is the client's concern, not this package's.

type ConnectionOptions struct {
	APIKey    string
	SecretKey string
	BaseURL   string
}
