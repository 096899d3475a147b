package request

// CardRegisterRequest stores a processor-issued card token for a payable.

type CardRegisterRequest struct {
	PayableID string `json:"payable_id"`
	Token     string `json:"token"`
	Alias     string `json:"alias"`
}
