package request

import (
	"errors"
	"strings"

	"tahsilat/internal/domain/entities"
)

var (
	ErrMissingPayable  = errors.New("payable is required")
	ErrMissingProducts = errors.New("at least one product is required")
)

// AddressPayload mirrors one nested address record of the payable's bill
// fields.

type AddressPayload struct {
	Country string `json:"country"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// PayablePayload is the caller-supplied payable identity. The embedding
// application owns the real entity; this service only forwards it to the
// processor.

type PayablePayload struct {
	ID              string         `json:"id"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	MobileNumber    string         `json:"mobile_number"`
	IdentityNumber  string         `json:"identity_number"`
	ProcessorKey    string         `json:"processor_key"`
	ShippingAddress AddressPayload `json:"shipping_address"`
	BillingAddress  AddressPayload `json:"billing_address"`
}

// ProductPayload is one basket line of the charge.

type ProductPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
}

// ChargeRequest is the payload for the charge route.
//
// `card_token` is optional; when empty the stored card registered for the
// payable is used instead.

type ChargeRequest struct {
	Payable     PayablePayload   `json:"payable"`
	CardToken   string           `json:"card_token"`
	Products    []ProductPayload `json:"products"`
	Currency    string           `json:"currency"`
	Installment int              `json:"installment"`
	PaidPrice   float64          `json:"paid_price"`
}

// ResolvePayable translates the payload into the domain payable.
func (r ChargeRequest) ResolvePayable() (entities.Customer, error) {
	if strings.TrimSpace(r.Payable.ID) == "" {
		return entities.Customer{}, ErrMissingPayable
	}
	return entities.Customer{
		ID: strings.TrimSpace(r.Payable.ID),
		BillFields: entities.BillFields{
			FirstName:       r.Payable.FirstName,
			LastName:        r.Payable.LastName,
			Email:           r.Payable.Email,
			MobileNumber:    r.Payable.MobileNumber,
			IdentityNumber:  r.Payable.IdentityNumber,
			ProcessorKey:    r.Payable.ProcessorKey,
			ShippingAddress: entities.BillAddress(r.Payable.ShippingAddress),
			BillingAddress:  entities.BillAddress(r.Payable.BillingAddress),
		},
	}, nil
}

// ResolveAttributes translates the payload into the transaction attributes
// the validator checks. Field-level business rules stay in the usecase; this
// only rejects a structurally empty basket.
func (r ChargeRequest) ResolveAttributes() (entities.TransactionAttributes, error) {
	if len(r.Products) == 0 {
		return entities.TransactionAttributes{}, ErrMissingProducts
	}

	products := make([]entities.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, entities.CatalogProduct{
			Key:      p.ID,
			Name:     p.Name,
			Category: p.Category,
			ItemType: p.Type,
			Price:    p.Price,
		})
	}

	return entities.TransactionAttributes{
		Products:    products,
		Currency:    entities.Currency(strings.ToUpper(strings.TrimSpace(r.Currency))),
		Installment: r.Installment,
		PaidPrice:   r.PaidPrice,
	}, nil
}
