package entities

// AddressType selects which nested address record of a Payable's bill
// fields an operation reads.

type AddressType string

const (
	AddressTypeShipping AddressType = "shipping_address"
	AddressTypeBilling  AddressType = "billing_address"
)

// BillAddress is one nested address record inside BillFields.

type BillAddress struct {
	Country string `json:"country"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// BillFields is the billing/delivery identity data a Payable exposes.
//
// ProcessorKey is the card-user key previously issued by the payment
// processor for this payable. Builders that need it fail when it is empty;
// the remaining fields are caller data and are forwarded as-is.

type BillFields struct {
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Email           string      `json:"email"`
	MobileNumber    string      `json:"mobile_number"`
	IdentityNumber  string      `json:"identity_number"`
	ProcessorKey    string      `json:"processor_key"`
	ShippingAddress BillAddress `json:"shipping_address"`
	BillingAddress  BillAddress `json:"billing_address"`
}

// AddressFor returns the nested record for the given address type.
func (b BillFields) AddressFor(t AddressType) (BillAddress, bool) {
	switch t {
	case AddressTypeShipping:
		return b.ShippingAddress, true
	case AddressTypeBilling:
		return b.BillingAddress, true
	default:
		return BillAddress{}, false
	}
}

// Payable is whoever is being charged. The embedding application supplies
// the concrete type; the core only needs an identifier and the bill fields.

type Payable interface {
	PayableID() string
	GetBillFields() BillFields
}

// Customer is a plain Payable implementation used by the HTTP layer and
// by callers that do not carry their own domain entity.

type Customer struct {
	ID         string     `json:"id"`
	BillFields BillFields `json:"bill_fields"`
}

var _ Payable = Customer{}

func (c Customer) PayableID() string         { return c.ID }
func (c Customer) GetBillFields() BillFields { return c.BillFields }
