// Package protocol holds the wire shapes of the external payment
// processor's charge/cancel contract. The usecase layer assembles these;
// the processor client serializes them as-is.
package protocol

// Fixed request constants. Every charge this service produces is a web
// channel product purchase.
const (
	PaymentChannelWeb   = "WEB"
	PaymentGroupProduct = "PRODUCT"
)

// PaymentCard references a tokenized card: the card-user key the processor
// issued for the payable plus the card token itself.

type PaymentCard struct {
	CardUserKey string `json:"cardUserKey"`
	CardToken   string `json:"cardToken"`
}

// Buyer is the purchaser identity fragment. Its registration address is
// always the billing address, regardless of the shipping record.

type Buyer struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Surname             string `json:"surname"`
	Email               string `json:"email"`
	GsmNumber           string `json:"gsmNumber"`
	IdentityNumber      string `json:"identityNumber"`
	City                string `json:"city"`
	Country             string `json:"country"`
	RegistrationAddress string `json:"registrationAddress"`
}

// Address is the shipping/billing address fragment.

type Address struct {
	ContactName string `json:"contactName"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Address     string `json:"address"`
}

// BasketItem is one purchasable line of the charge.

type BasketItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category1 string  `json:"category1"`
	ItemType  string  `json:"itemType"`
	Price     float64 `json:"price"`
}

// ChargeRequest is the full payment request submitted to the processor.

type ChargeRequest struct {
	Locale          string       `json:"locale"`
	Price           float64      `json:"price"`
	PaidPrice       float64      `json:"paidPrice"`
	Currency        string       `json:"currency"`
	Installment     int          `json:"installment"`
	PaymentChannel  string       `json:"paymentChannel"`
	PaymentGroup    string       `json:"paymentGroup"`
	PaymentCard     PaymentCard  `json:"paymentCard"`
	Buyer           Buyer        `json:"buyer"`
	ShippingAddress Address      `json:"shippingAddress"`
	BillingAddress  Address      `json:"billingAddress"`
	BasketItems     []BasketItem `json:"basketItems"`
}

// CancelRequest voids a previously accepted charge.

type CancelRequest struct {
	Locale    string `json:"locale"`
	PaymentID string `json:"paymentId"`
	IP        string `json:"ip"`
}
