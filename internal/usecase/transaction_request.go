package usecase

import (
	"errors"
	"fmt"

	"tahsilat/internal/domain/entities"
	"tahsilat/internal/domain/protocol"
)

var (
	ErrInvalidTransactionFields = errors.New("invalid transaction fields")
	ErrMissingProcessorKey      = errors.New("payable has no processor key")
	ErrUnknownAddressType       = errors.New("unknown address type")
)

// validateTransactionFields checks the per-charge attributes before any
// request is assembled. The basket total it computes is the same sum
// buildChargeRequest transmits; both go through basketTotal so the ceiling
// check and the transmitted amount cannot drift.
func validateTransactionFields(attrs entities.TransactionAttributes) error {
	if len(attrs.Products) == 0 {
		return fmt.Errorf("%w: at least one product is required", ErrInvalidTransactionFields)
	}
	for i, p := range attrs.Products {
		if p == nil {
			return fmt.Errorf("%w: product at index %d is nil", ErrInvalidTransactionFields, i)
		}
	}
	if attrs.Installment < 1 {
		return fmt.Errorf("%w: installment must be >= 1", ErrInvalidTransactionFields)
	}
	if !attrs.Currency.Supported() {
		return fmt.Errorf("%w: currency %q is not supported", ErrInvalidTransactionFields, attrs.Currency)
	}
	if total := basketTotal(attrs.Products); attrs.PaidPrice > total {
		return fmt.Errorf("%w: paid price %.2f exceeds basket total %.2f", ErrInvalidTransactionFields, attrs.PaidPrice, total)
	}
	return nil
}

// basketTotal sums product prices in input order. It is the authoritative
// total for both validation and the transmitted price fields.
func basketTotal(products []entities.Product) float64 {
	var total float64
	for _, p := range products {
		if p == nil {
			continue
		}
		total += p.GetPrice()
	}
	return total
}

// buildChargeRequest assembles the request skeleton. Price and paid price
// are both the basket total: the attribute-level paid price is a ceiling
// check only and is never transmitted.
func buildChargeRequest(locale string, attrs entities.TransactionAttributes) protocol.ChargeRequest {
	total := basketTotal(attrs.Products)
	return protocol.ChargeRequest{
		Locale:         locale,
		Price:          total,
		PaidPrice:      total,
		Currency:       string(attrs.Currency),
		Installment:    attrs.Installment,
		PaymentChannel: protocol.PaymentChannelWeb,
		PaymentGroup:   protocol.PaymentGroupProduct,
	}
}

func buildCancelRequest(locale, processorKey, clientIP string) protocol.CancelRequest {
	return protocol.CancelRequest{
		Locale:    locale,
		PaymentID: processorKey,
		IP:        clientIP,
	}
}

// preparePaymentCard maps the stored card token and the payable's
// processor-issued card-user key onto the card fragment.
func preparePaymentCard(payable entities.Payable, card entities.CreditCard) (protocol.PaymentCard, error) {
	key := payable.GetBillFields().ProcessorKey
	if key == "" {
		return protocol.PaymentCard{}, fmt.Errorf("%w: payable_id=%s", ErrMissingProcessorKey, payable.PayableID())
	}
	return protocol.PaymentCard{
		CardUserKey: key,
		CardToken:   card.Token,
	}, nil
}

// prepareBuyer maps the payable identity onto the buyer fragment. The
// registration address is always the billing address: buyer identity is a
// billing concept even though a separate shipping fragment exists.
func prepareBuyer(payable entities.Payable) protocol.Buyer {
	bf := payable.GetBillFields()
	return protocol.Buyer{
		ID:                  payable.PayableID(),
		Name:                bf.FirstName,
		Surname:             bf.LastName,
		Email:               bf.Email,
		GsmNumber:           bf.MobileNumber,
		IdentityNumber:      bf.IdentityNumber,
		City:                bf.BillingAddress.City,
		Country:             bf.BillingAddress.Country,
		RegistrationAddress: bf.BillingAddress.Address,
	}
}

// prepareAddress builds the shipping or billing fragment; the two differ
// only in which nested record is read.
func prepareAddress(payable entities.Payable, addressType entities.AddressType) (protocol.Address, error) {
	bf := payable.GetBillFields()
	record, ok := bf.AddressFor(addressType)
	if !ok {
		return protocol.Address{}, fmt.Errorf("%w: %q", ErrUnknownAddressType, addressType)
	}
	return protocol.Address{
		ContactName: bf.FirstName + " " + bf.LastName,
		Country:     record.Country,
		City:        record.City,
		Address:     record.Address,
	}, nil
}

// prepareBasketItems maps products onto basket items 1:1, preserving input
// order. An empty product list yields an empty slice, not an error; the
// validator has already rejected empty baskets for charges.
func prepareBasketItems(products []entities.Product) []protocol.BasketItem {
	items := make([]protocol.BasketItem, 0, len(products))
	for _, p := range products {
		items = append(items, protocol.BasketItem{
			ID:        p.GetKey(),
			Name:      p.GetName(),
			Category1: p.GetCategory(),
			ItemType:  p.GetItemType(),
			Price:     p.GetPrice(),
		})
	}
	return items
}
