package entities

// Currency is the ISO-style currency code accepted by the processor.

type Currency string

const (
	CurrencyTL  Currency = "TL"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyIRR Currency = "IRR"
	CurrencyUSD Currency = "USD"
)

// SupportedCurrencies lists the currencies a charge may be denominated in.
var SupportedCurrencies = []Currency{
	CurrencyTL,
	CurrencyEUR,
	CurrencyGBP,
	CurrencyIRR,
	CurrencyUSD,
}

// Supported reports whether the currency is one the processor accepts.
func (c Currency) Supported() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// TransactionAttributes is the per-charge input record.
//
// PaidPrice is a ceiling check only: the charge always transmits the basket
// total as both price and paid price, and validation rejects a PaidPrice
// above that total.

type TransactionAttributes struct {
	Products    []Product
	Currency    Currency
	Installment int
	PaidPrice   float64
}
