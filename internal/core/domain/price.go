package domain

import "github.com/shopspring/decimal"

// Currency identifies the unit a price amount is expressed in.
type Currency string

const (
	// CurrencyARS is the local currency (Argentine peso).
	CurrencyARS Currency = "ARS"
	// CurrencyUSD is the foreign currency (US dollar).
	CurrencyUSD Currency = "USD"
)

// CurrencyInquire is the wire value for listings published without a price
// ("Sin precio - Consultar"). It is not a Currency: such listings carry no
// amount at all, which is why Price is a tagged value rather than a nullable
// number next to a currency string.
const CurrencyInquire = "CONSULTAR"

// ValidCurrency reports whether code is a concrete pricing currency.
func ValidCurrency(code string) bool {
	return code == string(CurrencyARS) || code == string(CurrencyUSD)
}

// Price is either a fixed amount in a concrete currency, or "inquire only"
// (no published price). The zero value is inquire-only.
type Price struct {
	amount   decimal.Decimal
	currency Currency
	fixed    bool
}

// NewPrice returns a fixed price. Zero and negative amounts are accepted as
// valid degenerate prices.
func NewPrice(amount decimal.Decimal, currency Currency) Price {
	return Price{amount: amount, currency: currency, fixed: true}
}

// InquirePrice returns the price of a listing published without an amount.
func InquirePrice() Price {
	return Price{}
}

// IsInquire reports whether the listing has no published price.
func (p Price) IsInquire() bool {
	return !p.fixed
}

// Fixed returns the amount and currency of a fixed price. ok is false for
// inquire-only prices, whose amount must never enter a numeric comparison.
func (p Price) Fixed() (amount decimal.Decimal, currency Currency, ok bool) {
	if !p.fixed {
		return decimal.Decimal{}, "", false
	}
	return p.amount, p.currency, true
}

// CurrencyCode returns the wire representation of the price's currency,
// CurrencyInquire for inquire-only prices.
func (p Price) CurrencyCode() string {
	if !p.fixed {
		return CurrencyInquire
	}
	return string(p.currency)
}
