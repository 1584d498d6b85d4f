package utils

import (
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// FormatPrice renders a listing price for display. Inquire-only listings
// have no amount.
// Example: 20000 USD -> "US$ 20000"; 1500000 ARS -> "$ 1500000".
func FormatPrice(p domain.Price) string {
	amount, currency, ok := p.Fixed()
	if !ok {
		return "Consultar precio"
	}
	symbol := "$ "
	if currency == domain.CurrencyUSD {
		symbol = "US$ "
	}
	return symbol + amount.Round(0).String()
}
