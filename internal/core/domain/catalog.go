package domain

import "github.com/shopspring/decimal"

// CatalogPage is the result of browsing one agency's public catalog: the
// filtered listings in their original order plus the derived values the
// filter controls depend on.
type CatalogPage struct {
	Agency   Agency          `json:"agency"`
	Vehicles []Vehicle       `json:"vehicles"`
	Currency Currency        `json:"currency"`
	MaxPrice decimal.Decimal `json:"maxPrice"`
	Brands   []string        `json:"brands"`
}

// CatalogBounds carries the recomputed price ceiling for a comparison
// currency and, when the caller had an active range in another currency,
// that range converted into the new one.
type CatalogBounds struct {
	Currency Currency         `json:"currency"`
	MaxPrice decimal.Decimal  `json:"maxPrice"`
	PriceMin *decimal.Decimal `json:"priceMin,omitempty"`
	PriceMax *decimal.Decimal `json:"priceMax,omitempty"`
}
