package dto

import (
	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/utils"
)

// CatalogQuery is the filter state for browsing a public catalog, bound from
// query parameters. Nil range bounds mean "unset": the service fills them
// from the recomputed catalog bounds before evaluation. Currency is the
// comparison currency the price range is expressed in.
type CatalogQuery struct {
	Search       string           `form:"search"`
	Kind         string           `form:"kind" binding:"omitempty,oneof=auto moto"`
	Brand        string           `form:"brand"`
	BodyType     string           `form:"bodyType"`
	Transmission string           `form:"transmission"`
	FuelType     string           `form:"fuelType"`
	PriceMin     *decimal.Decimal `form:"priceMin"`
	PriceMax     *decimal.Decimal `form:"priceMax"`
	Currency     string           `form:"currency" binding:"omitempty,oneof=ARS USD"`
	YearMin      *int             `form:"yearMin"`
	YearMax      *int             `form:"yearMax"`
	MileageMin   *int             `form:"mileageMin" binding:"omitempty,gte=0"`
	MileageMax   *int             `form:"mileageMax" binding:"omitempty,gte=0"`
}

// BoundsQuery asks for the price ceiling in a comparison currency. When the
// caller is switching currencies with an active range, FromCurrency plus
// PriceMin/PriceMax let the service convert that range instead of resetting it.
type BoundsQuery struct {
	Currency     string           `form:"currency" binding:"omitempty,oneof=ARS USD"`
	FromCurrency string           `form:"fromCurrency" binding:"omitempty,oneof=ARS USD"`
	PriceMin     *decimal.Decimal `form:"priceMin"`
	PriceMax     *decimal.Decimal `form:"priceMax"`
}

// CatalogResponse is the full catalog page: the agency header, the filtered
// listings in catalog order and the derived filter-control values.
type CatalogResponse struct {
	Agency   AgencyResponse    `json:"agency"`
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
	Currency string            `json:"currency"`
	MaxPrice decimal.Decimal   `json:"maxPrice"`
	Brands   []string          `json:"brands"`
}

// CatalogBoundsResponse carries the recomputed ceiling and, if requested,
// the converted active range.
type CatalogBoundsResponse struct {
	Currency string           `json:"currency"`
	MaxPrice decimal.Decimal  `json:"maxPrice"`
	PriceMin *decimal.Decimal `json:"priceMin,omitempty"`
	PriceMax *decimal.Decimal `json:"priceMax,omitempty"`
}

// ToCatalogResponse converts a browse result, attaching a WhatsApp contact
// link per listing when the agency has a number configured.
func ToCatalogResponse(page *domain.CatalogPage) CatalogResponse {
	vehicles := make([]VehicleResponse, len(page.Vehicles))
	for i, v := range page.Vehicles {
		vehicles[i] = ToVehicleResponse(v, utils.WhatsAppContactURL(page.Agency.WhatsApp, v))
	}
	return CatalogResponse{
		Agency:   ToAgencyResponse(&page.Agency),
		Vehicles: vehicles,
		Total:    len(vehicles),
		Currency: string(page.Currency),
		MaxPrice: page.MaxPrice,
		Brands:   page.Brands,
	}
}

// ToCatalogBoundsResponse converts recomputed bounds.
func ToCatalogBoundsResponse(b *domain.CatalogBounds) CatalogBoundsResponse {
	return CatalogBoundsResponse{
		Currency: string(b.Currency),
		MaxPrice: b.MaxPrice,
		PriceMin: b.PriceMin,
		PriceMax: b.PriceMax,
	}
}
