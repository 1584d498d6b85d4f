package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
	"github.com/motorlista/vehicle_catalog_app/internal/handlers"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) BrowseCatalog(ctx context.Context, username string, query dto.CatalogQuery) (*domain.CatalogPage, error) {
	args := m.Called(ctx, username, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogPage), args.Error(1)
}

func (m *MockCatalogService) GetCatalogBounds(ctx context.Context, username string, query dto.BoundsQuery) (*domain.CatalogBounds, error) {
	args := m.Called(ctx, username, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogBounds), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Test Suite ---
type CatalogHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCatalogService *MockCatalogService
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockCatalogService = new(MockCatalogService)

	dto.RegisterCustomValidators()
	public := suite.router.Group("/")
	handlers.RegisterCatalogRoutes(public, suite.mockCatalogService)
}

func (suite *CatalogHandlerTestSuite) TestBrowseCatalog_Success() {
	page := &domain.CatalogPage{
		Agency: domain.Agency{
			AgencyID: "agency-1",
			Username: "motorsur",
			Name:     "Motor Sur",
			WhatsApp: "+54 9 11 5555-1234",
			Plan:     domain.PlanBasic,
		},
		Vehicles: []domain.Vehicle{
			{
				VehicleID: "v1", AgencyID: "agency-1", Brand: "Toyota", Model: "Corolla", Year: 2020,
				Price: domain.NewPrice(decimal.NewFromInt(1_000_000), domain.CurrencyARS),
				Kind:  domain.KindCar, Mileage: 45_000, Active: true,
			},
			{
				VehicleID: "v2", AgencyID: "agency-1", Brand: "Ford", Model: "Ranger", Year: 2021,
				Price: domain.InquirePrice(),
				Kind:  domain.KindCar, Mileage: domain.MileageUnknown, Active: true,
			},
		},
		Currency: domain.CurrencyARS,
		MaxPrice: decimal.NewFromInt(1_000_000),
		Brands:   []string{"Ford", "Toyota"},
	}

	suite.mockCatalogService.On("BrowseCatalog",
		mock.Anything,
		"motorsur",
		mock.MatchedBy(func(q dto.CatalogQuery) bool {
			return q.Search == "" && q.Currency == "ARS" && q.PriceMax != nil && q.PriceMax.Equal(decimal.NewFromInt(500_000))
		}),
	).Return(page, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/catalog/motorsur?currency=ARS&priceMax=500000", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CatalogResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal("motorsur", body.Agency.Username)
	suite.Equal(2, body.Total)
	suite.Equal("ARS", body.Currency)
	suite.Equal([]string{"Ford", "Toyota"}, body.Brands)

	// Priced listing carries its amount; inquire-only serializes a null price
	// with the CONSULTAR marker and no amount.
	suite.Require().Len(body.Vehicles, 2)
	suite.Require().NotNil(body.Vehicles[0].Price)
	suite.True(body.Vehicles[0].Price.Equal(decimal.NewFromInt(1_000_000)))
	suite.Nil(body.Vehicles[1].Price)
	suite.Equal("CONSULTAR", body.Vehicles[1].Currency)

	// WhatsApp contact links come from the agency number and listing details.
	suite.Contains(body.Vehicles[0].WhatsAppURL, "wa.me/5491155551234")

	suite.mockCatalogService.AssertExpectations(suite.T())
}

func (suite *CatalogHandlerTestSuite) TestBrowseCatalog_UnknownUsername() {
	suite.mockCatalogService.On("BrowseCatalog", mock.Anything, "ghost", mock.AnythingOfType("dto.CatalogQuery")).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/catalog/ghost", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CatalogHandlerTestSuite) TestBrowseCatalog_InvalidCurrency() {
	req, _ := http.NewRequest(http.MethodGet, "/catalog/motorsur?currency=EUR", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCatalogService.AssertNotCalled(suite.T(), "BrowseCatalog", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CatalogHandlerTestSuite) TestGetCatalogBounds_Success() {
	min := decimal.Zero
	max := decimal.NewFromInt(34_130)
	bounds := &domain.CatalogBounds{
		Currency: domain.CurrencyUSD,
		MaxPrice: decimal.NewFromInt(50_000),
		PriceMin: &min,
		PriceMax: &max,
	}

	suite.mockCatalogService.On("GetCatalogBounds",
		mock.Anything,
		"motorsur",
		mock.MatchedBy(func(q dto.BoundsQuery) bool {
			return q.Currency == "USD" && q.FromCurrency == "ARS"
		}),
	).Return(bounds, nil).Once()

	url := "/catalog/motorsur/bounds?currency=USD&fromCurrency=ARS&priceMin=0&priceMax=50000000"
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CatalogBoundsResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal("USD", body.Currency)
	suite.Require().NotNil(body.PriceMax)
	suite.True(body.PriceMax.Equal(decimal.NewFromInt(34_130)))
}

func TestCatalogHandler(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
