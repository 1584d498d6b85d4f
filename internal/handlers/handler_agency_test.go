package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
	"github.com/motorlista/vehicle_catalog_app/internal/handlers"
)

// --- Mock AgencyService ---
type MockAgencyService struct {
	mock.Mock
}

func (m *MockAgencyService) GetAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyService) GetAgencyByUsername(ctx context.Context, username string) (*domain.Agency, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyService) RegisterAgency(ctx context.Context, req dto.RegisterAgencyRequest) (*domain.Agency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyService) UpdateAgencyProfile(ctx context.Context, agencyID string, req dto.UpdateAgencyRequest) (*domain.Agency, error) {
	args := m.Called(ctx, agencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyService) AuthenticateAgency(ctx context.Context, email, password string) (*domain.Agency, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AgencySvcFacade = (*MockAgencyService)(nil)

// --- Test Suite ---
type AgencyHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockAgencyService *MockAgencyService
}

func (suite *AgencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAgencyService = new(MockAgencyService)

	public := suite.router.Group("/")
	handlers.RegisterPublicAgencyRoutes(public, suite.mockAgencyService)
}

func (suite *AgencyHandlerTestSuite) TestGetAgencyByUsername_Success() {
	agency := &domain.Agency{
		AgencyID: "agency-1",
		Username: "motorsur",
		Name:     "Motor Sur",
		Location: "Buenos Aires",
		WhatsApp: "+54 9 11 5555-1234",
		Plan:     domain.PlanProfessional,
	}

	suite.mockAgencyService.On("GetAgencyByUsername", mock.Anything, "motorsur").
		Return(agency, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/agencies/motorsur", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AgencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal("motorsur", body.Username)
	suite.Equal("Motor Sur", body.Name)
	suite.Equal("profesional", body.Plan)
	suite.Equal(50, body.ListingLimit)

	suite.mockAgencyService.AssertExpectations(suite.T())
}

func (suite *AgencyHandlerTestSuite) TestGetAgencyByUsername_NotFound() {
	suite.mockAgencyService.On("GetAgencyByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/agencies/ghost", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAgencyHandler(t *testing.T) {
	suite.Run(t, new(AgencyHandlerTestSuite))
}
