package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// --- Mock VehicleRepository ---
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListVehiclesByAgency(ctx context.Context, agencyID string, limit int, before *time.Time) ([]domain.Vehicle, error) {
	args := m.Called(ctx, agencyID, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListActiveVehiclesByAgency(ctx context.Context, agencyID string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockVehicleRepository) CountVehiclesByAgency(ctx context.Context, agencyID string) (int, error) {
	args := m.Called(ctx, agencyID)
	return args.Int(0), args.Error(1)
}

// --- Mock AgencyRepository ---
type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) SaveAgency(ctx context.Context, agency domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *MockAgencyRepository) FindAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyRepository) FindAgencyByUsername(ctx context.Context, username string) (*domain.Agency, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyRepository) FindAgencyByEmail(ctx context.Context, email string) (*domain.Agency, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyRepository) UpdateAgency(ctx context.Context, agency domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

// --- Mock AnalyticsRepository ---
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) IncrementViews(ctx context.Context, vehicleID string, day time.Time) error {
	args := m.Called(ctx, vehicleID, day)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) IncrementWhatsAppClicks(ctx context.Context, vehicleID string, day time.Time) error {
	args := m.Called(ctx, vehicleID, day)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) GetAgencySummary(ctx context.Context, agencyID string) (*domain.AgencyAnalyticsSummary, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgencyAnalyticsSummary), args.Error(1)
}

func (m *MockAnalyticsRepository) ListDailyStats(ctx context.Context, vehicleID string, since time.Time) ([]domain.VehicleDailyStat, error) {
	args := m.Called(ctx, vehicleID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleDailyStat), args.Error(1)
}
