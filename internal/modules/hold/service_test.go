package hold

import (
	"context"
	"testing"
	"time"

	"clubadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockHoldRepository struct {
	mock.Mock
}

func (m *MockHoldRepository) Create(ctx context.Context, h *domain.Hold) error {
	args := m.Called(ctx, h)
	if h != nil && args.Error(0) == nil {
		h.ID = 77
	}
	return args.Error(0)
}

func (m *MockHoldRepository) GetByID(ctx context.Context, id int64) (*domain.Hold, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hold), args.Error(1)
}

func (m *MockHoldRepository) ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Hold, error) {
	args := m.Called(ctx, resourceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hold), args.Error(1)
}

func (m *MockHoldRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHoldRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListActiveByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, resourceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error) {
	args := m.Called(ctx, resourceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenancePeriod), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func lawn() *domain.Resource {
	return &domain.Resource{
		ID:       5,
		Name:     "East Lawn",
		Category: domain.CategoryLawn,
		IsActive: true,
		RateCard: map[domain.PricingTier]float64{domain.TierMember: 8000},
	}
}

func newTestService() (*Service, *MockHoldRepository, *MockResourceRepository, *MockBookingRepository, *MockMaintenanceRepository) {
	holds := new(MockHoldRepository)
	resources := new(MockResourceRepository)
	bookings := new(MockBookingRepository)
	maintenance := new(MockMaintenanceRepository)
	return NewService(holds, resources, bookings, maintenance, nil), holds, resources, bookings, maintenance
}

func TestService_CreateHold_Success(t *testing.T) {
	svc, holds, resources, bookings, maintenance := newTestService()

	resources.On("GetByID", mock.Anything, int64(5)).Return(lawn(), nil)
	bookings.On("ListActiveByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
	maintenance.On("ListByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.MaintenancePeriod{}, nil)
	holds.On("Create", mock.Anything, mock.Anything).Return(nil)

	h, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(3),
		EndDate:    day(5),
		Slot:       domain.SlotNight,
		Remarks:    "awaiting member confirmation",
	}, 9)

	assert.NoError(t, err)
	assert.Equal(t, int64(77), h.ID)
	assert.Equal(t, domain.SlotNight, h.Slot)
	assert.Equal(t, day(3), h.StartDate)
	assert.Equal(t, day(5), h.EndDate)
	assert.Equal(t, int64(9), h.CreatedBy)
}

func TestService_CreateHold_BookingBlocks(t *testing.T) {
	svc, _, resources, bookings, maintenance := newTestService()

	resources.On("GetByID", mock.Anything, int64(5)).Return(lawn(), nil)
	bookings.On("ListActiveByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.Booking{
		{ID: 12, Rows: []domain.CommitmentRow{{Date: day(4), Slot: domain.SlotNight}}},
	}, nil)
	maintenance.On("ListByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.MaintenancePeriod{}, nil)

	_, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(3),
		EndDate:    day(5),
		Slot:       domain.SlotNight,
	}, 9)

	assert.ErrorIs(t, err, ErrBlocked)
}

func TestService_CreateHold_StacksOnExistingHold(t *testing.T) {
	svc, holds, resources, bookings, maintenance := newTestService()

	// snapshot building never consults the hold list; an existing hold on
	// the same dates does not block a second one
	resources.On("GetByID", mock.Anything, int64(5)).Return(lawn(), nil)
	bookings.On("ListActiveByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
	maintenance.On("ListByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.MaintenancePeriod{}, nil)
	holds.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(3),
		EndDate:    day(3),
		Slot:       domain.SlotDay,
	}, 9)

	assert.NoError(t, err)
	holds.AssertNumberOfCalls(t, "ListByResourceWindow", 0)
}

func TestService_CreateHold_MaintenanceBlocks(t *testing.T) {
	svc, _, resources, bookings, maintenance := newTestService()

	resources.On("GetByID", mock.Anything, int64(5)).Return(lawn(), nil)
	bookings.On("ListActiveByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
	maintenance.On("ListByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.MaintenancePeriod{
		{ID: 2, ResourceID: 5, StartDate: day(4), EndDate: day(4), Reason: "relaying turf"},
	}, nil)

	_, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(3),
		EndDate:    day(5),
		Slot:       domain.SlotDay,
	}, 9)

	assert.ErrorIs(t, err, ErrBlocked)
}

func TestService_CreateHold_DefaultsToFirstSlot(t *testing.T) {
	svc, holds, resources, bookings, maintenance := newTestService()

	resources.On("GetByID", mock.Anything, int64(5)).Return(lawn(), nil)
	bookings.On("ListActiveByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
	maintenance.On("ListByResourceWindow", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]domain.MaintenancePeriod{}, nil)
	holds.On("Create", mock.Anything, mock.Anything).Return(nil)

	h, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(3),
		EndDate:    day(3),
	}, 9)

	assert.NoError(t, err)
	assert.Equal(t, domain.SlotDay, h.Slot)
}

func TestService_CreateHold_EndBeforeStart(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(5),
		EndDate:    day(3),
	}, 9)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateHold_ResourceNotFound(t *testing.T) {
	svc, _, resources, _, _ := newTestService()

	resources.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateHold(context.Background(), CreateHoldRequest{
		ResourceID: 5,
		StartDate:  day(3),
		EndDate:    day(3),
	}, 9)

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestService_Release_NotFound(t *testing.T) {
	svc, holds, _, _, _ := newTestService()

	holds.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Release(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_PurgeExpired_TruncatesToDay(t *testing.T) {
	svc, holds, _, _, _ := newTestService()

	holds.On("DeleteExpired", mock.Anything, day(3)).Return(int64(4), nil)

	n, err := svc.PurgeExpired(context.Background(), day(3).Add(15*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
