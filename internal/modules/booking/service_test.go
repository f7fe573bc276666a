package booking

import (
	"context"
	"testing"
	"time"

	"barberbook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	if a != nil && args.Error(0) == nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, shopID, id int64) (*domain.Service, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, shopID int64, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, shopID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func testRequest() CreateRequest {
	return CreateRequest{
		ShopID:    1,
		BarberID:  2,
		ServiceID: 3,
		Date:      time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Time:      "10:30",
		Phone:     "+55 (11) 99999-0000",
	}
}

func TestCreate_Success(t *testing.T) {
	appts := new(MockAppointmentRepository)
	services := new(MockServiceRepository)
	customers := new(MockCustomerRepository)

	services.On("GetByID", mock.Anything, int64(1), int64(3)).
		Return(&domain.Service{ID: 3, ShopID: 1, Name: "Corte", Price: 45, DurationMinutes: 45, Active: true}, nil)
	customers.On("GetByPhone", mock.Anything, int64(1), "5511999990000").
		Return(&domain.Customer{ID: 7, Name: "Maria"}, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(appts, services, customers)
	got, err := svc.Create(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "5511999990000", got.CustomerPhone)
	require.NotNil(t, got.CustomerName)
	assert.Equal(t, "Maria", *got.CustomerName)
	assert.Equal(t, domain.AppointmentConfirmed, got.Status)
	assert.Equal(t, 45.0, got.OriginalPrice)
	assert.Equal(t, 45.0, got.FinalPrice)
	assert.Equal(t, time.Date(2026, 9, 9, 10, 30, 0, 0, time.UTC), got.StartTime)
	assert.Equal(t, time.Date(2026, 9, 9, 11, 15, 0, 0, time.UTC), got.EndTime)
	assert.NotEmpty(t, got.Code)
}

func TestCreate_UnknownCustomerHasNoName(t *testing.T) {
	appts := new(MockAppointmentRepository)
	services := new(MockServiceRepository)
	customers := new(MockCustomerRepository)

	services.On("GetByID", mock.Anything, int64(1), int64(3)).
		Return(&domain.Service{ID: 3, Price: 45, DurationMinutes: 30}, nil)
	customers.On("GetByPhone", mock.Anything, int64(1), "5511999990000").Return(nil, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(appts, services, customers)
	got, err := svc.Create(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Nil(t, got.CustomerName)
}

func TestCreate_DoubleBookingMapsToSlotTaken(t *testing.T) {
	appts := new(MockAppointmentRepository)
	services := new(MockServiceRepository)
	customers := new(MockCustomerRepository)

	services.On("GetByID", mock.Anything, int64(1), int64(3)).
		Return(&domain.Service{ID: 3, Price: 45, DurationMinutes: 30}, nil)
	customers.On("GetByPhone", mock.Anything, int64(1), "5511999990000").Return(nil, nil)
	appts.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_no_double_booking"})

	svc := NewService(appts, services, customers)
	_, err := svc.Create(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_InvalidTime(t *testing.T) {
	appts := new(MockAppointmentRepository)
	services := new(MockServiceRepository)
	customers := new(MockCustomerRepository)

	services.On("GetByID", mock.Anything, int64(1), int64(3)).
		Return(&domain.Service{ID: 3, Price: 45, DurationMinutes: 30}, nil)

	svc := NewService(appts, services, customers)
	req := testRequest()
	req.Time = "25:99"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_MissingSelection(t *testing.T) {
	svc := NewService(new(MockAppointmentRepository), new(MockServiceRepository), new(MockCustomerRepository))

	_, err := svc.Create(context.Background(), CreateRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}
