package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GameZone-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GameZone-BookingService/pkg/ptr"
)

type fakeRepo struct {
	byID    *domain.Booking
	byIDErr error

	byPhone    []*domain.Booking
	byPhoneErr error
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.byID, f.byIDErr
}

func (f *fakeRepo) GetByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	return f.byPhone, f.byPhoneErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:              7,
		CustomerName:    "Иван",
		CustomerPhone:   "+7 (900) 123-45-67",
		BookingDate:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		TotalPrice:      150,
		Devices: []domain.DeviceAssignment{
			{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(1), PlayerCount: ptr.Ptr(2), Price: 150},
		},
	}
}

func TestGetByIDOwner(t *testing.T) {
	svc := NewService(&fakeRepo{byID: testBooking()}, nopLogger{})

	// Телефон из токена нормализован, в базе - с форматированием
	resp, err := svc.GetByID(context.Background(), 7, "79001234567", false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestGetByIDForeignBooking(t *testing.T) {
	svc := NewService(&fakeRepo{byID: testBooking()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 7, "70000000000", false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByIDAdminBypassesOwnership(t *testing.T) {
	svc := NewService(&fakeRepo{byID: testBooking()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7, "", true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byIDErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, "79001234567", false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByPhone(t *testing.T) {
	svc := NewService(&fakeRepo{byPhone: []*domain.Booking{testBooking()}}, nopLogger{})

	resp, err := svc.GetByPhone(context.Background(), "79001234567")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 150, resp.Bookings[0].TotalPrice)
}

func TestGetByPhoneEmpty(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByPhone(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByPhoneRepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{byPhoneErr: errors.New("down")}, nopLogger{})

	_, err := svc.GetByPhone(context.Background(), "79001234567")
	assert.ErrorIs(t, err, ErrInternal)
}
