package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/internal/infra/queue"
	"github.com/m04kA/GameZone-BookingService/pkg/ptr"
)

type fakeRepo struct {
	existing []*domain.Booking

	getErr     error
	createErr  error
	devicesErr error

	created        *domain.Booking
	createdDevices []domain.DeviceAssignment
}

func (f *fakeRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return f.existing, f.getErr
}

func (f *fakeRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

func (f *fakeRepo) CreateDeviceAssignments(ctx context.Context, bookingID int64, devices []domain.DeviceAssignment) error {
	if f.devicesErr != nil {
		return f.devicesErr
	}
	f.createdDevices = devices
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakePublisher struct {
	events []queue.BookingConfirmedEvent
	err    error
}

func (f *fakePublisher) PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fixedTimeProvider struct{ now time.Time }

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeRepo, tx *fakeTxManager, pub *fakePublisher) *UseCase {
	uc := NewUseCase(repo, tx, pub, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow()}
	return uc
}

func TestExecuteHappyPath(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, tx, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 150, resp.TotalPrice)
	assert.Equal(t, 1, tx.calls)

	require.NotNil(t, repo.created)
	assert.Equal(t, 150, repo.created.TotalPrice)
	require.Len(t, repo.createdDevices, 1)
	assert.Equal(t, domain.DeviceConsole, repo.createdDevices[0].DeviceType)
	assert.Equal(t, 150, repo.createdDevices[0].Price)

	require.Len(t, pub.events, 1)
	assert.Equal(t, int64(42), pub.events[0].BookingID)
	assert.Equal(t, "10:00", pub.events[0].StartTime)
}

func TestExecuteConsoleAndSimulatorPricing(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakePublisher{})

	req := validRequest()
	req.DurationMinutes = 90
	req.Consoles = []ConsoleSelection{{DeviceNumber: 2, PlayerCount: 3}}
	req.DrivingSim = true
	req.DrivingAfterPS5 = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// console(3, 90) = 250 + sim(90) = 200
	assert.Equal(t, 450, resp.TotalPrice)
	require.Len(t, repo.createdDevices, 2)
	assert.Equal(t, domain.DeviceSimulator, repo.createdDevices[1].DeviceType)
	assert.Equal(t, 200, repo.createdDevices[1].Price)
	assert.True(t, resp.DrivingAfterPS5)
}

func TestExecuteValidationFailure(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx, &fakePublisher{})

	req := validRequest()
	req.CustomerName = ""
	req.DurationMinutes = 45

	_, err := uc.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{MsgNameTooShort, MsgDurationInvalid}, validationErr.Messages)

	// До транзакции дело не доходит
	assert.Equal(t, 0, tx.calls)
	assert.Nil(t, repo.created)
}

func TestExecuteSlotConflict(t *testing.T) {
	repo := &fakeRepo{
		existing: []*domain.Booking{
			{
				StartTime:       "10:30",
				DurationMinutes: 60,
				Devices: []domain.DeviceAssignment{
					{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(1), PlayerCount: ptr.Ptr(2)},
				},
			},
		},
	}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, &fakeTxManager{}, pub)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)
	assert.Empty(t, pub.events)
}

func TestExecuteNoConflictOnDifferentDevice(t *testing.T) {
	repo := &fakeRepo{
		existing: []*domain.Booking{
			{
				StartTime:       "10:00",
				DurationMinutes: 60,
				Devices: []domain.DeviceAssignment{
					{DeviceType: domain.DeviceSimulator},
				},
			},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteNoConflictOnAdjacentInterval(t *testing.T) {
	// Бронирование, заканчивающееся ровно в момент начала нового, не конфликт
	repo := &fakeRepo{
		existing: []*domain.Booking{
			{
				StartTime:       "09:00",
				DurationMinutes: 60,
				Devices: []domain.DeviceAssignment{
					{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(1), PlayerCount: ptr.Ptr(2)},
				},
			},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteDeviceInsertFailureAbortsBooking(t *testing.T) {
	repo := &fakeRepo{devicesErr: errors.New("constraint violation")}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, &fakeTxManager{}, pub)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	// Ошибка внутри транзакции - событие не публикуется
	assert.Empty(t, pub.events)
}

func TestExecutePublisherFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{err: errors.New("broker unavailable")}
	uc := newTestUseCase(repo, &fakeTxManager{}, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecuteWithoutPublisher(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeTxManager{}, nil, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow()}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}
