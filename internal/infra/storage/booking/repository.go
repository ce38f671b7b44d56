package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameZone-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями и их устройствами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заголовок бронирования и возвращает его с заполненным ID.
// Строки устройств вставляются отдельно через CreateDeviceAssignments,
// оба вызова должны выполняться в одной транзакции (через txmanager):
// бронирование без хотя бы одного устройства существовать не должно.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"customer_phone",
			"booking_date",
			"start_time",
			"duration_minutes",
			"total_price",
			"driving_after_ps5",
		).
		Values(
			booking.CustomerName,
			booking.CustomerPhone,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.TotalPrice,
			booking.DrivingAfterPS5,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// CreateDeviceAssignments вставляет строки устройств бронирования одним запросом
func (r *Repository) CreateDeviceAssignments(ctx context.Context, bookingID int64, devices []domain.DeviceAssignment) error {
	if len(devices) == 0 {
		return ErrNoDevices
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_devices").
		Columns(
			"booking_id",
			"device_type",
			"device_number",
			"player_count",
			"price",
		)

	for _, device := range devices {
		insertBuilder = insertBuilder.Values(
			bookingID,
			device.DeviceType,
			device.DeviceNumber,
			device.PlayerCount,
			device.Price,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateDeviceAssignments - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateDeviceAssignments - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByDate получает все бронирования на дату вместе с устройствами.
// Внутри транзакции строки заголовков блокируются FOR UPDATE -
// это используется usecase создания бронирования для проверки конфликтов.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"customer_name",
		"customer_phone",
		"booking_date",
		"start_time",
		"duration_minutes",
		"total_price",
		"driving_after_ps5",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachDevices(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetByID получает бронирование с устройствами по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_name",
		"customer_phone",
		"booking_date",
		"start_time",
		"duration_minutes",
		"total_price",
		"driving_after_ps5",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.TotalPrice,
		&booking.DrivingAfterPS5,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	if err := r.attachDevices(ctx, []*domain.Booking{&booking}); err != nil {
		return nil, err
	}

	return &booking, nil
}

// GetByPhone получает историю бронирований клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_name",
		"customer_phone",
		"booking_date",
		"start_time",
		"duration_minutes",
		"total_price",
		"driving_after_ps5",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("booking_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachDevices(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// attachDevices догружает строки устройств для набора бронирований
func (r *Repository) attachDevices(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"device_type",
		"device_number",
		"player_count",
		"price",
	).
		From("booking_devices").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachDevices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachDevices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var device domain.DeviceAssignment
		var deviceNumber, playerCount sql.NullInt64

		err := rows.Scan(
			&device.ID,
			&device.BookingID,
			&device.DeviceType,
			&deviceNumber,
			&playerCount,
			&device.Price,
		)
		if err != nil {
			return fmt.Errorf("%w: attachDevices - scan row: %v", ErrScanRow, err)
		}

		if deviceNumber.Valid {
			n := int(deviceNumber.Int64)
			device.DeviceNumber = &n
		}
		if playerCount.Valid {
			p := int(playerCount.Int64)
			device.PlayerCount = &p
		}

		if b, ok := byID[device.BookingID]; ok {
			b.Devices = append(b.Devices, device)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachDevices - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.DurationMinutes,
			&booking.TotalPrice,
			&booking.DrivingAfterPS5,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
