package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServiceCenter/pkg/psqlbuilder"
)

// Разделитель для хранения списка работ одной текстовой колонкой
const serviceItemsSeparator = ", "

var bookingColumns = []string{
	"id",
	"customer_name",
	"vehicle_type",
	"vehicle_number",
	"service_type",
	"booking_date",
	"time_slot",
	"status",
	"description",
	"last_service_date",
	"last_service_km",
	"service_items",
	"additional_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// ID (UUID) генерируется на стороне вызывающего кода и неизменяем после вставки.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_name",
			"vehicle_type",
			"vehicle_number",
			"service_type",
			"booking_date",
			"time_slot",
			"status",
			"description",
			"last_service_date",
			"last_service_km",
			"service_items",
			"additional_notes",
		).
		Values(
			booking.ID,
			booking.CustomerName,
			booking.VehicleType,
			booking.VehicleNumber,
			booking.ServiceType,
			booking.BookingDate,
			booking.TimeSlot,
			booking.Status,
			booking.Description,
			booking.LastServiceDate,
			booking.LastServiceKM,
			joinServiceItems(booking.ServiceItems),
			booking.AdditionalNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByCustomer получает бронирования клиента по точному совпадению имени,
// отсортированные по дате бронирования (сначала новые).
// Пустое имя дает пустой список.
func (r *Repository) GetByCustomer(ctx context.Context, customerName string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_name": customerName}).
		OrderBy("booking_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListAll получает все бронирования без пагинации.
// Порядок детерминированный: по дате бронирования и времени создания,
// поэтому повторный вызов без записей между ними возвращает тот же список.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var lastServiceDate, createdAt, updatedAt sql.NullTime
	var lastServiceKM sql.NullInt64
	var serviceItems, additionalNotes sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.VehicleType,
		&booking.VehicleNumber,
		&booking.ServiceType,
		&booking.BookingDate,
		&booking.TimeSlot,
		&booking.Status,
		&booking.Description,
		&lastServiceDate,
		&lastServiceKM,
		&serviceItems,
		&additionalNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastServiceDate.Valid {
		booking.LastServiceDate = &lastServiceDate.Time
	}
	if lastServiceKM.Valid {
		km := int(lastServiceKM.Int64)
		booking.LastServiceKM = &km
	}
	if serviceItems.Valid {
		booking.ServiceItems = splitServiceItems(serviceItems.String)
	}
	if additionalNotes.Valid {
		booking.AdditionalNotes = &additionalNotes.String
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// joinServiceItems собирает список работ в одну колонку.
// Пустой список хранится как NULL.
func joinServiceItems(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	joined := strings.Join(items, serviceItemsSeparator)
	return &joined
}

// splitServiceItems разбирает колонку service_items обратно в список
func splitServiceItems(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
