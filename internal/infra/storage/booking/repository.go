package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	"github.com/campusops/SFR-ReservationService/pkg/dbmetrics"
	"github.com/campusops/SFR-ReservationService/pkg/psqlbuilder"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// Repository репозиторий для работы с бронированиями.
// Даты хранятся в каноническом виде "YYYY/MM/DD"; благодаря ведущим нулям
// строковые сравнения в SQL совпадают с хронологическим порядком.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её. Проверка отсутствия конфликта выполняется вызывающей
// стороной в той же транзакции (см. usecase/reserve_bookings): чтение
// существующих бронирований с FOR UPDATE и вставка образуют одну
// неделимую условную запись.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"resource_id",
			"booking_date",
			"periods",
			"booker",
			"reason",
		).
		Values(
			booking.ResourceID,
			booking.Date.String(),
			pq.Array(booking.Periods),
			booking.Booker,
			booking.Reason,
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

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: release-period делает
	// read-modify-write по полю periods
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByResourceAndDate получает все бронирования ресурса на дату.
// Внутри транзакции добавляет FOR UPDATE: блокировка строк ключа
// (resource_id, booking_date) образует точку сериализации для условной
// записи в usecase создания бронирования.
func (r *Repository) GetByResourceAndDate(ctx context.Context, resourceID string, date types.DateString) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"booking_date": date.String()}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDateRange получает бронирования за включительный диапазон дат,
// опционально ограниченный одним ресурсом.
// Результат отсортирован по дате по убыванию (сначала свежие),
// внутри даты - по времени создания по убыванию.
func (r *Repository) GetByDateRange(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": filter.StartDate.String()}).
		Where(squirrel.LtOrEq{"booking_date": filter.EndDate.String()}).
		OrderBy("booking_date DESC", "created_at DESC")

	// Фильтрация по ресурсу (если указан)
	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdatePeriods заменяет набор периодов бронирования
func (r *Repository) UpdatePeriods(ctx context.Context, id int64, periods []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("periods", pq.Array(periods)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePeriods - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePeriods - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePeriods - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

var bookingColumns = []string{
	"id",
	"resource_id",
	"booking_date",
	"periods",
	"booker",
	"reason",
	"created_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var date string
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ResourceID,
		&date,
		pq.Array(&booking.Periods),
		&booking.Booker,
		&booking.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = types.DateString(date)
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
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
