package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/pkg/dbmetrics"
	"github.com/m04kA/SMC-StadiumRental/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования scanBooking
var bookingColumns = []string{
	"id",
	"stadium_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"total_price",
	"status",
	"payment_status",
	"payment_method",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"created_at",
	"updated_at",
}

// prefixed возвращает колонки bookings с алиасом таблицы (для JOIN запросов)
func prefixed(alias string) []string {
	return lo.Map(bookingColumns, func(c string, _ int) string {
		return alias + "." + c
	})
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Пересечение с активной бронью отклоняется ограничением bookings_no_overlap (ErrSlotNotAvailable)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"stadium_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
			"total_price",
			"status",
			"payment_status",
			"payment_method",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
		).
		Values(
			booking.StadiumID,
			booking.UserID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.TotalPrice,
			booking.Status,
			booking.PaymentStatus,
			booking.PaymentMethod,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, mapWriteError("Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByStadiumWithFilter получает бронирования стадиона без JOIN (для проверки пересечений)
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate) - опционально
// - Статусу (Status) - опционально
// - Включению отменённых бронирований (IncludeInactive)
//
// На одну дату внутри транзакции строки блокируются FOR UPDATE
func (r *Repository) GetByStadiumWithFilter(ctx context.Context, filter domain.StadiumBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), "", filter)

	if filter.IsSingleDay() {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "start_time ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.IsSingleDay() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStadiumWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStadiumWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByStadiumWithFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStadiumWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListByStadium получает бронирования стадиона с контактами владельцев аккаунтов
// Сортировка: booking_date DESC, start_time ASC
func (r *Repository) ListByStadium(ctx context.Context, filter domain.StadiumBookingsFilter) ([]*domain.StadiumBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(prefixed("b"), "u.fullname", "u.email", "u.phone")
	selectBuilder := applyFilter(
		psqlbuilder.Select(columns...).
			From("bookings b").
			LeftJoin("users u ON u.id = b.user_id"),
		"b.",
		filter,
	).OrderBy("b.booking_date DESC", "b.start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStadium - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStadium - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.StadiumBooking, 0)
	for rows.Next() {
		var item domain.StadiumBooking
		dest := append(bookingDest(&item.Booking), &item.UserFullname, &item.UserEmail, &item.UserPhone)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: ListByStadium - scan row: %v", ErrScanRow, err)
		}
		item.BookingDate = domain.DateOnly(item.BookingDate)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStadium - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListByUser получает все бронирования пользователя (любого статуса) с данными стадиона
// Сортировка: booking_date DESC, start_time ASC
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(prefixed("b"), "s.name", "s.location", "s.district", "s.sport_type")
	query, args, err := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("stadiums s ON s.id = b.stadium_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC", "b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.UserBooking, 0)
	for rows.Next() {
		var item domain.UserBooking
		dest := append(bookingDest(&item.Booking), &item.StadiumName, &item.StadiumLocation, &item.StadiumDistrict, &item.SportType)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		item.BookingDate = domain.DateOnly(item.BookingDate)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// LockSlotDay берёт транзакционную advisory-блокировку на пару (стадион, дата)
// Блокировка снимается при COMMIT/ROLLBACK. Вне транзакции вызов запрещён
func (r *Repository) LockSlotDay(ctx context.Context, stadiumID int64, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockSlotDay - called outside of transaction", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stadiumKey, dayKey := slotLockKeys(stadiumID, date)
	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?::int4, ?::int4)", stadiumKey, dayKey)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockSlotDay - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockSlotDay - acquire lock: %v", ErrExecQuery, err)
	}

	return nil
}

// slotLockKeys ключи advisory-блокировки: id стадиона и дата в виде YYYYMMDD
func slotLockKeys(stadiumID int64, date time.Time) (int32, int32) {
	y, m, d := date.Date()
	return int32(stadiumID), int32(y*10000 + int(m)*100 + d)
}

// Update частично обновляет бронирование и всегда обновляет updated_at
func (r *Repository) Update(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", "))

	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
	}
	if upd.PaymentStatus != nil {
		updateBuilder = updateBuilder.Set("payment_status", *upd.PaymentStatus)
	}
	if upd.PaymentMethod != nil {
		updateBuilder = updateBuilder.Set("payment_method", *upd.PaymentMethod)
	}
	if upd.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *upd.Notes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update - execute update", err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// bookingDest адреса полей бронирования в порядке bookingColumns
// created_at/updated_at NOT NULL, поэтому сканируются напрямую
func bookingDest(b *domain.Booking) []interface{} {
	return []interface{}{
		&b.ID,
		&b.StadiumID,
		&b.UserID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	if err := row.Scan(bookingDest(&booking)...); err != nil {
		return nil, err
	}
	booking.BookingDate = domain.DateOnly(booking.BookingDate)
	return &booking, nil
}

// applyFilter добавляет условия фильтра; col - префикс колонок ("" или "b.")
func applyFilter(sb squirrel.SelectBuilder, col string, filter domain.StadiumBookingsFilter) squirrel.SelectBuilder {
	sb = sb.Where(squirrel.Eq{col + "stadium_id": filter.StadiumID})

	if filter.StartDate != nil {
		sb = sb.Where(squirrel.GtOrEq{col + "booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		sb = sb.Where(squirrel.LtOrEq{col + "booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	if filter.Status != nil {
		sb = sb.Where(squirrel.Eq{col + "status": *filter.Status})
	} else if !filter.IncludeInactive {
		sb = sb.Where(squirrel.NotEq{col + "status": domain.StatusCancelled})
	}

	return sb
}

