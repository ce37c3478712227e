package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/dbmetrics"
	"github.com/protap/TAP-LandingService/pkg/psqlbuilder"
	"github.com/protap/TAP-LandingService/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// appointmentColumns колонки appointments в порядке сканирования
var appointmentColumns = []string{
	"id",
	"landing_request_id",
	"service_id",
	"name",
	"email",
	"phone",
	"date",
	"time",
	"message",
	"status",
	"created_at",
}

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Нарушение uq_appointments_slot транслируется в ErrSlotTaken: ограничение
// страхует check-then-insert при гонке двух одновременных бронирований
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"landing_request_id",
			"service_id",
			"name",
			"email",
			"phone",
			"date",
			"time",
			"message",
			"status",
		).
		Values(
			appt.LandingRequestID,
			appt.ServiceID,
			appt.Name,
			appt.Email,
			appt.Phone,
			appt.Date,
			appt.Time,
			appt.Message,
			appt.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &appt.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appt, nil
}

// ExistsAt возвращает true, если на (лендинг, дата, время) уже есть запись
func (r *Repository) ExistsAt(ctx context.Context, landingID int64, date time.Time, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{
			"landing_request_id": landingID,
			"date":               date,
			"time":               t,
		})

	// Внутри транзакции блокируем строку, чтобы параллельное бронирование
	// того же слота дождалось коммита
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - scan row: %v", ErrScanRow, err)
	}
	return true, nil
}

// ListByFilter возвращает записи лендинга с фильтрацией по периоду
func (r *Repository) ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"landing_request_id": filter.LandingRequestID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.
		OrderBy("date ASC, time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.LandingRequestID,
			&appt.ServiceID,
			&appt.Name,
			&appt.Email,
			&appt.Phone,
			&appt.Date,
			&appt.Time,
			&appt.Message,
			&appt.Status,
			&appt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}
	return appointments, nil
}
