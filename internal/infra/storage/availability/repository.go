package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/dbmetrics"
	"github.com/protap/TAP-LandingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с недельными окнами приёма
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория availability
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает набор недельных окон одним запросом
func (r *Repository) CreateBatch(ctx context.Context, rows []*domain.Availability) error {
	if len(rows) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability").
		Columns("landing_request_id", "day_of_week", "start_time", "end_time", "slot_minutes")
	for _, a := range rows {
		insertBuilder = insertBuilder.Values(a.LandingRequestID, a.DayOfWeek, a.StartTime, a.EndTime, a.SlotMinutes)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListByLanding возвращает окна лендинга, упорядоченные по дню недели
func (r *Repository) ListByLanding(ctx context.Context, landingID int64) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "landing_request_id", "day_of_week", "start_time", "end_time", "slot_minutes",
	).
		From("availability").
		Where(squirrel.Eq{"landing_request_id": landingID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLanding - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLanding - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Availability, 0)
	for rows.Next() {
		var a domain.Availability
		if err := rows.Scan(&a.ID, &a.LandingRequestID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.SlotMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListByLanding - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByLanding - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}
