package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/dbmetrics"
	"github.com/protap/TAP-LandingService/pkg/psqlbuilder"
)

// contactColumns колонки contacts в порядке сканирования
var contactColumns = []string{
	"id",
	"request_id",
	"service_id",
	"name",
	"email",
	"phone",
	"message",
	"created_at",
}

// Repository репозиторий для работы с лидами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый лид
func (r *Repository) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contacts").
		Columns("request_id", "service_id", "name", "email", "phone", "message").
		Values(c.RequestID, c.ServiceID, c.Name, c.Email, c.Phone, c.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return c, nil
}

// GetByID получает лид по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contactColumns...).
		From("contacts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Contact
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.RequestID, &c.ServiceID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan contact: %v", ErrScanRow, err)
	}
	return &c, nil
}

// ListRecentByUser возвращает последние лиды по всем лендингам пользователя
func (r *Repository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id", "c.request_id", "c.service_id", "c.name", "c.email", "c.phone", "c.message", "c.created_at",
	).
		From("contacts c").
		Join("landing_requests lr ON lr.id = c.request_id").
		Where(squirrel.Eq{"lr.user_id": userID}).
		OrderBy("c.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.RequestID, &c.ServiceID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListRecentByUser - scan row: %v", ErrScanRow, err)
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecentByUser - rows error: %v", ErrScanRow, err)
	}
	return contacts, nil
}

// CountByUser возвращает число лидов по всем лендингам пользователя
// Если since задан, считаются только лиды созданные не раньше since
func (r *Repository) CountByUser(ctx context.Context, userID int64, since *time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("contacts c").
		Join("landing_requests lr ON lr.id = c.request_id").
		Where(squirrel.Eq{"lr.user_id": userID})

	if since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"c.created_at": *since})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByUser - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}
