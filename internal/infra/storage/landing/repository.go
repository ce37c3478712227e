package landing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/dbmetrics"
	"github.com/protap/TAP-LandingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// landingColumns колонки landing_requests в порядке сканирования
var landingColumns = []string{
	"id",
	"user_id",
	"public_slug",
	"landing_type",
	"sector",
	"business_name",
	"description",
	"location",
	"contact_name",
	"phone",
	"email",
	"linkedin",
	"website",
	"generated_prompt",
	"qr_code",
	"created_at",
}

// Repository репозиторий для работы с лендингами и их услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лендингов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает лендинг. Коллизия public_slug транслируется в ErrSlugTaken,
// чтобы usecase мог перегенерировать slug и повторить
func (r *Repository) Create(ctx context.Context, req *domain.LandingRequest) (*domain.LandingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("landing_requests").
		Columns(
			"user_id",
			"public_slug",
			"landing_type",
			"sector",
			"business_name",
			"description",
			"location",
			"contact_name",
			"phone",
			"email",
			"linkedin",
			"website",
			"generated_prompt",
			"qr_code",
		).
		Values(
			req.UserID,
			req.PublicSlug,
			req.LandingType,
			req.Sector,
			req.BusinessName,
			req.Description,
			req.Location,
			req.ContactName,
			req.Phone,
			req.Email,
			req.LinkedIn,
			req.Website,
			req.GeneratedPrompt,
			req.QRCode,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// UpdateGenerated сохраняет сгенерированные QR и промпт
func (r *Repository) UpdateGenerated(ctx context.Context, id int64, qrCode, prompt string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("landing_requests").
		Set("qr_code", qrCode).
		Set("generated_prompt", prompt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateGenerated - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateGenerated - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateGenerated - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrLandingNotFound
	}
	return nil
}

// GetByID получает лендинг по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.LandingRequest, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает лендинг по публичному slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.LandingRequest, error) {
	return r.getBy(ctx, squirrel.Eq{"public_slug": slug}, "GetBySlug")
}

// GetOwned получает лендинг по ID, только если он принадлежит userID
// Чужой лендинг неотличим от несуществующего (ErrLandingNotFound)
func (r *Repository) GetOwned(ctx context.Context, id, userID int64) (*domain.LandingRequest, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id, "user_id": userID}, "GetOwned")
}

// ListByUser возвращает лендинги пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.LandingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(landingColumns...).
		From("landing_requests").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanLandings(rows)
}

// Claim привязывает непривязанный лендинг к пользователю
func (r *Repository) Claim(ctx context.Context, id, userID int64) error {
	return r.claim(ctx, squirrel.Eq{"id": id, "user_id": nil}, userID, "Claim")
}

// ClaimBySlug привязывает непривязанный лендинг к пользователю по slug
func (r *Repository) ClaimBySlug(ctx context.Context, slug string, userID int64) error {
	return r.claim(ctx, squirrel.Eq{"public_slug": slug, "user_id": nil}, userID, "ClaimBySlug")
}

func (r *Repository) claim(ctx context.Context, where squirrel.Eq, userID int64, method string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("landing_requests").
		Set("user_id", userID).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrAlreadyClaimed
	}
	return nil
}

// CreateService создает услугу лендинга
func (r *Repository) CreateService(ctx context.Context, svc *domain.LandingService) (*domain.LandingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("landing_services").
		Columns("request_id", "title", "description", "ord").
		Values(svc.RequestID, svc.Title, svc.Description, svc.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}
	return svc, nil
}

// GetService получает услугу лендинга по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.LandingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "request_id", "title", "description", "ord").
		From("landing_services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.LandingService
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.RequestID, &svc.Title, &svc.Description, &svc.Order)
	if err == sql.ErrNoRows {
		return nil, ErrLandingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}
	return &svc, nil
}

// ListServices возвращает услуги лендинга в порядке ord
func (r *Repository) ListServices(ctx context.Context, requestID int64) ([]*domain.LandingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "request_id", "title", "description", "ord").
		From("landing_services").
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("ord ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.LandingService, 0)
	for rows.Next() {
		var svc domain.LandingService
		if err := rows.Scan(&svc.ID, &svc.RequestID, &svc.Title, &svc.Description, &svc.Order); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

// CountServicesByUser возвращает число услуг на всех лендингах пользователя
func (r *Repository) CountServicesByUser(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("landing_services ls").
		Join("landing_requests lr ON lr.id = ls.request_id").
		Where(squirrel.Eq{"lr.user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountServicesByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountServicesByUser - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// CountAll возвращает общее число лендингов
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, nil, "CountAll")
}

// CountByType возвращает число лендингов заданного типа
func (r *Repository) CountByType(ctx context.Context, lt domain.LandingType) (int, error) {
	return r.count(ctx, squirrel.Eq{"landing_type": lt}, "CountByType")
}

// SectorCount пара сектор-количество для админской аналитики
type SectorCount struct {
	Sector string
	Count  int
}

// CountBySector возвращает число лендингов по каждому сектору
func (r *Repository) CountBySector(ctx context.Context) ([]SectorCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("sector", "COUNT(*)").
		From("landing_requests").
		GroupBy("sector").
		OrderBy("sector ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySector - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySector - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]SectorCount, 0)
	for rows.Next() {
		var sc SectorCount
		if err := rows.Scan(&sc.Sector, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountBySector - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountBySector - rows error: %v", ErrScanRow, err)
	}
	return counts, nil
}

// ListRecent возвращает последние лендинги
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.LandingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(landingColumns...).
		From("landing_requests").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanLandings(rows)
}

// ListFiltered возвращает страницу лендингов для админского списка заказов
func (r *Repository) ListFiltered(ctx context.Context, filter domain.LandingsFilter) ([]*domain.LandingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(landingColumns...).
		From("landing_requests")

	if filter.LandingType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"landing_type": *filter.LandingType})
	}
	if filter.Sector != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sector": *filter.Sector})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = domain.AdminOrdersPerPage
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFiltered - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFiltered - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanLandings(rows)
}

// CountFiltered возвращает общее число лендингов под фильтром (для пагинации)
func (r *Repository) CountFiltered(ctx context.Context, filter domain.LandingsFilter) (int, error) {
	where := squirrel.Eq{}
	if filter.LandingType != nil {
		where["landing_type"] = *filter.LandingType
	}
	if filter.Sector != nil {
		where["sector"] = *filter.Sector
	}
	return r.count(ctx, where, "CountFiltered")
}

func (r *Repository) count(ctx context.Context, where squirrel.Eq, method string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("landing_requests")
	if len(where) > 0 {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, method, err)
	}
	return count, nil
}

func (r *Repository) getBy(ctx context.Context, where squirrel.Eq, method string) (*domain.LandingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(landingColumns...).
		From("landing_requests").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var req domain.LandingRequest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.UserID,
		&req.PublicSlug,
		&req.LandingType,
		&req.Sector,
		&req.BusinessName,
		&req.Description,
		&req.Location,
		&req.ContactName,
		&req.Phone,
		&req.Email,
		&req.LinkedIn,
		&req.Website,
		&req.GeneratedPrompt,
		&req.QRCode,
		&req.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrLandingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan landing: %v", ErrScanRow, method, err)
	}

	return &req, nil
}

func (r *Repository) scanLandings(rows *sql.Rows) ([]*domain.LandingRequest, error) {
	landings := make([]*domain.LandingRequest, 0)

	for rows.Next() {
		var req domain.LandingRequest
		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.PublicSlug,
			&req.LandingType,
			&req.Sector,
			&req.BusinessName,
			&req.Description,
			&req.Location,
			&req.ContactName,
			&req.Phone,
			&req.Email,
			&req.LinkedIn,
			&req.Website,
			&req.GeneratedPrompt,
			&req.QRCode,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLandings - scan row: %v", ErrScanRow, err)
		}
		landings = append(landings, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLandings - rows error: %v", ErrScanRow, err)
	}
	return landings, nil
}
