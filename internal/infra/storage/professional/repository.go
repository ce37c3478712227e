package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/dbmetrics"
	"github.com/protap/TAP-LandingService/pkg/psqlbuilder"
)

var professionalColumns = []string{
	"id",
	"user_id",
	"name",
	"specialty",
	"phone",
	"bio",
	"created_at",
}

var serviceColumns = []string{
	"id",
	"professional_id",
	"title",
	"description",
	"price",
	"created_at",
}

// Repository репозиторий для работы с профилями профессионалов и их каталогом услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль профессионала для пользователя
func (r *Repository) Create(ctx context.Context, pro *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns("user_id", "name", "specialty", "phone", "bio").
		Values(pro.UserID, pro.Name, pro.Specialty, pro.Phone, pro.Bio).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&pro.ID, &pro.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return pro, nil
}

// GetByUserID возвращает профиль профессионала по владельцу
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var pro domain.Professional
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pro.ID,
		&pro.UserID,
		&pro.Name,
		&pro.Specialty,
		&pro.Phone,
		&pro.Bio,
		&pro.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
	}

	return &pro, nil
}

// GetByID возвращает профиль профессионала по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var pro domain.Professional
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pro.ID,
		&pro.UserID,
		&pro.Name,
		&pro.Specialty,
		&pro.Phone,
		&pro.Bio,
		&pro.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return &pro, nil
}

// ListAll возвращает все профили профессионалов, новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pros := make([]*domain.Professional, 0)
	for rows.Next() {
		var pro domain.Professional
		err = rows.Scan(
			&pro.ID,
			&pro.UserID,
			&pro.Name,
			&pro.Specialty,
			&pro.Phone,
			&pro.Bio,
			&pro.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		pros = append(pros, &pro)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return pros, nil
}

// Update обновляет поля профиля профессионала
func (r *Repository) Update(ctx context.Context, pro *domain.Professional) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("name", pro.Name).
		Set("specialty", pro.Specialty).
		Set("phone", pro.Phone).
		Set("bio", pro.Bio).
		Where(squirrel.Eq{"id": pro.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

// CreateService добавляет услугу в каталог профессионала
func (r *Repository) CreateService(ctx context.Context, svc *domain.ProService) (*domain.ProService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pro_services").
		Columns("professional_id", "title", "description", "price").
		Values(svc.ProfessionalID, svc.Title, svc.Description, svc.Price).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return svc, nil
}

// GetService возвращает услугу каталога, проверяя принадлежность профилю
func (r *Repository) GetService(ctx context.Context, serviceID, professionalID int64) (*domain.ProService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("pro_services").
		Where(squirrel.Eq{
			"id":              serviceID,
			"professional_id": professionalID,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.ProService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.ProfessionalID,
		&svc.Title,
		&svc.Description,
		&svc.Price,
		&svc.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan row: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// ListByProfessional возвращает каталог услуг профессионала
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.ProService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("pro_services").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ProService, 0)
	for rows.Next() {
		var svc domain.ProService
		err = rows.Scan(
			&svc.ID,
			&svc.ProfessionalID,
			&svc.Title,
			&svc.Description,
			&svc.Price,
			&svc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProfessional - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// UpdateService обновляет услугу каталога с проверкой принадлежности
func (r *Repository) UpdateService(ctx context.Context, svc *domain.ProService) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pro_services").
		Set("title", svc.Title).
		Set("description", svc.Description).
		Set("price", svc.Price).
		Where(squirrel.Eq{
			"id":              svc.ID,
			"professional_id": svc.ProfessionalID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateService - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateService - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// DeleteService удаляет услугу каталога с проверкой принадлежности
func (r *Repository) DeleteService(ctx context.Context, serviceID, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pro_services").
		Where(squirrel.Eq{
			"id":              serviceID,
			"professional_id": professionalID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteService - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
