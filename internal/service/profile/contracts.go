package profile

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профилей профессионалов
type ProfessionalRepository interface {
	Create(ctx context.Context, pro *domain.Professional) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	ListAll(ctx context.Context) ([]*domain.Professional, error)
	Update(ctx context.Context, pro *domain.Professional) error
	CreateService(ctx context.Context, svc *domain.ProService) (*domain.ProService, error)
	GetService(ctx context.Context, serviceID, professionalID int64) (*domain.ProService, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.ProService, error)
	UpdateService(ctx context.Context, svc *domain.ProService) error
	DeleteService(ctx context.Context, serviceID, professionalID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
