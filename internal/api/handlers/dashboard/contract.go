package dashboard

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/leads"
	"github.com/protap/TAP-LandingService/internal/service/profile"
)

// LeadsService интерфейс сервиса лидов
type LeadsService interface {
	StatsByOwner(ctx context.Context, userID int64) (*leads.OwnerStats, error)
	FollowUpMessage(ctx context.Context, contactID, userID int64) (string, error)
}

// ProfileService интерфейс сервиса профиля профессионала
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*domain.Professional, error)
	Create(ctx context.Context, userID int64, input *profile.ProfessionalInput) (*domain.Professional, error)
	Update(ctx context.Context, userID int64, input *profile.ProfessionalInput) (*domain.Professional, error)
	ListServices(ctx context.Context, userID int64) ([]*domain.ProService, error)
	CreateService(ctx context.Context, userID int64, input *profile.ServiceInput) (*domain.ProService, error)
	GetService(ctx context.Context, serviceID, userID int64) (*domain.ProService, error)
	UpdateService(ctx context.Context, serviceID, userID int64, input *profile.ServiceInput) (*domain.ProService, error)
	DeleteService(ctx context.Context, serviceID, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
