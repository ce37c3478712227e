package landings

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// LandingRepository интерфейс репозитория лендингов
type LandingRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.LandingRequest, error)
	GetOwned(ctx context.Context, id, userID int64) (*domain.LandingRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.LandingRequest, error)
	ListServices(ctx context.Context, requestID int64) ([]*domain.LandingService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
