package leads

import (
	"context"
	"time"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// ContactRepository интерфейс репозитория лидов
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.Contact, error)
	CountByUser(ctx context.Context, userID int64, since *time.Time) (int, error)
}

// LandingRepository интерфейс репозитория лендингов
type LandingRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.LandingRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.LandingRequest, error)
	GetService(ctx context.Context, id int64) (*domain.LandingService, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.LandingRequest, error)
	ListServices(ctx context.Context, requestID int64) ([]*domain.LandingService, error)
	CountServicesByUser(ctx context.Context, userID int64) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
