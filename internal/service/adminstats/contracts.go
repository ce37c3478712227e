package adminstats

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/infra/storage/landing"
)

// LandingRepository интерфейс репозитория лендингов для аналитики
type LandingRepository interface {
	CountAll(ctx context.Context) (int, error)
	CountByType(ctx context.Context, lt domain.LandingType) (int, error)
	CountBySector(ctx context.Context) ([]landing.SectorCount, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.LandingRequest, error)
	ListFiltered(ctx context.Context, filter domain.LandingsFilter) ([]*domain.LandingRequest, error)
	CountFiltered(ctx context.Context, filter domain.LandingsFilter) (int, error)
}

// UserRepository интерфейс репозитория пользователей для аналитики
type UserRepository interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
