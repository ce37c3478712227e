package agendaconfig

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	CreateBatch(ctx context.Context, rows []*domain.Availability) error
	ListByLanding(ctx context.Context, landingID int64) ([]*domain.Availability, error)
}

// LandingRepository интерфейс репозитория лендингов для проверки владения
type LandingRepository interface {
	GetOwned(ctx context.Context, id, userID int64) (*domain.LandingRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
