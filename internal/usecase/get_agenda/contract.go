package get_agenda

import (
	"context"
	"time"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	ListByLanding(ctx context.Context, landingID int64) ([]*domain.Availability, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
