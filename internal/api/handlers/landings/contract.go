package landings

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/agendaconfig"
	landingsSvc "github.com/protap/TAP-LandingService/internal/service/landings"
	"github.com/protap/TAP-LandingService/internal/service/leads"
	bookAppointment "github.com/protap/TAP-LandingService/internal/usecase/book_appointment"
	createLanding "github.com/protap/TAP-LandingService/internal/usecase/create_landing"
)

// CreateUseCase интерфейс usecase создания лендинга
type CreateUseCase interface {
	Execute(ctx context.Context, req *createLanding.Request) (*createLanding.Response, error)
}

// BookUseCase интерфейс usecase записи на приём
type BookUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// LandingsService интерфейс сервиса чтения лендингов
type LandingsService interface {
	GetBySlug(ctx context.Context, slug string) (*landingsSvc.PublicProfile, error)
	GetOwned(ctx context.Context, id, userID int64) (*landingsSvc.PublicProfile, error)
	ListByOwner(ctx context.Context, userID int64) ([]*domain.LandingRequest, error)
}

// LeadsService интерфейс сервиса лидов
type LeadsService interface {
	CreateContact(ctx context.Context, input *leads.ContactInput) (*domain.Contact, error)
}

// AgendaService интерфейс сервиса настройки агенды
type AgendaService interface {
	Configure(ctx context.Context, input *agendaconfig.ConfigureInput) error
	Get(ctx context.Context, landingID, userID int64) ([]*domain.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
