package public

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/landings"
	"github.com/protap/TAP-LandingService/internal/service/profile"
	getAgenda "github.com/protap/TAP-LandingService/internal/usecase/get_agenda"
)

// LandingsService интерфейс сервиса чтения лендингов
type LandingsService interface {
	GetBySlug(ctx context.Context, slug string) (*landings.PublicProfile, error)
}

// AgendaUseCase интерфейс usecase расчёта расписания
type AgendaUseCase interface {
	Execute(ctx context.Context, req *getAgenda.Request) (*getAgenda.Response, error)
}

// ProfessionalsService интерфейс публичного каталога профессионалов
type ProfessionalsService interface {
	Directory(ctx context.Context) ([]*domain.Professional, error)
	GetPublic(ctx context.Context, id int64) (*profile.PublicCard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
