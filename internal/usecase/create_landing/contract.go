package create_landing

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// LandingRepository интерфейс репозитория лендингов
type LandingRepository interface {
	Create(ctx context.Context, req *domain.LandingRequest) (*domain.LandingRequest, error)
	CreateService(ctx context.Context, svc *domain.LandingService) (*domain.LandingService, error)
	UpdateGenerated(ctx context.Context, id int64, qrCode, prompt string) error
}

// PromptBuilder интерфейс сборщика промпта по секторному шаблону
type PromptBuilder interface {
	Build(landing *domain.LandingRequest, services []*domain.LandingService) string
}

// ClaimIssuer интерфейс выпуска подписанного claim-токена,
// связывающего анонимный лендинг с будущей регистрацией
type ClaimIssuer interface {
	Issue(landingID int64, slug string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
