package auth

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/accounts"
)

// AccountsService интерфейс сервиса аккаунтов
type AccountsService interface {
	Register(ctx context.Context, input *accounts.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
