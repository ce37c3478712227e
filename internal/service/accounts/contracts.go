package accounts

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/auth"
	"github.com/protap/TAP-LandingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LandingRepository интерфейс репозитория лендингов для привязки при регистрации
type LandingRepository interface {
	Claim(ctx context.Context, id, userID int64) error
	ClaimBySlug(ctx context.Context, slug string, userID int64) error
}

// ClaimVerifier интерфейс проверки подписанного claim-токена
type ClaimVerifier interface {
	Verify(token string) (*auth.ClaimClaims, error)
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
