package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// UserLoader интерфейс загрузки пользователя по ID из сессии
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SessionReader интерфейс чтения авторизации из cookie-сессии
type SessionReader interface {
	UserID(r *http.Request) (int64, bool)
}

// MetricsRecorder интерфейс записи HTTP-метрик
type MetricsRecorder interface {
	ObserveHTTPRequest(method, path, status string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
