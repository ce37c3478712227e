package admin

import (
	"context"

	"github.com/protap/TAP-LandingService/internal/service/adminstats"
)

// StatsService интерфейс сервиса админской аналитики
type StatsService interface {
	GetOverview(ctx context.Context) (*adminstats.Overview, error)
	ListOrders(ctx context.Context, query *adminstats.OrdersQuery) (*adminstats.OrdersPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
