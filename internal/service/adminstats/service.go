package adminstats

import (
	"context"
	"fmt"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/infra/storage/landing"
)

// Overview сводка для главной страницы админки
type Overview struct {
	Total      int
	TotalB2B   int
	TotalB2C   int
	TotalUsers int
	Sectors    []landing.SectorCount
	Recent     []*domain.LandingRequest
}

// OrdersPage страница списка заказов с фильтрами
type OrdersPage struct {
	Orders     []*domain.LandingRequest
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// OrdersQuery параметры списка заказов
type OrdersQuery struct {
	Type   string // "b2b", "b2c" или пусто
	Sector string
	Page   int
}

// Service сервис админской аналитики
type Service struct {
	landingRepo LandingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(landingRepo LandingRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{landingRepo: landingRepo, userRepo: userRepo, logger: logger}
}

// GetOverview собирает сводку: всего лендингов, по типам, по секторам,
// пользователи, последние заявки
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	overview := &Overview{}
	var err error

	if overview.Total, err = s.landingRepo.CountAll(ctx); err != nil {
		return nil, s.wrap("GetOverview - count all", err)
	}
	if overview.TotalB2B, err = s.landingRepo.CountByType(ctx, domain.LandingTypeB2B); err != nil {
		return nil, s.wrap("GetOverview - count b2b", err)
	}
	if overview.TotalB2C, err = s.landingRepo.CountByType(ctx, domain.LandingTypeB2C); err != nil {
		return nil, s.wrap("GetOverview - count b2c", err)
	}
	if overview.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, s.wrap("GetOverview - count users", err)
	}
	if overview.Sectors, err = s.landingRepo.CountBySector(ctx); err != nil {
		return nil, s.wrap("GetOverview - count by sector", err)
	}
	if overview.Recent, err = s.landingRepo.ListRecent(ctx, domain.AdminRecentLimit); err != nil {
		return nil, s.wrap("GetOverview - list recent", err)
	}

	return overview, nil
}

// ListOrders возвращает страницу заказов с фильтрами по типу и сектору.
// Неизвестный тип игнорируется, страница меньше единицы приводится к первой
func (s *Service) ListOrders(ctx context.Context, query *OrdersQuery) (*OrdersPage, error) {
	filter := domain.LandingsFilter{
		Page:    query.Page,
		PerPage: domain.AdminOrdersPerPage,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if query.Type == string(domain.LandingTypeB2B) || query.Type == string(domain.LandingTypeB2C) {
		lt := domain.LandingType(query.Type)
		filter.LandingType = &lt
	}
	if query.Sector != "" {
		sector := query.Sector
		filter.Sector = &sector
	}

	orders, err := s.landingRepo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, s.wrap("ListOrders - list", err)
	}
	total, err := s.landingRepo.CountFiltered(ctx, filter)
	if err != nil {
		return nil, s.wrap("ListOrders - count", err)
	}

	totalPages := (total + filter.PerPage - 1) / filter.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	return &OrdersPage{
		Orders:     orders,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) wrap(step string, err error) error {
	s.logger.Error("%s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}
