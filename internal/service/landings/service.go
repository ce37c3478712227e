package landings

import (
	"context"
	"errors"
	"fmt"

	"github.com/protap/TAP-LandingService/internal/domain"
	landingRepo "github.com/protap/TAP-LandingService/internal/infra/storage/landing"
)

// PublicProfile лендинг вместе с услугами и темой сектора
// для публичной страницы
type PublicProfile struct {
	Landing  *domain.LandingRequest
	Services []*domain.LandingService
	Theme    domain.SectorTheme
}

// Service сервис чтения лендингов для публичных страниц и кабинета владельца
type Service struct {
	landingRepo LandingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса лендингов
func NewService(landingRepo LandingRepository, logger Logger) *Service {
	return &Service{landingRepo: landingRepo, logger: logger}
}

// GetBySlug возвращает публичный профиль по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*PublicProfile, error) {
	landing, err := s.landingRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, landingRepo.ErrLandingNotFound) {
			s.logger.Warn("GetBySlug: landing slug=%s not found", slug)
			return nil, ErrLandingNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	return s.withServicesAndTheme(ctx, landing)
}

// GetOwned возвращает лендинг владельца
// Чужой лендинг неотличим от несуществующего
func (s *Service) GetOwned(ctx context.Context, id, userID int64) (*PublicProfile, error) {
	landing, err := s.landingRepo.GetOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, landingRepo.ErrLandingNotFound) {
			s.logger.Warn("GetOwned: landing id=%d not found for user=%d", id, userID)
			return nil, ErrLandingNotFound
		}
		s.logger.Error("GetOwned: repository error for landing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetOwned - repository error: %v", ErrInternal, err)
	}

	return s.withServicesAndTheme(ctx, landing)
}

// ListByOwner возвращает лендинги пользователя, новые первыми
func (s *Service) ListByOwner(ctx context.Context, userID int64) ([]*domain.LandingRequest, error) {
	list, err := s.landingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

func (s *Service) withServicesAndTheme(ctx context.Context, landing *domain.LandingRequest) (*PublicProfile, error) {
	services, err := s.landingRepo.ListServices(ctx, landing.ID)
	if err != nil {
		s.logger.Error("withServicesAndTheme: failed to list services for landing id=%d: %v", landing.ID, err)
		return nil, fmt.Errorf("%w: list services: %v", ErrInternal, err)
	}

	return &PublicProfile{
		Landing:  landing,
		Services: services,
		Theme:    domain.ThemeForSector(landing.Sector),
	}, nil
}
