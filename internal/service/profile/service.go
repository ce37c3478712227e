package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/protap/TAP-LandingService/internal/domain"
	proRepo "github.com/protap/TAP-LandingService/internal/infra/storage/professional"
)

// ProfessionalInput данные формы профиля профессионала
type ProfessionalInput struct {
	Name      string
	Specialty string
	Phone     string
	Bio       string
}

// ServiceInput данные формы услуги каталога
type ServiceInput struct {
	Title       string
	Description string
	Price       *float64
}

// PublicCard профиль профессионала с каталогом услуг для публичного каталога
type PublicCard struct {
	Professional *domain.Professional
	Services     []*domain.ProService
}

// Service сервис профиля профессионала и его каталога услуг
type Service struct {
	proRepo ProfessionalRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(proRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{proRepo: proRepo, logger: logger}
}

// Get возвращает профиль профессионала пользователя
func (s *Service) Get(ctx context.Context, userID int64) (*domain.Professional, error) {
	pro, err := s.proRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, proRepo.ErrProfessionalNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Get: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return pro, nil
}

// Directory возвращает публичный каталог профессионалов, новые первыми
func (s *Service) Directory(ctx context.Context) ([]*domain.Professional, error) {
	pros, err := s.proRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Directory: repository error: %v", err)
		return nil, fmt.Errorf("%w: Directory - repository error: %v", ErrInternal, err)
	}
	return pros, nil
}

// GetPublic возвращает карточку профессионала с его каталогом услуг
func (s *Service) GetPublic(ctx context.Context, id int64) (*PublicCard, error) {
	pro, err := s.proRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, proRepo.ErrProfessionalNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetPublic: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPublic - repository error: %v", ErrInternal, err)
	}

	services, err := s.proRepo.ListByProfessional(ctx, pro.ID)
	if err != nil {
		s.logger.Error("GetPublic: list services error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPublic - list services error: %v", ErrInternal, err)
	}

	return &PublicCard{Professional: pro, Services: services}, nil
}

// Create создает профиль профессионала (один на аккаунт)
func (s *Service) Create(ctx context.Context, userID int64, input *ProfessionalInput) (*domain.Professional, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.proRepo.GetByUserID(ctx, userID); err == nil {
		s.logger.Warn("Create: profile already exists for user=%d", userID)
		return nil, ErrProfileExists
	} else if !errors.Is(err, proRepo.ErrProfessionalNotFound) {
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	pro := &domain.Professional{
		UserID:    userID,
		Name:      name,
		Specialty: optional(input.Specialty),
		Phone:     optional(input.Phone),
		Bio:       optional(input.Bio),
	}

	created, err := s.proRepo.Create(ctx, pro)
	if err != nil {
		s.logger.Error("Create: failed to create profile for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - create profile: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created professional profile id=%d for user=%d", created.ID, userID)
	return created, nil
}

// Update обновляет профиль профессионала пользователя
func (s *Service) Update(ctx context.Context, userID int64, input *ProfessionalInput) (*domain.Professional, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	pro, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	pro.Name = name
	pro.Specialty = optional(input.Specialty)
	pro.Phone = optional(input.Phone)
	pro.Bio = optional(input.Bio)

	if err := s.proRepo.Update(ctx, pro); err != nil {
		s.logger.Error("Update: failed to update profile id=%d: %v", pro.ID, err)
		return nil, fmt.Errorf("%w: Update - update profile: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated professional profile id=%d", pro.ID)
	return pro, nil
}

// ListServices возвращает каталог услуг пользователя.
// Без профиля каталог пуст
func (s *Service) ListServices(ctx context.Context, userID int64) ([]*domain.ProService, error) {
	pro, err := s.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return []*domain.ProService{}, nil
		}
		return nil, err
	}

	services, err := s.proRepo.ListByProfessional(ctx, pro.ID)
	if err != nil {
		s.logger.Error("ListServices: repository error for professional id=%d: %v", pro.ID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// CreateService добавляет услугу в каталог.
// Требует созданный профиль профессионала
func (s *Service) CreateService(ctx context.Context, userID int64, input *ServiceInput) (*domain.ProService, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	pro, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	svc := &domain.ProService{
		ProfessionalID: pro.ID,
		Title:          title,
		Description:    optional(input.Description),
		Price:          input.Price,
	}

	created, err := s.proRepo.CreateService(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: failed to create service for professional id=%d: %v", pro.ID, err)
		return nil, fmt.Errorf("%w: CreateService - create: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d for professional id=%d", created.ID, pro.ID)
	return created, nil
}

// GetService возвращает услугу каталога пользователя.
// Чужая услуга неотличима от несуществующей
func (s *Service) GetService(ctx context.Context, serviceID, userID int64) (*domain.ProService, error) {
	pro, err := s.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	svc, err := s.proRepo.GetService(ctx, serviceID, pro.ID)
	if err != nil {
		if errors.Is(err, proRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d denied for user=%d", serviceID, userID)
			return nil, ErrForbidden
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return svc, nil
}

// UpdateService обновляет услугу каталога пользователя
func (s *Service) UpdateService(ctx context.Context, serviceID, userID int64, input *ServiceInput) (*domain.ProService, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	svc, err := s.GetService(ctx, serviceID, userID)
	if err != nil {
		return nil, err
	}

	svc.Title = title
	svc.Description = optional(input.Description)
	svc.Price = input.Price

	if err := s.proRepo.UpdateService(ctx, svc); err != nil {
		if errors.Is(err, proRepo.ErrServiceNotFound) {
			return nil, ErrForbidden
		}
		s.logger.Error("UpdateService: failed to update service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdateService - update: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%d", serviceID)
	return svc, nil
}

// DeleteService удаляет услугу каталога пользователя
func (s *Service) DeleteService(ctx context.Context, serviceID, userID int64) error {
	pro, err := s.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return ErrForbidden
		}
		return err
	}

	if err := s.proRepo.DeleteService(ctx, serviceID, pro.ID); err != nil {
		if errors.Is(err, proRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d denied for user=%d", serviceID, userID)
			return ErrForbidden
		}
		s.logger.Error("DeleteService: failed to delete service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: DeleteService - delete: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%d", serviceID)
	return nil
}

// optional превращает пустую строку формы в NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
