package agendaconfig

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/protap/TAP-LandingService/internal/domain"
	landingRepo "github.com/protap/TAP-LandingService/internal/infra/storage/landing"
	"github.com/protap/TAP-LandingService/pkg/types"
)

// ConfigureInput данные формы настройки агенды
type ConfigureInput struct {
	LandingID   int64
	UserID      int64
	Weekdays    []int // 0=понедельник … 6=воскресенье
	StartTime   string
	EndTime     string
	SlotMinutes int // 0 - значение по умолчанию
}

// Service сервис настройки недельного расписания лендинга
type Service struct {
	availabilityRepo AvailabilityRepository
	landingRepo      LandingRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса настройки агенды
func NewService(
	availabilityRepo AvailabilityRepository,
	landingRepo LandingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		landingRepo:      landingRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Configure задает недельное расписание для собственного лендинга.
// Работает только один раз: существующие строки делают агенду неизменяемой
func (s *Service) Configure(ctx context.Context, input *ConfigureInput) error {
	if _, err := s.landingRepo.GetOwned(ctx, input.LandingID, input.UserID); err != nil {
		if errors.Is(err, landingRepo.ErrLandingNotFound) {
			s.logger.Warn("Configure: landing id=%d not found for user=%d", input.LandingID, input.UserID)
			return ErrLandingNotFound
		}
		s.logger.Error("Configure: repository error for landing id=%d: %v", input.LandingID, err)
		return fmt.Errorf("%w: Configure - repository error: %v", ErrInternal, err)
	}

	rows, err := buildRows(input)
	if err != nil {
		s.logger.Warn("Configure: validation failed for landing id=%d: %v", input.LandingID, err)
		return err
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.availabilityRepo.ListByLanding(txCtx, input.LandingID)
		if err != nil {
			s.logger.Error("Configure: failed to list availability for landing id=%d: %v", input.LandingID, err)
			return fmt.Errorf("%w: Configure - list availability: %v", ErrInternal, err)
		}
		if len(existing) > 0 {
			return ErrAlreadyConfigured
		}

		if err := s.availabilityRepo.CreateBatch(txCtx, rows); err != nil {
			s.logger.Error("Configure: failed to create availability for landing id=%d: %v", input.LandingID, err)
			return fmt.Errorf("%w: Configure - create availability: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Configure: configured agenda for landing id=%d, %d weekdays", input.LandingID, len(rows))
	return nil
}

// Get возвращает расписание собственного лендинга
func (s *Service) Get(ctx context.Context, landingID, userID int64) ([]*domain.Availability, error) {
	if _, err := s.landingRepo.GetOwned(ctx, landingID, userID); err != nil {
		if errors.Is(err, landingRepo.ErrLandingNotFound) {
			return nil, ErrLandingNotFound
		}
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	rows, err := s.availabilityRepo.ListByLanding(ctx, landingID)
	if err != nil {
		s.logger.Error("Get: failed to list availability for landing id=%d: %v", landingID, err)
		return nil, fmt.Errorf("%w: Get - list availability: %v", ErrInternal, err)
	}
	return rows, nil
}

// buildRows валидирует форму и собирает строки расписания,
// по одной на каждый выбранный день недели
func buildRows(input *ConfigureInput) ([]*domain.Availability, error) {
	if len(input.Weekdays) == 0 {
		return nil, ErrNoWeekdays
	}

	start := types.TimeString(input.StartTime)
	if start.IsZero() {
		start = types.TimeString(domain.DefaultStartTime)
	}
	end := types.TimeString(input.EndTime)
	if end.IsZero() {
		end = types.TimeString(domain.DefaultEndTime)
	}
	if start.Validate() != nil || end.Validate() != nil || !start.IsBefore(end) {
		return nil, ErrInvalidWindow
	}

	slotMinutes := input.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultSlotMinutes
	}

	seen := make(map[int]bool, len(input.Weekdays))
	for _, day := range input.Weekdays {
		if day < 0 || day > 6 {
			return nil, ErrInvalidWeekday
		}
		seen[day] = true
	}

	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)

	rows := make([]*domain.Availability, 0, len(days))
	for _, day := range days {
		rows = append(rows, &domain.Availability{
			LandingRequestID: input.LandingID,
			DayOfWeek:        day,
			StartTime:        start,
			EndTime:          end,
			SlotMinutes:      slotMinutes,
		})
	}
	return rows, nil
}
