package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/protap/TAP-LandingService/internal/domain"
	apptRepo "github.com/protap/TAP-LandingService/internal/infra/storage/appointment"
	"github.com/protap/TAP-LandingService/pkg/types"
)

// UseCase use case записи посетителя на приём
type UseCase struct {
	apptRepo     AppointmentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case записи на приём.
// Проверка занятости и вставка идут в сериализуемой транзакции; уникальный
// индекс по (лендинг, дата, время) закрывает гонку двух одновременных записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: landing=%d, date=%s, time=%s", req.LandingID, req.Date, req.Time)

	now := uc.timeProvider.Now()

	date, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	slot := types.TimeString(req.Time)

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.apptRepo.ExistsAt(txCtx, req.LandingID, date, slot)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("BookAppointment: slot %s %s already taken on landing=%d",
				req.Date, req.Time, req.LandingID)
			return ErrSlotTaken
		}

		appt := &domain.Appointment{
			LandingRequestID: req.LandingID,
			ServiceID:        parseServiceID(req.ServiceID),
			Name:             strings.TrimSpace(req.Name),
			Email:            optional(req.Email),
			Phone:            optional(req.Phone),
			Date:             date,
			Time:             slot,
			Message:          optional(req.Message),
			Status:           domain.StatusPending,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		LandingID: result.LandingRequestID,
		Name:      result.Name,
		Date:      result.Date,
		Time:      result.Time,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}

// optional превращает пустую строку формы в NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
