package get_agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// UseCase use case расчёта расписания публичной страницы
type UseCase struct {
	availabilityRepo AvailabilityRepository
	apptRepo         AppointmentRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	apptRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		apptRepo:         apptRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute возвращает расписание лендинга или nil, когда агенда не настроена.
// Занятые слоты собираются в окне [сегодня, сегодня+90 дней] включительно,
// отменённые записи не учитываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	rows, err := uc.availabilityRepo.ListByLanding(ctx, req.LandingID)
	if err != nil {
		uc.logger.Error("GetAgenda: failed to list availability for landing=%d: %v", req.LandingID, err)
		return nil, fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	agenda := &domain.Agenda{
		Weekdays:    make([]int, 0, len(rows)),
		StartTime:   rows[0].StartTime,
		EndTime:     rows[0].EndTime,
		SlotMinutes: rows[0].SlotMinutes,
		BookedSlots: make(map[string][]string),
	}
	for _, row := range rows {
		agenda.Weekdays = append(agenda.Weekdays, row.DayOfWeek)
	}

	now := uc.timeProvider.Now()
	today, _ := time.Parse(domain.DateFormat, now.Format(domain.DateFormat))
	end := today.AddDate(0, 0, domain.BookingWindowDays)

	appointments, err := uc.apptRepo.ListByFilter(ctx, domain.AppointmentsFilter{
		LandingRequestID: req.LandingID,
		StartDate:        &today,
		EndDate:          &end,
	})
	if err != nil {
		uc.logger.Error("GetAgenda: failed to list appointments for landing=%d: %v", req.LandingID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	for _, appt := range appointments {
		day := appt.Date.Format(domain.DateFormat)
		agenda.BookedSlots[day] = append(agenda.BookedSlots[day], string(appt.Time))
	}

	uc.logger.Info("GetAgenda: landing=%d, %d weekdays, %d days with bookings",
		req.LandingID, len(agenda.Weekdays), len(agenda.BookedSlots))

	return responseFromAgenda(agenda), nil
}
