package domain

import (
	"time"

	"github.com/protap/TAP-LandingService/pkg/types"
)

// AppointmentStatus статус записи на приём
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment запись посетителя на приём к профессионалу
// Инвариант: на один (лендинг, дата, время) — максимум одна запись
type Appointment struct {
	ID               int64
	LandingRequestID int64
	ServiceID        *int64 // nil - без привязки к услуге
	Name             string
	Email            *string
	Phone            *string
	Date             time.Time // только дата, время отдельным полем
	Time             types.TimeString
	Message          *string
	Status           AppointmentStatus
	CreatedAt        time.Time
}

// IsActive возвращает true для неотменённой записи
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// AppointmentsFilter фильтр для выборки записей лендинга
type AppointmentsFilter struct {
	LandingRequestID int64      // обязательный параметр
	StartDate        *time.Time // начало периода (включительно)
	EndDate          *time.Time // конец периода (включительно)
	IncludeCancelled bool
}
