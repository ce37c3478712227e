package get_agenda

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockAvailabilityRepo struct {
	rows []*domain.Availability
}

func (m *mockAvailabilityRepo) ListByLanding(context.Context, int64) ([]*domain.Availability, error) {
	return m.rows, nil
}

type mockApptRepo struct {
	appointments []*domain.Appointment
	gotFilter    domain.AppointmentsFilter
}

func (m *mockApptRepo) ListByFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	m.gotFilter = filter
	return m.appointments, nil
}

func newTestUseCase(av *mockAvailabilityRepo, appts *mockApptRepo, now time.Time) *UseCase {
	uc := NewUseCase(av, appts, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_SinAgendaDevuelveNil(t *testing.T) {
	uc := newTestUseCase(&mockAvailabilityRepo{}, &mockApptRepo{}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{LandingID: 1})

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestExecute_VentanaDePrimeraFila(t *testing.T) {
	av := &mockAvailabilityRepo{rows: []*domain.Availability{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00", SlotMinutes: 60},
		{DayOfWeek: 2, StartTime: "10:00", EndTime: "14:00", SlotMinutes: 30},
		{DayOfWeek: 4, StartTime: "08:00", EndTime: "12:00", SlotMinutes: 15},
	}}
	uc := newTestUseCase(av, &mockApptRepo{}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{LandingID: 1})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, resp.Weekdays)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("18:00"), resp.EndTime)
	assert.Equal(t, 60, resp.SlotMinutes)
}

func TestExecute_AgrupaSlotsOcupadosPorFecha(t *testing.T) {
	av := &mockAvailabilityRepo{rows: []*domain.Availability{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00", SlotMinutes: 60},
	}}
	appts := &mockApptRepo{appointments: []*domain.Appointment{
		{Date: mustDate(t, "2026-02-02"), Time: "10:00"},
		{Date: mustDate(t, "2026-02-02"), Time: "11:00"},
		{Date: mustDate(t, "2026-02-09"), Time: "09:00"},
	}}
	uc := newTestUseCase(av, appts, time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{LandingID: 1})

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"2026-02-02": {"10:00", "11:00"},
		"2026-02-09": {"09:00"},
	}, resp.BookedSlots)
}

func TestExecute_FiltroCubreNoventaDias(t *testing.T) {
	av := &mockAvailabilityRepo{rows: []*domain.Availability{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00", SlotMinutes: 60},
	}}
	appts := &mockApptRepo{}
	uc := newTestUseCase(av, appts, time.Date(2026, 2, 1, 23, 59, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{LandingID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(42), appts.gotFilter.LandingRequestID)
	require.NotNil(t, appts.gotFilter.StartDate)
	require.NotNil(t, appts.gotFilter.EndDate)
	assert.Equal(t, "2026-02-01", appts.gotFilter.StartDate.Format(domain.DateFormat))
	assert.Equal(t, "2026-05-02", appts.gotFilter.EndDate.Format(domain.DateFormat))
	assert.False(t, appts.gotFilter.IncludeCancelled)
}

func TestResponse_JSONBlob(t *testing.T) {
	resp := &Response{
		Weekdays:    []int{0, 2},
		StartTime:   "09:00",
		EndTime:     "18:00",
		SlotMinutes: 60,
		BookedSlots: map[string][]string{"2026-02-02": {"10:00"}},
	}

	blob, err := resp.JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(blob), &decoded))
	assert.Contains(t, decoded, "weekdays")
	assert.Contains(t, decoded, "start_time")
	assert.Contains(t, decoded, "end_time")
	assert.Contains(t, decoded, "slot_minutes")
	assert.Contains(t, decoded, "booked_slots")
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}
