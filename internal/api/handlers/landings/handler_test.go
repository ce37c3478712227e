package landings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/api"
	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/agendaconfig"
	landingsSvc "github.com/protap/TAP-LandingService/internal/service/landings"
	"github.com/protap/TAP-LandingService/internal/service/leads"
	bookAppointment "github.com/protap/TAP-LandingService/internal/usecase/book_appointment"
	createLanding "github.com/protap/TAP-LandingService/internal/usecase/create_landing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockCreateUC struct {
	resp *createLanding.Response
	err  error
	got  *createLanding.Request
}

func (m *mockCreateUC) Execute(_ context.Context, req *createLanding.Request) (*createLanding.Response, error) {
	m.got = req
	return m.resp, m.err
}

type mockBookUC struct {
	err error
	got *bookAppointment.Request
}

func (m *mockBookUC) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return &bookAppointment.Response{ID: 1, LandingID: req.LandingID}, nil
}

type mockLandings struct {
	profile *landingsSvc.PublicProfile
	err     error
}

func (m *mockLandings) GetBySlug(context.Context, string) (*landingsSvc.PublicProfile, error) {
	return m.profile, m.err
}

func (m *mockLandings) GetOwned(context.Context, int64, int64) (*landingsSvc.PublicProfile, error) {
	return m.profile, m.err
}

func (m *mockLandings) ListByOwner(context.Context, int64) ([]*domain.LandingRequest, error) {
	return nil, nil
}

type mockLeads struct {
	err error
	got *leads.ContactInput
}

func (m *mockLeads) CreateContact(_ context.Context, input *leads.ContactInput) (*domain.Contact, error) {
	m.got = input
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Contact{ID: 1, Name: input.Name}, nil
}

type mockAgenda struct {
	configureErr error
	got          *agendaconfig.ConfigureInput
}

func (m *mockAgenda) Configure(_ context.Context, input *agendaconfig.ConfigureInput) error {
	m.got = input
	return m.configureErr
}

func (m *mockAgenda) Get(context.Context, int64, int64) ([]*domain.Availability, error) {
	return nil, nil
}

func testRenderer(t *testing.T) *handlers.Renderer {
	t.Helper()
	renderer, err := handlers.NewRenderer(api.Templates)
	require.NoError(t, err)
	return renderer
}

func testSession() *handlers.Session {
	return handlers.NewSession("test-secret", "tap_session", 3600)
}

func testProfile() *landingsSvc.PublicProfile {
	return &landingsSvc.PublicProfile{
		Landing: &domain.LandingRequest{ID: 42, PublicSlug: "ana-garcia-x1y2", Sector: "abogatap"},
		Theme:   domain.SectorThemes["abogatap"],
	}
}

func newTestHandler(create *mockCreateUC, book *mockBookUC, lnd *mockLandings, lds *mockLeads, ag *mockAgenda, t *testing.T) *Handler {
	return NewHandler(create, book, lnd, lds, ag, testRenderer(t), testSession(), nopLogger{})
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCreate_AnonimoRedirigeConClaim(t *testing.T) {
	create := &mockCreateUC{resp: &createLanding.Response{
		ID:         42,
		PublicSlug: "ana-garcia-x1y2",
		ClaimToken: "tok123",
	}}
	h := newTestHandler(create, &mockBookUC{}, &mockLandings{}, &mockLeads{}, &mockAgenda{}, t)

	form := url.Values{
		"sector":          {"abogatap"},
		"contact_name":    {"Ana García"},
		"service_1_title": {"Consulta inicial"},
	}
	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/comenzar", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/resultado/ana-garcia-x1y2?claim=tok123", rec.Header().Get("Location"))

	require.NotNil(t, create.got)
	assert.Nil(t, create.got.UserID)
	assert.Equal(t, "Ana García", create.got.ContactName)
	require.Len(t, create.got.Services, 3)
	assert.Equal(t, "Consulta inicial", create.got.Services[0].Title)
}

func TestCreate_SectorInvalidoVuelveAlFormulario(t *testing.T) {
	create := &mockCreateUC{err: createLanding.ErrInvalidSector}
	h := newTestHandler(create, &mockBookUC{}, &mockLandings{}, &mockLeads{}, &mockAgenda{}, t)

	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/comenzar", url.Values{"sector": {"floristap"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/comenzar", rec.Header().Get("Location"))
}

func TestContact_GuardaLeadYRedirige(t *testing.T) {
	lds := &mockLeads{}
	h := newTestHandler(&mockCreateUC{}, &mockBookUC{}, &mockLandings{}, lds, &mockAgenda{}, t)

	form := url.Values{
		"name":       {"Carlos"},
		"email":      {"carlos@example.com"},
		"service_id": {"5"},
	}
	req := mux.SetURLVars(postForm("/p/ana-garcia-x1y2/contactar", form), map[string]string{"slug": "ana-garcia-x1y2"})
	rec := httptest.NewRecorder()
	h.Contact(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/p/ana-garcia-x1y2", rec.Header().Get("Location"))

	require.NotNil(t, lds.got)
	assert.Equal(t, "ana-garcia-x1y2", lds.got.Slug)
	assert.Equal(t, "Carlos", lds.got.Name)
	assert.Equal(t, "5", lds.got.ServiceID)
}

func TestContact_LandingDesconocidoDevuelve404(t *testing.T) {
	lds := &mockLeads{err: leads.ErrLandingNotFound}
	h := newTestHandler(&mockCreateUC{}, &mockBookUC{}, &mockLandings{}, lds, &mockAgenda{}, t)

	req := mux.SetURLVars(postForm("/p/nadie/contactar", url.Values{"name": {"Carlos"}}), map[string]string{"slug": "nadie"})
	rec := httptest.NewRecorder()
	h.Contact(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBook_SlotOcupadoRedirigeConAviso(t *testing.T) {
	book := &mockBookUC{err: bookAppointment.ErrSlotTaken}
	lnd := &mockLandings{profile: testProfile()}
	h := newTestHandler(&mockCreateUC{}, book, lnd, &mockLeads{}, &mockAgenda{}, t)

	form := url.Values{
		"name":      {"Lucía"},
		"appt_date": {"2026-09-15"},
		"appt_time": {"10:00"},
	}
	req := mux.SetURLVars(postForm("/p/ana-garcia-x1y2/cita", form), map[string]string{"slug": "ana-garcia-x1y2"})
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/p/ana-garcia-x1y2", rec.Header().Get("Location"))

	require.NotNil(t, book.got)
	assert.Equal(t, int64(42), book.got.LandingID)
	assert.Equal(t, "2026-09-15", book.got.Date)
	assert.Equal(t, "10:00", book.got.Time)
}

func TestBook_ReservaCorrectaRedirige(t *testing.T) {
	lnd := &mockLandings{profile: testProfile()}
	h := newTestHandler(&mockCreateUC{}, &mockBookUC{}, lnd, &mockLeads{}, &mockAgenda{}, t)

	form := url.Values{
		"name":      {"Lucía"},
		"appt_date": {"2026-09-15"},
		"appt_time": {"10:00"},
	}
	req := mux.SetURLVars(postForm("/p/ana-garcia-x1y2/cita", form), map[string]string{"slug": "ana-garcia-x1y2"})
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestConfigureAgenda_SinUsuarioRedirigeALogin(t *testing.T) {
	h := newTestHandler(&mockCreateUC{}, &mockBookUC{}, &mockLandings{}, &mockLeads{}, &mockAgenda{}, t)

	req := mux.SetURLVars(postForm("/mis-landings/42/agenda", url.Values{}), map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.ConfigureAgenda(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
