package public

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/api"
	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/domain"
	landingsSvc "github.com/protap/TAP-LandingService/internal/service/landings"
	profileSvc "github.com/protap/TAP-LandingService/internal/service/profile"
	getAgenda "github.com/protap/TAP-LandingService/internal/usecase/get_agenda"
	"github.com/protap/TAP-LandingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockLandings struct {
	profile *landingsSvc.PublicProfile
	err     error
}

func (m *mockLandings) GetBySlug(context.Context, string) (*landingsSvc.PublicProfile, error) {
	return m.profile, m.err
}

type mockAgenda struct {
	resp *getAgenda.Response
}

func (m *mockAgenda) Execute(context.Context, *getAgenda.Request) (*getAgenda.Response, error) {
	return m.resp, nil
}

type mockProfessionals struct {
	pros []*domain.Professional
	card *profileSvc.PublicCard
	err  error
}

func (m *mockProfessionals) Directory(context.Context) ([]*domain.Professional, error) {
	return m.pros, m.err
}

func (m *mockProfessionals) GetPublic(context.Context, int64) (*profileSvc.PublicCard, error) {
	return m.card, m.err
}

func newTestHandler(t *testing.T, lnd *mockLandings, agenda *mockAgenda) *Handler {
	t.Helper()
	return newTestHandlerWithPros(t, lnd, agenda, &mockProfessionals{})
}

func newTestHandlerWithPros(t *testing.T, lnd *mockLandings, agenda *mockAgenda, pros *mockProfessionals) *Handler {
	t.Helper()
	renderer, err := handlers.NewRenderer(api.Templates)
	require.NoError(t, err)
	session := handlers.NewSession("test-secret", "tap_session", 3600)
	return NewHandler(lnd, agenda, pros, renderer, session, nopLogger{})
}

func testProfile() *landingsSvc.PublicProfile {
	name := "Ana García"
	return &landingsSvc.PublicProfile{
		Landing: &domain.LandingRequest{
			ID:          42,
			PublicSlug:  "ana-garcia-x1y2",
			Sector:      "abogatap",
			ContactName: &name,
		},
		Theme: domain.SectorThemes["abogatap"],
	}
}

func getWithSlug(target, slug string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return mux.SetURLVars(req, map[string]string{"slug": slug})
}

func TestProfile_MuestraPaginaPublica(t *testing.T) {
	h := newTestHandler(t, &mockLandings{profile: testProfile()}, &mockAgenda{})

	rec := httptest.NewRecorder()
	h.Profile(rec, getWithSlug("/p/ana-garcia-x1y2", "ana-garcia-x1y2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana García")
}

func TestProfile_ConAgendaIncluyeCalendario(t *testing.T) {
	agenda := &mockAgenda{resp: &getAgenda.Response{
		Weekdays:    []int{0, 2},
		StartTime:   "09:00",
		EndTime:     "18:00",
		SlotMinutes: 60,
		BookedSlots: map[string][]string{},
	}}
	h := newTestHandler(t, &mockLandings{profile: testProfile()}, agenda)

	rec := httptest.NewRecorder()
	h.Profile(rec, getWithSlug("/p/ana-garcia-x1y2", "ana-garcia-x1y2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agenda-data")
	assert.Contains(t, rec.Body.String(), "slot_minutes")
}

func TestProfile_SlugDesconocidoDevuelve404(t *testing.T) {
	h := newTestHandler(t, &mockLandings{err: landingsSvc.ErrLandingNotFound}, &mockAgenda{})

	rec := httptest.NewRecorder()
	h.Profile(rec, getWithSlug("/p/nadie", "nadie"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfessionals_ListaCatalogo(t *testing.T) {
	pros := &mockProfessionals{pros: []*domain.Professional{
		{ID: 1, Name: "Carlos Pérez", Specialty: ptr.Ptr("Derecho laboral")},
		{ID: 2, Name: "Lucía Ramos"},
	}}
	h := newTestHandlerWithPros(t, &mockLandings{}, &mockAgenda{}, pros)

	rec := httptest.NewRecorder()
	h.Professionals(rec, httptest.NewRequest(http.MethodGet, "/profesionales", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Carlos Pérez")
	assert.Contains(t, rec.Body.String(), "Derecho laboral")
	assert.Contains(t, rec.Body.String(), "/profesionales/2")
}

func TestProfessionalDetail_MuestraCardConServicios(t *testing.T) {
	pros := &mockProfessionals{card: &profileSvc.PublicCard{
		Professional: &domain.Professional{ID: 1, Name: "Carlos Pérez", Bio: ptr.Ptr("20 años de experiencia")},
		Services:     []*domain.ProService{{ID: 3, Title: "Consulta inicial", Price: ptr.Ptr(50.0)}},
	}}
	h := newTestHandlerWithPros(t, &mockLandings{}, &mockAgenda{}, pros)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profesionales/1", nil)
	h.ProfessionalDetail(rec, mux.SetURLVars(req, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Carlos Pérez")
	assert.Contains(t, rec.Body.String(), "Consulta inicial")
	assert.Contains(t, rec.Body.String(), "50.00")
}

func TestProfessionalDetail_InexistenteDevuelve404(t *testing.T) {
	pros := &mockProfessionals{err: profileSvc.ErrProfileNotFound}
	h := newTestHandlerWithPros(t, &mockLandings{}, &mockAgenda{}, pros)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profesionales/99999", nil)
	h.ProfessionalDetail(rec, mux.SetURLVars(req, map[string]string{"id": "99999"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPaginasEstaticas(t *testing.T) {
	h := newTestHandler(t, &mockLandings{}, &mockAgenda{})

	for path, handle := range map[string]http.HandlerFunc{
		"/about":    h.About,
		"/contacto": h.Contacto,
	} {
		rec := httptest.NewRecorder()
		handle(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestResult_IncluyeClaimDelQuery(t *testing.T) {
	h := newTestHandler(t, &mockLandings{profile: testProfile()}, &mockAgenda{})

	rec := httptest.NewRecorder()
	h.Result(rec, getWithSlug("/resultado/ana-garcia-x1y2?claim=tok123", "ana-garcia-x1y2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tok123")
}
