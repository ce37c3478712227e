package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/api"
	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/api/middleware"
	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/leads"
	"github.com/protap/TAP-LandingService/internal/service/profile"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockLeads struct {
	stats      *leads.OwnerStats
	message    string
	messageErr error
}

func (m *mockLeads) StatsByOwner(context.Context, int64) (*leads.OwnerStats, error) {
	return m.stats, nil
}

func (m *mockLeads) FollowUpMessage(context.Context, int64, int64) (string, error) {
	if m.messageErr != nil {
		return "", m.messageErr
	}
	return m.message, nil
}

type mockProfile struct {
	professional *domain.Professional
	services     []*domain.ProService
}

func (m *mockProfile) Get(context.Context, int64) (*domain.Professional, error) {
	if m.professional == nil {
		return nil, profile.ErrProfileNotFound
	}
	return m.professional, nil
}

func (m *mockProfile) Create(_ context.Context, _ int64, input *profile.ProfessionalInput) (*domain.Professional, error) {
	return &domain.Professional{ID: 1, Name: input.Name}, nil
}

func (m *mockProfile) Update(_ context.Context, _ int64, input *profile.ProfessionalInput) (*domain.Professional, error) {
	return &domain.Professional{ID: 1, Name: input.Name}, nil
}

func (m *mockProfile) ListServices(context.Context, int64) ([]*domain.ProService, error) {
	return m.services, nil
}

func (m *mockProfile) CreateService(_ context.Context, _ int64, input *profile.ServiceInput) (*domain.ProService, error) {
	return &domain.ProService{ID: 1, Title: input.Title}, nil
}

func (m *mockProfile) GetService(context.Context, int64, int64) (*domain.ProService, error) {
	return nil, profile.ErrForbidden
}

func (m *mockProfile) UpdateService(context.Context, int64, int64, *profile.ServiceInput) (*domain.ProService, error) {
	return nil, profile.ErrForbidden
}

func (m *mockProfile) DeleteService(context.Context, int64, int64) error {
	return profile.ErrForbidden
}

func newTestHandler(t *testing.T, lds *mockLeads, prof *mockProfile) *Handler {
	t.Helper()
	renderer, err := handlers.NewRenderer(api.Templates)
	require.NoError(t, err)
	session := handlers.NewSession("test-secret", "tap_session", 3600)
	return NewHandler(lds, prof, renderer, session, nopLogger{})
}

func withUser(r *http.Request, user *domain.User) *http.Request {
	auth := middleware.NewAuth(stubSession{user.ID}, stubUsers{user}, nopLogger{})
	var out *http.Request
	auth.CurrentUser(http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
		out = req
	})).ServeHTTP(httptest.NewRecorder(), r)
	return out
}

type stubSession struct{ id int64 }

func (s stubSession) UserID(*http.Request) (int64, bool) { return s.id, true }

type stubUsers struct{ user *domain.User }

func (s stubUsers) GetByID(context.Context, int64) (*domain.User, error) { return s.user, nil }

func TestMensaje_DevuelveJSONConMensaje(t *testing.T) {
	lds := &mockLeads{message: "Hola Carlos,\n\nHe visto que escaneaste mi QR."}
	h := newTestHandler(t, lds, &mockProfile{})

	req := withUser(httptest.NewRequest(http.MethodGet, "/dashboard/mensaje/9", nil), &domain.User{ID: 5})
	req = mux.SetURLVars(req, map[string]string{"id": "9"})
	rec := httptest.NewRecorder()
	h.Mensaje(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload["message"], "Hola Carlos")
}

func TestMensaje_LeadAjenoProhibido(t *testing.T) {
	lds := &mockLeads{messageErr: leads.ErrForbidden}
	h := newTestHandler(t, lds, &mockProfile{})

	req := withUser(httptest.NewRequest(http.MethodGet, "/dashboard/mensaje/9", nil), &domain.User{ID: 5})
	req = mux.SetURLVars(req, map[string]string{"id": "9"})
	rec := httptest.NewRecorder()
	h.Mensaje(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIndex_RinderizaResumen(t *testing.T) {
	lds := &mockLeads{stats: &leads.OwnerStats{
		Landings:       []*domain.LandingRequest{{ID: 42, PublicSlug: "ana-x1", Sector: "abogatap"}},
		Contacts12M:    3,
		ContactsTotal:  7,
		QRCount:        1,
		ServicesCount:  2,
		RecentContacts: []*domain.Contact{},
	}}
	h := newTestHandler(t, lds, &mockProfile{})

	req := withUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), &domain.User{ID: 5})
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")
}

func TestCompletion_CuentaPasosHechos(t *testing.T) {
	phone := "+34600111222"
	landing := &domain.LandingRequest{ID: 1, Phone: &phone}

	pct, steps := completion([]*domain.LandingRequest{landing}, 0)

	assert.Equal(t, 40, pct) // QR creado + teléfono
	assert.Len(t, steps, 5)
	assert.True(t, steps[0].Done)
	assert.True(t, steps[1].Done)
	assert.False(t, steps[3].Done)
}

func TestCompletion_SinLandingsSoloEnlaceCrear(t *testing.T) {
	pct, steps := completion(nil, 0)

	assert.Equal(t, 0, pct)
	assert.Equal(t, "/comenzar", steps[0].URL)
}
