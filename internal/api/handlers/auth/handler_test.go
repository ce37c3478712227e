package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/api"
	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/accounts"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockAccounts struct {
	registerErr error
	authErr     error
	user        *domain.User
	registered  *accounts.RegisterInput
}

func (m *mockAccounts) Register(_ context.Context, input *accounts.RegisterInput) (*domain.User, error) {
	m.registered = input
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.user, nil
}

func (m *mockAccounts) Authenticate(context.Context, string, string) (*domain.User, error) {
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.user, nil
}

func newTestHandler(t *testing.T, svc *mockAccounts) *Handler {
	t.Helper()
	renderer, err := handlers.NewRenderer(api.Templates)
	require.NoError(t, err)
	session := handlers.NewSession("test-secret", "tap_session", 3600)
	return NewHandler(svc, renderer, session, nopLogger{})
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegister_ComunidadRedirigeADashboard(t *testing.T) {
	svc := &mockAccounts{user: &domain.User{ID: 5, Email: "ana@example.com"}}
	h := newTestHandler(t, svc)

	form := url.Values{
		"email":     {"ana@example.com"},
		"password":  {"secreta"},
		"password2": {"secreta"},
		"claim":     {"tok123"},
		"comunidad": {"1"},
	}
	rec := httptest.NewRecorder()
	h.Register(rec, postForm("/registro", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	require.NotNil(t, svc.registered)
	assert.Equal(t, "tok123", svc.registered.ClaimToken)

	// Авторизация сохранена в cookie
	assert.NotEmpty(t, rec.Header().Values("Set-Cookie"))
}

func TestRegister_SinComunidadRedirigeAHome(t *testing.T) {
	svc := &mockAccounts{user: &domain.User{ID: 5}}
	h := newTestHandler(t, svc)

	form := url.Values{
		"email":     {"ana@example.com"},
		"password":  {"secreta"},
		"password2": {"secreta"},
	}
	rec := httptest.NewRecorder()
	h.Register(rec, postForm("/registro", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRegister_EmailOcupadoVuelveAlFormulario(t *testing.T) {
	svc := &mockAccounts{registerErr: accounts.ErrEmailTaken}
	h := newTestHandler(t, svc)

	form := url.Values{
		"email":     {"ana@example.com"},
		"password":  {"secreta"},
		"password2": {"secreta"},
		"ref":       {"ana-garcia-x1y2"},
	}
	rec := httptest.NewRecorder()
	h.Register(rec, postForm("/registro", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/registro?ref=ana-garcia-x1y2", rec.Header().Get("Location"))
}

func TestLogin_CredencialesInvalidasVuelveALogin(t *testing.T) {
	svc := &mockAccounts{authErr: accounts.ErrInvalidCredentials}
	h := newTestHandler(t, svc)

	form := url.Values{"email": {"ana@example.com"}, "password": {"mala"}}
	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login?next=%2Fdashboard", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rec.Header().Get("Location"))
}

func TestLogin_RespetaNextRelativo(t *testing.T) {
	svc := &mockAccounts{user: &domain.User{ID: 5}}
	h := newTestHandler(t, svc)

	form := url.Values{"email": {"ana@example.com"}, "password": {"secreta"}}
	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login?next=%2Fmis-landings", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/mis-landings", rec.Header().Get("Location"))
}

func TestLogin_IgnoraNextExterno(t *testing.T) {
	svc := &mockAccounts{user: &domain.User{ID: 5}}
	h := newTestHandler(t, svc)

	form := url.Values{"email": {"ana@example.com"}, "password": {"secreta"}}
	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login?next=%2F%2Fevil.example.com", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
