package create_landing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/domain"
	landingRepo "github.com/protap/TAP-LandingService/internal/infra/storage/landing"
	"github.com/protap/TAP-LandingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLandingRepo struct {
	takenSlugs map[string]bool
	landing    *domain.LandingRequest
	services   []*domain.LandingService
	qrCode     string
	prompt     string
}

func (m *mockLandingRepo) Create(_ context.Context, req *domain.LandingRequest) (*domain.LandingRequest, error) {
	if m.takenSlugs[req.PublicSlug] {
		return nil, landingRepo.ErrSlugTaken
	}
	req.ID = 101
	m.landing = req
	return req, nil
}

func (m *mockLandingRepo) CreateService(_ context.Context, svc *domain.LandingService) (*domain.LandingService, error) {
	m.services = append(m.services, svc)
	return svc, nil
}

func (m *mockLandingRepo) UpdateGenerated(_ context.Context, _ int64, qrCode, prompt string) error {
	m.qrCode = qrCode
	m.prompt = prompt
	return nil
}

type staticPrompt struct{ out string }

func (s staticPrompt) Build(*domain.LandingRequest, []*domain.LandingService) string { return s.out }

type staticClaim struct{ token string }

func (s staticClaim) Issue(int64, string) (string, error) { return s.token, nil }

func newTestUseCase(repo *mockLandingRepo, slugs ...string) *UseCase {
	uc := NewUseCase(repo, staticPrompt{out: "prompt"}, staticClaim{token: "claim-token"},
		passthroughTx{}, "https://tap.example/", nopLogger{})

	i := 0
	uc.newSlug = func(int) (string, error) {
		slug := slugs[i%len(slugs)]
		i++
		return slug, nil
	}
	uc.encodeQR = func(content string, _ int) (string, error) { return "QR:" + content, nil }
	return uc
}

func validRequest() *Request {
	return &Request{
		Sector:      "abogatap",
		ContactName: " Ana García ",
		Phone:       "600123456",
		Services: []ServiceInput{
			{Title: "Herencias", Description: "Testamentos"},
			{Title: "  "},
			{Title: "Divorcios"},
		},
	}
}

func TestExecute_CreaLandingConServicios(t *testing.T) {
	repo := &mockLandingRepo{takenSlugs: map[string]bool{}}
	uc := newTestUseCase(repo, "abc12345xyz")

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "abc12345xyz", resp.PublicSlug)
	assert.Equal(t, "claim-token", resp.ClaimToken)

	require.NotNil(t, repo.landing)
	assert.Equal(t, "Ana García", repo.landing.BusinessName)
	assert.Equal(t, domain.LandingTypeB2B, repo.landing.LandingType)

	// Пара с пустым названием пропущена, порядок позиций формы сохранён
	require.Len(t, repo.services, 2)
	assert.Equal(t, "Herencias", repo.services[0].Title)
	assert.Equal(t, 0, repo.services[0].Order)
	assert.Equal(t, "Divorcios", repo.services[1].Title)
	assert.Equal(t, 2, repo.services[1].Order)
}

func TestExecute_QRCodificaURLPublica(t *testing.T) {
	repo := &mockLandingRepo{takenSlugs: map[string]bool{}}
	uc := newTestUseCase(repo, "abc12345xyz")

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "QR:https://tap.example/p/abc12345xyz", repo.qrCode)
	assert.Equal(t, "prompt", repo.prompt)
}

func TestExecute_ReintentaSlugOcupado(t *testing.T) {
	repo := &mockLandingRepo{takenSlugs: map[string]bool{"taken1": true, "taken2": true}}
	uc := newTestUseCase(repo, "taken1", "taken2", "free")

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "free", resp.PublicSlug)
}

func TestExecute_AgotaIntentosDeSlug(t *testing.T) {
	repo := &mockLandingRepo{takenSlugs: map[string]bool{"taken": true}}
	uc := newTestUseCase(repo, "taken")

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlugExhausted)
}

func TestExecute_UsuarioAutenticadoSinClaimToken(t *testing.T) {
	repo := &mockLandingRepo{takenSlugs: map[string]bool{}}
	uc := newTestUseCase(repo, "abc12345xyz")

	req := validRequest()
	req.UserID = ptr.Ptr(int64(9))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.ClaimToken)
	require.NotNil(t, repo.landing.UserID)
	assert.Equal(t, int64(9), *repo.landing.UserID)
}

func TestExecute_Validacion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "sector desconocido",
			mutate:  func(r *Request) { r.Sector = "peluqueriatap" },
			wantErr: ErrInvalidSector,
		},
		{
			name:    "sin nombre de contacto",
			mutate:  func(r *Request) { r.ContactName = "  " },
			wantErr: ErrNameRequired,
		},
		{
			name: "sin servicios con titulo",
			mutate: func(r *Request) {
				r.Services = []ServiceInput{{Title: " "}, {Description: "solo descripcion"}}
			},
			wantErr: ErrServiceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockLandingRepo{takenSlugs: map[string]bool{}}
			uc := newTestUseCase(repo, "abc12345xyz")

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.landing)
		})
	}
}

func TestExecute_ErrorDeQREsFatal(t *testing.T) {
	repo := &mockLandingRepo{takenSlugs: map[string]bool{}}
	uc := newTestUseCase(repo, "abc12345xyz")
	uc.encodeQR = func(string, int) (string, error) { return "", errors.New("png encode failed") }

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
