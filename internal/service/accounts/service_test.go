package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/auth"
	"github.com/protap/TAP-LandingService/internal/domain"
	userRepo "github.com/protap/TAP-LandingService/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	m.nextID++
	user.ID = m.nextID
	m.byEmail[user.Email] = user
	return user, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type mockLandingRepo struct {
	claimedID   *int64
	claimedSlug string
	forUser     int64
}

func (m *mockLandingRepo) Claim(_ context.Context, id, userID int64) error {
	m.claimedID = &id
	m.forUser = userID
	return nil
}

func (m *mockLandingRepo) ClaimBySlug(_ context.Context, slug string, userID int64) error {
	m.claimedSlug = slug
	m.forUser = userID
	return nil
}

func newTestService(users *mockUserRepo, landings *mockLandingRepo, tokens *auth.ClaimTokens) *Service {
	return NewService(users, landings, tokens, passthroughTx{}, nopLogger{})
}

func claimTokens(t *testing.T) *auth.ClaimTokens {
	t.Helper()
	return auth.NewClaimTokens("test-secret", 72*time.Hour)
}

func TestRegister_CreaUsuario(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{}}
	svc := newTestService(users, &mockLandingRepo{}, claimTokens(t))

	user, err := svc.Register(context.Background(), &RegisterInput{
		Email:           "  Ana@Example.com ",
		Password:        "secreto1",
		PasswordConfirm: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "secreto1", user.PasswordHash)
}

func TestRegister_Validacion(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "email vacio",
			input:   RegisterInput{Email: " ", Password: "secreto1", PasswordConfirm: "secreto1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email sin arroba",
			input:   RegisterInput{Email: "ana.example.com", Password: "secreto1", PasswordConfirm: "secreto1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password corta",
			input:   RegisterInput{Email: "ana@example.com", Password: "corta", PasswordConfirm: "corta"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "passwords distintas",
			input:   RegisterInput{Email: "ana@example.com", Password: "secreto1", PasswordConfirm: "secreto2"},
			wantErr: ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepo{byEmail: map[string]*domain.User{}}
			svc := newTestService(users, &mockLandingRepo{}, claimTokens(t))

			_, err := svc.Register(context.Background(), &tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, users.byEmail)
		})
	}
}

func TestRegister_EmailOcupado(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"ana@example.com": {ID: 1, Email: "ana@example.com"},
	}}
	svc := newTestService(users, &mockLandingRepo{}, claimTokens(t))

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email: "ana@example.com", Password: "secreto1", PasswordConfirm: "secreto1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_VinculaPorClaimToken(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{}}
	landings := &mockLandingRepo{}
	tokens := claimTokens(t)
	svc := newTestService(users, landings, tokens)

	claimToken, err := tokens.Issue(42, "slug42")
	require.NoError(t, err)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Email: "ana@example.com", Password: "secreto1", PasswordConfirm: "secreto1",
		ClaimToken: claimToken,
		RefSlug:    "otro-slug", // токен имеет приоритет
	})

	require.NoError(t, err)
	require.NotNil(t, landings.claimedID)
	assert.Equal(t, int64(42), *landings.claimedID)
	assert.Equal(t, user.ID, landings.forUser)
	assert.Empty(t, landings.claimedSlug)
}

func TestRegister_TokenInvalidoNoRompeRegistro(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{}}
	landings := &mockLandingRepo{}
	svc := newTestService(users, landings, claimTokens(t))

	user, err := svc.Register(context.Background(), &RegisterInput{
		Email: "ana@example.com", Password: "secreto1", PasswordConfirm: "secreto1",
		ClaimToken: "no-es-un-jwt",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Nil(t, landings.claimedID)
}

func TestRegister_VinculaPorRefSlug(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{}}
	landings := &mockLandingRepo{}
	svc := newTestService(users, landings, claimTokens(t))

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email: "ana@example.com", Password: "secreto1", PasswordConfirm: "secreto1",
		RefSlug: "slug42",
	})

	require.NoError(t, err)
	assert.Equal(t, "slug42", landings.claimedSlug)
}

func TestAuthenticate(t *testing.T) {
	hash, err := auth.HashPassword("secreto1")
	require.NoError(t, err)

	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"ana@example.com": {ID: 1, Email: "ana@example.com", PasswordHash: hash},
	}}
	svc := newTestService(users, &mockLandingRepo{}, claimTokens(t))

	t.Run("credenciales correctas", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "Ana@Example.com", "secreto1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("password incorrecta", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "ana@example.com", "otra")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("email desconocido", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nadie@example.com", "secreto1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
