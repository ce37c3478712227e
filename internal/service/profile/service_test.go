package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protap/TAP-LandingService/internal/domain"
	proRepo "github.com/protap/TAP-LandingService/internal/infra/storage/professional"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockProRepo struct {
	byUser   map[int64]*domain.Professional
	services map[int64]*domain.ProService // id -> услуга
	nextID   int64
	deleted  []int64
}

func newMockProRepo() *mockProRepo {
	return &mockProRepo{
		byUser:   map[int64]*domain.Professional{},
		services: map[int64]*domain.ProService{},
	}
}

func (m *mockProRepo) Create(_ context.Context, pro *domain.Professional) (*domain.Professional, error) {
	m.nextID++
	pro.ID = m.nextID
	m.byUser[pro.UserID] = pro
	return pro, nil
}

func (m *mockProRepo) GetByUserID(_ context.Context, userID int64) (*domain.Professional, error) {
	pro, ok := m.byUser[userID]
	if !ok {
		return nil, proRepo.ErrProfessionalNotFound
	}
	return pro, nil
}

func (m *mockProRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	for _, pro := range m.byUser {
		if pro.ID == id {
			return pro, nil
		}
	}
	return nil, proRepo.ErrProfessionalNotFound
}

func (m *mockProRepo) ListAll(_ context.Context) ([]*domain.Professional, error) {
	out := []*domain.Professional{}
	for _, pro := range m.byUser {
		out = append(out, pro)
	}
	return out, nil
}

func (m *mockProRepo) Update(_ context.Context, pro *domain.Professional) error {
	m.byUser[pro.UserID] = pro
	return nil
}

func (m *mockProRepo) CreateService(_ context.Context, svc *domain.ProService) (*domain.ProService, error) {
	m.nextID++
	svc.ID = m.nextID
	m.services[svc.ID] = svc
	return svc, nil
}

func (m *mockProRepo) GetService(_ context.Context, serviceID, professionalID int64) (*domain.ProService, error) {
	svc, ok := m.services[serviceID]
	if !ok || svc.ProfessionalID != professionalID {
		return nil, proRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (m *mockProRepo) ListByProfessional(_ context.Context, professionalID int64) ([]*domain.ProService, error) {
	out := []*domain.ProService{}
	for _, svc := range m.services {
		if svc.ProfessionalID == professionalID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *mockProRepo) UpdateService(_ context.Context, svc *domain.ProService) error {
	existing, ok := m.services[svc.ID]
	if !ok || existing.ProfessionalID != svc.ProfessionalID {
		return proRepo.ErrServiceNotFound
	}
	m.services[svc.ID] = svc
	return nil
}

func (m *mockProRepo) DeleteService(_ context.Context, serviceID, professionalID int64) error {
	svc, ok := m.services[serviceID]
	if !ok || svc.ProfessionalID != professionalID {
		return proRepo.ErrServiceNotFound
	}
	delete(m.services, serviceID)
	m.deleted = append(m.deleted, serviceID)
	return nil
}

func TestCreate_UnPerfilPorCuenta(t *testing.T) {
	repo := newMockProRepo()
	svc := NewService(repo, nopLogger{})

	pro, err := svc.Create(context.Background(), 1, &ProfessionalInput{
		Name:      " Carlos Pérez ",
		Specialty: "Derecho civil",
	})

	require.NoError(t, err)
	assert.Equal(t, "Carlos Pérez", pro.Name)
	require.NotNil(t, pro.Specialty)
	assert.Nil(t, pro.Phone)

	_, err = svc.Create(context.Background(), 1, &ProfessionalInput{Name: "Otro"})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestCreate_NombreObligatorio(t *testing.T) {
	svc := NewService(newMockProRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), 1, &ProfessionalInput{Name: "  "})

	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestUpdate_SinPerfil(t *testing.T) {
	svc := NewService(newMockProRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &ProfessionalInput{Name: "Carlos"})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCreateService_RequierePerfil(t *testing.T) {
	svc := NewService(newMockProRepo(), nopLogger{})

	_, err := svc.CreateService(context.Background(), 1, &ServiceInput{Title: "Consulta"})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestServiceCRUD_ConPropiedad(t *testing.T) {
	repo := newMockProRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), 1, &ProfessionalInput{Name: "Carlos"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, &ProfessionalInput{Name: "Eva"})
	require.NoError(t, err)

	created, err := svc.CreateService(context.Background(), 1, &ServiceInput{Title: "Consulta"})
	require.NoError(t, err)

	t.Run("propietario puede editar", func(t *testing.T) {
		updated, err := svc.UpdateService(context.Background(), created.ID, 1, &ServiceInput{Title: "Consulta inicial"})
		require.NoError(t, err)
		assert.Equal(t, "Consulta inicial", updated.Title)
	})

	t.Run("ajeno recibe forbidden", func(t *testing.T) {
		_, err := svc.UpdateService(context.Background(), created.ID, 2, &ServiceInput{Title: "Hack"})
		assert.ErrorIs(t, err, ErrForbidden)

		err = svc.DeleteService(context.Background(), created.ID, 2)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("propietario puede borrar", func(t *testing.T) {
		require.NoError(t, svc.DeleteService(context.Background(), created.ID, 1))
		assert.Contains(t, repo.deleted, created.ID)
	})
}

func TestListServices_SinPerfilDevuelveVacio(t *testing.T) {
	svc := NewService(newMockProRepo(), nopLogger{})

	services, err := svc.ListServices(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestDirectory_DevuelveTodos(t *testing.T) {
	repo := newMockProRepo()
	svc := NewService(repo, nopLogger{})
	_, err := svc.Create(context.Background(), 1, &ProfessionalInput{Name: "Carlos Pérez"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, &ProfessionalInput{Name: "Lucía Ramos"})
	require.NoError(t, err)

	pros, err := svc.Directory(context.Background())

	require.NoError(t, err)
	assert.Len(t, pros, 2)
}

func TestGetPublic_IncluyeCatalogo(t *testing.T) {
	repo := newMockProRepo()
	svc := NewService(repo, nopLogger{})
	pro, err := svc.Create(context.Background(), 1, &ProfessionalInput{Name: "Carlos Pérez"})
	require.NoError(t, err)
	_, err = svc.CreateService(context.Background(), 1, &ServiceInput{Title: "Consulta inicial"})
	require.NoError(t, err)

	card, err := svc.GetPublic(context.Background(), pro.ID)

	require.NoError(t, err)
	assert.Equal(t, "Carlos Pérez", card.Professional.Name)
	require.Len(t, card.Services, 1)
	assert.Equal(t, "Consulta inicial", card.Services[0].Title)
}

func TestGetPublic_InexistenteNotFound(t *testing.T) {
	svc := NewService(newMockProRepo(), nopLogger{})

	_, err := svc.GetPublic(context.Background(), 99999)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}
