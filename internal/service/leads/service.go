package leads

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/protap/TAP-LandingService/internal/domain"
	contactRepo "github.com/protap/TAP-LandingService/internal/infra/storage/contact"
	landingRepo "github.com/protap/TAP-LandingService/internal/infra/storage/landing"
	"github.com/protap/TAP-LandingService/pkg/ptr"
)

// ContactInput данные публичной формы контакта
type ContactInput struct {
	Slug      string
	Name      string
	Email     string
	Phone     string
	Message   string
	ServiceID string // "0", пусто или не число - "sin preferencia"
}

// OwnerStats сводка кабинета владельца
type OwnerStats struct {
	Landings       []*domain.LandingRequest
	Contacts12M    int
	ContactsTotal  int
	QRCount        int
	ServicesCount  int
	RecentContacts []*domain.Contact
}

// Service сервис лидов: приём контактов и сводка для кабинета
type Service struct {
	contactRepo  ContactRepository
	landingRepo  LandingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса лидов
func NewService(contactRepo ContactRepository, landingRepo LandingRepository, logger Logger) *Service {
	return &Service{
		contactRepo:  contactRepo,
		landingRepo:  landingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateContact сохраняет лид, оставленный на публичной странице
func (s *Service) CreateContact(ctx context.Context, input *ContactInput) (*domain.Contact, error) {
	landing, err := s.landingRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		if errors.Is(err, landingRepo.ErrLandingNotFound) {
			s.logger.Warn("CreateContact: landing slug=%s not found", input.Slug)
			return nil, ErrLandingNotFound
		}
		s.logger.Error("CreateContact: repository error for slug=%s: %v", input.Slug, err)
		return nil, fmt.Errorf("%w: CreateContact - repository error: %v", ErrInternal, err)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		s.logger.Warn("CreateContact: empty name for landing id=%d", landing.ID)
		return nil, ErrNameRequired
	}

	contact := &domain.Contact{
		RequestID: landing.ID,
		ServiceID: parseServiceID(input.ServiceID),
		Name:      name,
		Email:     optional(input.Email),
		Phone:     optional(input.Phone),
		Message:   optional(input.Message),
	}

	created, err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		s.logger.Error("CreateContact: failed to create contact for landing id=%d: %v", landing.ID, err)
		return nil, fmt.Errorf("%w: CreateContact - create: %v", ErrInternal, err)
	}

	s.logger.Info("CreateContact: created contact id=%d for landing id=%d", created.ID, landing.ID)
	return created, nil
}

// StatsByOwner собирает сводку кабинета: лендинги, счётчики лидов
// за 12 месяцев и за всё время, последние лиды
func (s *Service) StatsByOwner(ctx context.Context, userID int64) (*OwnerStats, error) {
	landings, err := s.landingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("StatsByOwner: failed to list landings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: StatsByOwner - list landings: %v", ErrInternal, err)
	}

	stats := &OwnerStats{
		Landings:       landings,
		QRCount:        len(landings),
		RecentContacts: []*domain.Contact{},
	}
	if len(landings) == 0 {
		return stats, nil
	}

	yearAgo := s.timeProvider.Now().AddDate(0, 0, -365)
	if stats.Contacts12M, err = s.contactRepo.CountByUser(ctx, userID, ptr.Ptr(yearAgo)); err != nil {
		s.logger.Error("StatsByOwner: failed to count 12m contacts for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: StatsByOwner - count contacts: %v", ErrInternal, err)
	}
	if stats.ContactsTotal, err = s.contactRepo.CountByUser(ctx, userID, nil); err != nil {
		s.logger.Error("StatsByOwner: failed to count contacts for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: StatsByOwner - count contacts: %v", ErrInternal, err)
	}
	if stats.ServicesCount, err = s.landingRepo.CountServicesByUser(ctx, userID); err != nil {
		s.logger.Error("StatsByOwner: failed to count services for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: StatsByOwner - count services: %v", ErrInternal, err)
	}
	if stats.RecentContacts, err = s.contactRepo.ListRecentByUser(ctx, userID, domain.RecentContactsLimit); err != nil {
		s.logger.Error("StatsByOwner: failed to list recent contacts for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: StatsByOwner - recent contacts: %v", ErrInternal, err)
	}

	return stats, nil
}

// FollowUpMessage составляет готовое сообщение владельцу для ответа лиду.
// Лид чужого лендинга недоступен
func (s *Service) FollowUpMessage(ctx context.Context, contactID, userID int64) (string, error) {
	contact, err := s.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("FollowUpMessage: contact id=%d not found", contactID)
			return "", ErrForbidden
		}
		s.logger.Error("FollowUpMessage: repository error for contact id=%d: %v", contactID, err)
		return "", fmt.Errorf("%w: FollowUpMessage - repository error: %v", ErrInternal, err)
	}

	landing, err := s.landingRepo.GetByID(ctx, contact.RequestID)
	if err != nil {
		s.logger.Error("FollowUpMessage: failed to get landing id=%d: %v", contact.RequestID, err)
		return "", fmt.Errorf("%w: FollowUpMessage - get landing: %v", ErrInternal, err)
	}
	if !landing.OwnedBy(userID) {
		s.logger.Warn("FollowUpMessage: access denied for user=%d to contact id=%d", userID, contactID)
		return "", ErrForbidden
	}

	serviceName := ""
	if contact.ServiceID != nil {
		svc, err := s.landingRepo.GetService(ctx, *contact.ServiceID)
		if err != nil {
			s.logger.Error("FollowUpMessage: failed to get service id=%d: %v", *contact.ServiceID, err)
			return "", fmt.Errorf("%w: FollowUpMessage - get service: %v", ErrInternal, err)
		}
		serviceName = svc.Title
	}

	return buildFollowUpMessage(landing, contact, serviceName), nil
}

// buildFollowUpMessage шаблон сообщения для ответа лиду
func buildFollowUpMessage(landing *domain.LandingRequest, contact *domain.Contact, serviceName string) string {
	yServicio := ""
	if serviceName != "" {
		yServicio = fmt.Sprintf(" y te interesó el servicio %q", serviceName)
	}

	profesional := ptr.Deref(landing.ContactName, "")
	if profesional == "" {
		profesional = landing.BusinessName
	}
	telefono := orDash(landing.Phone)
	emailProf := orDash(landing.Email)

	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"He visto que escaneaste mi QR%s.\n\n"+
			"Soy %s y me encantaría contarte cómo puedo ayudarte.\n\n"+
			"¿Tienes unos minutos esta semana para una llamada rápida?\n\n"+
			"Puedes contactarme en:\n"+
			"📞 %s\n"+
			"✉️ %s\n\n"+
			"¡Quedo a tu disposición!\n%s",
		contact.Name, yServicio, profesional, telefono, emailProf, profesional,
	)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

// parseServiceID разбирает необязательную ссылку на услугу.
// Ноль и нечисловые значения - "sin preferencia", никогда не ошибка
func parseServiceID(raw string) *int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	return &id
}

// optional превращает пустую строку формы в NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
