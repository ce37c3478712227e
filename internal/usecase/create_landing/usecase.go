package create_landing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/protap/TAP-LandingService/internal/domain"
	landingRepo "github.com/protap/TAP-LandingService/internal/infra/storage/landing"
	"github.com/protap/TAP-LandingService/pkg/qr"
	"github.com/protap/TAP-LandingService/pkg/token"
)

// UseCase use case создания лендинга с QR-кодом и промптом
type UseCase struct {
	landingRepo   LandingRepository
	promptBuilder PromptBuilder
	claimIssuer   ClaimIssuer
	txManager     TransactionManager
	baseURL       string
	logger        Logger

	// Подменяются в тестах
	newSlug  func(n int) (string, error)
	encodeQR func(content string, size int) (string, error)
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	landingRepo LandingRepository,
	promptBuilder PromptBuilder,
	claimIssuer ClaimIssuer,
	txManager TransactionManager,
	baseURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		landingRepo:   landingRepo,
		promptBuilder: promptBuilder,
		claimIssuer:   claimIssuer,
		txManager:     txManager,
		baseURL:       strings.TrimRight(baseURL, "/"),
		logger:        logger,
		newSlug:       token.URLSafe,
		encodeQR:      qr.EncodeBase64PNG,
	}
}

// Execute выполняет use case создания лендинга.
// Slug генерируется случайным токеном с ограниченным числом повторов при
// коллизии; лендинг и его услуги сохраняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateLanding: sector=%s, services=%d", req.Sector, len(req.Services))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateLanding: validation failed: %v", err)
		return nil, err
	}

	services := collectServices(req.Services)

	var landing *domain.LandingRequest

	for attempt := 1; attempt <= domain.SlugMaxAttempts; attempt++ {
		slug, err := uc.newSlug(domain.SlugBytes)
		if err != nil {
			uc.logger.Error("CreateLanding: failed to generate slug: %v", err)
			return nil, fmt.Errorf("%w: failed to generate slug: %v", ErrInternal, err)
		}

		landing, err = uc.createWithSlug(ctx, req, slug, services)
		if err == nil {
			break
		}
		if errors.Is(err, landingRepo.ErrSlugTaken) {
			uc.logger.Warn("CreateLanding: slug collision on attempt %d/%d", attempt, domain.SlugMaxAttempts)
			if attempt == domain.SlugMaxAttempts {
				return nil, ErrSlugExhausted
			}
			continue
		}
		return nil, err
	}

	claimToken := ""
	if req.UserID == nil {
		var err error
		claimToken, err = uc.claimIssuer.Issue(landing.ID, landing.PublicSlug)
		if err != nil {
			uc.logger.Error("CreateLanding: failed to issue claim token: %v", err)
			return nil, fmt.Errorf("%w: failed to issue claim token: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateLanding: successfully created landing id=%d, slug=%s", landing.ID, landing.PublicSlug)

	return &Response{
		ID:         landing.ID,
		PublicSlug: landing.PublicSlug,
		ClaimToken: claimToken,
	}, nil
}

// createWithSlug сохраняет лендинг, его услуги и сгенерированные QR и промпт
// в одной транзакции. Коллизия slug возвращается как есть для повтора снаружи
func (uc *UseCase) createWithSlug(ctx context.Context, req *Request, slug string, services []*domain.LandingService) (*domain.LandingRequest, error) {
	contactName := strings.TrimSpace(req.ContactName)

	landing := &domain.LandingRequest{
		UserID:       req.UserID,
		PublicSlug:   slug,
		LandingType:  domain.LandingTypeB2B,
		Sector:       req.Sector,
		BusinessName: contactName,
		ContactName:  &contactName,
		Phone:        optional(req.Phone),
		Email:        optional(req.Email),
		LinkedIn:     optional(req.LinkedIn),
		Website:      optional(req.Website),
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.landingRepo.Create(txCtx, landing)
		if err != nil {
			if errors.Is(err, landingRepo.ErrSlugTaken) {
				return err
			}
			uc.logger.Error("CreateLanding: failed to create landing: %v", err)
			return fmt.Errorf("%w: failed to create landing: %v", ErrInternal, err)
		}
		landing = created

		for _, svc := range services {
			svc.RequestID = landing.ID
			if _, err := uc.landingRepo.CreateService(txCtx, svc); err != nil {
				uc.logger.Error("CreateLanding: failed to create service %q: %v", svc.Title, err)
				return fmt.Errorf("%w: failed to create service: %v", ErrInternal, err)
			}
		}

		// Ошибка кодирования QR фатальна: лендинг без QR-кода бесполезен
		qrCode, err := uc.encodeQR(uc.baseURL+"/p/"+landing.PublicSlug, qr.DefaultSize)
		if err != nil {
			uc.logger.Error("CreateLanding: failed to encode QR: %v", err)
			return fmt.Errorf("%w: failed to encode QR: %v", ErrInternal, err)
		}

		prompt := uc.promptBuilder.Build(landing, services)

		if err := uc.landingRepo.UpdateGenerated(txCtx, landing.ID, qrCode, prompt); err != nil {
			uc.logger.Error("CreateLanding: failed to save generated artifacts: %v", err)
			return fmt.Errorf("%w: failed to save generated artifacts: %v", ErrInternal, err)
		}
		landing.QRCode = &qrCode
		landing.GeneratedPrompt = &prompt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return landing, nil
}

// optional превращает пустую строку формы в NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
