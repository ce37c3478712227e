package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/protap/TAP-LandingService/internal/auth"
	"github.com/protap/TAP-LandingService/internal/domain"
	userRepo "github.com/protap/TAP-LandingService/internal/infra/storage/user"
)

// minPasswordLength минимальная длина пароля при регистрации
const minPasswordLength = 6

// RegisterInput данные формы регистрации
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string

	// ClaimToken подписанный токен со страницы результата создания лендинга
	ClaimToken string
	// RefSlug slug непривязанного лендинга из ссылки ?ref=
	RefSlug string
}

// Service сервис аккаунтов: регистрация, вход, привязка лендингов
type Service struct {
	userRepo      UserRepository
	landingRepo   LandingRepository
	claimVerifier ClaimVerifier
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(
	userRepo UserRepository,
	landingRepo LandingRepository,
	claimVerifier ClaimVerifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		userRepo:      userRepo,
		landingRepo:   landingRepo,
		claimVerifier: claimVerifier,
		txManager:     txManager,
		logger:        logger,
	}
}

// Register регистрирует пользователя и привязывает ожидающий лендинг.
// Привязка по claim-токену имеет приоритет над ссылкой ?ref=; невалидный
// токен или чужой slug регистрацию не ломают - аккаунт создается без привязки
func (s *Service) Register(ctx context.Context, input *RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateRegisterInput(email, input); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{Email: email, PasswordHash: hash}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.userRepo.Create(txCtx, user)
		if err != nil {
			if errors.Is(err, userRepo.ErrEmailTaken) {
				return ErrEmailTaken
			}
			s.logger.Error("Register: failed to create user: %v", err)
			return fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
		}
		user = created

		s.claimPendingLanding(txCtx, user.ID, input.ClaimToken, input.RefSlug)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: successfully registered user id=%d", user.ID)
	return user, nil
}

// claimPendingLanding привязывает ожидающий лендинг к новому аккаунту.
// Любая неудача здесь не ошибка регистрации: токен мог истечь, лендинг -
// быть привязан другим аккаунтом
func (s *Service) claimPendingLanding(ctx context.Context, userID int64, claimToken, refSlug string) {
	if claimToken != "" {
		claims, err := s.claimVerifier.Verify(claimToken)
		if err != nil {
			s.logger.Warn("Register: invalid claim token for user=%d: %v", userID, err)
			return
		}
		if err := s.landingRepo.Claim(ctx, claims.LandingID, userID); err != nil {
			s.logger.Warn("Register: failed to claim landing id=%d for user=%d: %v", claims.LandingID, userID, err)
			return
		}
		s.logger.Info("Register: claimed landing id=%d for user=%d", claims.LandingID, userID)
		return
	}

	if refSlug != "" {
		if err := s.landingRepo.ClaimBySlug(ctx, refSlug, userID); err != nil {
			s.logger.Warn("Register: failed to claim landing slug=%s for user=%d: %v", refSlug, userID, err)
			return
		}
		s.logger.Info("Register: claimed landing slug=%s for user=%d", refSlug, userID)
	}
}

// Authenticate проверяет пару email/пароль.
// Несуществующий email и неверный пароль неразличимы для вызывающего
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn("Authenticate: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: user id=%d logged in", user.ID)
	return user, nil
}

// GetByID возвращает пользователя по ID (восстановление сессии)
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return user, nil
}

func validateRegisterInput(email string, input *RegisterInput) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if input.Password != input.PasswordConfirm {
		return ErrPasswordMismatch
	}
	return nil
}
