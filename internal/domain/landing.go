package domain

import "time"

// LandingType тип лендинга
type LandingType string

const (
	LandingTypeB2B LandingType = "b2b"
	LandingTypeB2C LandingType = "b2c"
)

// LandingRequest публичный профиль профессионала
// Создается анонимно; user_id заполняется при регистрации (claim)
type LandingRequest struct {
	ID          int64
	UserID      *int64 // nil, пока профиль не привязан к аккаунту
	PublicSlug  string
	LandingType LandingType
	Sector      string
	BusinessName string
	Description string
	Location    string

	// Контактные поля (B2B)
	ContactName *string
	Phone       *string
	Email       *string
	LinkedIn    *string
	Website     *string

	GeneratedPrompt *string
	QRCode          *string // base64 PNG

	CreatedAt time.Time
}

// IsB2B возвращает true для B2B лендинга
func (r *LandingRequest) IsB2B() bool {
	return r.LandingType == LandingTypeB2B
}

// IsClaimed возвращает true, если профиль привязан к аккаунту
func (r *LandingRequest) IsClaimed() bool {
	return r.UserID != nil
}

// OwnedBy возвращает true, если профиль принадлежит пользователю
func (r *LandingRequest) OwnedBy(userID int64) bool {
	return r.UserID != nil && *r.UserID == userID
}

// DisplayName имя для подстановки в промпт и сообщения
func (r *LandingRequest) DisplayName() string {
	if r.BusinessName != "" {
		return r.BusinessName
	}
	if r.ContactName != nil {
		return *r.ContactName
	}
	return ""
}

// LandingService услуга, предлагаемая на лендинге
type LandingService struct {
	ID          int64
	RequestID   int64
	Title       string
	Description *string
	Order       int
}

// LandingsFilter фильтр для админского списка лендингов
type LandingsFilter struct {
	LandingType *LandingType // nil - все типы
	Sector      *string      // nil - все секторы
	Page        int          // 1-based
	PerPage     int
}
