package domain

import "time"

// User зарегистрированный пользователь системы
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Professional профессиональный профиль пользователя (один на аккаунт)
type Professional struct {
	ID        int64
	UserID    int64
	Name      string
	Specialty *string
	Phone     *string
	Bio       *string
	CreatedAt time.Time
}

// ProService услуга из каталога профессионала (dashboard CRUD)
type ProService struct {
	ID             int64
	ProfessionalID int64
	Title          string
	Description    *string
	Price          *float64
	CreatedAt      time.Time
}
