package book_appointment

import (
	"time"

	"github.com/protap/TAP-LandingService/pkg/types"
)

// Request модель запроса на запись к профессионалу.
// Строковые поля приходят из публичной формы как есть: разбор и валидация —
// зона ответственности usecase
type Request struct {
	LandingID int64  // ID лендинга, на котором открыта форма
	Name      string // Имя посетителя
	Email     string // Email (опционально)
	Phone     string // Телефон (опционально)
	Date      string // Дата в формате ISO "YYYY-MM-DD"
	Time      string // Время "HH:MM"
	ServiceID string // ID услуги; "0", пусто или не число - без услуги
	Message   string // Комментарий (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	LandingID int64
	Name      string
	Date      time.Time
	Time      types.TimeString
	Status    string
	CreatedAt time.Time
}
