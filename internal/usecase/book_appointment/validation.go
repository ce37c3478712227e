package book_appointment

import (
	"strconv"
	"strings"
	"time"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// validateRequest проверяет форму в порядке показа ошибок пользователю:
// имя, наличие даты и времени, формат даты, дата не в прошлом
func validateRequest(req *Request, now time.Time) (time.Time, error) {
	if strings.TrimSpace(req.Name) == "" {
		return time.Time{}, ErrNameRequired
	}

	if req.Date == "" || req.Time == "" {
		return time.Time{}, ErrDateTimeRequired
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	// Обе даты приводим к полуночи UTC, чтобы сравнивать только календарные дни
	today, _ := time.Parse(domain.DateFormat, now.Format(domain.DateFormat))
	if date.Before(today) {
		return time.Time{}, ErrDateInPast
	}

	return date, nil
}

// parseServiceID разбирает необязательную ссылку на услугу.
// Ноль и нечисловые значения - "без услуги", никогда не ошибка
func parseServiceID(raw string) *int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	return &id
}
