package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени "HH:MM" (24 часа)
const timeLayout = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString время суток в формате "HH:MM" (например, "09:30")
// Хранится в БД как текст, сравнивается лексикографически
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывая дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат времени.
// Допускается только каноническая форма "HH:MM": лексикографическое
// сравнение требует ведущих нулей, поэтому "9:00" отклоняется
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil || parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// parse возвращает время как time.Time на нулевой дате
func (t TimeString) parse() (time.Time, error) {
	return time.Parse(timeLayout, string(t))
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через minutes минут
// Переход через полночь не поддерживается - возвращает ошибку
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	added := parsed.Add(time.Duration(minutes) * time.Minute)
	if added.Day() != parsed.Day() {
		return "", fmt.Errorf("types: %q + %d minutes crosses midnight", string(t), minutes)
	}

	return TimeString(added.Format(timeLayout)), nil
}

// MinutesUntil возвращает число минут от t до other (отрицательное, если other раньше)
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.parse()
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	to, err := other.parse()
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(other))
	}
	return int(to.Sub(from) / time.Minute), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
	return nil
}
