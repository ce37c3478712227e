package leads

import "errors"

var (
	// ErrNameRequired возвращается, когда имя в форме контакта пустое
	ErrNameRequired = errors.New("leads: name is required")

	// ErrLandingNotFound возвращается для неизвестного slug
	ErrLandingNotFound = errors.New("leads: landing not found")

	// ErrContactNotFound возвращается, когда лид не найден
	ErrContactNotFound = errors.New("leads: contact not found")

	// ErrForbidden возвращается при доступе к чужому лиду
	ErrForbidden = errors.New("leads: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("leads: internal error")
)
