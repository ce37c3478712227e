package profile

import "errors"

var (
	// ErrNameRequired возвращается, когда имя профиля пустое
	ErrNameRequired = errors.New("profile: name is required")

	// ErrTitleRequired возвращается, когда название услуги пустое
	ErrTitleRequired = errors.New("profile: service title is required")

	// ErrProfileExists возвращается при повторном создании профиля
	ErrProfileExists = errors.New("profile: professional profile already exists")

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля
	ErrProfileNotFound = errors.New("profile: professional profile not found")

	// ErrForbidden возвращается при операции над чужой или несуществующей услугой
	ErrForbidden = errors.New("profile: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profile: internal error")
)
