package accounts

import "errors"

var (
	// ErrInvalidEmail возвращается при пустом или некорректном email
	ErrInvalidEmail = errors.New("accounts: invalid email")

	// ErrPasswordTooShort возвращается, когда пароль короче минимума
	ErrPasswordTooShort = errors.New("accounts: password is too short")

	// ErrPasswordMismatch возвращается, когда подтверждение пароля не совпадает
	ErrPasswordMismatch = errors.New("accounts: passwords do not match")

	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("accounts: email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("accounts: user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
