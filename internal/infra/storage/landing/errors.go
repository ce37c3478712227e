package landing

import "errors"

var (
	// ErrLandingNotFound возвращается, когда лендинг не найден
	ErrLandingNotFound = errors.New("landing.repository: landing request not found")

	// ErrSlugTaken возвращается при коллизии публичного slug
	ErrSlugTaken = errors.New("landing.repository: public slug already taken")

	// ErrAlreadyClaimed возвращается при попытке привязать уже привязанный лендинг
	ErrAlreadyClaimed = errors.New("landing.repository: landing request already claimed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("landing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("landing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("landing.repository: failed to scan row")
)
