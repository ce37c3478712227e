package contact

import "errors"

var (
	// ErrContactNotFound возвращается, когда лид не найден
	ErrContactNotFound = errors.New("contact.repository: contact not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("contact.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("contact.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("contact.repository: failed to scan row")
)
