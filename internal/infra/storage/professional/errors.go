package professional

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профиль профессионала не найден
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит другому профилю
	ErrServiceNotFound = errors.New("professional.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("professional.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("professional.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("professional.repository: failed to scan row")
)
