package agendaconfig

import "errors"

var (
	// ErrLandingNotFound возвращается для несуществующего или чужого лендинга
	ErrLandingNotFound = errors.New("agendaconfig: landing not found")

	// ErrAlreadyConfigured возвращается, когда расписание уже задано:
	// после создания агенда статична
	ErrAlreadyConfigured = errors.New("agendaconfig: agenda already configured")

	// ErrNoWeekdays возвращается, когда не выбран ни один день недели
	ErrNoWeekdays = errors.New("agendaconfig: no weekdays selected")

	// ErrInvalidWeekday возвращается для дня недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("agendaconfig: invalid weekday")

	// ErrInvalidWindow возвращается, когда окно приёма пустое или перевёрнутое
	ErrInvalidWindow = errors.New("agendaconfig: invalid time window")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("agendaconfig: internal error")
)
