package create_landing

import "errors"

var (
	// ErrInvalidSector возвращается при неизвестном секторе
	ErrInvalidSector = errors.New("create_landing: invalid sector")

	// ErrNameRequired возвращается, когда нет ни названия бизнеса, ни имени контакта
	ErrNameRequired = errors.New("create_landing: business or contact name is required")

	// ErrServiceRequired возвращается, когда ни одна услуга не имеет названия
	ErrServiceRequired = errors.New("create_landing: at least one service title is required")

	// ErrSlugExhausted возвращается, когда все попытки сгенерировать свободный slug исчерпаны
	ErrSlugExhausted = errors.New("create_landing: could not generate unique slug")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_landing: internal error")
)
