package landings

import "errors"

var (
	// ErrLandingNotFound возвращается для неизвестного slug, несуществующего id
	// или чужого лендинга - чужое от несуществующего не отличается
	ErrLandingNotFound = errors.New("landings: landing not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("landings: internal error")
)
