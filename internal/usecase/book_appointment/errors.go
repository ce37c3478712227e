package book_appointment

import "errors"

var (
	// ErrNameRequired возвращается, когда имя посетителя пустое после trim
	ErrNameRequired = errors.New("book_appointment: name is required")

	// ErrDateTimeRequired возвращается, когда не выбраны дата или время
	ErrDateTimeRequired = errors.New("book_appointment: date and time are required")

	// ErrInvalidDate возвращается, когда строка даты не парсится как ISO дата
	ErrInvalidDate = errors.New("book_appointment: invalid date")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("book_appointment: date is in the past")

	// ErrSlotTaken возвращается, когда слот (дата, время) уже занят
	ErrSlotTaken = errors.New("book_appointment: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
