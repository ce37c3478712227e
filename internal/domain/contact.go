package domain

import "time"

// Contact лид, оставленный посетителем публичной страницы
type Contact struct {
	ID        int64
	RequestID int64
	ServiceID *int64 // nil - "sin preferencia"
	Name      string
	Email     *string
	Phone     *string
	Message   *string
	CreatedAt time.Time
}
