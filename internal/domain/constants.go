package domain

// Default availability values
const (
	DefaultSlotMinutes = 60
	DefaultStartTime   = "09:00"
	DefaultEndTime     = "18:00"
)

// Booking window
const (
	// BookingWindowDays окно бронирования: сегодня + 90 дней включительно
	BookingWindowDays = 90
)

// Business validation constants
const (
	// MaxLandingServices максимум услуг в форме создания лендинга
	MaxLandingServices = 3

	// SlugBytes число случайных байт в публичном slug (11 символов base64)
	SlugBytes = 8

	// SlugMaxAttempts попыток генерации slug при коллизии
	SlugMaxAttempts = 3
)

// DateFormat формат дат "YYYY-MM-DD"
const DateFormat = "2006-01-02"

// Dashboard constants
const (
	RecentContactsLimit = 20
	AdminRecentLimit    = 10
	AdminOrdersPerPage  = 25
)
