package create_landing

// ServiceInput пара (название, описание) услуги из формы.
// Пары с пустым названием игнорируются
type ServiceInput struct {
	Title       string
	Description string
}

// Request модель запроса на создание лендинга
type Request struct {
	UserID      *int64 // nil для анонимного посетителя
	Sector      string
	ContactName string
	Phone       string
	Email       string
	LinkedIn    string
	Website     string
	Services    []ServiceInput // до трёх пар из формы
}

// Response модель ответа с созданным лендингом
type Response struct {
	ID         int64
	PublicSlug string

	// ClaimToken подписанный токен для привязки анонимного лендинга
	// к аккаунту при последующей регистрации. Пустой, если лендинг
	// создан уже авторизованным пользователем
	ClaimToken string
}
