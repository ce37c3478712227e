package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionUserKey = "user_id"

	// FlashSuccess категории flash-сообщений, совпадают с CSS-классами
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Flash всплывающее сообщение после редиректа
type Flash struct {
	Category string
	Message  string
}

// Session cookie-сессия: авторизация и flash-сообщения
type Session struct {
	store *sessions.CookieStore
	name  string
}

// NewSession создает менеджер cookie-сессий
func NewSession(secret, cookieName string, maxAge int) *Session {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Session{store: store, name: cookieName}
}

// UserID возвращает ID авторизованного пользователя из сессии
func (s *Session) UserID(r *http.Request) (int64, bool) {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values[sessionUserKey].(int64)
	return id, ok
}

// SetUser сохраняет авторизацию в сессии
func (s *Session) SetUser(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, _ := s.store.Get(r, s.name)
	session.Values[sessionUserKey] = userID
	return session.Save(r, w)
}

// Clear снимает авторизацию, не трогая остальную сессию:
// flash-сообщение "сессия закрыта" должно пережить логаут
func (s *Session) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, s.name)
	delete(session.Values, sessionUserKey)
	return session.Save(r, w)
}

// AddFlash добавляет flash-сообщение, которое покажется после редиректа
func (s *Session) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := s.store.Get(r, s.name)
	session.AddFlash(message, category)
	_ = session.Save(r, w)
}

// Flashes забирает и очищает накопленные flash-сообщения
func (s *Session) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return nil
	}

	var flashes []Flash
	for _, category := range []string{FlashSuccess, FlashDanger, FlashInfo} {
		for _, msg := range session.Flashes(category) {
			if text, ok := msg.(string); ok {
				flashes = append(flashes, Flash{Category: category, Message: text})
			}
		}
	}
	if len(flashes) > 0 {
		_ = session.Save(r, w)
	}
	return flashes
}
