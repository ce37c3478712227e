package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/protap/TAP-LandingService/internal/domain"
)

type currentUserKey struct{}

// Auth middleware авторизации: явные охранники вместо проверок в обработчиках
type Auth struct {
	session SessionReader
	users   UserLoader
	logger  Logger
}

// NewAuth создает middleware авторизации
func NewAuth(session SessionReader, users UserLoader, logger Logger) *Auth {
	return &Auth{session: session, users: users, logger: logger}
}

// CurrentUser кладет авторизованного пользователя в контекст запроса.
// Анонимный запрос проходит дальше без пользователя; битая сессия
// (пользователь удален) игнорируется
func (a *Auth) CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := a.session.UserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.users.GetByID(r.Context(), userID)
		if err != nil {
			a.logger.Warn("CurrentUser: failed to load user id=%d: %v", userID, err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth пускает только авторизованных, остальных отправляет на логин
// с возвратом на исходную страницу
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пускает только администраторов.
// Авторизованный не-админ получает 403, аноним - редирект на логин
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin {
			a.logger.Warn("RequireAdmin: access denied for user")
			http.Error(w, "Acceso restringido", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// UserFromContext возвращает авторизованного пользователя или nil
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(currentUserKey{}).(*domain.User)
	return user
}
