// Package auth обработчики регистрации, входа и выхода
package auth

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/api/middleware"
	"github.com/protap/TAP-LandingService/internal/service/accounts"
)

const (
	msgWelcome          = "¡Bienvenido a la comunidad!"
	msgLoggedIn         = "Sesión iniciada correctamente."
	msgLoggedOut        = "Sesión cerrada."
	msgBadCredentials   = "Email o contraseña incorrectos."
	msgInvalidEmail     = "Introduce un email válido."
	msgPasswordShort    = "La contraseña debe tener al menos 6 caracteres."
	msgPasswordMismatch = "Las contraseñas no coinciden."
	msgEmailTaken       = "Ese email ya está registrado."
	msgInternal         = "Ha ocurrido un error. Inténtalo de nuevo."
)

type Handler struct {
	accounts AccountsService
	renderer *handlers.Renderer
	session  *handlers.Session
	logger   Logger
}

func NewHandler(accounts AccountsService, renderer *handlers.Renderer, session *handlers.Session, logger Logger) *Handler {
	return &Handler{
		accounts: accounts,
		renderer: renderer,
		session:  session,
		logger:   logger,
	}
}

// RegisterForm GET /registro - форма регистрации.
// Скрытые поля claim/ref/comunidad приходят query-параметрами со страницы
// результата и просто прокидываются в POST
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFromContext(r.Context()) != nil {
		handlers.Redirect(w, r, "/")
		return
	}

	data := handlers.Page(w, r, h.session, "Registro", map[string]interface{}{
		"ClaimToken": r.URL.Query().Get("claim"),
		"RefSlug":    r.URL.Query().Get("ref"),
		"Comunidad":  r.URL.Query().Get("comunidad"),
	})
	if err := h.renderer.Render(w, http.StatusOK, "register", data); err != nil {
		h.logger.Error("GET /registro - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// Register POST /registro - создаёт аккаунт, привязывает ожидающий лендинг
// и сразу авторизует пользователя
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFromContext(r.Context()) != nil {
		handlers.Redirect(w, r, "/")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		handlers.Redirect(w, r, "/registro")
		return
	}

	user, err := h.accounts.Register(r.Context(), &accounts.RegisterInput{
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password2"),
		ClaimToken:      r.PostFormValue("claim"),
		RefSlug:         r.PostFormValue("ref"),
	})
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidEmail):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgInvalidEmail)
		case errors.Is(err, accounts.ErrPasswordTooShort):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgPasswordShort)
		case errors.Is(err, accounts.ErrPasswordMismatch):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgPasswordMismatch)
		case errors.Is(err, accounts.ErrEmailTaken):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgEmailTaken)
		default:
			h.logger.Error("POST /registro - service error: %v", err)
			h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		}
		handlers.Redirect(w, r, registerURL(r))
		return
	}

	if err := h.session.SetUser(w, r, user.ID); err != nil {
		h.logger.Error("POST /registro - session error: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	h.session.AddFlash(w, r, handlers.FlashSuccess, msgWelcome)

	if r.PostFormValue("comunidad") != "" {
		handlers.Redirect(w, r, "/dashboard")
		return
	}
	handlers.Redirect(w, r, "/")
}

// registerURL адрес формы регистрации с сохранёнными скрытыми полями
func registerURL(r *http.Request) string {
	query := url.Values{}
	for _, key := range []string{"claim", "ref", "comunidad"} {
		if v := r.PostFormValue(key); v != "" {
			query.Set(key, v)
		}
	}
	if len(query) == 0 {
		return "/registro"
	}
	return "/registro?" + query.Encode()
}

// LoginForm GET /login
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFromContext(r.Context()) != nil {
		handlers.Redirect(w, r, "/")
		return
	}

	data := handlers.Page(w, r, h.session, "Iniciar sesión", map[string]interface{}{
		"Next": r.URL.Query().Get("next"),
	})
	if err := h.renderer.Render(w, http.StatusOK, "login", data); err != nil {
		h.logger.Error("GET /login - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// Login POST /login - после входа возвращает на ?next= или на главную
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFromContext(r.Context()) != nil {
		handlers.Redirect(w, r, "/")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBadCredentials)
		handlers.Redirect(w, r, "/login")
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if !errors.Is(err, accounts.ErrInvalidCredentials) {
			h.logger.Error("POST /login - service error: %v", err)
		}
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBadCredentials)
		handlers.Redirect(w, r, loginURL(r))
		return
	}

	if err := h.session.SetUser(w, r, user.ID); err != nil {
		h.logger.Error("POST /login - session error: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	h.session.AddFlash(w, r, handlers.FlashSuccess, msgLoggedIn)

	handlers.Redirect(w, r, safeNext(r.URL.Query().Get("next")))
}

// loginURL адрес формы входа с сохранённым ?next=
func loginURL(r *http.Request) string {
	if next := r.URL.Query().Get("next"); next != "" {
		return "/login?next=" + url.QueryEscape(next)
	}
	return "/login"
}

// safeNext разрешает редирект только на относительные пути приложения
func safeNext(next string) string {
	if next == "" || next[0] != '/' || (len(next) > 1 && next[1] == '/') {
		return "/"
	}
	return next
}

// Logout GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Clear(w, r); err != nil {
		h.logger.Warn("GET /logout - session clear failed: %v", err)
	}
	h.session.AddFlash(w, r, handlers.FlashInfo, msgLoggedOut)
	handlers.Redirect(w, r, "/")
}
