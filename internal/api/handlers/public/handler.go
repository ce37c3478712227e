// Package public обработчики публичных страниц: главная, профиль по slug,
// страница результата с QR-кодом, каталог профессионалов
package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/protap/TAP-LandingService/internal/api/handlers"
	landingsSvc "github.com/protap/TAP-LandingService/internal/service/landings"
	profileSvc "github.com/protap/TAP-LandingService/internal/service/profile"
	getAgenda "github.com/protap/TAP-LandingService/internal/usecase/get_agenda"
)

const (
	msgNotFound = "Página no encontrada."
)

type Handler struct {
	landings      LandingsService
	agenda        AgendaUseCase
	professionals ProfessionalsService
	renderer      *handlers.Renderer
	session       *handlers.Session
	logger        Logger
}

func NewHandler(
	landings LandingsService,
	agenda AgendaUseCase,
	professionals ProfessionalsService,
	renderer *handlers.Renderer,
	session *handlers.Session,
	logger Logger,
) *Handler {
	return &Handler{
		landings:      landings,
		agenda:        agenda,
		professionals: professionals,
		renderer:      renderer,
		session:       session,
		logger:        logger,
	}
}

// Home GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := handlers.Page(w, r, h.session, "", nil)
	if err := h.renderer.Render(w, http.StatusOK, "home", data); err != nil {
		h.logger.Error("GET / - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// About GET /about
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.renderStatic(w, r, "about", "Sobre nosotros")
}

// Contacto GET /contacto
func (h *Handler) Contacto(w http.ResponseWriter, r *http.Request) {
	h.renderStatic(w, r, "contacto", "Contacto")
}

func (h *Handler) renderStatic(w http.ResponseWriter, r *http.Request, page, title string) {
	data := handlers.Page(w, r, h.session, title, nil)
	if err := h.renderer.Render(w, http.StatusOK, page, data); err != nil {
		h.logger.Error("GET %s - render failed: %v", r.URL.Path, err)
		handlers.RespondInternalError(w)
	}
}

// Professionals GET /profesionales - каталог профессионалов, новые первыми
func (h *Handler) Professionals(w http.ResponseWriter, r *http.Request) {
	pros, err := h.professionals.Directory(r.Context())
	if err != nil {
		h.logger.Error("GET /profesionales - service error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, "Profesionales", map[string]interface{}{
		"Professionals": pros,
	})
	if err := h.renderer.Render(w, http.StatusOK, "professionals", data); err != nil {
		h.logger.Error("GET /profesionales - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// ProfessionalDetail GET /profesionales/{id} - карточка профессионала с услугами
func (h *Handler) ProfessionalDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
		return
	}

	card, err := h.professionals.GetPublic(r.Context(), id)
	if err != nil {
		if errors.Is(err, profileSvc.ErrProfileNotFound) {
			h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.Error("GET /profesionales/%d - service error: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, card.Professional.Name, map[string]interface{}{
		"Card": card,
	})
	if err := h.renderer.Render(w, http.StatusOK, "professional_detail", data); err != nil {
		h.logger.Error("GET /profesionales/%d - render failed: %v", id, err)
		handlers.RespondInternalError(w)
	}
}

// Profile GET /p/{slug} - публичная страница, форма контакта и,
// если агенда настроена, календарь записи
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	profile, err := h.landings.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, landingsSvc.ErrLandingNotFound) {
			h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.Error("GET /p/%s - service error: %v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	agendaJSON := ""
	agenda, err := h.agenda.Execute(r.Context(), &getAgenda.Request{LandingID: profile.Landing.ID})
	if err != nil {
		h.logger.Error("GET /p/%s - agenda error: %v", slug, err)
		handlers.RespondInternalError(w)
		return
	}
	if agenda != nil {
		if agendaJSON, err = agenda.JSON(); err != nil {
			h.logger.Error("GET /p/%s - agenda marshal error: %v", slug, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	data := handlers.Page(w, r, h.session, profile.Landing.DisplayName(), map[string]interface{}{
		"Profile":    profile,
		"AgendaJSON": agendaJSON,
	})
	if err := h.renderer.Render(w, http.StatusOK, "public_profile", data); err != nil {
		h.logger.Error("GET /p/%s - render failed: %v", slug, err)
		handlers.RespondInternalError(w)
	}
}

// Result GET /resultado/{slug} - страница с QR и приглашением в сообщество.
// Claim-токен приходит query-параметром от редиректа после создания
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	profile, err := h.landings.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, landingsSvc.ErrLandingNotFound) {
			h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.Error("GET /resultado/%s - service error: %v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, "Tu tarjeta", map[string]interface{}{
		"Landing":    profile.Landing,
		"Theme":      profile.Theme,
		"ClaimToken": r.URL.Query().Get("claim"),
	})
	if err := h.renderer.Render(w, http.StatusOK, "result", data); err != nil {
		h.logger.Error("GET /resultado/%s - render failed: %v", slug, err)
		handlers.RespondInternalError(w)
	}
}
