// Package dashboard обработчики кабинета владельца: сводка, сообщение
// для лида, профиль профессионала и каталог услуг
package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/api/middleware"
	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/leads"
	"github.com/protap/TAP-LandingService/internal/service/profile"
	"github.com/protap/TAP-LandingService/pkg/ptr"
)

const (
	msgForbidden       = "Acceso restringido."
	msgInternal        = "Ha ocurrido un error. Inténtalo de nuevo."
	msgProfileCreated  = "Perfil profesional creado."
	msgProfileUpdated  = "Perfil actualizado."
	msgProfileFirst    = "Primero debes crear tu perfil profesional."
	msgProfileNoName   = "Indica el nombre de tu perfil."
	msgServiceCreated  = "Servicio creado."
	msgServiceUpdated  = "Servicio actualizado."
	msgServiceDeleted  = "Servicio eliminado."
	msgServiceNoTitle  = "Indica el título del servicio."
)

// CompletionStep шаг чек-листа заполненности профиля
type CompletionStep struct {
	Label string
	Done  bool
	URL   string
}

type Handler struct {
	leads    LeadsService
	profile  ProfileService
	renderer *handlers.Renderer
	session  *handlers.Session
	logger   Logger
}

func NewHandler(leads LeadsService, profile ProfileService, renderer *handlers.Renderer, session *handlers.Session, logger Logger) *Handler {
	return &Handler{
		leads:    leads,
		profile:  profile,
		renderer: renderer,
		session:  session,
		logger:   logger,
	}
}

// Index GET /dashboard - сводка по лендингам, лидам и каталогу
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}

	stats, err := h.leads.StatsByOwner(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /dashboard - stats error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	professional, err := h.profile.Get(r.Context(), user.ID)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		h.logger.Error("GET /dashboard - profile error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	catalog, err := h.profile.ListServices(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /dashboard - catalog error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	pct, steps := completion(stats.Landings, stats.ServicesCount)
	data := handlers.Page(w, r, h.session, "Dashboard", map[string]interface{}{
		"Stats":           stats,
		"Professional":    professional,
		"CatalogServices": catalog,
		"CompletionPct":   pct,
		"CompletionSteps": steps,
	})
	if err := h.renderer.Render(w, http.StatusOK, "dashboard", data); err != nil {
		h.logger.Error("GET /dashboard - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// completion процент заполненности профиля и шаги чек-листа.
// Шаги считаются по самому свежему лендингу владельца
func completion(landings []*domain.LandingRequest, servicesCount int) (int, []CompletionStep) {
	var latest *domain.LandingRequest
	if len(landings) > 0 {
		latest = landings[0]
	}

	createURL := ""
	if latest == nil {
		createURL = "/comenzar"
	}
	steps := []CompletionStep{
		{Label: "Crea tu primer perfil QR", Done: latest != nil, URL: createURL},
		{Label: "Añade tu teléfono", Done: latest != nil && latest.Phone != nil && *latest.Phone != ""},
		{Label: "Añade tu email", Done: latest != nil && latest.Email != nil && *latest.Email != ""},
		{Label: "Añade al menos un servicio", Done: servicesCount > 0},
		{Label: "Conecta tu LinkedIn", Done: latest != nil && latest.LinkedIn != nil && *latest.LinkedIn != ""},
	}

	done := 0
	for _, step := range steps {
		if step.Done {
			done++
		}
	}
	return done * 100 / len(steps), steps
}

// Mensaje GET /dashboard/mensaje/{id} - готовый follow-up текст для лида
func (h *Handler) Mensaje(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	contactID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondError(w, http.StatusNotFound, "contacto no encontrado")
		return
	}

	message, err := h.leads.FollowUpMessage(r.Context(), contactID, user.ID)
	if err != nil {
		if errors.Is(err, leads.ErrContactNotFound) || errors.Is(err, leads.ErrForbidden) {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /dashboard/mensaje/%d - service error: %v", contactID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// ProfileCreateForm GET /perfil/crear
func (h *Handler) ProfileCreateForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	if _, err := h.profile.Get(r.Context(), user.ID); err == nil {
		handlers.Redirect(w, r, "/perfil/editar")
		return
	}
	h.renderProfileForm(w, r, "Crear perfil profesional", &profile.ProfessionalInput{})
}

// ProfileCreate POST /perfil/crear
func (h *Handler) ProfileCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}

	_, err := h.profile.Create(r.Context(), user.ID, profileInput(r))
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgProfileCreated)
		handlers.Redirect(w, r, "/dashboard")
	case errors.Is(err, profile.ErrProfileExists):
		handlers.Redirect(w, r, "/perfil/editar")
	case errors.Is(err, profile.ErrNameRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgProfileNoName)
		handlers.Redirect(w, r, "/perfil/crear")
	default:
		h.logger.Error("POST /perfil/crear - service error: %v", err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		handlers.Redirect(w, r, "/perfil/crear")
	}
}

// ProfileEditForm GET /perfil/editar
func (h *Handler) ProfileEditForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}

	professional, err := h.profile.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			handlers.Redirect(w, r, "/perfil/crear")
			return
		}
		h.logger.Error("GET /perfil/editar - service error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.renderProfileForm(w, r, "Editar perfil profesional", &profile.ProfessionalInput{
		Name:      professional.Name,
		Specialty: ptr.Deref(professional.Specialty, ""),
		Phone:     ptr.Deref(professional.Phone, ""),
		Bio:       ptr.Deref(professional.Bio, ""),
	})
}

// ProfileEdit POST /perfil/editar
func (h *Handler) ProfileEdit(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}

	_, err := h.profile.Update(r.Context(), user.ID, profileInput(r))
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgProfileUpdated)
		handlers.Redirect(w, r, "/dashboard")
	case errors.Is(err, profile.ErrProfileNotFound):
		handlers.Redirect(w, r, "/perfil/crear")
	case errors.Is(err, profile.ErrNameRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgProfileNoName)
		handlers.Redirect(w, r, "/perfil/editar")
	default:
		h.logger.Error("POST /perfil/editar - service error: %v", err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		handlers.Redirect(w, r, "/perfil/editar")
	}
}

func (h *Handler) renderProfileForm(w http.ResponseWriter, r *http.Request, title string, input *profile.ProfessionalInput) {
	data := handlers.Page(w, r, h.session, title, map[string]interface{}{
		"Name":      input.Name,
		"Specialty": input.Specialty,
		"Phone":     input.Phone,
		"Bio":       input.Bio,
	})
	if err := h.renderer.Render(w, http.StatusOK, "profile_form", data); err != nil {
		h.logger.Error("profile form - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

func profileInput(r *http.Request) *profile.ProfessionalInput {
	_ = r.ParseForm()
	return &profile.ProfessionalInput{
		Name:      r.PostFormValue("name"),
		Specialty: r.PostFormValue("specialty"),
		Phone:     r.PostFormValue("phone"),
		Bio:       r.PostFormValue("bio"),
	}
}

// ServiceCreateForm GET /servicios/crear
func (h *Handler) ServiceCreateForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	if _, err := h.profile.Get(r.Context(), user.ID); err != nil {
		h.session.AddFlash(w, r, handlers.FlashInfo, msgProfileFirst)
		handlers.Redirect(w, r, "/perfil/crear")
		return
	}
	h.renderServiceForm(w, r, "Añadir servicio", &profile.ServiceInput{})
}

// ServiceCreate POST /servicios/crear
func (h *Handler) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}

	_, err := h.profile.CreateService(r.Context(), user.ID, serviceInput(r))
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgServiceCreated)
		handlers.Redirect(w, r, "/dashboard")
	case errors.Is(err, profile.ErrProfileNotFound):
		h.session.AddFlash(w, r, handlers.FlashInfo, msgProfileFirst)
		handlers.Redirect(w, r, "/perfil/crear")
	case errors.Is(err, profile.ErrTitleRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgServiceNoTitle)
		handlers.Redirect(w, r, "/servicios/crear")
	default:
		h.logger.Error("POST /servicios/crear - service error: %v", err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		handlers.Redirect(w, r, "/servicios/crear")
	}
}

// ServiceEditForm GET /servicios/{id}/editar
func (h *Handler) ServiceEditForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	serviceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	service, err := h.profile.GetService(r.Context(), serviceID, user.ID)
	if err != nil {
		if errors.Is(err, profile.ErrForbidden) {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /servicios/%d/editar - service error: %v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.renderServiceForm(w, r, "Editar servicio", &profile.ServiceInput{
		Title:       service.Title,
		Description: ptr.Deref(service.Description, ""),
		Price:       service.Price,
	})
}

// ServiceEdit POST /servicios/{id}/editar
func (h *Handler) ServiceEdit(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	serviceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	_, err = h.profile.UpdateService(r.Context(), serviceID, user.ID, serviceInput(r))
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgServiceUpdated)
		handlers.Redirect(w, r, "/dashboard")
	case errors.Is(err, profile.ErrForbidden):
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, profile.ErrTitleRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgServiceNoTitle)
		handlers.Redirect(w, r, "/servicios/"+strconv.FormatInt(serviceID, 10)+"/editar")
	default:
		h.logger.Error("POST /servicios/%d/editar - service error: %v", serviceID, err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		handlers.Redirect(w, r, "/dashboard")
	}
}

// ServiceDelete POST /servicios/{id}/eliminar
func (h *Handler) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	serviceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.profile.DeleteService(r.Context(), serviceID, user.ID); err != nil {
		if errors.Is(err, profile.ErrForbidden) {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /servicios/%d/eliminar - service error: %v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.session.AddFlash(w, r, handlers.FlashSuccess, msgServiceDeleted)
	handlers.Redirect(w, r, "/dashboard")
}

func (h *Handler) renderServiceForm(w http.ResponseWriter, r *http.Request, title string, input *profile.ServiceInput) {
	price := ""
	if input.Price != nil {
		price = strconv.FormatFloat(*input.Price, 'f', -1, 64)
	}
	data := handlers.Page(w, r, h.session, title, map[string]interface{}{
		"ServiceTitle": input.Title,
		"Description":  input.Description,
		"Price":        price,
	})
	if err := h.renderer.Render(w, http.StatusOK, "service_form", data); err != nil {
		h.logger.Error("service form - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

func serviceInput(r *http.Request) *profile.ServiceInput {
	_ = r.ParseForm()
	input := &profile.ServiceInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
	}
	if raw := r.PostFormValue("price"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			input.Price = &price
		}
	}
	return input
}
