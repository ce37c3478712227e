// Package landings обработчики жизненного цикла лендинга: мастер создания,
// публичные формы контакта и записи, кабинет "мис лендингс"
package landings

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/api/middleware"
	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/agendaconfig"
	landingsSvc "github.com/protap/TAP-LandingService/internal/service/landings"
	"github.com/protap/TAP-LandingService/internal/service/leads"
	bookAppointment "github.com/protap/TAP-LandingService/internal/usecase/book_appointment"
	createLanding "github.com/protap/TAP-LandingService/internal/usecase/create_landing"
)

const (
	msgNotFound       = "Página no encontrada."
	msgInternal       = "Ha ocurrido un error. Inténtalo de nuevo."
	msgInvalidSector  = "Selecciona un sector válido."
	msgNameRequired   = "Indica tu nombre o el de tu negocio."
	msgNoServices     = "Añade al menos un servicio."
	msgContactThanks  = "¡Gracias! Tus datos han sido enviados correctamente."
	msgContactNoName  = "Por favor, completa al menos tu nombre."
	msgBookNoName     = "Indica tu nombre para reservar."
	msgBookNoDateTime = "Selecciona fecha y hora para tu cita."
	msgBookBadDate    = "La fecha seleccionada no es válida."
	msgBookPastDate   = "No puedes reservar una cita en una fecha pasada."
	msgBookSlotTaken  = "Ese horario acaba de ocuparse. Elige otro, por favor."
	msgBookConfirmed  = "¡Cita reservada! Te esperamos."
	msgAgendaSaved    = "Disponibilidad guardada. Tus clientes ya pueden reservar citas."
	msgAgendaExists   = "La agenda ya está configurada para este landing."
	msgAgendaNoDays   = "Selecciona al menos un día de la semana."
	msgAgendaBadDay   = "Día de la semana no válido."
	msgAgendaBadSpan  = "El horario de fin debe ser posterior al de inicio."
)

// serviceSlots номера слотов услуг в форме создания
var serviceSlots = []int{1, 2, 3}

// weekdayNames названия дней недели, индекс соответствует day_of_week
var weekdayNames = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

type Handler struct {
	createUC CreateUseCase
	bookUC   BookUseCase
	landings LandingsService
	leads    LeadsService
	agenda   AgendaService
	renderer *handlers.Renderer
	session  *handlers.Session
	logger   Logger
}

func NewHandler(
	createUC CreateUseCase,
	bookUC BookUseCase,
	landings LandingsService,
	leads LeadsService,
	agenda AgendaService,
	renderer *handlers.Renderer,
	session *handlers.Session,
	logger Logger,
) *Handler {
	return &Handler{
		createUC: createUC,
		bookUC:   bookUC,
		landings: landings,
		leads:    leads,
		agenda:   agenda,
		renderer: renderer,
		session:  session,
		logger:   logger,
	}
}

// CreateForm GET /comenzar
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderCreateForm(w, r)
}

func (h *Handler) renderCreateForm(w http.ResponseWriter, r *http.Request) {
	data := handlers.Page(w, r, h.session, "Crea tu tarjeta", map[string]interface{}{
		"Sectors":      domain.SectorThemes,
		"ServiceSlots": serviceSlots,
	})
	if err := h.renderer.Render(w, http.StatusOK, "landing_create", data); err != nil {
		h.logger.Error("GET /comenzar - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// Create POST /comenzar - создаёт лендинг и редиректит на страницу результата.
// Для анонимного посетителя в редирект добавляется claim-токен
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		handlers.Redirect(w, r, "/comenzar")
		return
	}

	req := &createLanding.Request{
		Sector:      r.PostFormValue("sector"),
		ContactName: r.PostFormValue("contact_name"),
		Phone:       r.PostFormValue("phone"),
		Email:       r.PostFormValue("email"),
		LinkedIn:    r.PostFormValue("linkedin"),
		Website:     r.PostFormValue("website"),
	}
	for _, slot := range serviceSlots {
		prefix := "service_" + strconv.Itoa(slot)
		req.Services = append(req.Services, createLanding.ServiceInput{
			Title:       r.PostFormValue(prefix + "_title"),
			Description: r.PostFormValue(prefix + "_description"),
		})
	}
	if user := middleware.UserFromContext(r.Context()); user != nil {
		req.UserID = &user.ID
	}

	resp, err := h.createUC.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createLanding.ErrInvalidSector):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgInvalidSector)
		case errors.Is(err, createLanding.ErrNameRequired):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgNameRequired)
		case errors.Is(err, createLanding.ErrServiceRequired):
			h.session.AddFlash(w, r, handlers.FlashDanger, msgNoServices)
		default:
			h.logger.Error("POST /comenzar - usecase error: %v", err)
			h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
		}
		handlers.Redirect(w, r, "/comenzar")
		return
	}

	target := "/resultado/" + resp.PublicSlug
	if resp.ClaimToken != "" {
		target += "?claim=" + url.QueryEscape(resp.ClaimToken)
	}
	handlers.Redirect(w, r, target)
}

// Contact POST /p/{slug}/contactar - приём контактных данных посетителя
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if err := r.ParseForm(); err != nil {
		h.session.AddFlash(w, r, handlers.FlashDanger, msgContactNoName)
		handlers.Redirect(w, r, "/p/"+slug)
		return
	}

	_, err := h.leads.CreateContact(r.Context(), &leads.ContactInput{
		Slug:      slug,
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Message:   r.PostFormValue("message"),
		ServiceID: r.PostFormValue("service_id"),
	})
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgContactThanks)
	case errors.Is(err, leads.ErrLandingNotFound):
		h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
		return
	case errors.Is(err, leads.ErrNameRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgContactNoName)
	default:
		h.logger.Error("POST /p/%s/contactar - service error: %v", slug, err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
	}
	handlers.Redirect(w, r, "/p/"+slug)
}

// Book POST /p/{slug}/cita - запись посетителя на приём
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if err := r.ParseForm(); err != nil {
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBookNoDateTime)
		handlers.Redirect(w, r, "/p/"+slug)
		return
	}

	profile, err := h.landings.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, landingsSvc.ErrLandingNotFound) {
			h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.Error("POST /p/%s/cita - service error: %v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	_, err = h.bookUC.Execute(r.Context(), &bookAppointment.Request{
		LandingID: profile.Landing.ID,
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Date:      r.PostFormValue("appt_date"),
		Time:      r.PostFormValue("appt_time"),
		ServiceID: r.PostFormValue("service_id"),
		Message:   r.PostFormValue("message"),
	})
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgBookConfirmed)
	case errors.Is(err, bookAppointment.ErrNameRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBookNoName)
	case errors.Is(err, bookAppointment.ErrDateTimeRequired):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBookNoDateTime)
	case errors.Is(err, bookAppointment.ErrInvalidDate):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBookBadDate)
	case errors.Is(err, bookAppointment.ErrDateInPast):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBookPastDate)
	case errors.Is(err, bookAppointment.ErrSlotTaken):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgBookSlotTaken)
	default:
		h.logger.Error("POST /p/%s/cita - usecase error: %v", slug, err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
	}
	handlers.Redirect(w, r, "/p/"+slug)
}

// List GET /mis-landings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}

	items, err := h.landings.ListByOwner(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /mis-landings - service error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, "Mis landings", map[string]interface{}{
		"Landings": items,
	})
	if err := h.renderer.Render(w, http.StatusOK, "landing_list", data); err != nil {
		h.logger.Error("GET /mis-landings - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// Detail GET /mis-landings/{id} - карточка лендинга владельца с агендой
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
		return
	}

	profile, err := h.landings.GetOwned(r.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, landingsSvc.ErrLandingNotFound) {
			h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.Error("GET /mis-landings/%d - service error: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	availability, err := h.agenda.Get(r.Context(), id, user.ID)
	if err != nil {
		h.logger.Error("GET /mis-landings/%d - agenda error: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, profile.Landing.DisplayName(), map[string]interface{}{
		"Profile":      profile,
		"Availability": availability,
		"WeekdayNames": weekdayNames,
	})
	if err := h.renderer.Render(w, http.StatusOK, "landing_detail", data); err != nil {
		h.logger.Error("GET /mis-landings/%d - render failed: %v", id, err)
		handlers.RespondInternalError(w)
	}
}

// ConfigureAgenda POST /mis-landings/{id}/agenda - первичная настройка расписания
func (h *Handler) ConfigureAgenda(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handlers.Redirect(w, r, "/login")
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
		return
	}
	target := "/mis-landings/" + strconv.FormatInt(id, 10)

	if err := r.ParseForm(); err != nil {
		h.session.AddFlash(w, r, handlers.FlashDanger, msgAgendaNoDays)
		handlers.Redirect(w, r, target)
		return
	}

	weekdays := make([]int, 0, len(r.PostForm["weekday"]))
	for _, raw := range r.PostForm["weekday"] {
		day, err := strconv.Atoi(raw)
		if err != nil {
			h.session.AddFlash(w, r, handlers.FlashDanger, msgAgendaBadDay)
			handlers.Redirect(w, r, target)
			return
		}
		weekdays = append(weekdays, day)
	}
	slotMinutes, _ := strconv.Atoi(r.PostFormValue("slot_minutes"))

	err = h.agenda.Configure(r.Context(), &agendaconfig.ConfigureInput{
		LandingID:   id,
		UserID:      user.ID,
		Weekdays:    weekdays,
		StartTime:   r.PostFormValue("start_time"),
		EndTime:     r.PostFormValue("end_time"),
		SlotMinutes: slotMinutes,
	})
	switch {
	case err == nil:
		h.session.AddFlash(w, r, handlers.FlashSuccess, msgAgendaSaved)
	case errors.Is(err, agendaconfig.ErrLandingNotFound):
		h.renderer.Error(w, r, h.session, http.StatusNotFound, msgNotFound)
		return
	case errors.Is(err, agendaconfig.ErrAlreadyConfigured):
		h.session.AddFlash(w, r, handlers.FlashInfo, msgAgendaExists)
	case errors.Is(err, agendaconfig.ErrNoWeekdays):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgAgendaNoDays)
	case errors.Is(err, agendaconfig.ErrInvalidWeekday):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgAgendaBadDay)
	case errors.Is(err, agendaconfig.ErrInvalidWindow):
		h.session.AddFlash(w, r, handlers.FlashDanger, msgAgendaBadSpan)
	default:
		h.logger.Error("POST /mis-landings/%d/agenda - service error: %v", id, err)
		h.session.AddFlash(w, r, handlers.FlashDanger, msgInternal)
	}
	handlers.Redirect(w, r, target)
}
