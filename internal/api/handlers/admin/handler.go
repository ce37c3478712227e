// Package admin обработчики админки: сводная аналитика и список заказов
// с публичными ссылками для прошивки NFC-карт
package admin

import (
	"net/http"
	"strconv"

	"github.com/protap/TAP-LandingService/internal/api/handlers"
	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/internal/service/adminstats"
)

type Handler struct {
	stats    StatsService
	baseURL  string
	renderer *handlers.Renderer
	session  *handlers.Session
	logger   Logger
}

func NewHandler(stats StatsService, baseURL string, renderer *handlers.Renderer, session *handlers.Session, logger Logger) *Handler {
	return &Handler{
		stats:    stats,
		baseURL:  baseURL,
		renderer: renderer,
		session:  session,
		logger:   logger,
	}
}

// Index GET /admin - сводка по лендингам, секторам и пользователям
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.GetOverview(r.Context())
	if err != nil {
		h.logger.Error("GET /admin - service error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, "Admin", map[string]interface{}{
		"Overview": overview,
	})
	if err := h.renderer.Render(w, http.StatusOK, "admin_index", data); err != nil {
		h.logger.Error("GET /admin - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}

// Orders GET /admin/pedidos - постраничный список заказов с фильтрами
// ?tipo= и ?sector=
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	filterType := r.URL.Query().Get("tipo")
	filterSector := r.URL.Query().Get("sector")

	orders, err := h.stats.ListOrders(r.Context(), &adminstats.OrdersQuery{
		Type:   filterType,
		Sector: filterSector,
		Page:   page,
	})
	if err != nil {
		h.logger.Error("GET /admin/pedidos - service error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data := handlers.Page(w, r, h.session, "Pedidos", map[string]interface{}{
		"Page":         orders,
		"Sectors":      domain.SectorThemes,
		"FilterType":   filterType,
		"FilterSector": filterSector,
		"BaseURL":      h.baseURL,
		"PrevPage":     orders.Page - 1,
		"NextPage":     orders.Page + 1,
	})
	if err := h.renderer.Render(w, http.StatusOK, "admin_orders", data); err != nil {
		h.logger.Error("GET /admin/pedidos - render failed: %v", err)
		handlers.RespondInternalError(w)
	}
}
