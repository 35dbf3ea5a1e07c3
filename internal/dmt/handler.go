package dmt

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qualitydesk/qualitydesk/internal/platform/httpx"
	"github.com/qualitydesk/qualitydesk/internal/view"
)

// Handler serves the DMT record screens.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine) *Handler {
	return &Handler{logger: logger, service: service, templates: templates}
}

// MountRoutes registers DMT routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/list", h.list)
	r.Delete("/delete/{id}", h.delete)

	// Navigation targets rendered by the list; the screens behind them live elsewhere.
	r.Get("/create", h.placeholder("New DMT Record"))
	r.Get("/view/{id}", h.placeholder("DMT Record"))
	r.Get("/edit/{id}", h.placeholder("Edit DMT Record"))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListRecords(r.Context())
	if err != nil {
		h.logger.Error("list dmt records failed", slog.Any("error", err))
		h.renderError(w, r, "Error loading DMT records", err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/dmt_list.html", map[string]any{
		"Records": records,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.SoftDelete(r.Context(), id); err != nil {
		h.logger.Error("delete dmt record failed", slog.String("id", id), slog.Any("error", err))
		h.renderError(w, r, "Error deleting DMT record", err)
		return
	}
	httpx.Empty(w, http.StatusOK)
}

func (h *Handler) placeholder(heading string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, "pages/dmt_placeholder.html", map[string]any{
			"Heading": heading,
			"ID":      chi.URLParam(r, "id"),
		})
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, heading string, err error) {
	h.render(w, r, httpx.StatusFor(err), "partials/error.html", map[string]any{
		"Heading": heading,
		"Message": httpx.Message(err),
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, template string, data map[string]any) {
	viewData := view.TemplateData{
		Title:       "DMT Records",
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, status, template, viewData); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", template))
	}
}
