package entity

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qualitydesk/qualitydesk/internal/catalog"
	"github.com/qualitydesk/qualitydesk/internal/platform/httpx"
	"github.com/qualitydesk/qualitydesk/internal/shared"
	"github.com/qualitydesk/qualitydesk/internal/view"
)

// Handler serves the general-information screens.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine) *Handler {
	return &Handler{logger: logger, service: service, templates: templates}
}

// MountRoutes registers entity routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{key}", h.show)
	r.Post("/{key}/create", h.create)
}

// GeneralInfo renders the navigation fragment listing every entity type.
func (h *Handler) GeneralInfo(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "pages/general_info.html", map[string]any{
		"Descriptors": h.service.Descriptors(),
	})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	descriptor, err := h.service.Descriptor(key)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	records, err := h.service.ListActive(r.Context(), key)
	if err != nil {
		h.logger.Error("list entity failed", slog.String("entity", key), slog.Any("error", err))
		h.renderError(w, r, fmt.Sprintf("Error loading %ss", descriptor.Label), err)
		return
	}

	h.render(w, r, http.StatusOK, "pages/entity.html", map[string]any{
		"Descriptor": descriptor,
		"Records":    records,
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	descriptor, err := h.service.Descriptor(key)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	records, err := h.service.Create(r.Context(), key, formValues(descriptor, r))
	if err != nil {
		h.logger.Error("create entity failed", slog.String("entity", key), slog.Any("error", err))
		h.renderError(w, r, "Error creating item", err)
		return
	}

	h.render(w, r, http.StatusOK, "partials/entity_list.html", map[string]any{
		"Descriptor": descriptor,
		"Records":    records,
	})
}

// formValues collects the descriptor's fields from the posted form. Fields the
// client did not send stay absent.
func formValues(d catalog.Descriptor, r *http.Request) map[string]string {
	values := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		if vs, ok := r.PostForm[f.Name]; ok && len(vs) > 0 {
			values[f.Name] = vs[0]
		}
	}
	return values
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "partials/not_found.html", map[string]any{
		"Message": "Entity not found",
	})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, heading string, err error) {
	status := httpx.StatusFor(err)
	if errors.Is(err, shared.ErrNotFound) {
		h.renderNotFound(w, r)
		return
	}
	h.render(w, r, status, "partials/error.html", map[string]any{
		"Heading": heading,
		"Message": httpx.Message(err),
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, template string, data map[string]any) {
	viewData := view.TemplateData{
		Title:       "General Information",
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, status, template, viewData); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", template))
	}
}
