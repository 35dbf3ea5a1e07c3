package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/qualitydesk/qualitydesk/internal/datastore"
	"github.com/qualitydesk/qualitydesk/internal/dmt"
	"github.com/qualitydesk/qualitydesk/internal/entity"
	"github.com/qualitydesk/qualitydesk/internal/observability"
	"github.com/qualitydesk/qualitydesk/internal/platform/httpx"
	"github.com/qualitydesk/qualitydesk/internal/view"
	"github.com/qualitydesk/qualitydesk/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger        *slog.Logger
	Config        *Config
	Templates     *view.Engine
	Store         datastore.Store
	EntityHandler *entity.Handler
	DMTHandler    *dmt.Handler
	Metrics       *observability.Metrics
}

// NewRouter constructs the chi.Router with the console's routes.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := params.Store.Ping(r.Context()); err != nil {
			params.Logger.Warn("healthz datastore ping", slog.Any("error", err))
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "datastore": err.Error()})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		data := view.TemplateData{Title: "Quality Management System", CurrentPath: r.URL.Path}
		if err := params.Templates.Render(w, http.StatusOK, "layouts/shell.html", data); err != nil {
			params.Logger.Error("render shell", slog.Any("error", err))
		}
	})

	r.Get("/home", func(w http.ResponseWriter, r *http.Request) {
		data := view.TemplateData{Title: "Home", CurrentPath: r.URL.Path}
		if err := params.Templates.Render(w, http.StatusOK, "pages/home.html", data); err != nil {
			params.Logger.Error("render home", slog.Any("error", err))
		}
	})

	r.Get("/general-info", params.EntityHandler.GeneralInfo)
	r.Route("/entity", params.EntityHandler.MountRoutes)
	r.Route("/dmt", params.DMTHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler caches embedded assets in the browser for an hour.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
