// internal/web/server.go
//
// The HTTP surface of the portfolio site.
//
// Context
// -------
// Two route trees share one chi router and one store:
//
//   • Public: page renders, search, contact, static assets, metrics.
//   • Admin:  /admin/api/** — JSON CRUD, token-gated, CORS-enabled.
//
// Handlers stay thin; page assembly lives in internal/view, search in
// internal/search, and mutations in internal/admin.
package web

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/admin"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/auth"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/config"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/requestinfo"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/search"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/view"
)

// Server bundles the handler dependencies.
type Server struct {
	cfg    *config.Config
	store  *store.Store
	views  *view.Engine
	pages  *view.Builder
	search *search.Service
	admin  *admin.Service
	tokens auth.TokenService
}

// New wires the full handler graph.  templatesDir overrides the default
// web/templates location (tests point it elsewhere).
func New(cfg *config.Config, st *store.Store, templatesDir string) *Server {
	if templatesDir == "" {
		templatesDir = filepath.Join(cfg.Paths.Root, "web", "templates")
	}
	tokens := auth.TokenService{
		Secret:    []byte(cfg.Auth.TokenSecret),
		Issuer:    cfg.Auth.TokenIssuer,
		AccessTTL: accessTTL(cfg),
	}
	return &Server{
		cfg:    cfg,
		store:  st,
		views:  view.NewEngine(templatesDir),
		pages:  view.NewBuilder(st),
		search: search.New(st),
		admin:  admin.New(st, tokens),
		tokens: tokens,
	}
}

func accessTTL(cfg *config.Config) time.Duration {
	if cfg.Auth.AccessTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute
}

// Handler builds the chi router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(security)
	if s.cfg.HTTP.ForceHTTPS {
		r.Use(forceHTTPS)
	}
	r.Use(requestinfo.Enrich)

	// Public site.
	r.Group(func(r chi.Router) {
		r.Use(recordVisits(s.store))
		r.Get("/", s.handlePage)
		r.Get("/search", s.handleSearchHTML)
		r.Get("/{page}", s.handlePage)
	})
	r.Post("/contact", s.handleContact)
	r.Get("/api/search", s.handleSearchJSON)

	// Static assets.
	staticDir := filepath.Join(s.cfg.Paths.Root, "web", "static")
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(staticDir))))

	// Operational endpoints.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Admin API.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.HTTP.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin(s.tokens))
			s.mountAdminRoutes(r)
		})
	})

	r.NotFound(s.handleNotFound)
	return r
}

// ReloadTemplates drops the parsed template set so the next render
// reparses from disk.  The serve command calls this on SIGHUP.
func (s *Server) ReloadTemplates() { s.views.Invalidate() }

// HTTPServer wraps the handler in an *http.Server with production
// timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.HTTP.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
