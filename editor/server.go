// ABOUTME: HTTP server struct with chi router, session store, slot backend, and parsed templates.
// ABOUTME: Configures all routes, static file serving, and wires handler methods via functional options.
package editor

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/2389-research/quill/controller"
	"github.com/2389-research/quill/store"
)

// TemplateData holds the data passed to the editor page template.
type TemplateData struct {
	Ribbon   []controller.Control
	Groups   []RibbonGroup
	Settings controller.Settings
}

// RibbonGroup is a run of ribbon controls rendered together.
type RibbonGroup struct {
	Name     string
	Controls []controller.Control
}

// ServerOption configures optional Server behavior.
type ServerOption func(*Server)

// WithAuthToken protects every route except static assets and health behind a bearer token.
func WithAuthToken(token string) ServerOption {
	return func(s *Server) {
		s.authToken = token
	}
}

// Server holds the chi router, session store, slot backend, and parsed templates.
type Server struct {
	router    chi.Router
	sessions  *SessionStore
	backend   store.Backend
	settings  controller.Settings
	pageTmpl  *template.Template
	authToken string
}

// NewServer creates a Server with all routes configured and templates parsed.
func NewServer(sessions *SessionStore, backend store.Backend, settings controller.Settings, opts ...ServerOption) *Server {
	s := &Server{
		sessions: sessions,
		backend:  backend,
		settings: settings,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Layout + partials + page share one template set.
	s.pageTmpl = template.Must(template.ParseFS(ContentFS,
		"templates/layout.html",
		"templates/partials/*.html",
		"templates/editor.html",
	))

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	if s.authToken != "" {
		r.Use(AuthMiddleware(s.authToken))
		r.Get("/login", LoginHandler(s.authToken))
	}

	// Static files
	staticFS, err := fs.Sub(ContentFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/", s.handleEditorPage)
	r.Get("/health", s.handleHealth)
	r.Post("/events", s.handleEvent)
	r.Get("/export", s.handleExport)
	r.Post("/import", s.handleImport)

	s.router = r
	return s
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer wraps the handler in an http.Server with the editor's timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}
