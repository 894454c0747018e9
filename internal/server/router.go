package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/joseph-ayodele/homepage/constants"
	"github.com/joseph-ayodele/homepage/internal/guestbook"
	"github.com/joseph-ayodele/homepage/internal/profiles"
	"github.com/joseph-ayodele/homepage/internal/render"
)

// StorageReporter exposes which backend serves guestbook entries.
type StorageReporter interface {
	Mode() constants.StorageMode
}

// Server holds the application state shared by all handlers.
type Server struct {
	guestbook *guestbook.Service
	profiles  *profiles.Service
	renderer  *render.Renderer
	sessions  sessions.Store
	storage   StorageReporter
	logger    *slog.Logger
}

func New(gb *guestbook.Service, ps *profiles.Service, renderer *render.Renderer, store sessions.Store, storage StorageReporter, logger *slog.Logger) *Server {
	return &Server{
		guestbook: gb,
		profiles:  ps,
		renderer:  renderer,
		sessions:  store,
		storage:   storage,
		logger:    logger,
	}
}

// Handler returns the routed and instrumented HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /{$}", s.handleSign)
	mux.HandleFunc("POST /delete/{id}", s.handleDelete)
	mux.HandleFunc("POST /edit", s.handleEdit)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return requestID(s.accessLog(mux))
}
