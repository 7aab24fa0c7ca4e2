package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/purgatorium/pkg/api/handlers"
	"github.com/cbodonnell/purgatorium/pkg/api/middleware"
	"github.com/cbodonnell/purgatorium/pkg/log"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/cbodonnell/purgatorium/pkg/queue"
	"github.com/cbodonnell/purgatorium/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
}

type NewAPIServerOptions struct {
	Port         int
	StateManager state.StateManager
	SpawnQueue   queue.Queue[notes.Note]
	// Stream serves GET /stream when set.
	Stream http.Handler
}

// NewAPIServer creates a new http.Server for inspecting and driving the simulation
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	return &APIServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", opts.Port),
			Handler: NewRouter(opts),
		},
	}
}

// NewRouter builds the API routes without binding a listener.
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(), middleware.NewCORSMiddleware())

	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/snapshot", handlers.HandleGetSnapshot(opts.StateManager)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/bullets/{bulletID}", handlers.HandleGetBullet(opts.StateManager)).Methods(http.MethodGet, http.MethodOptions)
	if opts.SpawnQueue != nil {
		r.HandleFunc("/spawn", handlers.HandleSpawn(opts.SpawnQueue)).Methods(http.MethodPost, http.MethodOptions)
	}
	if opts.Stream != nil {
		r.Handle("/stream", opts.Stream).Methods(http.MethodGet)
	}

	return r
}

// Start serves until Stop is called.
func (s *APIServer) Start() error {
	log.Info("API server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %v", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
