// Package server provides the HTTP REST API for the CV extraction service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/truthtalent/cv-parser/internal/config"
	"github.com/truthtalent/cv-parser/internal/db"
	"github.com/truthtalent/cv-parser/internal/logger"
	"github.com/truthtalent/cv-parser/internal/parsing"
	"github.com/truthtalent/cv-parser/internal/server/middleware"
	"github.com/truthtalent/cv-parser/internal/types"
)

// Version reported by the service info and health endpoints.
const Version = "2.0.0"

// RecordStore persists extracted candidate records. Nil disables persistence;
// extraction endpoints still work and simply skip the save step.
type RecordStore interface {
	UpsertCandidate(ctx context.Context, record *types.CandidateRecord, key db.DedupeKey, meta db.SaveMeta) (*db.UpsertResult, error)
	ListCandidates(ctx context.Context, limit, offset int) ([]db.Candidate, error)
	Ping(ctx context.Context) error
}

// FileStore keeps original upload bytes. Nil disables file storage.
type FileStore interface {
	StoreCV(ctx context.Context, contentHash, filename string, data []byte) (string, error)
}

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, content []byte) (string, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer     *http.Server
	parser         *parsing.Parser
	extractor      TextExtractor
	store          RecordStore
	files          FileStore
	maxUploadBytes int64
}

// Deps are the collaborators the server routes requests to.
type Deps struct {
	Parser    *parsing.Parser
	Extractor TextExtractor
	Store     RecordStore
	Files     FileStore
}

// New creates a new server instance.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Parser == nil {
		return nil, fmt.Errorf("parser is required")
	}
	if deps.Extractor == nil {
		return nil, fmt.Errorf("text extractor is required")
	}

	s := &Server{
		parser:         deps.Parser,
		extractor:      deps.Extractor,
		store:          deps.Store,
		files:          deps.Files,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("POST /jobs", s.handleProcessJob)
	mux.HandleFunc("GET /candidates", s.handleListCandidates)

	cors := middleware.CORS(cfg.AllowedOrigins)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(cors(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}

// Handler exposes the routing stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}
