// Package server serves the static index page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/quantmind-br/grader-go/internal/utils"
)

// Server serves a single HTML file at /
type Server struct {
	indexFile string
	logger    *utils.Logger
	http      *http.Server
}

// Options contains options for creating a Server
type Options struct {
	Port      int
	IndexFile string
	Logger    *utils.Logger
}

// New creates a server. Nothing is read from disk until a request arrives.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	logger = logger.WithComponent("server")

	s := &Server{
		indexFile: opts.IndexFile,
		logger:    logger,
	}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed, access-logged handler
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	return handlers.CombinedLoggingHandler(s.logger, router)
}

// handleIndex reads the index file on every request so edits show up
// without a restart.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	content, err := os.ReadFile(s.indexFile)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.indexFile).Msg("Failed to read index file")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", fmt.Sprint(len(content)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(content)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Listening on " + portOf(ln.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

func portOf(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprint(tcp.Port)
	}
	return addr.String()
}
