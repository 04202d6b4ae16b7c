package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/pkg/games/blackjack"
)

// Options configures the web adapter
type Options struct {
	// AssetDir is served under /static/
	AssetDir string
	// AssetBaseURL prefixes card image paths, e.g. /static/cards
	AssetBaseURL string
	// SecureCookies marks the session cookie Secure
	SecureCookies bool
	// OriginPatterns lists extra hosts allowed to open the event stream
	OriginPatterns []string
}

// Server renders rounds in the browser and relays hit, stand and restart to
// the table owned by the caller's session cookie
type Server struct {
	tables blackjack.Tables
	opts   Options
	logger *logging.Logger
	pages  *pages
}

// NewServer creates a web adapter for tables
func NewServer(tables blackjack.Tables, opts Options, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Default
	}
	if opts.AssetBaseURL == "" {
		opts.AssetBaseURL = "/static/cards"
	}
	return &Server{
		tables: tables,
		opts:   opts,
		logger: logger,
		pages:  newPages(),
	}
}

// Handler returns the routed handler with request logging applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /game", s.handleGame)

	mux.HandleFunc("GET /api/round", s.handleRound)
	mux.HandleFunc("POST /api/round/start", s.handleAction(s.tables.Restart))
	mux.HandleFunc("POST /api/round/hit", s.handleAction(s.tables.Hit))
	mux.HandleFunc("POST /api/round/stand", s.handleAction(s.tables.Stand))
	mux.HandleFunc("GET /api/round/events", s.handleEvents)

	if s.opts.AssetDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.opts.AssetDir))))
	}

	return LogMiddleware(s.logger)(mux)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Running on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
