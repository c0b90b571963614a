// Package ui provides the web UI server for the data cleaner.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/history"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/notifier"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/router"
)

// Server is the main UI server.
type Server struct {
	app    *common.App
	port   int
	watch  bool
	logger *slog.Logger
}

// Config holds configuration for the UI server.
type Config struct {
	Sessions       *session.Manager
	History        *history.Store
	Port           int
	Watch          bool
	DataDir        string
	MaxUploadBytes int64
	UniqueLimit    int
	SessionSecret  string
	Logger         *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		app: &common.App{
			Sessions:       cfg.Sessions,
			History:        cfg.History,
			Store:          sessionStore,
			Notifier:       notifier.New(),
			Logger:         logger,
			DataDir:        cfg.DataDir,
			MaxUploadBytes: cfg.MaxUploadBytes,
			UniqueLimit:    cfg.UniqueLimit,
		},
		port:   cfg.Port,
		watch:  cfg.Watch,
		logger: logger,
	}
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.app)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Watch the data directory for dropped CSV files
	if s.watch {
		eg.Go(func() error {
			return s.watchDataDir(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchDataDir watches the data directory so the upload page's file
// list refreshes when CSVs are dropped in from outside the app.
func (s *Server) watchDataDir(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.app.DataDir); err != nil {
		s.logger.Error("failed to watch data directory", "dir", s.app.DataDir, "error", err)
		// Don't fail - continue without watching
		<-ctx.Done()
		return nil
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".csv") {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("data directory changed", "file", event.Name)
				s.app.Notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
