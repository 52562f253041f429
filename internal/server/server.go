// Package server wires the quiz engine to a local web UI: one activity
// page, a free-form explore page, and PDF/XLSX downloads.
package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/example/ineqquest/internal/database"
	"github.com/example/ineqquest/internal/excel"
	"github.com/example/ineqquest/internal/generator"
	"github.com/example/ineqquest/internal/session"
)

const sessionCookie = "ineq_session"

// Server is the web application.
type Server struct {
	cfg      Config
	log      *zap.SugaredLogger
	store    *session.Store
	gen      *generator.Generator
	sessions *database.SessionRepository
	attempts *database.AttemptRepository
	stats    *database.StatisticsRepository
	exporter *excel.Exporter
	tmpl     *template.Template
	httpSrv  *http.Server
}

// New creates the server around an existing session store.
func New(cfg Config, log *zap.SugaredLogger, store *session.Store, gen *generator.Generator) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		store:    store,
		gen:      gen,
		sessions: database.NewSessionRepository(),
		attempts: database.NewAttemptRepository(),
		stats:    database.NewStatisticsRepository(),
		exporter: excel.NewExporter(),
		tmpl:     template.Must(template.New("layout").Parse(layoutTemplate)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleActivity)
	mux.HandleFunc("/submit", s.handleSubmit)
	mux.HandleFunc("/next", s.handleNext)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/explore", s.handleExplore)
	mux.HandleFunc("/export/pdf", s.handleExportPDF)
	mux.HandleFunc("/export/xlsx", s.handleExportXLSX)

	s.httpSrv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.logged(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.Infow("server listening", "addr", s.cfg.Addr, "url", s.cfg.URL())
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// logged wraps the mux with a request log line.
func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// loadSession returns the tracker for the request's cookie, starting a
// new session (and setting the cookie) when there is none or it has
// expired.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) *session.Tracker {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if t, ok := s.store.Get(cookie.Value); ok {
			return t
		}
	}
	t := s.store.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    t.ID,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	if err := s.persistSession(t); err != nil {
		s.log.Warnw("failed to persist new session", "error", err)
	}
	return t
}
