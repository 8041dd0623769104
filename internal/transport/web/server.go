package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/csvrepl/internal/config"
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/pkg/log"
)

const (
	cookieName      = "csvrepl"
	shutdownTimeout = 5 * time.Second
)

type sessionCtxKey struct{}

// Server serves the REPL as an HTML page with one history per browser
// session.
type Server struct {
	app         core.AppConfig
	sessions    *session.Manager
	cookies     *sessions.CookieStore
	metrics     *metrics
	registry    *prometheus.Registry
	defaultMode session.Mode
	http        *http.Server
}

func NewServer(ctx context.Context, app core.AppConfig, cfg *config.WebConfig, mgr *session.Manager) (*Server, error) {
	mode, err := session.ParseMode(app.GetOutputMode())
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		app:         app,
		sessions:    mgr,
		cookies:     sessions.NewCookieStore(cfg.GetSessionKey()),
		metrics:     newMetrics(reg),
		registry:    reg,
		defaultMode: mode,
	}

	s.http = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      s.Handler(ctx),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}
	return s, nil
}

// Handler builds the router. ctx supplies the logger for request logs.
func (s *Server) Handler(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger(ctx))
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)
		r.Get("/", s.handleIndex)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Post("/submit", s.handleSubmit)
		r.Post("/mode", s.handleMode)
	})
	return r
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.http.Addr).Msg("starting web server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// sessionMiddleware assigns every browser a stable session ID.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := s.cookies.Get(r, cookieName)
		id, ok := sess.Values["id"].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values["id"] = id
			sess.Options = &sessions.Options{
				Path:     "/",
				MaxAge:   60 * 60 * 24, // 1 day
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			}
			if err := sess.Save(r, w); err != nil {
				log.FromCtx(r.Context()).Error().Err(err).Msg("failed to save session cookie")
			}
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := log.FromCtx(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t0 := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))
			duration := time.Since(t0)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			s.metrics.httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			s.metrics.httpDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Dur("duration", duration).
				Msg("http")
		})
	}
}
