package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/doorap-lab/doorap/pkg/repository/memory"
	"github.com/doorap-lab/doorap/pkg/repository/sqlite"
	"github.com/doorap-lab/doorap/pkg/usecase"
	"github.com/doorap-lab/doorap/pkg/utils/logging"
)

type Server struct {
	router        *chi.Mux
	uc            *usecase.UseCases
	metrics       *metrics
	enableMetrics bool
}

type Options func(*Server)

// WithMetrics exposes Prometheus metrics on /metrics
func WithMetrics(enabled bool) Options {
	return func(s *Server) {
		s.enableMetrics = enabled
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if s.enableMetrics {
		r.Get("/metrics", s.metrics.handler().ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.handleListNotifications)
			r.Post("/", s.handleAddNotification)
			r.Get("/unread-count", s.handleUnreadCount)
			r.Post("/refresh", s.handleRefreshNotifications)
			r.Post("/{id}/read", s.handleMarkNotificationRead)
			r.Post("/read-all", s.handleMarkAllNotificationsRead)
			r.Delete("/", s.handleClearNotifications)
		})

		r.Route("/executions", func(r chi.Router) {
			r.Get("/", s.handleListExecutions)
		})

		r.Route("/actions", func(r chi.Router) {
			r.Get("/", s.handleListPendingActions)
			r.Post("/{id}/approve", s.handleActionDecision(true))
			r.Post("/{id}/reject", s.handleActionDecision(false))
		})

		r.Route("/approvals", func(r chi.Router) {
			r.Get("/", s.handleListApprovals)
			r.Post("/{id}/viewed", s.handleMarkApprovalViewed)
			r.Post("/{id}/approve", s.handleApproveRequest)
			r.Post("/{id}/reject", s.handleRejectRequest)
		})

		r.Route("/emergencies", func(r chi.Router) {
			r.Get("/", s.handleOpenIncidents)
			r.Post("/", s.handleReportIncident)
			r.Get("/{id}/checklist", s.handleEnsureChecklist)
			r.Post("/{id}/checklist/{index}/toggle", s.handleToggleChecklistStep)
			r.Post("/{id}/resolve", s.handleResolveIncident)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Post("/", s.handleSaveReminder)
			r.Delete("/{id}", s.handleDeleteReminder)
		})
		r.Route("/maintenance", func(r chi.Router) {
			r.Post("/", s.handleSaveMaintenanceRequest)
			r.Delete("/{id}", s.handleDeleteMaintenanceRequest)
		})
		r.Route("/tenants", func(r chi.Router) {
			r.Post("/", s.handleSaveTenant)
			r.Delete("/{id}", s.handleDeleteTenant)
		})
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", s.handleSaveDocument)
			r.Delete("/{id}", s.handleDeleteDocument)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// errStatus maps missing-entity errors to 404 and everything else to 500
func errStatus(err error) int {
	if errors.Is(err, memory.ErrNotFound) || errors.Is(err, sqlite.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("failed to encode response", "error", err.Error())
	}
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
