package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.uc.ListNotifications(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	dtos := make([]notificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toNotificationDTO(n))
	}
	respondJSON(w, http.StatusOK, map[string]any{"notifications": dtos})
}

func (s *Server) handleAddNotification(w http.ResponseWriter, r *http.Request) {
	var dto notificationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if dto.Message == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("message is required"), http.StatusBadRequest)
		return
	}
	if dto.Type != "" {
		if _, err := types.ParseNotificationType(string(dto.Type)); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid notification type"), http.StatusBadRequest)
			return
		}
	}

	n := dto.toModel()
	if err := s.uc.AddNotification(r.Context(), n); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, toNotificationDTO(n))
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.uc.UnreadNotificationCount(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (s *Server) handleRefreshNotifications(w http.ResponseWriter, r *http.Request) {
	derived, err := s.uc.RefreshNotifications(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	s.metrics.evaluations.Inc()
	for _, n := range derived {
		s.metrics.notificationsDerived.WithLabelValues(string(n.Type)).Inc()
	}
	respondJSON(w, http.StatusOK, map[string]int{"derived": len(derived)})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	n, err := s.uc.MarkNotificationRead(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	respondJSON(w, http.StatusOK, toNotificationDTO(n))
}

func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.MarkAllNotificationsRead(r.Context()); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.ClearNotifications(r.Context()); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
