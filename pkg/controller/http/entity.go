package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

// Entity write endpoints. Each save or delete re-derives the notification
// feed before responding.

func (s *Server) handleSaveReminder(w http.ResponseWriter, r *http.Request) {
	var dto reminderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if dto.Task == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("task is required"), http.StatusBadRequest)
		return
	}

	saved, err := s.uc.SaveReminder(r.Context(), dto.toModel())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, toReminderDTO(saved))
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	if err := s.uc.DeleteReminder(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	var dto maintenanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if dto.IssueTitle == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("issueTitle is required"), http.StatusBadRequest)
		return
	}

	saved, err := s.uc.SaveMaintenanceRequest(r.Context(), dto.toModel())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, toMaintenanceDTO(saved))
}

func (s *Server) handleDeleteMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	if err := s.uc.DeleteMaintenanceRequest(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveTenant(w http.ResponseWriter, r *http.Request) {
	var dto tenantDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("name is required"), http.StatusBadRequest)
		return
	}

	saved, err := s.uc.SaveTenant(r.Context(), dto.toModel())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, toTenantDTO(saved))
}

func (s *Server) handleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	if err := s.uc.DeleteTenant(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	var dto documentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("name is required"), http.StatusBadRequest)
		return
	}

	saved, err := s.uc.SaveDocument(r.Context(), dto.toModel())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, toDocumentDTO(saved))
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	if err := s.uc.DeleteDocument(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
