package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/usecase"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

func (s *Server) handleListExecutions(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ExecutionFilter{
		Text: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := types.ParseExecutionStatus(raw)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		filter.Status = status
	}

	executions, err := s.uc.ListExecutions(r.Context(), filter)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	dtos := make([]executionDTO, 0, len(executions))
	for _, exec := range executions {
		dtos = append(dtos, toExecutionDTO(exec))
	}
	respondJSON(w, http.StatusOK, map[string]any{"executions": dtos})
}

func (s *Server) handleListPendingActions(w http.ResponseWriter, r *http.Request) {
	actions, err := s.uc.ListPendingActions(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	dtos := make([]actionDTO, 0, len(actions))
	for _, action := range actions {
		dtos = append(dtos, toActionDTO(action))
	}
	respondJSON(w, http.StatusOK, map[string]any{"actions": dtos})
}

func (s *Server) handleActionDecision(approve bool) http.HandlerFunc {
	outcome := "approved"
	if !approve {
		outcome = "rejected"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ID(chi.URLParam(r, "id"))
		exec, err := s.uc.RecordDecision(r.Context(), id, approve)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
			return
		}
		if exec == nil {
			errutil.HandleHTTP(r.Context(), w, goerr.New("action already decided", goerr.V("id", id)), http.StatusConflict)
			return
		}
		s.metrics.decisions.WithLabelValues(outcome).Inc()
		respondJSON(w, http.StatusOK, toExecutionDTO(exec))
	}
}
