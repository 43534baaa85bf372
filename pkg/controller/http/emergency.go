package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

func (s *Server) handleOpenIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := s.uc.OpenIncidents(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	dtos := make([]emergencyDTO, 0, len(incidents))
	for _, incident := range incidents {
		dtos = append(dtos, toEmergencyDTO(incident))
	}
	respondJSON(w, http.StatusOK, map[string]any{"emergencies": dtos})
}

func (s *Server) handleReportIncident(w http.ResponseWriter, r *http.Request) {
	var dto emergencyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if dto.Title == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("title is required"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.ReportIncident(r.Context(), dto.toModel())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, toEmergencyDTO(created))
}

// handleEnsureChecklist returns the incident with its checklist, generating
// it on first access.
func (s *Server) handleEnsureChecklist(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))

	before, err := s.uc.Repository().Emergency().Get(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}

	incident, err := s.uc.EnsureChecklist(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if !before.HasChecklist() && incident.HasChecklist() {
		s.metrics.checklistsGenerated.Inc()
	}
	respondJSON(w, http.StatusOK, toEmergencyDTO(incident))
}

func (s *Server) handleToggleChecklistStep(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid step index"), http.StatusBadRequest)
		return
	}

	incident, err := s.uc.ToggleChecklistStep(r.Context(), id, index)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	respondJSON(w, http.StatusOK, toEmergencyDTO(incident))
}

func (s *Server) handleResolveIncident(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))

	var body struct {
		Notes string `json:"notes"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
	}

	incident, exec, err := s.uc.ResolveIncident(r.Context(), id, body.Notes)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	if exec != nil {
		s.metrics.incidentsResolved.Inc()
	}

	resp := map[string]any{"emergency": toEmergencyDTO(incident)}
	if exec != nil {
		resp["execution"] = toExecutionDTO(exec)
	}
	respondJSON(w, http.StatusOK, resp)
}
