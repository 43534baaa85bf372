package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

func (s *Server) handleListApprovals(w http.ResponseWriter, r *http.Request) {
	requests, err := s.uc.PendingApprovals(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	dtos := make([]approvalDTO, 0, len(requests))
	for _, req := range requests {
		dtos = append(dtos, toApprovalDTO(req))
	}
	respondJSON(w, http.StatusOK, map[string]any{"approvals": dtos})
}

func (s *Server) handleMarkApprovalViewed(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	req, err := s.uc.MarkApprovalViewed(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	respondJSON(w, http.StatusOK, toApprovalDTO(req))
}

func (s *Server) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	id := types.ID(chi.URLParam(r, "id"))
	req, err := s.uc.ApproveRequest(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	respondJSON(w, http.StatusOK, toApprovalDTO(req))
}

func (s *Server) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
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

	req, err := s.uc.RejectRequest(r.Context(), id, body.Notes)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errStatus(err))
		return
	}
	respondJSON(w, http.StatusOK, toApprovalDTO(req))
}
