package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/doorap-lab/doorap/pkg/controller/http"
	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/repository/memory"
	"github.com/doorap-lab/doorap/pkg/usecase"
)

var fixedNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

type stubGenerator struct {
	steps []string
}

func (g *stubGenerator) GenerateSteps(ctx context.Context, title, description string) ([]string, error) {
	return g.steps, nil
}

func newTestServer(opts ...usecase.Option) (*httpctrl.Server, *usecase.UseCases) {
	repo := memory.New()
	opts = append([]usecase.Option{usecase.WithClock(func() time.Time { return fixedNow })}, opts...)
	uc := usecase.New(repo, opts...)
	return httpctrl.New(uc, httpctrl.WithMetrics(true)), uc
}

func doJSON(t *testing.T, srv *httpctrl.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		gt.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	gt.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer()
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer()
	rec := doJSON(t, srv, http.MethodGet, "/metrics", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestNotificationEndpoints(t *testing.T) {
	srv, _ := newTestServer()

	t.Run("saving an urgent request derives an alert", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/maintenance", map[string]any{
			"issueTitle":   "Burst pipe",
			"priority":     "Urgent",
			"status":       "New",
			"reportedDate": fixedNow,
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, srv, http.MethodGet, "/api/notifications", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		body := decodeBody[struct {
			Notifications []struct {
				ID      types.ID `json:"id"`
				Type    string   `json:"type"`
				Message string   `json:"message"`
				IsRead  bool     `json:"isRead"`
			} `json:"notifications"`
		}](t, rec)
		gt.Array(t, body.Notifications).Length(1)
		gt.Value(t, body.Notifications[0].Type).Equal("New Urgent Maintenance")
		gt.Bool(t, body.Notifications[0].IsRead).False()
	})

	t.Run("unread count and mark read", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/notifications/unread-count", nil)
		count := decodeBody[map[string]int](t, rec)
		gt.Value(t, count["unread"]).Equal(1)

		rec = doJSON(t, srv, http.MethodPost, "/api/notifications/read-all", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, srv, http.MethodGet, "/api/notifications/unread-count", nil)
		count = decodeBody[map[string]int](t, rec)
		gt.Value(t, count["unread"]).Equal(0)
	})

	t.Run("missing message is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/notifications", map[string]any{})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/notifications", map[string]any{
			"message": "manual note",
			"type":    "Carrier Pigeon",
		})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("known type is accepted", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/notifications", map[string]any{
			"message": "manual note",
			"type":    "General Info",
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)
	})

	t.Run("clear empties the feed", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, "/api/notifications", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)
	})
}

func TestActionDecisionEndpoints(t *testing.T) {
	srv, uc := newTestServer()
	ctx := context.Background()

	action := gt.R1(uc.Repository().DoriAction().Create(ctx, &model.DoriAction{
		Title:  "Schedule plumber visit",
		Type:   types.ActionTypeMaintenance,
		Status: types.ActionStatusPending,
	})).NoError(t)

	t.Run("approve returns the execution record", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/actions/%s/approve", action.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		body := decodeBody[struct {
			WorkflowName string `json:"workflowName"`
			Status       string `json:"status"`
		}](t, rec)
		gt.Value(t, body.WorkflowName).Equal("Maintenance Queue")
		gt.Value(t, body.Status).Equal("Completed")
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/actions/%s/reject", action.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusConflict)
	})

	t.Run("execution feed is filterable", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/executions?q=plumber&status=Completed", nil)
		body := decodeBody[struct {
			Executions []struct {
				EntityName string `json:"entityName"`
			} `json:"executions"`
		}](t, rec)
		gt.Array(t, body.Executions).Length(1)
		gt.Value(t, body.Executions[0].EntityName).Equal("Schedule plumber visit")
	})

	t.Run("bad status filter is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/executions?status=Bogus", nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestApprovalEndpoints(t *testing.T) {
	srv, uc := newTestServer()
	ctx := context.Background()

	target := gt.R1(uc.Repository().Maintenance().Create(ctx, &model.MaintenanceRequest{
		IssueTitle: "Boiler replacement",
		Status:     types.MaintenanceStatusQuoteReceived,
		Priority:   types.MaintenancePriorityHigh,
	})).NoError(t)
	req := gt.R1(uc.Repository().Approval().Create(ctx, &model.ApprovalRequest{
		Title:                "Boiler replacement quote",
		Status:               types.ApprovalStatusSent,
		MaintenanceRequestID: target.ID,
	})).NoError(t)

	t.Run("approve cascades", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/approvals/%s/approve", req.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		cascaded := gt.R1(uc.Repository().Maintenance().Get(ctx, target.ID)).NoError(t)
		gt.Value(t, cascaded.Status).Equal(types.MaintenanceStatusApproved)
	})

	t.Run("decided requests leave the pending list", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/approvals", nil)
		body := decodeBody[struct {
			Approvals []struct {
				ID types.ID `json:"id"`
			} `json:"approvals"`
		}](t, rec)
		gt.Array(t, body.Approvals).Length(0)
	})
}

func TestEmergencyEndpoints(t *testing.T) {
	gen := &stubGenerator{steps: []string{"Shut off water main", "Call emergency plumber"}}
	srv, uc := newTestServer(usecase.WithChecklistGenerator(gen))
	ctx := context.Background()

	incident := gt.R1(uc.Repository().Emergency().Create(ctx, &model.EmergencyItem{
		Title:     "Flooded basement",
		Severity:  types.SeverityCritical,
		Status:    types.IncidentStatusOpen,
		Timestamp: fixedNow,
	})).NoError(t)

	type emergencyBody struct {
		Status    string `json:"status"`
		Checklist []struct {
			Label   string `json:"label"`
			Checked bool   `json:"checked"`
		} `json:"checklist"`
	}

	t.Run("checklist is generated on first access", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/emergencies/%s/checklist", incident.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		body := decodeBody[emergencyBody](t, rec)
		gt.Array(t, body.Checklist).Length(2)
		gt.Bool(t, body.Checklist[0].Checked).False()
	})

	t.Run("toggle flips one step", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/emergencies/%s/checklist/0/toggle", incident.ID), nil)
		body := decodeBody[emergencyBody](t, rec)
		gt.Bool(t, body.Checklist[0].Checked).True()
		gt.Bool(t, body.Checklist[1].Checked).False()
	})

	t.Run("resolve closes and logs", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/emergencies/%s/resolve", incident.ID), map[string]string{
			"notes": "Plumber replaced the valve",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		body := decodeBody[struct {
			Emergency emergencyBody `json:"emergency"`
			Execution *struct {
				Steps []struct {
					Description string `json:"description"`
				} `json:"steps"`
			} `json:"execution"`
		}](t, rec)
		gt.Value(t, body.Emergency.Status).Equal("Resolved")
		gt.Value(t, body.Execution).NotNil()
		gt.Array(t, body.Execution.Steps).Length(2)
		gt.Value(t, body.Execution.Steps[1].Description).Equal("Critical Incident Resolved: Plumber replaced the valve")

		rec = doJSON(t, srv, http.MethodGet, "/api/emergencies", nil)
		feed := decodeBody[struct {
			Emergencies []emergencyBody `json:"emergencies"`
		}](t, rec)
		gt.Array(t, feed.Emergencies).Length(0)
	})

	t.Run("report incident validates title", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/emergencies", map[string]any{"description": "no title"})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
