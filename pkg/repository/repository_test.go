package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/domain/interfaces"
	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/repository/memory"
	"github.com/doorap-lab/doorap/pkg/repository/sqlite"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newSQLiteRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	repo := gt.R1(sqlite.New(context.Background(), filepath.Join(t.TempDir(), "doorap_test.db"))).NoError(t)
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func isNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) || errors.Is(err, sqlite.ErrNotFound)
}

func runRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	baseTime := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	t.Run("reminder CRUD", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := gt.R1(repo.Reminder().Create(ctx, &model.Reminder{
			PropertyID: "prop-1",
			Task:       "Gas safety check",
			DueDate:    baseTime,
			Frequency:  "Annually",
		})).NoError(t)
		gt.Bool(t, created.ID.IsEmpty()).False()

		retrieved := gt.R1(repo.Reminder().Get(ctx, created.ID)).NoError(t)
		gt.Value(t, retrieved.Task).Equal("Gas safety check")
		gt.Bool(t, retrieved.DueDate.Equal(baseTime)).True()

		retrieved.IsCompleted = true
		gt.R1(repo.Reminder().Update(ctx, retrieved)).NoError(t)
		updated := gt.R1(repo.Reminder().Get(ctx, created.ID)).NoError(t)
		gt.Bool(t, updated.IsCompleted).True()

		gt.NoError(t, repo.Reminder().Delete(ctx, created.ID))
		_, err := repo.Reminder().Get(ctx, created.ID)
		gt.Bool(t, isNotFound(err)).True()
	})

	t.Run("get missing entity returns not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Tenant().Get(ctx, types.NewID())
		gt.Bool(t, isNotFound(err)).True()
		_, err = repo.Maintenance().Get(ctx, types.NewID())
		gt.Bool(t, isNotFound(err)).True()
	})

	t.Run("tenant optional fields round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		leaseEnd := baseTime.AddDate(0, 6, 0)
		rent := 1450.0
		created := gt.R1(repo.Tenant().Create(ctx, &model.Tenant{
			PropertyID:   "prop-2",
			Name:         "Jordan Miles",
			LeaseEndDate: &leaseEnd,
			RentAmount:   &rent,
		})).NoError(t)

		retrieved := gt.R1(repo.Tenant().Get(ctx, created.ID)).NoError(t)
		gt.Value(t, retrieved.LeaseEndDate).NotNil()
		gt.Bool(t, retrieved.LeaseEndDate.Equal(leaseEnd)).True()
		gt.Value(t, retrieved.LeaseStartDate).Nil()
		gt.Value(t, retrieved.RentAmount).NotNil()
		gt.Value(t, *retrieved.RentAmount).Equal(rent)
	})

	t.Run("notification feed is sorted descending by date", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i, offset := range []time.Duration{time.Hour, 3 * time.Hour, 2 * time.Hour} {
			n := &model.Notification{
				ID:         types.NewID(),
				Type:       types.NotificationGeneralInfo,
				Message:    "msg",
				ParentID:   types.ID([]string{"a", "b", "c"}[i]),
				ParentType: types.ParentGeneral,
				Date:       baseTime.Add(offset),
			}
			gt.NoError(t, repo.Notification().Put(ctx, n))
		}

		list := gt.R1(repo.Notification().List(ctx)).NoError(t)
		gt.Array(t, list).Length(3)
		for i := 1; i < len(list); i++ {
			gt.Bool(t, list[i].Date.After(list[i-1].Date)).False()
		}
	})

	t.Run("notification mark all read and clear", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, parent := range []types.ID{"r1", "r2"} {
			gt.NoError(t, repo.Notification().Put(ctx, &model.Notification{
				ID:         types.NewID(),
				Type:       types.NotificationOverdueReminder,
				Message:    "overdue",
				ParentID:   parent,
				ParentType: types.ParentReminder,
				Date:       baseTime,
			}))
		}

		gt.NoError(t, repo.Notification().MarkAllRead(ctx))
		list := gt.R1(repo.Notification().List(ctx)).NoError(t)
		for _, n := range list {
			gt.Bool(t, n.IsRead).True()
		}

		gt.NoError(t, repo.Notification().Clear(ctx))
		list = gt.R1(repo.Notification().List(ctx)).NoError(t)
		gt.Array(t, list).Length(0)
	})

	t.Run("notification delete by key", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Notification().Put(ctx, &model.Notification{
			ID:         types.NewID(),
			Type:       types.NotificationLeaseExpirySoon,
			Message:    "lease ending",
			ParentID:   "tenant-1",
			ParentType: types.ParentTenant,
			Date:       baseTime,
		}))

		gt.NoError(t, repo.Notification().DeleteByKey(ctx, model.NotificationKey{
			ParentID: "tenant-1",
			Type:     types.NotificationLeaseExpirySoon,
		}))

		list := gt.R1(repo.Notification().List(ctx)).NoError(t)
		gt.Array(t, list).Length(0)
	})

	t.Run("execution log preserves append order and steps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first := &model.DoriExecution{
			WorkflowName: "Maintenance Queue",
			EntityName:   "Boiler repair",
			Status:       types.ExecutionStatusCompleted,
			StartTime:    baseTime,
			Steps: []model.DoriExecutionStep{
				{ID: types.NewID(), Timestamp: baseTime, Description: "approved", Status: types.StepStatusCompleted},
			},
		}
		second := &model.DoriExecution{
			WorkflowName: "Communication Queue",
			EntityName:   "Tenant reply",
			Status:       types.ExecutionStatusCancelled,
			StartTime:    baseTime.Add(time.Minute),
			Steps: []model.DoriExecutionStep{
				{ID: types.NewID(), Timestamp: baseTime.Add(time.Minute), Description: "cancelled", Status: types.StepStatusSkipped},
			},
		}
		// Starts before the others. Append order must still win over any
		// timestamp ordering.
		third := &model.DoriExecution{
			WorkflowName: "Emergency Response",
			EntityName:   "Gas leak",
			Status:       types.ExecutionStatusCompleted,
			StartTime:    baseTime.Add(-time.Hour),
		}

		gt.R1(repo.Execution().Append(ctx, first)).NoError(t)
		gt.R1(repo.Execution().Append(ctx, second)).NoError(t)
		gt.R1(repo.Execution().Append(ctx, third)).NoError(t)

		list := gt.R1(repo.Execution().List(ctx)).NoError(t)
		gt.Array(t, list).Length(3)
		gt.Value(t, list[0].WorkflowName).Equal("Maintenance Queue")
		gt.Value(t, list[1].WorkflowName).Equal("Communication Queue")
		gt.Value(t, list[2].WorkflowName).Equal("Emergency Response")
		gt.Array(t, list[0].Steps).Length(1)
		gt.Value(t, list[0].Steps[0].Description).Equal("approved")
	})

	t.Run("emergency checklist nil vs generated", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := gt.R1(repo.Emergency().Create(ctx, &model.EmergencyItem{
			Title:       "Burst pipe",
			Description: "Water leaking through ceiling",
			Severity:    types.SeverityCritical,
			Status:      types.IncidentStatusOpen,
			Timestamp:   baseTime,
		})).NoError(t)

		retrieved := gt.R1(repo.Emergency().Get(ctx, created.ID)).NoError(t)
		gt.Bool(t, retrieved.HasChecklist()).False()

		retrieved.Checklist = model.NewChecklist([]string{"Shut off water main", "Called plumber"})
		retrieved.Checklist[0].Checked = true
		gt.R1(repo.Emergency().Update(ctx, retrieved)).NoError(t)

		stored := gt.R1(repo.Emergency().Get(ctx, created.ID)).NoError(t)
		gt.Bool(t, stored.HasChecklist()).True()
		gt.Array(t, stored.Checklist).Length(2)
		gt.Bool(t, stored.Checklist[0].Checked).True()
		gt.Bool(t, stored.Checklist[1].Checked).False()
	})

	t.Run("approval optional dates round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		amount := 350.0
		created := gt.R1(repo.Approval().Create(ctx, &model.ApprovalRequest{
			LandlordID:           "landlord-1",
			Type:                 types.ApprovalTypeMaintenanceQuote,
			Title:                "Boiler quote",
			Amount:               &amount,
			Status:               types.ApprovalStatusSent,
			SentDate:             baseTime,
			MaintenanceRequestID: "m1",
		})).NoError(t)

		retrieved := gt.R1(repo.Approval().Get(ctx, created.ID)).NoError(t)
		gt.Value(t, retrieved.ActionDate).Nil()
		gt.Value(t, retrieved.Amount).NotNil()
		gt.Value(t, *retrieved.Amount).Equal(amount)

		actionDate := baseTime.Add(time.Hour)
		retrieved.Status = types.ApprovalStatusApproved
		retrieved.ActionDate = &actionDate
		gt.R1(repo.Approval().Update(ctx, retrieved)).NoError(t)

		updated := gt.R1(repo.Approval().Get(ctx, created.ID)).NoError(t)
		gt.Value(t, updated.Status).Equal(types.ApprovalStatusApproved)
		gt.Value(t, updated.ActionDate).NotNil()
		gt.Bool(t, updated.ActionDate.Equal(actionDate)).True()
	})
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryTest(t, newMemoryRepository)
}

func TestSQLiteRepository(t *testing.T) {
	runRepositoryTest(t, newSQLiteRepository)
}
