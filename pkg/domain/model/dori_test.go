package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

func TestDoriExecutionAppendStep(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("steps keep append order", func(t *testing.T) {
		exec := &model.DoriExecution{ID: types.NewID(), StartTime: base}
		exec.AppendStep(model.DoriExecutionStep{Timestamp: base, Description: "first", Status: types.StepStatusCompleted})
		exec.AppendStep(model.DoriExecutionStep{Timestamp: base.Add(time.Second), Description: "second", Status: types.StepStatusCompleted})

		gt.Array(t, exec.Steps).Length(2)
		gt.Value(t, exec.Steps[0].Description).Equal("first")
		gt.Value(t, exec.Steps[1].Description).Equal("second")
	})

	t.Run("timestamps never go backwards", func(t *testing.T) {
		exec := &model.DoriExecution{ID: types.NewID(), StartTime: base}
		exec.AppendStep(model.DoriExecutionStep{Timestamp: base.Add(time.Minute), Description: "late clock"})
		exec.AppendStep(model.DoriExecutionStep{Timestamp: base, Description: "early clock"})

		gt.Bool(t, exec.Steps[1].Timestamp.Before(exec.Steps[0].Timestamp)).False()
	})
}

func TestEmergencyChecklist(t *testing.T) {
	t.Run("toggle flips only the target item", func(t *testing.T) {
		item := &model.EmergencyItem{
			ID:        types.NewID(),
			Status:    types.IncidentStatusOpen,
			Checklist: model.NewChecklist([]string{"Shut off water main", "Called plumber", "Notify tenant"}),
		}

		item.ToggleStep(1)

		gt.Array(t, item.Checklist).Length(3)
		gt.Bool(t, item.Checklist[0].Checked).False()
		gt.Bool(t, item.Checklist[1].Checked).True()
		gt.Bool(t, item.Checklist[2].Checked).False()
		gt.Value(t, item.Checklist[1].Label).Equal("Called plumber")
	})

	t.Run("out of range toggle is ignored", func(t *testing.T) {
		item := &model.EmergencyItem{Checklist: model.NewChecklist([]string{"only step"})}
		item.ToggleStep(-1)
		item.ToggleStep(5)
		gt.Bool(t, item.Checklist[0].Checked).False()
	})

	t.Run("checked labels preserve order", func(t *testing.T) {
		item := &model.EmergencyItem{Checklist: model.NewChecklist([]string{"a", "b", "c"})}
		item.ToggleStep(2)
		item.ToggleStep(0)
		gt.Array(t, item.CheckedLabels()).Equal([]string{"a", "c"})
	})

	t.Run("nil checklist means not generated", func(t *testing.T) {
		item := &model.EmergencyItem{}
		gt.Bool(t, item.HasChecklist()).False()
		item.Checklist = model.NewChecklist(nil)
		gt.Bool(t, item.HasChecklist()).True()
	})
}
