package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// executionRepository is append-only: rows are inserted and never changed.
type executionRepository struct {
	db *sql.DB
}

type executionStepRecord struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func encodeSteps(steps []model.DoriExecutionStep) (string, error) {
	records := make([]executionStepRecord, 0, len(steps))
	for _, s := range steps {
		records = append(records, executionStepRecord{
			ID:          s.ID.String(),
			Timestamp:   fmtTime(s.Timestamp),
			Description: s.Description,
			Status:      s.Status.String(),
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode execution steps")
	}
	return string(raw), nil
}

func decodeSteps(raw string) ([]model.DoriExecutionStep, error) {
	var records []executionStepRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, goerr.Wrap(err, "failed to decode execution steps")
	}
	steps := make([]model.DoriExecutionStep, 0, len(records))
	for _, r := range records {
		steps = append(steps, model.DoriExecutionStep{
			ID:          types.ID(r.ID),
			Timestamp:   parseTime(r.Timestamp),
			Description: r.Description,
			Status:      types.StepStatus(r.Status),
		})
	}
	return steps, nil
}

func (r *executionRepository) List(ctx context.Context) ([]*model.DoriExecution, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, workflow_name, entity_name, entity_role, status, start_time, steps FROM dori_executions ORDER BY rowid`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list executions")
	}
	defer rows.Close()

	var executions []*model.DoriExecution
	for rows.Next() {
		var e model.DoriExecution
		var status, startTime, stepsRaw string
		if err := rows.Scan(&e.ID, &e.WorkflowName, &e.EntityName, &e.EntityRole, &status, &startTime, &stepsRaw); err != nil {
			return nil, goerr.Wrap(err, "failed to scan execution")
		}
		e.Status = types.ExecutionStatus(status)
		e.StartTime = parseTime(startTime)
		steps, err := decodeSteps(stepsRaw)
		if err != nil {
			return nil, err
		}
		e.Steps = steps
		executions = append(executions, &e)
	}
	return executions, rows.Err()
}

func (r *executionRepository) Append(ctx context.Context, exec *model.DoriExecution) (*model.DoriExecution, error) {
	appended := *exec
	if appended.ID.IsEmpty() {
		appended.ID = types.NewID()
	}
	appended.Steps = make([]model.DoriExecutionStep, len(exec.Steps))
	copy(appended.Steps, exec.Steps)

	stepsRaw, err := encodeSteps(appended.Steps)
	if err != nil {
		return nil, err
	}

	// Append order is the implicit rowid, so listing does not depend on
	// wall-clock timestamps.
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO dori_executions (id, workflow_name, entity_name, entity_role, status, start_time, steps)
		VALUES (?,?,?,?,?,?,?)`,
		appended.ID, appended.WorkflowName, appended.EntityName, appended.EntityRole,
		appended.Status.String(), fmtTime(appended.StartTime), stepsRaw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append execution", goerr.V("id", appended.ID))
	}
	return &appended, nil
}
