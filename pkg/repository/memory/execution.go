package memory

import (
	"context"
	"sync"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// executionRepository is append-only: records are never mutated after Append.
type executionRepository struct {
	mu         sync.RWMutex
	executions []*model.DoriExecution
}

func newExecutionRepository() *executionRepository {
	return &executionRepository{}
}

func copyExecution(e *model.DoriExecution) *model.DoriExecution {
	copied := *e
	copied.Steps = make([]model.DoriExecutionStep, len(e.Steps))
	copy(copied.Steps, e.Steps)
	return &copied
}

func (r *executionRepository) List(ctx context.Context) ([]*model.DoriExecution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	executions := make([]*model.DoriExecution, 0, len(r.executions))
	for _, e := range r.executions {
		executions = append(executions, copyExecution(e))
	}
	return executions, nil
}

func (r *executionRepository) Append(ctx context.Context, exec *model.DoriExecution) (*model.DoriExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appended := copyExecution(exec)
	if appended.ID.IsEmpty() {
		appended.ID = types.NewID()
	}
	r.executions = append(r.executions, appended)
	return copyExecution(appended), nil
}
