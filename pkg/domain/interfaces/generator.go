package interfaces

import "context"

// ChecklistGenerator produces ordered remediation step labels for an
// emergency incident. Implementations may call out to an LLM; failures are
// recoverable and leave the incident without a checklist.
type ChecklistGenerator interface {
	GenerateSteps(ctx context.Context, title, description string) ([]string, error)
}
