package checklist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Generator produces emergency remediation checklists through an LLM.
// A nil LLM client yields a disabled generator that returns no steps, so
// the engine stays functional without AI configuration.
type Generator struct {
	llmClient gollem.LLMClient
	maxSteps  int
}

type Option func(*Generator)

// WithMaxSteps caps the number of checklist steps returned
func WithMaxSteps(n int) Option {
	return func(g *Generator) {
		g.maxSteps = n
	}
}

func New(llmClient gollem.LLMClient, opts ...Option) *Generator {
	g := &Generator{
		llmClient: llmClient,
		maxSteps:  8,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enabled reports whether an LLM client is configured
func (g *Generator) Enabled() bool {
	return g.llmClient != nil
}

// GenerateSteps returns an ordered list of remediation step labels for the
// given incident. The result is advisory: callers must tolerate an empty
// list and errors.
func (g *Generator) GenerateSteps(ctx context.Context, title, description string) ([]string, error) {
	if g.llmClient == nil {
		return nil, nil
	}

	session, err := g.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(title, description)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate checklist")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty LLM response")
	}

	var parsed struct {
		Steps []string `json:"steps"`
	}
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse checklist response", goerr.V("response", resp.Texts[0]))
	}

	steps := make([]string, 0, len(parsed.Steps))
	for _, step := range parsed.Steps {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		steps = append(steps, step)
		if len(steps) == g.maxSteps {
			break
		}
	}
	if len(steps) == 0 {
		return nil, goerr.New("LLM returned no usable steps", goerr.V("title", title))
	}

	return steps, nil
}

const systemPrompt = `You are an emergency response assistant for a residential property management company.
Given a critical incident at a managed property, produce a short ordered checklist of concrete remediation steps for the property manager.

## Instructions:

1. Each step must be a single imperative sentence a property manager can act on immediately.
2. Order the steps by urgency: containment first, then contractors, then tenant and landlord communication, then documentation.
3. Keep the list between 3 and 8 steps.
4. Do not include steps that require information you do not have.`

func buildUserPrompt(title, description string) string {
	var sb strings.Builder

	sb.WriteString("## Incident\n\n")
	fmt.Fprintf(&sb, "**Title:** %s\n", title)
	if description != "" {
		fmt.Fprintf(&sb, "**Details:** %s\n", description)
	}
	sb.WriteString("\nProduce the remediation checklist.\n")

	return sb.String()
}

func buildResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "EmergencyChecklistResponse",
		Description: "Ordered remediation steps for a property emergency",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"steps": {
				Type:        gollem.TypeArray,
				Description: "Remediation steps in execution order",
				Required:    true,
				Items: &gollem.Parameter{
					Type:        gollem.TypeString,
					Description: "One actionable remediation step",
				},
			},
		},
	}
}
