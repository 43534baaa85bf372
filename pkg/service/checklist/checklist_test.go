package checklist_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/gollem"

	"github.com/doorap-lab/doorap/pkg/service/checklist"
)

type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{`{"steps":[]}`}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return s.GenerateStream(ctx, input...)
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func respondWith(text string) *mockLLMClient {
	return &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{text}}, nil
				},
			}, nil
		},
	}
}

func TestGenerateSteps(t *testing.T) {
	ctx := context.Background()

	t.Run("parses ordered steps", func(t *testing.T) {
		gen := checklist.New(respondWith(`{"steps":["Shut off the water main","Call an emergency plumber","Notify the tenant"]}`))

		steps := gt.R1(gen.GenerateSteps(ctx, "Burst pipe", "Water leaking into flat below")).NoError(t)
		gt.Array(t, steps).Equal([]string{
			"Shut off the water main",
			"Call an emergency plumber",
			"Notify the tenant",
		})
	})

	t.Run("trims blanks and caps length", func(t *testing.T) {
		gen := checklist.New(respondWith(`{"steps":["  a  ","","b","c","d"]}`), checklist.WithMaxSteps(3))

		steps := gt.R1(gen.GenerateSteps(ctx, "Fire", "")).NoError(t)
		gt.Array(t, steps).Equal([]string{"a", "b", "c"})
	})

	t.Run("malformed response is an error", func(t *testing.T) {
		gen := checklist.New(respondWith(`not json`))
		_, err := gen.GenerateSteps(ctx, "Flood", "")
		gt.Error(t, err)
	})

	t.Run("empty step list is an error", func(t *testing.T) {
		gen := checklist.New(respondWith(`{"steps":[]}`))
		_, err := gen.GenerateSteps(ctx, "Flood", "")
		gt.Error(t, err)
	})

	t.Run("nil client is disabled", func(t *testing.T) {
		gen := checklist.New(nil)
		gt.Bool(t, gen.Enabled()).False()

		steps := gt.R1(gen.GenerateSteps(ctx, "Flood", "")).NoError(t)
		gt.Array(t, steps).Length(0)
	})
}
