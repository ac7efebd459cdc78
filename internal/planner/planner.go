package planner

import (
	"context"

	"github.com/rahul/yojana/internal/llm"
)

// Planner is the plan API surface consumed by the front-end: it elicits a
// step list for a prompt and executes an edited step list into a final
// answer. Both operations are pure transformations over one model call.
type Planner struct {
	Client llm.Client
}

func New(client llm.Client) *Planner {
	return &Planner{Client: client}
}

// GeneratePlan asks the model for a step list and coerces whatever comes back
// into clean, ordered step strings.
func (p *Planner) GeneratePlan(ctx context.Context, prompt string) ([]string, error) {
	raw, err := p.Client.Complete(ctx, ElicitationPrompt(prompt))
	if err != nil {
		return nil, err
	}
	return StepsFromResponse(raw), nil
}

// ExecutePlan re-asks the original request with the (possibly edited) steps
// as binding constraints and returns the final answer text.
func (p *Planner) ExecutePlan(ctx context.Context, prompt string, steps []string) (string, error) {
	return p.Client.Complete(ctx, ExecutionPrompt(prompt, steps))
}
