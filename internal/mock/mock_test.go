package mock

import (
	"context"
	"strings"
	"testing"

	"github.com/rahul/yojana/internal/planner"
)

func TestCompleteIsDeterministic(t *testing.T) {
	g := New()
	ctx := context.Background()

	for _, prompt := range []string{
		"what should I cook tonight?",
		planner.ElicitationPrompt("plan my week"),
		planner.ExecutionPrompt("plan my week", []string{"A", "B"}),
	} {
		first, err := g.Complete(ctx, prompt)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		second, err := g.Complete(ctx, prompt)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if first != second {
			t.Errorf("output for %q is not deterministic", prompt)
		}
	}
}

func TestCompleteElicitationYieldsParseableSteps(t *testing.T) {
	g := New()
	out, err := g.Complete(context.Background(), planner.ElicitationPrompt("organize a garage sale"))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	steps, ok := planner.ParseStepsJSON(out)
	if !ok {
		t.Fatalf("mock elicitation output is not a steps object: %q", out)
	}
	if len(steps) < 4 {
		t.Errorf("expected at least 4 steps, got %d", len(steps))
	}
}

func TestCompleteExecutionEchoesConstraints(t *testing.T) {
	g := New()
	out, err := g.Complete(context.Background(),
		planner.ExecutionPrompt("plan dinner", []string{"Check the fridge", "Pick a recipe"}))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if !strings.Contains(out, "Check the fridge") || !strings.Contains(out, "Pick a recipe") {
		t.Errorf("offline answer does not acknowledge the constraints:\n%s", out)
	}
	if !strings.Contains(out, "Key Decisions:") || !strings.Contains(out, "Notes:") {
		t.Errorf("offline answer is missing its sections:\n%s", out)
	}
}

func TestCompleteChatReply(t *testing.T) {
	g := New()
	out, err := g.Complete(context.Background(), "how do I learn Go?")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !strings.Contains(out, "how do I learn Go?") {
		t.Errorf("chat reply does not reference the prompt: %q", out)
	}
	if strings.Contains(out, `{"steps"`) {
		t.Errorf("chat reply should not be a steps object: %q", out)
	}
}
