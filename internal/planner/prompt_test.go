package planner

import (
	"strconv"
	"strings"
	"testing"
)

func TestElicitationPrompt(t *testing.T) {
	prompt := ElicitationPrompt("Plan 3 vegetarian dinners under 30 minutes")

	for _, want := range []string{
		"Plan 3 vegetarian dinners under 30 minutes",
		`{"steps"`,
		"4 to 8",
		"18 words",
		"diets",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("elicitation prompt missing %q", want)
		}
	}
}

func TestExecutionPrompt(t *testing.T) {
	prompt := ExecutionPrompt("Plan a weekend trip", []string{"Pick a city", "Book a room"})

	if !strings.Contains(prompt, "Plan a weekend trip") {
		t.Error("execution prompt does not restate the original request")
	}
	if !strings.Contains(prompt, "1. Pick a city\n2. Book a room") {
		t.Error("execution prompt does not number the steps in order")
	}
	if !strings.Contains(prompt, strconv.Itoa(MinAnswerWords)) {
		t.Error("execution prompt does not state the minimum length")
	}
	if !strings.Contains(prompt, "Notes & Assumptions") {
		t.Error("execution prompt does not ask for the notes section")
	}
}

// Deleting and reordering steps must be fully reflected: only the surviving
// steps appear, in their edited order, and the deleted text is gone.
func TestExecutionPromptHonorsEdits(t *testing.T) {
	// Generated plan was: requirements, "Search for quick recipes", pick,
	// shopping list. The user deleted step 2 and moved the list to the front.
	edited := []string{
		"Write the shopping list",
		"List dietary requirements",
		"Pick three dinners",
	}

	prompt := ExecutionPrompt("Plan 3 vegetarian dinners under 30 minutes", edited)

	if strings.Contains(prompt, "Search for quick recipes") {
		t.Error("deleted step text leaked into the execution prompt")
	}
	wantOrder := "1. Write the shopping list\n2. List dietary requirements\n3. Pick three dinners"
	if !strings.Contains(prompt, wantOrder) {
		t.Errorf("edited step order not preserved, prompt:\n%s", prompt)
	}
}
