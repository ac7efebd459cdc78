package planner

import (
	"fmt"
	"strings"
)

// MinAnswerWords is the minimum length target given to the model for the
// final answer.
const MinAnswerWords = 250

const elicitationTemplate = `Break the following request into a short sequence of actions.

Request: %s

Respond with ONLY a strict JSON object of the form {"steps": ["...", "..."]}.
Rules:
- 4 to 8 entries, each one short imperative sentence of at most 18 words.
- No prose, no markdown, no introductory phrases, no numbering inside the strings.
- Reflect every constraint stated in the request: time windows, counts, diets, budgets, must-have and must-avoid items.`

const executionTemplate = `%s

Treat each item below as a non-negotiable constraint and follow them in this exact order:
%s

Now write one coherent, complete answer to the request above. Requirements:
- Do not restate the items; produce the actual answer they describe.
- Write at least %d words, in the tone and detail of a normal conversational reply.
- Organize the main answer into clearly labeled parts, then close with a short "Notes & Assumptions" section.
- Never use the words "steps" or "plan", and never mention that the answer was structured or edited.`

// ElicitationPrompt wraps the user's request with instructions that elicit a
// strict JSON step list.
func ElicitationPrompt(prompt string) string {
	return fmt.Sprintf(elicitationTemplate, strings.TrimSpace(prompt))
}

// ExecutionPrompt re-asks the original request with the edited step texts as
// binding constraints. The instruction text is part of the interface: it is
// what keeps the final answer conversational while still honoring the edits.
func ExecutionPrompt(prompt string, steps []string) string {
	var b strings.Builder
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return fmt.Sprintf(executionTemplate, strings.TrimSpace(prompt), strings.TrimRight(b.String(), "\n"), MinAnswerWords)
}
