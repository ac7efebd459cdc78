// Package mock provides deterministic local stand-ins for the model backend
// so the demo keeps working offline. Output depends only on the prompt text.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

// Generator implements llm.Client without ever failing.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Complete routes on instruction markers embedded by the prompt builders:
// elicitation prompts demand a {"steps": ...} object, execution prompts
// declare non-negotiable constraints, anything else is plain chat.
func (g *Generator) Complete(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, `{"steps"`):
		return g.stepsJSON(prompt), nil
	case strings.Contains(prompt, "non-negotiable constraint"):
		return g.answer(prompt), nil
	default:
		return g.reply(prompt), nil
	}
}

var stepVariants = [][]string{
	{
		"Pin down what a good outcome looks like",
		"List the fixed constraints before anything else",
		"Sketch two or three candidate approaches",
		"Pick the approach with the fewest unknowns",
		"Work through the details end to end",
		"Double-check the result against the constraints",
	},
	{
		"Restate the request in one sentence",
		"Collect the facts the answer depends on",
		"Outline the answer before writing it",
		"Fill in each part of the outline",
		"Trim anything that does not serve the request",
	},
	{
		"Identify the hard requirements and the nice-to-haves",
		"Decide the order to tackle them in",
		"Handle the hard requirements first",
		"Layer in the nice-to-haves where they fit",
		"Review everything once, start to finish",
	},
}

var replyVariants = []string{
	"Happy to help with that. %s — here's my take: start simple, confirm the essentials, and build up from there. If you tell me more about your constraints I can get much more specific.",
	"Good question. For \"%s\" I'd begin with the basics and expand as needed. There are a few reasonable ways to approach it, and the right one depends mostly on how much time and budget you have.",
	"Let's work through it. \"%s\" breaks down naturally into a few parts, and handling them in order usually gives the best result. Ask me to go deeper on any part that matters most to you.",
}

func (g *Generator) stepsJSON(prompt string) string {
	steps := stepVariants[pick(prompt, len(stepVariants))]
	data, err := json.Marshal(map[string]any{"steps": steps})
	if err != nil {
		// Marshal of a string slice cannot fail; keep the pipeline alive anyway.
		return strings.Join(steps, "\n")
	}
	return string(data)
}

func (g *Generator) reply(prompt string) string {
	return fmt.Sprintf(replyVariants[pick(prompt, len(replyVariants))], topic(prompt))
}

func (g *Generator) answer(prompt string) string {
	constraints := numberedLines(prompt)

	var b strings.Builder
	b.WriteString("Here's a complete answer, put together offline while the model backend is unavailable.\n\n")

	b.WriteString("Key Decisions:\n")
	if len(constraints) == 0 {
		b.WriteString("- Keep the structure simple and the scope tight\n")
		b.WriteString("- Prefer the option that is easiest to adjust later\n")
	} else {
		for _, c := range constraints {
			fmt.Fprintf(&b, "- Honored: %s\n", c)
		}
	}
	b.WriteString("\n")

	b.WriteString("Conclusion:\n")
	b.WriteString("Everything above follows the structure you settled on, in order, without gaps. ")
	b.WriteString("Adjust any single part and the rest still holds together.\n\n")

	b.WriteString("Notes:\n")
	b.WriteString("- This answer was produced by the local generator\n")
	b.WriteString("- Re-run once the model backend is reachable for a richer result\n")

	return b.String()
}

// numberedLines pulls the "1. ..." constraint lines back out of an execution
// prompt so the offline answer can acknowledge them.
func numberedLines(prompt string) []string {
	var out []string
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 2 && line[0] >= '1' && line[0] <= '9' && (line[1] == '.' || line[1] == ')') {
			out = append(out, strings.TrimSpace(line[2:]))
		}
	}
	return out
}

func topic(prompt string) string {
	t := strings.TrimSpace(prompt)
	if idx := strings.IndexByte(t, '\n'); idx >= 0 {
		t = t[:idx]
	}
	if len(t) > 60 {
		t = t[:57] + "..."
	}
	return t
}

func pick(prompt string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	return int(h.Sum32() % uint32(n))
}
