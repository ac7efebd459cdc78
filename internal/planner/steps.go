package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// markerRe matches a single leading list marker: "1." / "2)" or one of - * •.
var markerRe = regexp.MustCompile(`^(\d+[.)]|[-*•])\s*`)

// Line filters applied by ExtractSteps before marker stripping.
var (
	introRe     = regexp.MustCompile(`(?i)^(here\s+(is|are)|proposed)`)
	stepsKeyRe  = regexp.MustCompile(`(?i)^"?steps"?\s*:`)
	jsonPunctRe = regexp.MustCompile(`^[\[{]\s*$`)
)

// DefaultSteps is substituted when extraction yields nothing usable, so the
// user always has a plan to edit.
var DefaultSteps = []string{
	"Clarify the goal and any constraints",
	"Gather the information needed",
	"Draft an initial answer",
	"Check the draft against the original request",
	"Refine and deliver the final answer",
}

// CleanLine removes one leading bullet/numbering marker and surrounding
// whitespace from a single line. Empty input yields empty output.
func CleanLine(line string) string {
	line = strings.TrimSpace(line)
	line = markerRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// IsBulleted reports whether the trimmed line starts with a list marker.
func IsBulleted(line string) bool {
	return markerRe.MatchString(strings.TrimSpace(line))
}

// stepKeys are probed in order when a step arrives as an object instead of a
// plain string.
var stepKeys = []string{"text", "content", "title", "description", "step", "value"}

// CoerceStep produces a display string from a step entry of unknown shape.
// It never fails; the worst case is an empty string.
func CoerceStep(entry any) string {
	switch v := entry.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		for _, key := range stepKeys {
			if s := stringify(v[key]); s != "" {
				return s
			}
		}
		return ""
	default:
		return stringify(v)
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// ExtractSteps is the fallback parser for prose-form plans: numbered lists,
// bullet lists and introductory sentences all reduce to a flat step list.
func ExtractSteps(raw string) []string {
	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if introRe.MatchString(line) || stepsKeyRe.MatchString(line) || jsonPunctRe.MatchString(line) {
			continue
		}
		if cleaned := CleanLine(line); cleaned != "" {
			steps = append(steps, cleaned)
		}
	}
	if len(steps) == 0 {
		return append([]string(nil), DefaultSteps...)
	}
	return steps
}

// ParseStepsJSON attempts to read model output as a JSON object with a "steps"
// array. The second return is false when no such object can be recovered, so
// the caller falls back to ExtractSteps. Parse errors never propagate.
func ParseStepsJSON(raw string) ([]string, bool) {
	payload, ok := decodeObject(raw)
	if !ok {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start < 0 || end <= start {
			return nil, false
		}
		if payload, ok = decodeObject(raw[start : end+1]); !ok {
			return nil, false
		}
	}

	entries, ok := payload["steps"].([]any)
	if !ok {
		return nil, false
	}

	steps := make([]string, 0, len(entries))
	for _, e := range entries {
		steps = append(steps, CoerceStep(e))
	}
	return steps, true
}

func decodeObject(text string) (map[string]any, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// StepsFromResponse turns free-form model output into an ordered list of step
// strings: JSON first, line heuristics second, fixed defaults last.
func StepsFromResponse(raw string) []string {
	if parsed, ok := ParseStepsJSON(raw); ok {
		steps := make([]string, 0, len(parsed))
		for _, s := range parsed {
			if s = strings.TrimSpace(s); s != "" {
				steps = append(steps, s)
			}
		}
		if len(steps) > 0 {
			return steps
		}
		// Valid JSON but nothing usable in it; re-extracting the JSON text as
		// prose would only produce punctuation, so substitute directly.
		return append([]string(nil), DefaultSteps...)
	}
	return ExtractSteps(raw)
}
