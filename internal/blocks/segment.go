package blocks

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rahul/yojana/internal/planner"
)

// lineClass is the per-line classification driving segmentation. Patterns are
// evaluated in priority order: header, emphasis header, bullet, plain.
type lineClass int

const (
	classPlain lineClass = iota
	classBullet
	classHeader
	classEmphasisHeader
)

// headerRes recognize section headers. Each pattern captures the label in
// group 1; trailing ": ..." text on the same line is not part of the title.
// This is layout inference over prose, not a markdown parser, so the label
// set is fixed.
var headerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^((?:day|evening|phase|step|week|section)\s+\d+)\s*(?::.*)?$`),
	regexp.MustCompile(`(?i)^(meal prep|breakfast|lunch|dinner|key decisions|assumptions|notes|conclusion)\s*(?::.*)?$`),
}

// emphasisRe matches a line entirely wrapped in a doubled emphasis marker.
var emphasisRe = regexp.MustCompile(`^\*\*(.+)\*\*$`)

// htmlPolicy strips any stray markup the model emits; blocks render as text.
var htmlPolicy = bluemonday.StrictPolicy()

func classify(line string) (lineClass, string) {
	for _, re := range headerRes {
		if m := re.FindStringSubmatch(line); m != nil {
			return classHeader, m[1]
		}
	}
	if m := emphasisRe.FindStringSubmatch(line); m != nil {
		return classEmphasisHeader, strings.TrimSpace(m[1])
	}
	if planner.IsBulleted(line) {
		return classBullet, planner.CleanLine(line)
	}
	return classPlain, line
}

// Segment infers an ordered block layout from a free-text answer. It scans
// trimmed non-empty lines while keeping at most one open list and one open
// section; opening either flushes the other. Section bodies are re-segmented
// one level deep into paragraphs and lists. If nothing at all is produced,
// the whole input becomes a single paragraph.
func Segment(raw string) []Block {
	text := sanitize(raw)

	var (
		out          []Block
		openList     []string
		sectionTitle string
		sectionBuf   []string
		inSection    bool
	)

	flushList := func() {
		if len(openList) > 0 {
			out = append(out, list(openList))
			openList = nil
		}
	}
	closeSection := func() {
		if inSection {
			out = append(out, section(sectionTitle, segmentBody(sectionBuf)))
			sectionBuf = nil
			inSection = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		class, captured := classify(line)

		switch {
		case class == classHeader:
			flushList()
			closeSection()
			inSection = true
			sectionTitle = captured
		case class == classEmphasisHeader && inSection:
			closeSection()
			inSection = true
			sectionTitle = captured
		case inSection:
			sectionBuf = append(sectionBuf, line)
		case class == classBullet:
			openList = append(openList, captured)
		default:
			flushList()
			out = append(out, paragraph(line))
		}
	}

	flushList()
	closeSection()

	if len(out) == 0 {
		return []Block{paragraph(text)}
	}
	return out
}

// segmentBody splits a section's buffered lines into paragraphs and lists.
// No header detection here: sections do not recurse.
func segmentBody(lines []string) []Block {
	var (
		body     []Block
		openList []string
	)
	for _, line := range lines {
		if planner.IsBulleted(line) {
			openList = append(openList, planner.CleanLine(line))
			continue
		}
		if len(openList) > 0 {
			body = append(body, list(openList))
			openList = nil
		}
		body = append(body, paragraph(line))
	}
	if len(openList) > 0 {
		body = append(body, list(openList))
	}
	return body
}

func sanitize(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	return html.UnescapeString(htmlPolicy.Sanitize(s))
}
