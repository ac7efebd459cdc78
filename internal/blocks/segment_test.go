package blocks

import (
	"reflect"
	"testing"
)

func TestSegmentDaySections(t *testing.T) {
	got := Segment("Day 1: Breakfast\n- Oats\n- Tea\nDay 2: Lunch\n- Salad\n")

	if len(got) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(got), got)
	}
	if got[0].Kind != KindSection || got[0].Title != "Day 1" {
		t.Errorf("block 0 = %+v, want section titled Day 1", got[0])
	}
	if got[1].Kind != KindSection || got[1].Title != "Day 2" {
		t.Errorf("block 1 = %+v, want section titled Day 2", got[1])
	}

	if len(got[0].Body) != 1 || got[0].Body[0].Kind != KindList {
		t.Fatalf("Day 1 body = %+v, want one list", got[0].Body)
	}
	if !reflect.DeepEqual(got[0].Body[0].Items, []string{"Oats", "Tea"}) {
		t.Errorf("Day 1 items = %v", got[0].Body[0].Items)
	}
	if !reflect.DeepEqual(got[1].Body[0].Items, []string{"Salad"}) {
		t.Errorf("Day 2 items = %v", got[1].Body[0].Items)
	}
}

func TestSegmentPlainProse(t *testing.T) {
	got := Segment("First thought.\nSecond thought.\n\nThird thought.")

	want := []Block{
		{Kind: KindParagraph, Text: "First thought."},
		{Kind: KindParagraph, Text: "Second thought."},
		{Kind: KindParagraph, Text: "Third thought."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %+v, want %+v", got, want)
	}
}

func TestSegmentTopLevelList(t *testing.T) {
	got := Segment("Options to consider:\n- cheap\n- fast\nPick one.")

	if len(got) != 3 {
		t.Fatalf("expected 3 blocks, got %+v", got)
	}
	if got[0].Kind != KindParagraph {
		t.Errorf("block 0 = %+v", got[0])
	}
	if got[1].Kind != KindList || !reflect.DeepEqual(got[1].Items, []string{"cheap", "fast"}) {
		t.Errorf("block 1 = %+v", got[1])
	}
	if got[2].Kind != KindParagraph || got[2].Text != "Pick one." {
		t.Errorf("block 2 = %+v", got[2])
	}
}

func TestSegmentEmphasisTitleInsideSection(t *testing.T) {
	got := Segment("Notes:\nKeep it short.\n**Wrap Up**\nAll done.")

	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %+v", got)
	}
	if got[0].Title != "Notes" || len(got[0].Body) != 1 || got[0].Body[0].Text != "Keep it short." {
		t.Errorf("section 0 = %+v", got[0])
	}
	if got[1].Title != "Wrap Up" || len(got[1].Body) != 1 || got[1].Body[0].Text != "All done." {
		t.Errorf("section 1 = %+v", got[1])
	}
}

func TestSegmentEmphasisOutsideSectionIsPlain(t *testing.T) {
	got := Segment("**Just Bold**")

	if len(got) != 1 || got[0].Kind != KindParagraph {
		t.Fatalf("got %+v, want one paragraph", got)
	}
}

func TestSegmentSectionMixedBody(t *testing.T) {
	got := Segment("Phase 1: setup\nGet the basics in place.\n- install\n- configure\nThen move on.")

	if len(got) != 1 || got[0].Kind != KindSection || got[0].Title != "Phase 1" {
		t.Fatalf("got %+v", got)
	}
	body := got[0].Body
	if len(body) != 3 {
		t.Fatalf("body = %+v", body)
	}
	if body[0].Kind != KindParagraph || body[1].Kind != KindList || body[2].Kind != KindParagraph {
		t.Errorf("body kinds = %v %v %v", body[0].Kind, body[1].Kind, body[2].Kind)
	}
}

func TestSegmentSectionsNeverNest(t *testing.T) {
	got := Segment("Week 1\nplanning\nStep 2\ndoing\nConclusion\n- ship it\n")

	if len(got) != 3 {
		t.Fatalf("expected 3 top-level sections, got %+v", got)
	}
	for _, b := range got {
		if b.Kind != KindSection {
			t.Errorf("top-level block %+v is not a section", b)
			continue
		}
		for _, inner := range b.Body {
			if inner.Kind == KindSection {
				t.Errorf("section %q nests a section", b.Title)
			}
		}
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	got := Segment("")
	if len(got) != 1 || got[0].Kind != KindParagraph || got[0].Text != "" {
		t.Errorf("Segment(\"\") = %+v", got)
	}

	raw := "   \n  \t "
	got = Segment(raw)
	if len(got) != 1 || got[0].Kind != KindParagraph || got[0].Text != raw {
		t.Errorf("whitespace input = %+v, want one paragraph of the original text", got)
	}
}

func TestSegmentStripsHTML(t *testing.T) {
	got := Segment("Dinner:\n- <b>Pasta</b> night\n")

	if len(got) != 1 || got[0].Kind != KindSection || got[0].Title != "Dinner" {
		t.Fatalf("got %+v", got)
	}
	items := got[0].Body[0].Items
	if !reflect.DeepEqual(items, []string{"Pasta night"}) {
		t.Errorf("items = %v, want markup stripped", items)
	}
}

func TestClassifyPatternTable(t *testing.T) {
	cases := []struct {
		line     string
		class    lineClass
		captured string
	}{
		{"Day 3", classHeader, "Day 3"},
		{"day 3: anything else", classHeader, "day 3"},
		{"Evening 2", classHeader, "Evening 2"},
		{"Phase 10: rollout", classHeader, "Phase 10"},
		{"Step 1", classHeader, "Step 1"},
		{"Week 4:", classHeader, "Week 4"},
		{"Section 2", classHeader, "Section 2"},
		{"Meal Prep", classHeader, "Meal Prep"},
		{"BREAKFAST:", classHeader, "BREAKFAST"},
		{"Key Decisions: summary", classHeader, "Key Decisions"},
		{"Assumptions", classHeader, "Assumptions"},
		{"Conclusion", classHeader, "Conclusion"},
		{"Notes and more words", classPlain, "Notes and more words"},
		{"Daydream 1", classPlain, "Daydream 1"},
		{"**Title**", classEmphasisHeader, "Title"},
		{"- bullet", classBullet, "bullet"},
		{"3. numbered", classBullet, "numbered"},
		{"just prose", classPlain, "just prose"},
	}

	for _, c := range cases {
		class, captured := classify(c.line)
		if class != c.class || captured != c.captured {
			t.Errorf("classify(%q) = (%v, %q), want (%v, %q)", c.line, class, captured, c.class, c.captured)
		}
	}
}
