package blocks

// Kind tags a display block inferred from free-text model output.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
	KindSection   Kind = "section"
)

// Block is one structural unit of a rendered answer. Exactly one of the
// payload fields is populated, according to Kind. Sections hold paragraphs
// and lists only; they never nest further sections.
type Block struct {
	Kind  Kind     `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
	Title string   `json:"title,omitempty"`
	Body  []Block  `json:"body,omitempty"`
}

func paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

func list(items []string) Block {
	return Block{Kind: KindList, Items: items}
}

func section(title string, body []Block) Block {
	return Block{Kind: KindSection, Title: title, Body: body}
}
