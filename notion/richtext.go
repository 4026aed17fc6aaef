package notion

// Color enumerates Notion text colors. The converter only ever emits
// the default color; the type exists so annotations serialize with the
// field the API expects.
type Color string

// ColorDefault is the only color this library produces.
const ColorDefault Color = "default"

// Annotations are the formatting flags on a rich text run. All boolean
// fields serialize even when false; the API treats the object as a
// complete set of flags, not a sparse one.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// DefaultAnnotations returns the all-false, default-color annotation
// set.
func DefaultAnnotations() Annotations {
	return Annotations{Color: ColorDefault}
}

// Link is a hyperlink target on a rich text run.
type Link struct {
	URL string `json:"url"`
}

// TextContent pairs literal content with an optional link. Link is
// omitted from serialization when absent.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// RichText is a single annotated span of text.
type RichText struct {
	Type        string      `json:"type"`
	Text        TextContent `json:"text"`
	Annotations Annotations `json:"annotations"`
}

// NewText builds a plain rich text run with default annotations.
func NewText(content string) RichText {
	return RichText{
		Type:        "text",
		Text:        TextContent{Content: content},
		Annotations: DefaultAnnotations(),
	}
}

// NewLinkedText builds a rich text run pointing at url. An empty url
// yields a plain run with no link.
func NewLinkedText(content, url string) RichText {
	rt := NewText(content)
	if url != "" {
		rt.Text.Link = &Link{URL: url}
	}
	return rt
}
