// Package token defines the Markdown token tree consumed by the
// converter. The shape mirrors what the parser adapter emits: a type
// discriminator, an optional literal payload, optional type-specific
// attributes, and ordered children. Tokens are read-only inputs; the
// converter never mutates them.
package token

// Token type names produced by the parser adapter.
const (
	Paragraph     = "paragraph"
	Heading       = "heading"
	BlockCode     = "block_code"
	BlockQuote    = "block_quote"
	BlockText     = "block_text"
	BlockHTML     = "block_html"
	ThematicBreak = "thematic_break"
	List          = "list"
	ListItem      = "list_item"
	Table         = "table"
	TableHead     = "table_head"
	TableBody     = "table_body"
	TableRow      = "table_row"
	TableCell     = "table_cell"
	BlankLine     = "blank_line"

	Text       = "text"
	Strong     = "strong"
	Emphasis   = "emphasis"
	Link       = "link"
	Image      = "image"
	Codespan   = "codespan"
	Softbreak  = "softbreak"
	Linebreak  = "linebreak"
	InlineHTML = "inline_html"
)

// Attrs carries the type-specific token attributes. Zero values mean
// the attribute is absent: Level 0 on a heading means "use the default",
// Ordered false is an unordered list, empty URL/Info mean unset.
type Attrs struct {
	// Level is the heading level as reported by the parser (1-6).
	Level int
	// Ordered marks a list token as numbered.
	Ordered bool
	// URL is the link or image destination.
	URL string
	// Info is the code-fence language hint.
	Info string
}

// Token is one node in the parsed Markdown tree.
type Token struct {
	// Type discriminates the token. An empty Type is skipped by the
	// tree walker.
	Type string
	// Raw holds the literal string payload for text, codespan and
	// block_code tokens. Code blocks keep their trailing newline.
	Raw string
	// Attrs holds type-specific attributes.
	Attrs Attrs
	// Children are the ordered child tokens, if any.
	Children []Token
}
