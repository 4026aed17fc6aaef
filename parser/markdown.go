// Package parser adapts the goldmark Markdown engine to the token tree
// the converter consumes. The engine runs with the table extension so
// table_head/table_body/table_row shapes are present. Conversion itself
// never touches goldmark; this package is the only place the external
// parser is visible.
package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gerunddev/notionize/token"
)

// Goldmark parses Markdown into the token tree. It is stateless and
// safe for concurrent use; callers can reuse a single instance.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark constructs the default parser: goldmark with the table
// extension enabled.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Parse parses content into a []token.Token. A valid leading YAML front
// matter document is stripped first; an unparsable candidate is left in
// place and parsed as Markdown. The any return type mirrors the parser
// seam's contract; this implementation always returns a token list on
// success.
func (g *Goldmark) Parse(content string) (any, error) {
	if _, body, err := SplitFrontMatter(content); err == nil {
		content = body
	}

	source := []byte(content)
	doc := g.md.Parser().Parse(text.NewReader(source))

	b := builder{source: source}
	return b.blockChildren(doc), nil
}

// builder walks the goldmark AST and emits tokens. It carries the
// source bytes because goldmark nodes reference text by segment.
type builder struct {
	source []byte
}

func (b *builder) blockChildren(parent ast.Node) []token.Token {
	tokens := []token.Token{}
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		tokens = append(tokens, b.block(child))
	}
	return tokens
}

func (b *builder) block(node ast.Node) token.Token {
	switch n := node.(type) {
	case *ast.Paragraph:
		return token.Token{Type: token.Paragraph, Children: b.inlineChildren(n)}
	case *ast.TextBlock:
		return token.Token{Type: token.BlockText, Children: b.inlineChildren(n)}
	case *ast.Heading:
		return token.Token{
			Type:     token.Heading,
			Attrs:    token.Attrs{Level: n.Level},
			Children: b.inlineChildren(n),
		}
	case *ast.ThematicBreak:
		return token.Token{Type: token.ThematicBreak}
	case *ast.FencedCodeBlock:
		return token.Token{
			Type:  token.BlockCode,
			Raw:   b.rawLines(n),
			Attrs: token.Attrs{Info: string(n.Language(b.source))},
		}
	case *ast.CodeBlock:
		return token.Token{Type: token.BlockCode, Raw: b.rawLines(n)}
	case *ast.Blockquote:
		return token.Token{Type: token.BlockQuote, Children: b.blockChildren(n)}
	case *ast.List:
		return b.list(n)
	case *ast.HTMLBlock:
		return token.Token{Type: token.BlockHTML, Raw: b.htmlBlock(n)}
	case *east.Table:
		return b.table(n)
	}

	// Unhandled block kinds surface by name so the converter can report
	// them instead of dropping content on the floor.
	return token.Token{Type: snakeKind(node.Kind().String())}
}

func (b *builder) list(n *ast.List) token.Token {
	items := []token.Token{}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		items = append(items, token.Token{
			Type:     token.ListItem,
			Children: b.blockChildren(child),
		})
	}

	return token.Token{
		Type:     token.List,
		Attrs:    token.Attrs{Ordered: n.IsOrdered()},
		Children: items,
	}
}

// table reshapes goldmark's header-row-then-rows structure into the
// table_head/table_body split the converter expects.
func (b *builder) table(n *east.Table) token.Token {
	var head *token.Token
	bodyRows := []token.Token{}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *east.TableHeader:
			if head == nil {
				head = &token.Token{Type: token.TableHead, Children: b.tableCells(child)}
			}
		case *east.TableRow:
			bodyRows = append(bodyRows, token.Token{
				Type:     token.TableRow,
				Children: b.tableCells(child),
			})
		}
	}

	children := []token.Token{}
	if head != nil {
		children = append(children, *head)
	}
	children = append(children, token.Token{Type: token.TableBody, Children: bodyRows})

	return token.Token{Type: token.Table, Children: children}
}

func (b *builder) tableCells(row ast.Node) []token.Token {
	cells := []token.Token{}
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, token.Token{
			Type:     token.TableCell,
			Children: b.inlineChildren(cell),
		})
	}
	return cells
}

func (b *builder) inlineChildren(parent ast.Node) []token.Token {
	tokens := []token.Token{}
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		tokens = append(tokens, b.inline(child)...)
	}
	return tokens
}

func (b *builder) inline(node ast.Node) []token.Token {
	switch n := node.(type) {
	case *ast.Text:
		tokens := []token.Token{{Type: token.Text, Raw: string(n.Segment.Value(b.source))}}
		if n.HardLineBreak() {
			tokens = append(tokens, token.Token{Type: token.Linebreak})
		} else if n.SoftLineBreak() {
			tokens = append(tokens, token.Token{Type: token.Softbreak})
		}
		return tokens
	case *ast.String:
		return []token.Token{{Type: token.Text, Raw: string(n.Value)}}
	case *ast.Emphasis:
		t := token.Emphasis
		if n.Level == 2 {
			t = token.Strong
		}
		return []token.Token{{Type: t, Children: b.inlineChildren(n)}}
	case *ast.Link:
		return []token.Token{{
			Type:     token.Link,
			Attrs:    token.Attrs{URL: string(n.Destination)},
			Children: b.inlineChildren(n),
		}}
	case *ast.AutoLink:
		return []token.Token{{
			Type:     token.Link,
			Attrs:    token.Attrs{URL: string(n.URL(b.source))},
			Children: []token.Token{{Type: token.Text, Raw: string(n.Label(b.source))}},
		}}
	case *ast.Image:
		return []token.Token{{
			Type:     token.Image,
			Attrs:    token.Attrs{URL: string(n.Destination)},
			Children: b.inlineChildren(n),
		}}
	case *ast.CodeSpan:
		return []token.Token{{Type: token.Codespan, Raw: b.codeSpanText(n)}}
	case *ast.RawHTML:
		return []token.Token{{Type: token.InlineHTML, Raw: b.segmentsText(n.Segments)}}
	}

	return []token.Token{{Type: snakeKind(node.Kind().String())}}
}

// snakeKind converts a goldmark kind name like "HTMLBlock" into the
// snake_case token vocabulary ("html_block"), so unhandled kinds keep
// the naming convention overrides match against.
func snakeKind(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			startsWord := i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z'
			if i > 0 && (name[i-1] < 'A' || name[i-1] > 'Z' || startsWord) {
				sb.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// rawLines joins a block node's source lines verbatim. The trailing
// newline of a fenced block's last line is kept; Notion code content
// expects it.
func (b *builder) rawLines(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(b.source))
	}
	return sb.String()
}

func (b *builder) htmlBlock(n *ast.HTMLBlock) string {
	raw := b.rawLines(n)
	if n.HasClosure() {
		raw += string(n.ClosureLine.Value(b.source))
	}
	return raw
}

func (b *builder) codeSpanText(n *ast.CodeSpan) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(b.source))
		}
	}
	return sb.String()
}

func (b *builder) segmentsText(segments *text.Segments) string {
	var sb strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(b.source))
	}
	return sb.String()
}
