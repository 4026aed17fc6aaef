package convert

import (
	"testing"

	"github.com/gerunddev/notionize/notion"
	"github.com/gerunddev/notionize/token"
)

func cellToken(content string) token.Token {
	return token.Token{Type: token.TableCell, Children: textTokens(content)}
}

func tableToken(headerCells []token.Token, bodyRows ...[]token.Token) token.Token {
	children := []token.Token{}
	if headerCells != nil {
		children = append(children, token.Token{Type: token.TableHead, Children: headerCells})
	}
	rows := []token.Token{}
	for _, cells := range bodyRows {
		rows = append(rows, token.Token{Type: token.TableRow, Children: cells})
	}
	children = append(children, token.Token{Type: token.TableBody, Children: rows})
	return token.Token{Type: token.Table, Children: children}
}

func convertTableContent(t *testing.T, tok token.Token) notion.TableContent {
	t.Helper()
	blocks, err := New().ConvertBlocks([]token.Token{tok})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Type != notion.TypeTable {
		t.Fatalf("expected a single table block, got %+v", blocks)
	}
	content, ok := blocks[0].Content.(notion.TableContent)
	if !ok {
		t.Fatalf("content is %T, want TableContent", blocks[0].Content)
	}
	return content
}

func TestConvertTableShape(t *testing.T) {
	content := convertTableContent(t, tableToken(
		[]token.Token{cellToken("H1"), cellToken("H2")},
		[]token.Token{cellToken("a"), cellToken("b")},
		[]token.Token{cellToken("c"), cellToken("d")},
	))

	if content.TableWidth != 2 {
		t.Errorf("table_width = %d, want 2", content.TableWidth)
	}
	if !content.HasColumnHeader {
		t.Error("has_column_header should be true")
	}
	if content.HasRowHeader {
		t.Error("has_row_header must always be false")
	}
	// Header row first, then body rows in document order.
	if len(content.Children) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(content.Children))
	}
	if got := content.Children[0].TableRow.Cells[0][0].Text.Content; got != "H1" {
		t.Errorf("first row should be the header, got cell %q", got)
	}
	if got := content.Children[2].TableRow.Cells[1][0].Text.Content; got != "d" {
		t.Errorf("last cell = %q, want %q", got, "d")
	}
}

func TestConvertTableWithoutHeader(t *testing.T) {
	content := convertTableContent(t, tableToken(
		nil,
		[]token.Token{cellToken("a"), cellToken("b"), cellToken("c")},
	))

	if content.TableWidth != 3 {
		t.Errorf("table_width = %d, want width of first body row", content.TableWidth)
	}
	if content.HasColumnHeader {
		t.Error("has_column_header should be false without a header")
	}
	if len(content.Children) != 1 {
		t.Errorf("expected 1 row, got %d", len(content.Children))
	}
}

func TestConvertEmptyTableWidthIsOne(t *testing.T) {
	content := convertTableContent(t, token.Token{Type: token.Table})

	if content.TableWidth != 1 {
		t.Errorf("table_width = %d, want 1 (never zero)", content.TableWidth)
	}
	if len(content.Children) != 0 {
		t.Errorf("expected no rows, got %d", len(content.Children))
	}
}

func TestConvertTableLinkCell(t *testing.T) {
	linkCell := token.Token{Type: token.TableCell, Children: []token.Token{{
		Type:     token.Link,
		Attrs:    token.Attrs{URL: "https://example.com"},
		Children: textTokens("Example"),
	}}}

	content := convertTableContent(t, tableToken(nil, []token.Token{linkCell}))

	cells := content.Children[0].TableRow.Cells
	if len(cells) != 1 || len(cells[0]) != 1 {
		t.Fatalf("expected exactly one run in the link cell, got %+v", cells)
	}
	run := cells[0][0]
	if run.Text.Content != "Example" {
		t.Errorf("content = %q, want %q", run.Text.Content, "Example")
	}
	if run.Text.Link == nil || run.Text.Link.URL != "https://example.com" {
		t.Errorf("unexpected link: %+v", run.Text.Link)
	}
}

// A cell mixing a link with other content skips the link-cell shortcut
// and goes through the inline formatter.
func TestConvertTableMixedCellUsesInlineFormatter(t *testing.T) {
	mixedCell := token.Token{Type: token.TableCell, Children: []token.Token{
		{Type: token.Link, Attrs: token.Attrs{URL: "https://example.com"}, Children: textTokens("Example")},
		{Type: token.Text, Raw: " and more"},
	}}

	content := convertTableContent(t, tableToken(nil, []token.Token{mixedCell}))

	cells := content.Children[0].TableRow.Cells
	if len(cells[0]) != 2 {
		t.Fatalf("expected 2 runs from the inline formatter, got %d", len(cells[0]))
	}
}

func TestConvertTableCellFormatting(t *testing.T) {
	boldCell := token.Token{Type: token.TableCell, Children: []token.Token{{
		Type:     token.Strong,
		Children: textTokens("loud"),
	}}}

	content := convertTableContent(t, tableToken(nil, []token.Token{boldCell}))

	run := content.Children[0].TableRow.Cells[0][0]
	if !run.Annotations.Bold {
		t.Error("cell content should keep its bold annotation")
	}
}
