package convert

import (
	"github.com/gerunddev/notionize/notion"
	"github.com/gerunddev/notionize/token"
)

// tableStructure is the extracted header/body split of a table token:
// the header's cell tokens and the body's row tokens.
type tableStructure struct {
	headerCells []token.Token
	bodyRows    []token.Token
}

// convertTable converts a table token into a single table block. The
// header row, when present, becomes the first table_row child and sets
// has_column_header; row headers are never detected.
func (c *Converter) convertTable(tok token.Token) ([]notion.Block, error) {
	ts := extractTableStructure(tok)

	return single(notion.Block{
		Type: notion.TypeTable,
		Content: notion.TableContent{
			TableWidth:      ts.width(),
			HasColumnHeader: len(ts.headerCells) > 0,
			HasRowHeader:    false,
			Children:        convertTableRows(ts),
		},
	}), nil
}

// extractTableStructure locates the table's single table_head child
// (its children are the header cells) and single table_body child (its
// children are the body rows). Only the first of each counts.
func extractTableStructure(tok token.Token) tableStructure {
	var ts tableStructure

	for _, child := range tok.Children {
		switch child.Type {
		case token.TableHead:
			if ts.headerCells == nil {
				ts.headerCells = child.Children
			}
		case token.TableBody:
			if ts.bodyRows == nil {
				ts.bodyRows = child.Children
			}
		}
	}

	return ts
}

// width is the header cell count when headers exist, else the width of
// the first body row, else 1. Never zero.
func (ts tableStructure) width() int {
	if len(ts.headerCells) > 0 {
		return len(ts.headerCells)
	}
	if len(ts.bodyRows) > 0 {
		return len(ts.bodyRows[0].Children)
	}
	return 1
}

// convertTableRows produces the table's rows in document order, header
// row first when present.
func convertTableRows(ts tableStructure) []notion.TableRow {
	rows := []notion.TableRow{}

	if len(ts.headerCells) > 0 {
		rows = append(rows, notion.NewTableRow(convertTableRow(ts.headerCells)))
	}
	for _, row := range ts.bodyRows {
		rows = append(rows, notion.NewTableRow(convertTableRow(row.Children)))
	}

	return rows
}

// convertTableRow converts one row's cells. A cell whose sole content
// is a link token takes the link-cell shortcut; everything else goes
// through the inline formatter.
func convertTableRow(cells []token.Token) [][]notion.RichText {
	res := make([][]notion.RichText, 0, len(cells))

	for _, cell := range cells {
		if isLinkCell(cell.Children) {
			res = append(res, convertLinkCell(cell.Children[0]))
		} else {
			res = append(res, FormatInline(cell.Children))
		}
	}

	return res
}

// isLinkCell reports whether the cell's content is exactly one link
// token.
func isLinkCell(content []token.Token) bool {
	return len(content) == 1 && content[0].Type == token.Link
}

// convertLinkCell produces the single run for a link-only cell: the
// link's first child text pointing at the link's url.
func convertLinkCell(link token.Token) []notion.RichText {
	content := ""
	if len(link.Children) > 0 {
		content = link.Children[0].Raw
	}
	return []notion.RichText{notion.NewLinkedText(content, link.Attrs.URL)}
}
