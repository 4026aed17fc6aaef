// Package notion models the Notion API block payloads produced by the
// converter. Blocks marshal to the API's self-describing envelope: the
// block type appears both as the "type" field value and as the key of
// the sibling field holding the type-specific content.
package notion

import (
	"encoding/json"
	"fmt"
)

// BlockType enumerates the block types this library produces. The set
// is closed; token types without a mapping fail conversion instead of
// being silently dropped.
type BlockType string

const (
	TypeParagraph BlockType = "paragraph"
	TypeHeading1  BlockType = "heading_1"
	TypeHeading2  BlockType = "heading_2"
	TypeHeading3  BlockType = "heading_3"
	TypeCode      BlockType = "code"
	TypeBulleted  BlockType = "bulleted_list_item"
	TypeNumbered  BlockType = "numbered_list_item"
	TypeQuote     BlockType = "quote"
	TypeDivider   BlockType = "divider"
	TypeTable     BlockType = "table"
	TypeImage     BlockType = "image"
)

// Block is one unit of Notion content, ready for the API. Content holds
// the type-specific payload struct and must match Type. Blocks are
// value types; treat them as immutable once constructed.
type Block struct {
	Type    BlockType
	Content any
}

// MarshalJSON writes the self-describing envelope:
// {"object":"block","type":"<t>","<t>":<content>}.
func (b Block) MarshalJSON() ([]byte, error) {
	if b.Type == "" {
		return nil, fmt.Errorf("notion: block has no type")
	}

	content, err := json.Marshal(b.Content)
	if err != nil {
		return nil, fmt.Errorf("notion: failed to marshal %s content: %w", b.Type, err)
	}

	typeName, err := json.Marshal(b.Type)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]json.RawMessage{
		"object":       json.RawMessage(`"block"`),
		"type":         json.RawMessage(typeName),
		string(b.Type): json.RawMessage(content),
	})
}

// TextBlockContent holds rich text runs for paragraph, heading and
// quote blocks.
type TextBlockContent struct {
	RichText []RichText `json:"rich_text"`
}

// CodeContent is the payload of a code block. RichText carries the raw
// source verbatim as a single unformatted run.
type CodeContent struct {
	RichText []RichText `json:"rich_text"`
	Language Language   `json:"language"`
}

// ListItemContent is the payload of a bulleted or numbered list item.
// Children holds nested blocks and is omitted when empty.
type ListItemContent struct {
	RichText []RichText `json:"rich_text"`
	Children []Block    `json:"children,omitempty"`
}

// DividerContent is intentionally empty; dividers carry no content.
type DividerContent struct{}

// TableContent is the payload of a table block.
type TableContent struct {
	TableWidth      int        `json:"table_width"`
	HasColumnHeader bool       `json:"has_column_header"`
	HasRowHeader    bool       `json:"has_row_header"`
	Children        []TableRow `json:"children"`
}

// TableRow is a row envelope inside a table block's children. Like the
// block envelope, the row duplicates its type name as the content key.
type TableRow struct {
	Type     string          `json:"type"`
	TableRow TableRowContent `json:"table_row"`
}

// TableRowContent holds one rich text sequence per cell.
type TableRowContent struct {
	Cells [][]RichText `json:"cells"`
}

// NewTableRow wraps cells in the table_row envelope.
func NewTableRow(cells [][]RichText) TableRow {
	return TableRow{
		Type:     "table_row",
		TableRow: TableRowContent{Cells: cells},
	}
}

// ImageContent is the payload of an external image block.
type ImageContent struct {
	Type     string   `json:"type"`
	External External `json:"external"`
}

// External points at an image hosted outside Notion.
type External struct {
	URL string `json:"url"`
}

// NewImage builds an external image block for the given URL.
func NewImage(url string) Block {
	return Block{
		Type: TypeImage,
		Content: ImageContent{
			Type:     "external",
			External: External{URL: url},
		},
	}
}
