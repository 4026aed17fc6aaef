package convert

import (
	"github.com/gerunddev/notionize/notion"
	"github.com/gerunddev/notionize/token"
)

// single wraps one block in the slice shape ConvertFunc returns.
func single(b notion.Block) []notion.Block {
	return []notion.Block{b}
}

// convertParagraph converts paragraph and block_text tokens. A
// paragraph wrapping exactly one image collapses into an image block
// instead of a paragraph.
func (c *Converter) convertParagraph(tok token.Token) ([]notion.Block, error) {
	if len(tok.Children) == 1 && tok.Children[0].Type == token.Image {
		return convertImage(tok.Children[0])
	}

	return single(notion.Block{
		Type:    notion.TypeParagraph,
		Content: notion.TextBlockContent{RichText: FormatInline(tok.Children)},
	}), nil
}

// convertHeading converts heading tokens. A missing level defaults to
// 1; levels outside Notion's 1-3 range clamp to 3.
func (c *Converter) convertHeading(tok token.Token) ([]notion.Block, error) {
	level := tok.Attrs.Level
	if level == 0 {
		level = 1
	}
	if level < 1 || level > 3 {
		level = 3
	}

	headingType := notion.TypeHeading1
	switch level {
	case 2:
		headingType = notion.TypeHeading2
	case 3:
		headingType = notion.TypeHeading3
	}

	return single(notion.Block{
		Type:    headingType,
		Content: notion.TextBlockContent{RichText: FormatInline(tok.Children)},
	}), nil
}

// convertCode converts block_code tokens. The raw source is kept
// verbatim, including the fence's trailing newline, as one unformatted
// run; inline formatting never applies inside code. Unsupported
// language hints fall back to plain text.
func (c *Converter) convertCode(tok token.Token) ([]notion.Block, error) {
	lang := notion.LanguagePlainText
	if notion.SupportedLanguage(tok.Attrs.Info) {
		lang = notion.Language(tok.Attrs.Info)
	}

	return single(notion.Block{
		Type: notion.TypeCode,
		Content: notion.CodeContent{
			RichText: []notion.RichText{notion.NewText(tok.Raw)},
			Language: lang,
		},
	}), nil
}

// convertQuote converts block_quote tokens. The common single-paragraph
// blockquote shape is unwrapped one level so its inline children format
// directly; deeper paragraph nesting is left alone.
func (c *Converter) convertQuote(tok token.Token) ([]notion.Block, error) {
	children := tok.Children
	if len(children) > 0 && children[0].Type == token.Paragraph {
		children = children[0].Children
	}

	return single(notion.Block{
		Type:    notion.TypeQuote,
		Content: notion.TextBlockContent{RichText: FormatInline(children)},
	}), nil
}

// convertDivider converts thematic_break tokens into empty divider
// blocks.
func convertDivider(token.Token) ([]notion.Block, error) {
	return single(notion.Block{
		Type:    notion.TypeDivider,
		Content: notion.DividerContent{},
	}), nil
}

// convertList fans out over the list's items, producing one block per
// item. The list's ordered flag selects numbered vs bulleted for every
// item uniformly.
func (c *Converter) convertList(tok token.Token) ([]notion.Block, error) {
	listType := notion.TypeBulleted
	if tok.Attrs.Ordered {
		listType = notion.TypeNumbered
	}

	res := make([]notion.Block, 0, len(tok.Children))
	for _, item := range tok.Children {
		block, err := c.convertListItem(listType, item)
		if err != nil {
			return nil, err
		}
		res = append(res, block)
	}

	return res, nil
}

// convertListItem converts one list_item token. Text-bearing children
// (block_text, paragraph) concatenate into the item's rich text run
// sequence; any other child is a nested sub-tree converted through the
// full walker and collected under the item's children. This is the one
// place the pipeline recurses into itself.
func (c *Converter) convertListItem(listType notion.BlockType, tok token.Token) (notion.Block, error) {
	runs := []notion.RichText{}
	var children []notion.Block

	for _, child := range tok.Children {
		switch child.Type {
		case token.BlockText, token.Paragraph:
			runs = append(runs, FormatInline(child.Children)...)
		default:
			nested, err := c.ConvertBlocks([]token.Token{child})
			if err != nil {
				return notion.Block{}, err
			}
			children = append(children, nested...)
		}
	}

	content := notion.ListItemContent{RichText: runs}
	if len(children) > 0 {
		content.Children = children
	}

	return notion.Block{Type: listType, Content: content}, nil
}

// convertImage converts image tokens into external image blocks. A
// missing url attribute yields an empty url, not an error.
func convertImage(tok token.Token) ([]notion.Block, error) {
	return single(notion.NewImage(tok.Attrs.URL)), nil
}

// convertNull produces no block. It backs the blank-line sentinel and
// the absent-type case.
func convertNull(token.Token) ([]notion.Block, error) {
	return nil, nil
}
