package convert

import (
	"github.com/gerunddev/notionize/notion"
	"github.com/gerunddev/notionize/token"
)

// FormatInline converts a flat sequence of inline tokens into rich text
// runs, preserving order. Only text, strong, emphasis and link tokens
// produce runs; every other inline type (codespan, softbreak, inline
// html, ...) is skipped without error. Emphasis inside strong (and vice
// versa) is not merged: only the outer wrapping's annotation applies,
// and only direct text children are inspected.
func FormatInline(tokens []token.Token) []notion.RichText {
	res := []notion.RichText{}

	for _, tok := range tokens {
		switch tok.Type {
		case token.Text:
			res = append(res, notion.NewText(tok.Raw))
		case token.Strong, token.Emphasis:
			res = append(res, formatEmphasis(tok)...)
		case token.Link:
			res = append(res, formatLink(tok))
		}
	}

	return res
}

// formatEmphasis emits one annotated run per direct text child of a
// strong or emphasis token. Non-text children are dropped.
func formatEmphasis(tok token.Token) []notion.RichText {
	var runs []notion.RichText

	for _, child := range tok.Children {
		if child.Type != token.Text {
			continue
		}
		rt := notion.NewText(child.Raw)
		if tok.Type == token.Strong {
			rt.Annotations.Bold = true
		} else {
			rt.Annotations.Italic = true
		}
		runs = append(runs, rt)
	}

	return runs
}

// formatLink emits exactly one run for a link token: the first child's
// literal text (empty when the token has no children) pointing at the
// token's url attribute.
func formatLink(tok token.Token) notion.RichText {
	content := ""
	if len(tok.Children) > 0 {
		content = tok.Children[0].Raw
	}
	return notion.NewLinkedText(content, tok.Attrs.URL)
}
