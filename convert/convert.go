// Package convert turns Markdown token trees into Notion blocks. It is
// the pure core of the library: plain functions over immutable input,
// no I/O, no shared state. A Converter dispatches each token to a
// per-type conversion function, with an optional override hook
// consulted first so callers can replace behavior for any token type.
package convert

import (
	"github.com/gerunddev/notionize/notion"
	"github.com/gerunddev/notionize/token"
)

// ConvertFunc converts one token into zero, one or many blocks. A nil
// block slice with a nil error means the token intentionally produces
// no output.
type ConvertFunc func(tok token.Token) ([]notion.Block, error)

// Override lets a caller intercept converter selection. It is invoked
// per token ahead of the built-in mapping; returning a non-nil
// ConvertFunc replaces the built-in behavior for that token, returning
// nil falls through to it.
type Override func(tok token.Token) ConvertFunc

// Converter converts token trees into Notion blocks. A Converter is
// stateless apart from its override hook and is safe for concurrent
// use.
type Converter struct {
	override Override
}

// New returns a Converter using only the built-in token mapping.
func New() *Converter {
	return &Converter{}
}

// NewWithOverride returns a Converter that consults override before the
// built-in mapping. A nil override behaves like New.
func NewWithOverride(override Override) *Converter {
	return &Converter{override: override}
}

// ConvertBlocks walks tokens in order, converts each one, and flattens
// multi-block results. Tokens with an empty type are skipped. The first
// failing token aborts the walk: converter failures are wrapped as
// ConversionError naming the token type, and unrecognized types surface
// as UnknownTokenError.
func (c *Converter) ConvertBlocks(tokens []token.Token) ([]notion.Block, error) {
	res := []notion.Block{}

	for _, tok := range tokens {
		if tok.Type == "" {
			continue
		}

		fn, err := c.dispatch(tok)
		if err != nil {
			return nil, err
		}

		blocks, err := fn(tok)
		if err != nil {
			return nil, &ConversionError{TokenType: tok.Type, Err: err}
		}

		res = append(res, blocks...)
	}

	return res, nil
}

// dispatch selects the conversion function for a token: override hook
// first, then the fixed type table. The blank-line sentinel and an
// absent type both resolve to the no-op converter rather than an error.
func (c *Converter) dispatch(tok token.Token) (ConvertFunc, error) {
	if c.override != nil {
		if fn := c.override(tok); fn != nil {
			return fn, nil
		}
	}

	switch tok.Type {
	case "", token.BlankLine:
		return convertNull, nil
	case token.Paragraph, token.BlockText:
		return c.convertParagraph, nil
	case token.Heading:
		return c.convertHeading, nil
	case token.BlockCode:
		return c.convertCode, nil
	case token.BlockQuote:
		return c.convertQuote, nil
	case token.ThematicBreak:
		return convertDivider, nil
	case token.List:
		return c.convertList, nil
	case token.Table:
		return c.convertTable, nil
	case token.Image:
		return convertImage, nil
	}

	return nil, &UnknownTokenError{Type: tok.Type}
}
