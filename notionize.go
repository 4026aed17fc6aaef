// Package notionize converts Markdown into Notion API block payloads.
//
// The heavy lifting happens in two collaborators: the parser seam turns
// Markdown text into a token tree (goldmark by default), and the
// convert package walks that tree into blocks. This package only
// orchestrates: parse, classify parser misbehavior, convert, and
// optionally serialize. Conversion is pure and deterministic, so
// distinct Notionizer calls need no coordination.
package notionize

import (
	"encoding/json"
	"fmt"

	"github.com/gerunddev/notionize/convert"
	"github.com/gerunddev/notionize/logger"
	"github.com/gerunddev/notionize/notion"
	"github.com/gerunddev/notionize/parser"
	"github.com/gerunddev/notionize/token"
)

// Parser is the external Markdown parser seam. Parse returns a
// []token.Token on success. Some parsers signal failure by returning a
// raw string instead of a token tree; Run classifies that, and any
// other unexpected result type, as invalid markdown.
type Parser interface {
	Parse(content string) (any, error)
}

// Option configures a Notionizer.
type Option func(*Notionizer)

// WithOverride installs an override hook consulted before the built-in
// token mapping, allowing replacement of conversion behavior for any
// token type.
func WithOverride(override convert.Override) Option {
	return func(n *Notionizer) {
		n.override = override
	}
}

// WithParser replaces the default goldmark parser.
func WithParser(p Parser) Option {
	return func(n *Notionizer) {
		n.parser = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(n *Notionizer) {
		n.log = l
	}
}

// Notionizer converts Markdown content into Notion blocks. Construct
// one with New and reuse it freely; it holds no mutable state.
type Notionizer struct {
	parser   Parser
	override convert.Override
	log      *logger.Logger
}

// New creates a Notionizer with the given options.
func New(opts ...Option) *Notionizer {
	n := &Notionizer{
		parser: parser.NewGoldmark(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Run converts Markdown content into Notion blocks. The parser result
// is validated first: a raw string or any other non-token shape is
// surfaced as *convert.InvalidMarkdownError. Converter failures
// propagate as *convert.ConversionError or *convert.UnknownTokenError.
func (n *Notionizer) Run(content string) ([]notion.Block, error) {
	result, err := n.parser.Parse(content)
	if err != nil {
		perr := &convert.InvalidMarkdownError{Reason: "parser failed", Err: err}
		n.log.ParseFailed(perr)
		return nil, perr
	}

	var tokens []token.Token
	switch r := result.(type) {
	case []token.Token:
		tokens = r
	case string:
		perr := &convert.InvalidMarkdownError{Reason: "expected list of tokens but got string"}
		n.log.ParseFailed(perr)
		return nil, perr
	default:
		perr := &convert.InvalidMarkdownError{Reason: fmt.Sprintf("unexpected parser result type %T", result)}
		n.log.ParseFailed(perr)
		return nil, perr
	}
	n.log.ParseCompleted(len(tokens))

	blocks, err := n.ConvertBlocks(tokens)
	if err != nil {
		n.log.ConversionFailed(err)
		return nil, err
	}
	n.log.ConversionCompleted(len(blocks))

	return blocks, nil
}

// ConvertBlocks converts an already-parsed token tree into Notion
// blocks, honoring the configured override hook.
func (n *Notionizer) ConvertBlocks(tokens []token.Token) ([]notion.Block, error) {
	return convert.NewWithOverride(n.override).ConvertBlocks(tokens)
}

// Notionize converts Markdown content into Notion blocks in one call.
func Notionize(content string, opts ...Option) ([]notion.Block, error) {
	return New(opts...).Run(content)
}

// JSON converts Markdown content and serializes the block sequence to
// the Notion wire format. Each block marshals as the self-describing
// envelope; unset fields are omitted rather than emitted as null.
func JSON(content string, opts ...Option) ([]byte, error) {
	blocks, err := Notionize(content, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blocks)
}
