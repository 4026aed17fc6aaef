package convert

import "fmt"

// InvalidMarkdownError reports that the external parser returned a
// shape that cannot be converted, such as a raw string instead of a
// token tree. Nothing is recovered from the failing call.
type InvalidMarkdownError struct {
	Reason string
	Err    error
}

func (e *InvalidMarkdownError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid markdown: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid markdown: %s", e.Reason)
}

func (e *InvalidMarkdownError) Unwrap() error { return e.Err }

// UnknownTokenError reports a token type with no built-in converter and
// no override. The message names the offending type so callers know
// what to intercept.
type UnknownTokenError struct {
	Type string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token type: %s. If you need to handle this token type, provide a custom override", e.Type)
}

// ConversionError reports that a selected converter failed while
// converting a token. It names the token type and preserves the
// original failure as its cause.
type ConversionError struct {
	TokenType string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert token of type %q: %v", e.TokenType, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
