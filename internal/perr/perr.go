// Package perr defines the closed error-kind taxonomy shared by the
// tokenizer, rules engine, and edit pipeline.
package perr

import "fmt"

// Kind is one of the closed set of error conditions the core can raise.
type Kind int

const (
	OK Kind = iota
	BufferAppend
	IO
	InvalidArgument
	InvalidRegexp
	EditFailed
	ExpectedChar
	ExpectedInt
	ExpectedToken
	UnspecifiedTokenizerError
	UnhandledTokenType
	UnknownConditional
	UnknownTarget
	UnknownVariable
	ExpiredMetadata
)

var names = map[Kind]string{
	OK:                        "ok",
	BufferAppend:              "buffer append failed",
	IO:                        "io error",
	InvalidArgument:           "invalid argument",
	InvalidRegexp:             "invalid regexp",
	EditFailed:                "edit failed",
	ExpectedChar:              "expected character",
	ExpectedInt:               "expected integer",
	ExpectedToken:             "expected token",
	UnspecifiedTokenizerError: "unspecified tokenizer error",
	UnhandledTokenType:        "unhandled token type",
	UnknownConditional:        "unknown conditional",
	UnknownTarget:             "unknown target",
	UnknownVariable:           "unknown variable",
	ExpiredMetadata:           "expired metadata",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown error kind"
}

// Error is the concrete error type returned throughout the core. It carries
// a closed Kind, a human-readable message, an optional source line, and an
// optional wrapped cause so callers can errors.Is/errors.As against Kind.
type Error struct {
	Kind  Kind
	Msg   string
	Line  int // 0 if not applicable
	cause error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Msg, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is allows errors.Is(err, perr.New(kind, "")) to match on Kind alone.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// At is New with an associated source line.
func At(kind Kind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line}
}

// Wrap attaches a kind and message to an existing cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), cause: cause}
}
