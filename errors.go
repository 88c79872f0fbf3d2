package packagedcode

import (
	"errors"
	"strings"
)

// Error is this module's error domain type. Components should create one at
// a system boundary (reading a file, decoding a manifest) and intermediate
// layers should wrap with fmt.Errorf's "%w" rather than nesting another
// Error.
//
// Per the error-handling design, a *Error raised inside a parser is caught
// by that parser's exported entry point and turned into a logged warning
// plus a minimal PackageData; it never escapes to try_parse_file's caller.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrMalformed, ErrUnreadable, ErrInternal:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables errors.Is, comparing the error kind.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind classifies the errors a parser or the assembler can raise
// internally. None of these are expected to reach a caller of
// [parser.TryParseFile] or the assembler entry point; they're recovered at
// the system boundary and surfaced only through the logger.
type ErrorKind string

var (
	// ErrUnreadable means the file couldn't be opened or read.
	ErrUnreadable = ErrorKind("unreadable")
	// ErrMalformed means the file was read but its content didn't parse
	// as the expected format. Parsers respond by returning whatever
	// partial extraction is possible, not by raising this further.
	ErrMalformed = ErrorKind("malformed")
	// ErrInternal is for anything that doesn't fit the above.
	ErrInternal = ErrorKind("internal")
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
