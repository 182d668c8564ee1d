package token

import (
	"errors"
	"fmt"
)

var (
	// ErrLex is the kind of every error raised while scanning.
	ErrLex = errors.New("LexingError")

	// ErrParse is the kind of every error raised while parsing.
	ErrParse = errors.New("ParsingError")

	// ErrRuntime is the kind of every error raised while interpreting.
	ErrRuntime = errors.New("RuntimeError")
)

// Error is a diagnostic tied to a source position.  Kind is one of ErrLex,
// ErrParse or ErrRuntime so callers can use errors.Is.
type Error struct {
	Kind error
	Msg  string
	Pos  Position
}

func Errorf(kind error, pos Position, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Pos:  pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s in line %d.", e.Kind, e.Msg, e.Pos.Row)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Report formats e the way the command-line driver prints it.
func (e *Error) Report() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}
