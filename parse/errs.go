package parse

import (
	"errors"
	"fmt"

	"github.com/Qwlouse/konfig/token"
)

var (
	ErrParse       = errors.New("parse error")
	ErrSlice       = errors.New("bad slice")
	ErrTuple       = errors.New("bad tuple")
	ErrComplex     = errors.New("bad complex")
	ErrNumberRange = errors.New("number out of range")
)

// Error locates a grammar violation. Pos is nil when the path ended
// where more input was expected.
type Error struct {
	Err error
	Pos *token.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return e.Err.Error() + " at end of path"
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func errAt(pos *token.Pos, sentinel error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Err: fmt.Errorf("%w: %s", sentinel, msg), Pos: pos}
}
