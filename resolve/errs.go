package resolve

import (
	"errors"
	"fmt"

	"github.com/Qwlouse/konfig/key"
)

var (
	// ErrNotFound indicates a key absent from the container it
	// addresses.
	ErrNotFound = errors.New("not found")
	// ErrContainer indicates a key applied to a value that cannot be
	// indexed with it, such as an integer key on a map.
	ErrContainer = errors.New("cannot index")
	// ErrRange indicates a sequence index out of range.
	ErrRange = errors.New("index out of range")
)

// Error reports failure to resolve one key, recording how far the
// walk got.
type Error struct {
	Err  error
	Key  key.Key
	Seg  int
	Into any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s with key %s at segment %d into %T", e.Err, e.Key, e.Seg, e.Into)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errAt(err error, k key.Key, seg int, into any) *Error {
	return &Error{Err: err, Key: k, Seg: seg, Into: into}
}
