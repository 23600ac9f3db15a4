package key

import (
	"errors"
	"fmt"
)

var ErrBadKey = errors.New("invalid path key")

// BadKeyErr is returned when a value offered to Of (or a Key offered
// to path construction) is not an admissible key.
type BadKeyErr struct {
	Value any
}

func (e *BadKeyErr) Unwrap() error {
	return ErrBadKey
}

func (e *BadKeyErr) Error() string {
	return fmt.Sprintf("%s: %#v (%T)", ErrBadKey.Error(), e.Value, e.Value)
}
