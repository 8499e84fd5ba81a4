package conststr

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is matched by every *CapacityError.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("decode")
	// ErrMismatch is matched by every *MismatchError.
	ErrMismatch = errors.New("mismatch")
)

// CapacityError is returned when a string is longer than the capacity
// of the Bounded type it is converted to. Length and Capacity are counted
// in Unicode code points.
type CapacityError struct {
	Capacity int
	Length   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("length %d exceeds capacity %d", e.Length, e.Capacity)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

// MismatchError is returned when a string is converted to a String type
// with a different literal.
type MismatchError struct {
	Expected string
	Got      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %q, but got %q", e.Expected, e.Got)
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// DecodeError is returned when the encoded representation is not a
// string in the given format.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// UTF8Error is returned when a string is not valid UTF-8. Such strings
// cannot be encoded as JSON or YAML strings without being altered, so
// they are rejected on construction instead. Offset is the byte offset of
// the first invalid sequence.
type UTF8Error struct {
	Offset int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
}

func (e *UTF8Error) Is(target error) bool { return target == ErrDecode }
