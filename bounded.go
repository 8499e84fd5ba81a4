package conststr

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Capacity provides the maximum length, in code points, of a Bounded
// type. A capacity less than or equal to zero means the length is not
// bounded.
type Capacity interface {
	Capacity() int
}

// Bounded is an immutable string whose length is bounded by a capacity
// fixed by its type. The zero value is the empty string.
type Bounded[C Capacity] struct {
	s string
}

// NewBounded converts s to a Bounded[C]. If s is not valid UTF-8, a
// *UTF8Error is returned. If s is longer than the capacity of C, a
// *CapacityError is returned. The input is never truncated.
func NewBounded[C Capacity](s string) (Bounded[C], error) {
	if err := checkBounded[C](s); err != nil {
		return Bounded[C]{}, err
	}
	return Bounded[C]{s: s}, nil
}

// MustBounded is like NewBounded but panics if s is rejected.
func MustBounded[C Capacity](s string) Bounded[C] {
	b, err := NewBounded[C](s)
	if err != nil {
		panic(err)
	}
	return b
}

func checkBounded[C Capacity](s string) error {
	if err := checkUTF8(s); err != nil {
		return err
	}

	var c C
	capacity := c.Capacity()
	if capacity <= 0 {
		return nil
	}
	// len(s) is an upper bound of the rune count
	if len(s) <= capacity {
		return nil
	}
	if n := utf8.RuneCountInString(s); n > capacity {
		return &CapacityError{
			Capacity: capacity,
			Length:   n,
		}
	}
	return nil
}

func checkUTF8(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return &UTF8Error{Offset: i}
		}
		i += size
	}
	return nil
}

// Capacity returns the capacity of C.
func (Bounded[C]) Capacity() int {
	var c C
	return c.Capacity()
}

func (b Bounded[C]) Value() string { return b.s }

func (b Bounded[C]) String() string { return b.s }

func (b Bounded[C]) GoString() string { return strconv.Quote(b.s) }

func (b Bounded[C]) Len() int { return utf8.RuneCountInString(b.s) }

func (b Bounded[C]) Equal(other Bounded[C]) bool { return b.s == other.s }

// Compare orders values by their content, as strings.Compare does.
func (b Bounded[C]) Compare(other Bounded[C]) int { return strings.Compare(b.s, other.s) }

// Hash returns the xxhash64 digest of the content.
func (b Bounded[C]) Hash() uint64 { return xxhash.Sum64String(b.s) }

// Schema describes Bounded[C] as a string schema with a maximum length,
// if the capacity is bounded.
func (b Bounded[C]) Schema() Schema { return CapacitySchema(b.Capacity()) }
