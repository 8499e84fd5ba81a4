package conststr

import (
	"strconv"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Literal provides the text of a String type. Implementations are
// usually empty structs whose Literal method returns a constant.
//
//	type kindUser struct{}
//
//	func (kindUser) Literal() string { return "user" }
//
//	type KindUser = conststr.String[kindUser]
type Literal interface {
	Literal() string
}

// String is a string whose content is fixed by its type. Every value of
// String[L] holds the text L.Literal(), the zero value included, so it
// can be used as a struct field that must always carry a known
// discriminator.
//
// Decoding into a String only succeeds if the encoded text is exactly the
// literal.
type String[L Literal] struct{}

// Parse converts s to a String[L]. It fails with a *MismatchError if s is
// not the literal of L, and with a *UTF8Error if s is not valid UTF-8.
func Parse[L Literal](s string) (String[L], error) {
	var c String[L]
	if err := c.check(s); err != nil {
		return c, err
	}
	return c, nil
}

// Value returns the literal.
func (String[L]) Value() string {
	var l L
	return l.Literal()
}

func (c String[L]) String() string { return c.Value() }

func (c String[L]) GoString() string { return strconv.Quote(c.Value()) }

// Len returns the number of code points in the literal.
func (c String[L]) Len() int { return utf8.RuneCountInString(c.Value()) }

// Is reports whether s is the literal.
func (c String[L]) Is(s string) bool { return s == c.Value() }

// Equal always reports true, since all values of a String type hold the
// same text.
func (c String[L]) Equal(other String[L]) bool { return c.Value() == other.Value() }

// Hash returns the xxhash64 digest of the literal.
func (c String[L]) Hash() uint64 { return xxhash.Sum64String(c.Value()) }

// Schema describes String[L] as a string schema that only allows the
// literal.
func (c String[L]) Schema() Schema { return LiteralSchema(c.Value()) }

func (c String[L]) check(s string) error {
	if err := checkUTF8(s); err != nil {
		return err
	}
	if !c.Is(s) {
		return &MismatchError{
			Expected: c.Value(),
			Got:      s,
		}
	}
	return nil
}
