package textspan

import (
	"errors"
	"unicode/utf8"

	"github.com/npillmayer/mdpdf/core"
)

// Errors for index arguments violating the contract of SliceFrom and SliceTo.
// They will be wrapped into errors with code core.EINVALID.
var (
	ErrOutOfBounds     = errors.New("index out of bounds")
	ErrNotCharBoundary = errors.New("index is not on a character boundary")
)

// Mode tells if a Text owns its bytes or borrows them.
type Mode int8

// Ownership modes
const (
	Borrowed Mode = iota
	Owned
)

func (m Mode) String() string {
	if m == Owned {
		return "owned"
	}
	return "borrowed"
}

// Text is a UTF-8 text span, either owning its bytes or viewing a range of a
// shared buffer. The zero value is an empty borrowed span.
type Text struct {
	buf      []byte // owned bytes or shared buffer
	from, to int    // range within buf
	mode     Mode
}

// Own creates an owned span with a private copy of s.
func Own(s string) Text {
	b := []byte(s)
	return Text{buf: b, to: len(b), mode: Owned}
}

// Borrow creates a span viewing buf, without copying. Clients must not modify
// buf while spans borrow from it.
func Borrow(buf []byte) Text {
	return Text{buf: buf, to: len(buf), mode: Borrowed}
}

// BorrowString creates a borrowed span for s.
func BorrowString(s string) Text {
	return Borrow([]byte(s))
}

// Mode returns the ownership mode of t.
func (t Text) Mode() Mode {
	return t.mode
}

// IsOwned is true for spans owning their bytes.
func (t Text) IsOwned() bool {
	return t.mode == Owned
}

// Len returns the length of t in bytes.
func (t Text) Len() int {
	return t.to - t.from
}

// Bytes returns the bytes of t. For borrowed spans, this is a view into the
// shared buffer, capped to the span's range.
func (t Text) Bytes() []byte {
	return t.buf[t.from:t.to:t.to]
}

func (t Text) String() string {
	return string(t.Bytes())
}

// SliceFrom returns the span starting at byte index i, up to the end of t.
// Owned spans produce an owned copy, borrowed spans a view into the same buffer.
//
// i must be within [0…t.Len()] and fall on a character boundary. Otherwise an
// error with code core.EINVALID is returned and the span is left untouched.
func (t Text) SliceFrom(i int) (Text, error) {
	if err := t.checkBoundary(i); err != nil {
		return Text{}, err
	}
	return t.sub(t.from+i, t.to), nil
}

// SliceTo returns the span from the start of t up to (excluding) byte index i.
// Ownership mode and preconditions are the same as for SliceFrom.
func (t Text) SliceTo(i int) (Text, error) {
	if err := t.checkBoundary(i); err != nil {
		return Text{}, err
	}
	return t.sub(t.from, t.from+i), nil
}

func (t Text) sub(from, to int) Text {
	if t.mode == Owned {
		b := make([]byte, to-from)
		copy(b, t.buf[from:to])
		return Text{buf: b, to: len(b), mode: Owned}
	}
	return Text{buf: t.buf, from: from, to: to, mode: Borrowed}
}

func (t Text) checkBoundary(i int) error {
	if i < 0 || i > t.Len() {
		return core.WrapError(ErrOutOfBounds, core.EINVALID,
			"index %d out of bounds for text of length %d", i, t.Len())
	}
	if i < t.Len() && !utf8.RuneStart(t.buf[t.from+i]) {
		return core.WrapError(ErrNotCharBoundary, core.EINVALID,
			"index %d is inside a multi-byte character", i)
	}
	return nil
}
