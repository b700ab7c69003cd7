package word

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Only 64-bit platforms leave enough room above a heap handle for a tag.
var _ [unsafe.Sizeof(uintptr(0)) - 8]struct{}

const wordBits = bits.UintSize

// Tag identifies which variant a Word holds.
type Tag uint16

// EmptyTag is reserved for the empty word and is never assigned to a variant.
const EmptyTag Tag = 0

// Word is a single machine word holding a tag and an untagged payload.
// The zero value is the empty word.
type Word[W Width] struct {
	raw uintptr
}

// Pack converts v with c and stores it together with tag.
//
// Pack panics with a *RangeError if tag is EmptyTag or does not fit in W, or
// if the raw payload reaches into the tag region, unless built with
// tagword_nocheck. A tag panic leaves v with the caller. An overlap panic
// happens after v has moved into its raw bits, so Pack converts the bits
// back and releases the payload before panicking.
func Pack[W Width, T any](tag Tag, v T, c Codec[T]) Word[W] {
	s := shift[W]()

	if checks && (tag == EmptyTag || uint64(tag) > uint64(MaxTag[W]())) {
		panic(&RangeError{Tag: tag, Bits: tagBits[W]()})
	}

	raw := c.ToRaw(v)

	if checks && raw>>s != 0 {
		back := c.FromRaw(raw)
		release(&back)

		panic(&RangeError{Tag: tag, Bits: tagBits[W](), Payload: raw, Overlap: true})
	}

	return Word[W]{raw: raw | uintptr(tag)<<s}
}

// FromBits rebuilds a Word from bits previously returned by Bits.
// The caller becomes responsible for the payload the bits own.
func FromBits[W Width](raw uintptr) Word[W] {
	return Word[W]{raw: raw}
}

// Bits returns the full tagged bit pattern.
func (w Word[W]) Bits() uintptr {
	return w.raw
}

// Tag returns the tag stored in the high bits.
func (w Word[W]) Tag() Tag {
	return Tag(w.raw >> shift[W]())
}

// Is reports whether w holds tag.
func (w Word[W]) Is(tag Tag) bool {
	return w.Tag() == tag
}

// IsEmpty reports whether w is the all-zero empty word.
func (w Word[W]) IsEmpty() bool {
	return w.raw == 0
}

// StripTag returns the untagged payload bits.
func (w Word[W]) StripTag() uintptr {
	return w.raw ^ uintptr(w.Tag())<<shift[W]()
}

// Take moves the word out of w and leaves w empty.
func (w *Word[W]) Take() Word[W] {
	t := *w
	*w = Word[W]{}

	return t
}

// String renders the tag and payload bits.
func (w Word[W]) String() string {
	return fmt.Sprintf("tag=%d payload=%#x", w.Tag(), w.StripTag())
}

// Unwrap moves the payload out of w as a T and leaves w empty.
//
// Unwrap does not check the stored tag. c must be the codec that packed the
// payload; any other codec reinterprets the bits as a different type. Use
// UnwrapChecked unless the tag is already known.
func Unwrap[W Width, T any](w *Word[W], c Codec[T]) T {
	raw := w.StripTag()
	*w = Word[W]{}

	return c.FromRaw(raw)
}

// UnwrapChecked is Unwrap guarded by a tag comparison. On mismatch w is left
// untouched and a *TagMismatchError is returned.
func UnwrapChecked[W Width, T any](w *Word[W], tag Tag, c Codec[T]) (T, error) {
	if got := w.Tag(); got != tag {
		var zero T
		return zero, &TagMismatchError{Want: tag, Got: got}
	}

	return Unwrap(w, c), nil
}

// Borrow returns a non-owning view of the payload. The view is valid while w
// still owns the payload.
//
// Like Unwrap, Borrow does not check the stored tag.
func Borrow[W Width, T, V any](w Word[W], v Viewer[T, V]) V {
	return v.View(w.StripTag())
}

// BorrowChecked is Borrow guarded by a tag comparison.
func BorrowChecked[W Width, T, V any](w Word[W], tag Tag, v Viewer[T, V]) (V, error) {
	if got := w.Tag(); got != tag {
		var zero V
		return zero, &TagMismatchError{Want: tag, Got: got}
	}

	return Borrow(w, v), nil
}

// Destroy unwraps the payload and releases it. Destroying an empty word is a
// no-op, so a second call on the same word does nothing.
func Destroy[W Width, T any](w *Word[W], c Codec[T]) {
	if w.IsEmpty() {
		return
	}

	v := Unwrap(w, c)
	release(&v)
}

func release[T any](v *T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}
