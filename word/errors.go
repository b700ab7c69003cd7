package word

import (
	"errors"
	"fmt"
)

var (
	// ErrTagMismatch is matched by every *TagMismatchError.
	ErrTagMismatch = errors.New("word: tag mismatch")
	// ErrEmpty is matched by a *TagMismatchError raised on an empty word.
	ErrEmpty = errors.New("word: empty word")

	errWideScalar  = errors.New("word: scalar payload wider than 4 bytes")
	errReleasedBox = errors.New("word: box is empty or already released")
)

// TagMismatchError is returned by checked extraction when the stored tag is
// not the requested one.
type TagMismatchError struct {
	Want Tag
	Got  Tag
}

func (e *TagMismatchError) Error() string {
	if e.Got == EmptyTag {
		return fmt.Sprintf("word: want tag %d, word is empty", e.Want)
	}

	return fmt.Sprintf("word: want tag %d, got %d", e.Want, e.Got)
}

// Is matches ErrTagMismatch, and ErrEmpty when the word was empty.
func (e *TagMismatchError) Is(target error) bool {
	switch target {
	case ErrTagMismatch:
		return true
	case ErrEmpty:
		return e.Got == EmptyTag
	default:
		return false
	}
}

// RangeError is the panic value of Pack when a tag or payload does not fit.
type RangeError struct {
	Tag     Tag
	Bits    uint
	Payload uintptr
	Overlap bool
}

func (e *RangeError) Error() string {
	if e.Overlap {
		return fmt.Sprintf("word: payload %#x overlaps the %d-bit tag region", e.Payload, e.Bits)
	}

	if e.Tag == EmptyTag {
		return "word: tag 0 is reserved for the empty word"
	}

	return fmt.Sprintf("word: tag %d does not fit in %d bits", e.Tag, e.Bits)
}

// DispatchError is the panic value of a generated tag dispatch that meets a
// tag outside its closed variant set, or an empty value where one is needed.
type DispatchError struct {
	// Type is the name of the generated union.
	Type string
	// Op is the dispatched behavior: drop, clone, equal or format.
	Op  string
	Tag Tag
}

func (e *DispatchError) Error() string {
	if e.Tag == EmptyTag {
		return fmt.Sprintf("%s: cannot %s an empty value", e.Type, e.Op)
	}

	return fmt.Sprintf("%s: unknown tag %d in %s", e.Type, e.Tag, e.Op)
}

// Unreachable builds the panic value for a dispatch over typ that found tag.
func Unreachable(typ, op string, tag Tag) error {
	return &DispatchError{Type: typ, Op: op, Tag: tag}
}
