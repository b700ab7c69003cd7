package word

import (
	"tagword/internal/slots"
)

// Option is an optional owning heap handle. None is the zero handle, so an
// Option needs no discriminant of its own and stays one word.
type Option[T any] struct {
	b Box[T]
}

// Some boxes v.
func Some[T any](v T) Option[T] {
	return Option[T]{b: NewBox(v)}
}

// None returns the empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return !o.b.IsEmpty()
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return o.b.IsEmpty()
}

// Get returns a pointer to the held value, or nil and false for None.
func (o Option[T]) Get() (*T, bool) {
	if o.IsNone() {
		return nil, false
	}

	return o.b.Get(), true
}

// Take moves the value out and leaves o as None.
func (o *Option[T]) Take() (T, bool) {
	if o.IsNone() {
		var zero T
		return zero, false
	}

	return o.b.Take(), true
}

// Release frees the held value, if any, and leaves o as None.
func (o *Option[T]) Release() {
	o.b.Release()
}

// Clone boxes a copy of the held value.
func (o Option[T]) Clone() Option[T] {
	return Option[T]{b: o.b.Clone()}
}

// Equal reports whether both options are None or both hold deeply equal
// values.
func (o Option[T]) Equal(other Option[T]) bool {
	return o.b.Equal(other.b)
}

// String renders Some(value) or None.
func (o Option[T]) String() string {
	if o.IsNone() {
		return "None"
	}

	return "Some(" + o.b.String() + ")"
}

// Optional is the Codec for Option[T]. The view is *T, nil for None.
type Optional[T any] struct{}

func (Optional[T]) ToRaw(o Option[T]) uintptr {
	return uintptr(o.b.h)
}

func (Optional[T]) FromRaw(raw uintptr) Option[T] {
	return Option[T]{b: Box[T]{h: slots.Handle(raw)}}
}

func (Optional[T]) View(raw uintptr) *T {
	if raw == 0 {
		return nil
	}

	return Box[T]{h: slots.Handle(raw)}.Get()
}
