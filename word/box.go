package word

import (
	"fmt"
	"reflect"

	"tagword/internal/slots"
)

// Box is an owning handle to a heap-allocated T. It is exactly one word.
//
// A Box is moved, not shared: after passing a Box to a constructor or codec
// the old copy must not be used. The zero Box is empty.
type Box[T any] struct {
	h slots.Handle
}

// NewBox moves v to the heap.
func NewBox[T any](v T) Box[T] {
	p := new(T)
	*p = v

	return Box[T]{h: heap.Insert(p)}
}

// IsEmpty reports whether b holds nothing.
func (b Box[T]) IsEmpty() bool {
	return b.h == 0
}

// Get returns a pointer to the boxed value. It panics if b is empty or was
// released.
func (b Box[T]) Get() *T {
	v, ok := heap.Get(b.h)
	if !ok {
		panic(errReleasedBox)
	}

	p, ok := v.(*T)
	if !ok {
		panic(fmt.Errorf("word: box holds %T, not *%s", v, reflect.TypeFor[T]()))
	}

	return p
}

// Take moves the value out and releases the heap slot, leaving b empty.
func (b *Box[T]) Take() T {
	v := *b.Get()
	b.Release()

	return v
}

// Release frees the heap slot and leaves b empty. A value that implements
// Releaser through its pointer is released too, so nested boxes and boxed
// unions are freed with their owner. Releasing an empty box is a no-op;
// releasing a stale copy of an already released box panics.
func (b *Box[T]) Release() {
	if b.h == 0 {
		return
	}

	v, ok := heap.Remove(b.h)
	if !ok {
		panic(errReleasedBox)
	}

	b.h = 0

	if p, ok := v.(*T); ok {
		release(p)
	}
}

// Clone boxes a copy of the value. Values implementing Cloner are cloned
// with it, so a boxed value that owns heap payloads gets its own copies.
// Other values are copied shallowly.
func (b Box[T]) Clone() Box[T] {
	if b.IsEmpty() {
		return Box[T]{}
	}

	v := *b.Get()
	if cl, ok := any(v).(Cloner[T]); ok {
		v = cl.Clone()
	}

	return NewBox(v)
}

// Equal compares the boxed values with Equaler when T implements it, and
// deeply otherwise.
func (b Box[T]) Equal(other Box[T]) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return b.IsEmpty() && other.IsEmpty()
	}

	va, vb := *b.Get(), *other.Get()
	if eq, ok := any(va).(Equaler[T]); ok {
		return eq.Equal(vb)
	}

	return reflect.DeepEqual(va, vb)
}

// String renders the boxed value with its String method, or in Go syntax.
func (b Box[T]) String() string {
	if b.IsEmpty() {
		return "<empty>"
	}

	v := *b.Get()
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%#v", v)
}

// Boxed is the Codec for Box[T]. The view of a boxed payload is *T.
type Boxed[T any] struct{}

func (Boxed[T]) ToRaw(b Box[T]) uintptr {
	return uintptr(b.h)
}

func (Boxed[T]) FromRaw(raw uintptr) Box[T] {
	return Box[T]{h: slots.Handle(raw)}
}

func (Boxed[T]) View(raw uintptr) *T {
	return Box[T]{h: slots.Handle(raw)}.Get()
}
