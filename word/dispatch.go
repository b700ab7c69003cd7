package word

import (
	"fmt"
	"reflect"
	"unsafe"
)

// The helpers below implement structural behaviors for one known payload
// type. Generated unions call them from a switch over their tags, so the codec
// always matches the stored tag.

// CloneAs returns a new word with the same tag and a copy of the payload.
// Payloads implementing Cloner are cloned with it; others are copied by value.
func CloneAs[W Width, T any](w Word[W], c Codec[T]) Word[W] {
	v := c.FromRaw(w.StripTag())
	if cl, ok := any(v).(Cloner[T]); ok {
		v = cl.Clone()
	}

	return Pack[W](w.Tag(), v, c)
}

// EqualAs compares two words holding payloads of the same type. Words with
// different tags are never equal. Payloads implementing Equaler are compared
// with it; others are compared deeply, so payload types that are not
// comparable with == are still safe.
func EqualAs[W Width, T any](a, b Word[W], c Codec[T]) bool {
	if a.Tag() != b.Tag() {
		return false
	}

	va, vb := c.FromRaw(a.StripTag()), c.FromRaw(b.StripTag())
	if eq, ok := any(va).(Equaler[T]); ok {
		return eq.Equal(vb)
	}

	return reflect.DeepEqual(va, vb)
}

// FormatAs renders the payload as name(value). Zero-size payloads render as
// the bare name.
func FormatAs[W Width, T any](w Word[W], name string, c Codec[T]) string {
	v := c.FromRaw(w.StripTag())
	if unsafe.Sizeof(v) == 0 {
		return name
	}

	return fmt.Sprintf("%s(%v)", name, v)
}
