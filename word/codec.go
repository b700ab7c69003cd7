package word

// Codec converts a payload type to and from the raw bits stored in a Word.
//
// ToRaw moves ownership of v into the returned bits: the caller must not use
// or release v afterwards. FromRaw moves ownership back out. For every v,
// FromRaw(ToRaw(v)) must be observably equal to v, and ToRaw must leave the
// bits of the widest supported tag region (the top MaxBits bits) clear.
type Codec[T any] interface {
	ToRaw(v T) uintptr
	FromRaw(raw uintptr) T
}

// Viewer is a Codec that can also produce a non-owning view of a payload.
// View must not transfer or release ownership.
type Viewer[T, V any] interface {
	Codec[T]
	View(raw uintptr) V
}

// Releaser is implemented by payloads that own a resource. Destroy calls
// Release on a pointer to the unwrapped payload.
type Releaser interface {
	Release()
}

// Cloner is implemented by payloads whose copy must not share ownership with
// the original, such as heap handles.
type Cloner[T any] interface {
	Clone() T
}

// Equaler is implemented by payloads that compare by something other than
// their raw value.
type Equaler[T any] interface {
	Equal(other T) bool
}
