package word

import (
	"unsafe"
)

// Narrow is the set of scalar types that fit in the payload region by
// value.
type Narrow interface {
	~bool | ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32 | ~float32 | ~struct{}
}

// Scalar stores a narrow value directly, zero-extended into the low bytes of
// the word. Signed values keep their two's complement bit pattern, so
// int8(-1) is stored as 0xff.
type Scalar[T Narrow] struct{}

// ToRaw copies the bytes of v into the low end of the word.
func (Scalar[T]) ToRaw(v T) uintptr {
	switch unsafe.Sizeof(v) {
	case 0:
		return 0
	case 1:
		return uintptr(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uintptr(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uintptr(*(*uint32)(unsafe.Pointer(&v)))
	default:
		panic(errWideScalar)
	}
}

// FromRaw copies the low bytes of raw back into a T.
func (Scalar[T]) FromRaw(raw uintptr) T {
	var v T

	switch unsafe.Sizeof(v) {
	case 0:
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = uint8(raw)
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = uint16(raw)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = uint32(raw)
	default:
		panic(errWideScalar)
	}

	return v
}

// View returns a copy of the value; scalars own nothing.
func (s Scalar[T]) View(raw uintptr) T {
	return s.FromRaw(raw)
}
