// Package word packs a small tag and a payload into a single machine word.
//
// A Word[W] stores a tag in its high W.Bits() bits and an untagged payload in
// the remaining low bits:
//
//	 63            64-B 63-B                       0
//	+----------------+-----------------------------+
//	|      tag       |       untagged payload      |
//	+----------------+-----------------------------+
//
// Tag 0 (EmptyTag) is reserved: the all-zero word is the empty sentinel that
// consuming operations leave behind.
//
// # Payload conversion
//
// A Codec[T] converts a T to and from a raw bit pattern. Default codecs exist
// for the common shapes:
//
//	Scalar[T]   bool, int8..int32, uint8..uint32, float32, struct{}
//	Boxed[T]    Box[T], an owning heap handle
//	Optional[T] Option[T], an owning heap handle where 0 means None
//
// Box and Option never store a Go pointer inside the word. They hold a slot
// handle into a process-wide table that keeps the value reachable for the
// garbage collector until the handle is released.
//
// # Unchecked extraction
//
// Unwrap and Borrow trust the caller: they do not look at the stored tag.
// Passing a codec other than the one used by Pack reinterprets the payload
// bits as a different type. For scalars this silently yields a wrong value;
// for heap handles it panics when the handle is resolved. Prefer
// UnwrapChecked and BorrowChecked, which compare the stored tag first.
//
// # Checks
//
// Pack verifies that the tag is not EmptyTag and fits in the tag region, and
// that the raw payload does not reach into it. Building with -tags tagword_nocheck removes both
// checks.
//
// Only 64-bit platforms are supported.
package word
