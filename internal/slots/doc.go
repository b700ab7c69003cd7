// Package slots provides the heap slot table behind owning word handles.
//
// A Go pointer cannot be hidden inside an integer: the garbage collector does
// not trace uintptr values, so a heap value whose only reference is an integer
// may be collected. Owning handles therefore store a slot handle instead of an
// address. The table keeps the real reference alive until the handle is
// removed.
//
// # Handle layout
//
// A Handle packs a slot index and a generation counter:
//
//	bits  0..31  index + 1 (0 is reserved and always invalid)
//	bits 32..46  generation of the slot when the handle was issued
//
// Bits 47 and above are always zero, which leaves room for a tag of up to 16
// bits in the high end of a 64-bit word. The generation changes every time a
// slot is reused, so a stale handle (one that was already removed) is
// rejected instead of resolving to an unrelated value. The check is best
// effort: the generation wraps after 1<<15 reuses of the same slot, after
// which a stale handle may match again.
package slots
