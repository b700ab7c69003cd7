package word

import (
	"tagword/internal/slots"
)

var heap = slots.New()

// LiveBoxes returns the number of heap payloads currently owned by Box and
// Option values. It exists for leak and double-release checks in tests.
func LiveBoxes() int {
	return heap.Len()
}
