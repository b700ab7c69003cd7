package slots

import (
	"sync"
)

const (
	indexBits = 32
	genBits   = 15
	genMask   = 1<<genBits - 1
	indexMask = 1<<indexBits - 1
)

// Handle is an opaque reference to a value stored in a Table.
// Handle 0 is reserved and always invalid.
type Handle uint64

// Index returns the zero-based slot index encoded in h.
func (h Handle) Index() int {
	return int(h&indexMask) - 1
}

// Generation returns the slot generation encoded in h.
func (h Handle) Generation() uint16 {
	return uint16(h>>indexBits) & genMask
}

func makeHandle(index int, gen uint16) Handle {
	return Handle(gen&genMask)<<indexBits | Handle(index+1)
}

// Table is an in-memory slot table with generation-checked handles.
//
// Stale handle detection is best effort: the generation has genBits bits and
// wraps, so a handle that outlives 1<<genBits reuses of its slot can match
// the slot's current generation again.
type Table struct {
	entries  []entry
	freeList []int
	live     int
	mu       sync.RWMutex
}

type entry struct {
	value any
	gen   uint16
	valid bool
}

// New creates an empty table.
func New() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]int, 0, 16),
	}
}

// Insert stores a value and returns its handle.
func (t *Table) Insert(value any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.live++

	if len(t.freeList) > 0 {
		idx := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]

		e := &t.entries[idx]
		e.value = value
		e.valid = true

		return makeHandle(idx, e.gen)
	}

	if len(t.entries) > indexMask-1 {
		panic("slots: table is full")
	}

	t.entries = append(t.entries, entry{value: value, valid: true})

	return makeHandle(len(t.entries)-1, 0)
}

// Get retrieves a value by handle.
func (t *Table) Get(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(h)
	if !ok {
		return nil, false
	}

	return e.value, true
}

// Remove drops the value behind h and returns (value, true) if h was live.
// The slot's generation is advanced so that h and any copy of it become
// invalid.
func (t *Table) Remove(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.lookup(h)
	if !ok {
		return nil, false
	}

	value := e.value
	e.value = nil
	e.valid = false
	e.gen = (e.gen + 1) & genMask
	t.freeList = append(t.freeList, h.Index())
	t.live--

	return value, true
}

// Len returns the number of live values.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.live
}

// lookup must be called with t.mu held.
func (t *Table) lookup(h Handle) (*entry, bool) {
	if h>>(indexBits+genBits) != 0 {
		return nil, false
	}

	idx := h.Index()
	if idx < 0 || idx >= len(t.entries) {
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid || e.gen != h.Generation() {
		return nil, false
	}

	return e, true
}
