package lartar

// A slab is a fixed-size backing array of cells plus the bookkeeping
// bitmaps the collector needs: which slots are currently allocated
// (inUse, stored on the Value itself here rather than a separate
// bitmap, since Go gives every Value its own memory instead of packing
// cells into a byte array) and which were reached by the last mark
// phase (mark, likewise on the Value). Slabs are chained newest-first:
// a new slab is prepended on exhaustion, which a linked chain makes
// cheap, and scans start at the head.
type slab struct {
	cells []Value
	next  *slab
}

// Heap is a chain of slabs plus the allocation counters the evaluator
// consults to decide when to collect.
type Heap struct {
	head *slab
	size int // cells per slab

	TotalAllocations   int64
	AllocationsSinceGC int64
}

// NewHeap creates an empty heap whose slabs hold slabSize cells each.
func NewHeap(slabSize int) *Heap {
	h := &Heap{size: slabSize}
	h.head = newSlab(slabSize)
	return h
}

func newSlab(size int) *slab {
	return &slab{cells: make([]Value, size)}
}

// Allocate returns a fresh cell with its mark bit clear, every payload
// field zeroed, and its tag set to Guard until the caller overwrites it:
// callers must always finish constructing the cell (set Tag plus
// whichever payload fields that tag owns) before the cell is published
// to any root or structure.
//
// If no slab has a free slot, Allocate prepends a new one and retries;
// a failure to grow (the only way the host allocator itself can fail)
// is reported as a ResourceError rather than a panic, since running out
// of host memory is an environment condition, not an interpreter bug.
func (h *Heap) Allocate() (*Value, error) {
	for s := h.head; s != nil; s = s.next {
		for i := range s.cells {
			if !s.cells[i].inUse {
				c := &s.cells[i]
				*c = Value{Tag: Guard, slab: s, index: i}
				c.inUse = true
				h.TotalAllocations++
				h.AllocationsSinceGC++
				return c, nil
			}
		}
	}

	newHead, err := h.growSafely()
	if err != nil {
		return nil, err
	}
	h.head = newHead
	return h.Allocate()
}

// growSafely isolates the one call site that could, on a real host,
// fail to acquire memory (make panics on OOM in Go, so there is nothing
// to recover from in practice, but the error-returning shape keeps the
// contract consistent with the rest of the allocator and gives tests a
// seam to simulate resource exhaustion against).
func (h *Heap) growSafely() (s *slab, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ResourceError{Message: "allocator: failed to acquire a new slab"}
		}
	}()
	ns := newSlab(h.size)
	ns.next = h.head
	return ns, nil
}

// FreeCell clears a cell's in-use bit and poisons its payload with the
// Guard tag, so any dangling reference to it trips CheckLive instead of
// silently reading garbage.
func (h *Heap) FreeCell(v *Value) {
	v.Tag = Guard
	v.inUse = false
	v.Car, v.Cdr, v.Params, v.Body, v.Env = nil, nil, nil, nil, nil
	v.Prim = nil
}

// ForEachSlab calls fn once per slab in chain order, newest first.
func (h *Heap) ForEachSlab(fn func(*slab)) {
	for s := h.head; s != nil; s = s.next {
		fn(s)
	}
}

// LiveCells counts cells currently marked in-use across every slab. Used
// by the -v CLI summary and by tests asserting sweep actually freed
// what it should have.
func (h *Heap) LiveCells() int {
	n := 0
	h.ForEachSlab(func(s *slab) {
		for i := range s.cells {
			if s.cells[i].inUse {
				n++
			}
		}
	})
	return n
}
