package lartar

// Collect runs a full mark-and-sweep pass: mark from the root stack and
// the two standing global roots (the symbol table and the top-level
// frame), then sweep every slab, freeing anything left unmarked and
// clearing the mark bit on every survivor. Eval calls this whenever
// Heap.AllocationsSinceGC exceeds the configured threshold, per
// spec.md §4.2.
func (interp *Interpreter) Collect() {
	interp.Roots.forEach(markValue)
	markValue(interp.Symbols)
	markValue(interp.TopLevel)
	interp.sweep()
}

// markValue sets v's mark bit and, for the tags that hold child
// pointers, recurses into them. The mark-bit check doubles as the
// cycle guard spec.md §9 calls for: a cell reached a second time (via
// a shared sublist, or an environment frame chain that loops back to
// the top level) returns immediately instead of re-walking it.
//
// Cons gets special treatment: car is marked by full recursion, but
// the cdr chain is walked with a plain loop so a long top-level list
// (or a deep environment frame chain, itself just Cons cells) does not
// consume one Go stack frame per element.
func markValue(v *Value) {
	if v == nil || v.mark {
		return
	}
	switch v.Tag {
	case Cons:
		cur := v
		for {
			cur.mark = true
			markValue(cur.Car)
			next := cur.Cdr
			if next == nil || next.mark || next.Tag != Cons {
				markValue(next)
				return
			}
			cur = next
		}
	case Proc, Macro:
		v.mark = true
		markValue(v.Params)
		markValue(v.Body)
		markValue(v.Env)
	default:
		v.mark = true
	}
}

// sweep frees every in-use cell that the mark phase did not reach, and
// clears the mark bit on every cell that survives, so the bit is ready
// for the next collection.
func (interp *Interpreter) sweep() {
	interp.Heap.ForEachSlab(func(s *slab) {
		for i := range s.cells {
			c := &s.cells[i]
			if !c.inUse {
				continue
			}
			if c.mark {
				c.mark = false
			} else {
				interp.Heap.FreeCell(c)
			}
		}
	})
	interp.Heap.AllocationsSinceGC = 0
}
