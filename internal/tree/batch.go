package tree

// Event is the tree package's minimal view of a pixel mutation, independent
// of whatever stimulus type a caller package wraps it in.
type Event struct {
	Row, Col int
	On       bool
}

// UpdateBatch applies events to the tree in place, partitioning by parity at
// each level so ancestor rebuilds are amortized across the whole batch.
// events is reordered and row/col fields are shifted in place; callers that
// need their slice untouched should pass a copy.
func UpdateBatch[T Complex](store *Store[T], twid Twiddle[T], events []Event) (changed bool, depth int) {
	return updateRange(store, twid, store.Levels(), 0, events)
}

func updateRange[T Complex](store *Store[T], twid Twiddle[T], level, pos int, events []Event) (bool, int) {
	if level == 0 {
		leaf := store.At(0, pos)
		var on bool
		if len(events) == 1 {
			on = events[0].On
		} else {
			on = anyOn(events)
		}
		next := stateValue[T](on)
		changed := leaf[0] != next
		leaf[0] = next
		return changed, 0
	}

	rowOddEnd := partition(events, func(e Event) bool { return e.Row&1 == 1 })
	oddOdd := events[:rowOddEnd]
	evenRow := events[rowOddEnd:]

	oddOddEnd := partition(oddOdd, func(e Event) bool { return e.Col&1 == 1 })
	evenColOddRel := partition(evenRow, func(e Event) bool { return e.Col&1 == 1 })
	evenColOddEnd := rowOddEnd + evenColOddRel

	for i := range events {
		events[i].Row >>= 1
		events[i].Col >>= 1
	}

	child3 := events[0:oddOddEnd]          // odd row, odd col
	child2 := events[oddOddEnd:rowOddEnd]  // odd row, even col
	child1 := events[rowOddEnd:evenColOddEnd] // even row, odd col
	child0 := events[evenColOddEnd:]       // even row, even col

	changed := false
	maxDepth := 0
	if len(child0) > 0 {
		c, d := updateRange(store, twid, level-1, 4*pos+0, child0)
		changed = changed || c
		maxDepth = max(maxDepth, d)
	}
	if len(child1) > 0 {
		c, d := updateRange(store, twid, level-1, 4*pos+1, child1)
		changed = changed || c
		maxDepth = max(maxDepth, d)
	}
	if len(child2) > 0 {
		c, d := updateRange(store, twid, level-1, 4*pos+2, child2)
		changed = changed || c
		maxDepth = max(maxDepth, d)
	}
	if len(child3) > 0 {
		c, d := updateRange(store, twid, level-1, 4*pos+3, child3)
		changed = changed || c
		maxDepth = max(maxDepth, d)
	}

	if !changed {
		return false, maxDepth
	}

	side := store.Side(level)
	x00 := store.At(level-1, 4*pos+0)
	x01 := store.At(level-1, 4*pos+1)
	x10 := store.At(level-1, 4*pos+2)
	x11 := store.At(level-1, 4*pos+3)
	butterfly(twid, side, x00, x01, x10, x11, store.At(level, pos))
	return true, maxDepth + 1
}

func anyOn(events []Event) bool {
	for _, e := range events {
		if e.On {
			return true
		}
	}
	return false
}

// partition moves every element satisfying pred to the front of s, in place,
// and returns the number of elements that satisfied it. Order within the two
// resulting groups is unspecified (equivalent to a non-stable partition).
func partition(s []Event, pred func(Event) bool) int {
	i := 0
	for j := 0; j < len(s); j++ {
		if pred(s[j]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	return i
}
