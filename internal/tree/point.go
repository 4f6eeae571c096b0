package tree

// stateValue returns the leaf representation of a binary pixel state.
func stateValue[T Complex](on bool) T {
	if on {
		return complexFromFloat64[T](1, 0)
	}
	return complexFromFloat64[T](0, 0)
}

// childIndex maps the parity of (row, col) to the 0..3 child slot: even/even
// -> 0, even/odd -> 1, odd/even -> 2, odd/odd -> 3.
func childIndex(row, col int) int {
	return 2*(row&1) + (col & 1)
}

// Update applies a single pixel mutation at (row, col). It returns whether
// the frame actually changed and how many tree levels were recomputed on
// the ancestor path (0 when the leaf itself didn't change). It recomputes
// the butterfly on every ancestor of the affected leaf, stopping as soon as
// a level reports no change.
func Update[T Complex](store *Store[T], twid Twiddle[T], row, col int, on bool) (changed bool, depth int) {
	return updateAt(store, twid, store.Levels(), 0, row, col, on)
}

func updateAt[T Complex](store *Store[T], twid Twiddle[T], level, pos, row, col int, on bool) (bool, int) {
	if level == 0 {
		leaf := store.At(0, pos)
		next := stateValue[T](on)
		changed := leaf[0] != next
		leaf[0] = next
		return changed, 0
	}

	idx := childIndex(row, col)
	childPos := 4*pos + idx
	changed, depth := updateAt(store, twid, level-1, childPos, row>>1, col>>1, on)
	if !changed {
		return false, depth
	}

	side := store.Side(level)
	x00 := store.At(level-1, 4*pos+0)
	x01 := store.At(level-1, 4*pos+1)
	x10 := store.At(level-1, 4*pos+2)
	x11 := store.At(level-1, 4*pos+3)
	butterfly(twid, side, x00, x01, x10, x11, store.At(level, pos))
	return true, depth + 1
}
