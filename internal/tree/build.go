package tree

// Build populates store from a row-major, side-by-side flat image, where
// side equals store.N(). twid is only read and must already be sized for
// store.N().
func Build[T Complex](store *Store[T], twid Twiddle[T], image []T) {
	build(store, twid, store.Levels(), 0, image, store.N())
}

// build recursively decomposes src (side x side, row-major) into its four
// parity quadrants, builds each at level-1, then combines them with the
// shared butterfly into the side-square sub-transform at (level, pos).
func build[T Complex](store *Store[T], twid Twiddle[T], level, pos int, src []T, side int) {
	if side == 1 {
		copy(store.At(level, pos), src)
		return
	}

	h := side / 2
	s00 := make([]T, h*h)
	s01 := make([]T, h*h)
	s10 := make([]T, h*h)
	s11 := make([]T, h*h)
	for i := 0; i < h; i++ {
		for j := 0; j < h; j++ {
			s00[i*h+j] = src[(2*i)*side+2*j]
			s01[i*h+j] = src[(2*i)*side+2*j+1]
			s10[i*h+j] = src[(2*i+1)*side+2*j]
			s11[i*h+j] = src[(2*i+1)*side+2*j+1]
		}
	}

	childLevel := level - 1
	build(store, twid, childLevel, 4*pos+0, s00, h)
	build(store, twid, childLevel, 4*pos+1, s01, h)
	build(store, twid, childLevel, 4*pos+2, s10, h)
	build(store, twid, childLevel, 4*pos+3, s11, h)

	x00 := store.At(childLevel, 4*pos+0)
	x01 := store.At(childLevel, 4*pos+1)
	x10 := store.At(childLevel, 4*pos+2)
	x11 := store.At(childLevel, 4*pos+3)
	butterfly(twid, side, x00, x01, x10, x11, store.At(level, pos))
}
