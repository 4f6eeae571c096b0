package tree

// butterfly combines the four side/2-square children X00, X01, X10, X11 of
// a side-square sub-transform into out, using the twiddle row for the given
// side. This is the one place the decimation-in-frequency recombination is
// written; Build, Point and Batch all call it so the three recursions can
// never drift apart.
//
// twiddle.At(k, side) is read at k = j, i, i+j — the three off-diagonal
// terms of the 2D radix-2 butterfly.
func butterfly[T Complex](twid Twiddle[T], side int, x00, x01, x10, x11, out []T) {
	h := side / 2
	for i := 0; i < h; i++ {
		for j := 0; j < h; j++ {
			tu := twid.At(j, side) * x01[i*h+j]
			ts := twid.At(i, side) * x10[i*h+j]
			td := twid.At(i+j, side) * x11[i*h+j]

			a := x00[i*h+j] + tu
			b := x00[i*h+j] - tu
			c := ts + td
			d := ts - td

			out[i*side+j] = a + c
			out[i*side+j+h] = b + d
			out[(i+h)*side+j] = a - c
			out[(i+h)*side+j+h] = b - d
		}
	}
}
