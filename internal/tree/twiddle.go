package tree

import "math"

// Twiddle is the flat N·(N+1)-entry table of roots of unity shared by every
// butterfly in the tree: Twiddle.At(k, n) = W_n^k = exp(-2Ï€i·k/n).
//
// Entries with n = 0 are left at the zero value rather than computed: the
// algorithms never read them (a level-0 leaf has no butterfly to apply), and
// computing them would require dividing by zero.
type Twiddle[T Complex] struct {
	n     int
	table []T
}

// NewTwiddle builds the table for a frame of side n (n must be a power of
// two; NewTwiddle does not itself validate that, callers do).
func NewTwiddle[T Complex](n int) Twiddle[T] {
	table := make([]T, n*(n+1))
	for order := 1; order <= n; order++ {
		for k := 0; k < n; k++ {
			angle := -2.0 * math.Pi * float64(k) / float64(order)
			table[k+n*order] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
		}
	}
	return Twiddle[T]{n: n, table: table}
}

// At returns W_n^k, i.e. the root of unity for order n at exponent k.
// k is taken modulo n, so any exponent, including the i+j sums read by the
// shared butterfly, maps into the table.
func (t Twiddle[T]) At(k, n int) T {
	if n == 0 {
		var zero T
		return zero
	}
	k %= n
	if k < 0 {
		k += n
	}
	return t.table[k+t.n*n]
}
