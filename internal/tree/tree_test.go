package tree

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

const testTol = 1e-3

// naiveDFT2D computes the dense 2D DFT of a row-major side*side frame with
// the same W_n^k = exp(-2Ï€ik/n) convention the tree uses, for use as a test
// oracle independent of the tree's own recursion.
func naiveDFT2D(frame []complex128, side int) []complex128 {
	out := make([]complex128, side*side)
	for u := 0; u < side; u++ {
		for v := 0; v < side; v++ {
			var sum complex128
			for r := 0; r < side; r++ {
				for c := 0; c < side; c++ {
					angle := -2 * math.Pi * (float64(u*r)/float64(side) + float64(v*c)/float64(side))
					sum += frame[r*side+c] * cmplx.Exp(complex(0, angle))
				}
			}
			out[u*side+v] = sum
		}
	}
	return out
}

func buildAndCompare(t *testing.T, side int, frame []complex64) {
	t.Helper()

	twid := NewTwiddle[complex64](side)
	store := NewStore[complex64](side)
	Build(store, twid, frame)

	dense := make([]complex128, side*side)
	for i, v := range frame {
		dense[i] = complex128(v)
	}
	want := naiveDFT2D(dense, side)

	got := store.Root()
	for i := range got {
		if cmplx.Abs(complex128(got[i])-want[i]) > testTol {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildMatchesDenseDFT(t *testing.T) {
	t.Parallel()

	for _, side := range []int{4, 8, 16, 32} {
		side := side
		t.Run("", func(t *testing.T) {
			t.Parallel()

			frame := make([]complex64, side*side)
			rng := rand.New(rand.NewSource(int64(side)))
			for i := range frame {
				if rng.Intn(2) == 0 {
					frame[i] = 1
				}
			}
			buildAndCompare(t, side, frame)
		})
	}
}

func TestUpdateTogglePrunesUnchanged(t *testing.T) {
	t.Parallel()

	const side = 16
	twid := NewTwiddle[complex64](side)
	store := NewStore[complex64](side)
	Build(store, twid, make([]complex64, side*side))

	if changed, _ := Update(store, twid, 3, 5, true); !changed {
		t.Fatal("expected first toggle to report changed")
	}
	if changed, _ := Update(store, twid, 3, 5, true); changed {
		t.Fatal("expected repeated toggle to report unchanged")
	}
	if changed, _ := Update(store, twid, 3, 5, false); !changed {
		t.Fatal("expected toggle-off to report changed")
	}

	// back to the all-zero frame
	want := naiveDFT2D(make([]complex128, side*side), side)
	got := store.Root()
	for i := range got {
		if cmplx.Abs(complex128(got[i])-want[i]) > 1e-4 {
			t.Fatalf("index %d: got %v, want %v after round-trip toggle", i, got[i], want[i])
		}
	}
}

func TestSingleOnProducesAllOnesSpectrum(t *testing.T) {
	t.Parallel()

	const side = 16
	twid := NewTwiddle[complex64](side)
	store := NewStore[complex64](side)
	Build(store, twid, make([]complex64, side*side))
	Update(store, twid, 0, 0, true)

	got := store.Root()
	for i, v := range got {
		if cmplx.Abs(complex128(v)-1) > 1e-4 {
			t.Fatalf("index %d: got %v, want 1+0i", i, v)
		}
	}
}

func TestBatchMatchesSequentialPointUpdates(t *testing.T) {
	t.Parallel()

	const side = 32
	twidA := NewTwiddle[complex64](side)
	storeA := NewStore[complex64](side)
	Build(storeA, twidA, make([]complex64, side*side))

	twidB := NewTwiddle[complex64](side)
	storeB := NewStore[complex64](side)
	Build(storeB, twidB, make([]complex64, side*side))

	rng := rand.New(rand.NewSource(7))
	seen := map[[2]int]bool{}
	var events []Event
	for len(events) < 25 {
		r, c := rng.Intn(side), rng.Intn(side)
		if seen[[2]int{r, c}] {
			continue
		}
		seen[[2]int{r, c}] = true
		events = append(events, Event{Row: r, Col: c, On: rng.Intn(2) == 0})
	}

	for _, e := range events {
		Update(storeA, twidA, e.Row, e.Col, e.On)
	}
	UpdateBatch(storeB, twidB, append([]Event(nil), events...))

	gotA := storeA.Root()
	gotB := storeB.Root()
	for i := range gotA {
		if cmplx.Abs(complex128(gotA[i]-gotB[i])) > 0.1 {
			t.Fatalf("index %d: point result %v, batch result %v", i, gotA[i], gotB[i])
		}
	}
}

func TestBatchCollapseOnDominates(t *testing.T) {
	t.Parallel()

	const side = 8
	twid := NewTwiddle[complex64](side)
	store := NewStore[complex64](side)
	Build(store, twid, make([]complex64, side*side))

	events := []Event{
		{Row: 2, Col: 3, On: false},
		{Row: 2, Col: 3, On: true},
		{Row: 2, Col: 3, On: false},
	}
	if changed, _ := UpdateBatch(store, twid, events); !changed {
		t.Fatal("expected batch with an On entry to change the leaf")
	}

	got := store.Root()
	want := naiveDFT2D(func() []complex128 {
		f := make([]complex128, side*side)
		f[2*side+3] = 1
		return f
	}(), side)
	for i := range got {
		if cmplx.Abs(complex128(got[i])-want[i]) > 1e-3 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
