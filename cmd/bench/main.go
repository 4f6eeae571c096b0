// Command bench measures the cost of point and batch updates against the
// from-scratch dense reference transform, across a range of frame sizes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	eventfft "github.com/cwbudde/eventfft"
)

func main() {
	sizes := flag.String("sizes", "16,32,64,128", "comma-separated frame sizes to benchmark")
	batch := flag.Int("batch", 32, "batch size for UpdateBatch timing")
	iters := flag.Int("iters", 200, "iterations per measurement")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	fmt.Printf("%-8s %-18s %-18s %-18s\n", "size", "point (ns/op)", "batch (ns/op)", "dense (ns/op)")
	for _, n := range parseSizes(*sizes) {
		pointNs := benchPoint(n, *iters, rng)
		batchNs := benchBatch(n, *batch, *iters, rng)
		denseNs := benchDense(n, *iters, rng)
		fmt.Printf("%-8d %-18.1f %-18.1f %-18.1f\n", n, pointNs, batchNs, denseNs)
	}
}

func parseSizes(s string) []int {
	var out []int
	cur := 0
	has := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			cur = cur*10 + int(r-'0')
			has = true
			continue
		}
		if has {
			out = append(out, cur)
		}
		cur, has = 0, false
	}
	if has {
		out = append(out, cur)
	}
	return out
}

func benchPoint(n, iters int, rng *rand.Rand) float64 {
	e, err := eventfft.NewEngine(n)
	if err != nil {
		panic(err)
	}
	if err := e.Initialize(nil); err != nil {
		panic(err)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		s := eventfft.NewStimulus(rng.Intn(n), rng.Intn(n), eventfft.State(rng.Intn(2) == 0))
		if _, err := e.Update(s); err != nil {
			panic(err)
		}
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func benchBatch(n, batch, iters int, rng *rand.Rand) float64 {
	e, err := eventfft.NewEngine(n)
	if err != nil {
		panic(err)
	}
	if err := e.Initialize(nil); err != nil {
		panic(err)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		stimuli := make(eventfft.Stimuli, batch)
		for j := range stimuli {
			stimuli[j] = eventfft.NewStimulus(rng.Intn(n), rng.Intn(n), eventfft.State(rng.Intn(2) == 0))
		}
		if _, err := e.UpdateBatch(stimuli); err != nil {
			panic(err)
		}
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func benchDense(n, iters int, rng *rand.Rand) float64 {
	e, err := eventfft.NewEngine(n, eventfft.WithReference())
	if err != nil {
		panic(err)
	}
	if err := e.InitializeReference(nil); err != nil {
		panic(err)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		s := eventfft.NewStimulus(rng.Intn(n), rng.Intn(n), eventfft.State(rng.Intn(2) == 0))
		if err := e.UpdateReference(s); err != nil {
			panic(err)
		}
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}
