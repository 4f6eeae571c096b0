// Package metrics instruments engine activity for Prometheus scraping. A
// nil *Recorder is valid and every method on it is a no-op, so engines built
// without metrics pay only a nil check per call.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exports counters and histograms describing update traffic
// through an engine: how many updates land, how many actually change the
// frame, how big batches are, and how deep ancestor rebuilds go.
type Recorder struct {
	updatesTotal      prometheus.Counter
	batchUpdatesTotal prometheus.Counter
	batchSize         prometheus.Histogram
	rebuildDepth      prometheus.Histogram
	changedTotal      prometheus.Counter
	unchangedTotal    prometheus.Counter
}

// NewRecorder registers a Recorder's collectors against reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		updatesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventfft_updates_total",
			Help: "Total number of single-pixel updates applied to an engine.",
		}),
		batchUpdatesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventfft_batch_updates_total",
			Help: "Total number of batch updates applied to an engine.",
		}),
		batchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "eventfft_batch_size",
			Help:    "Number of stimuli per batch update, after deduplication.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
		rebuildDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "eventfft_rebuild_depth",
			Help:    "Number of tree levels recomputed by a triggering update.",
			Buckets: prometheus.LinearBuckets(0, 1, 21),
		}),
		changedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventfft_changed_total",
			Help: "Updates that actually mutated the frame.",
		}),
		unchangedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventfft_unchanged_total",
			Help: "Updates that left the frame unchanged (no-ops).",
		}),
	}
}

// ObservePoint records one Update call.
func (r *Recorder) ObservePoint(changed bool, rebuildDepth int) {
	if r == nil {
		return
	}
	r.updatesTotal.Inc()
	r.recordOutcome(changed, rebuildDepth)
}

// ObserveBatch records one UpdateBatch call over size stimuli.
func (r *Recorder) ObserveBatch(size int, changed bool, rebuildDepth int) {
	if r == nil {
		return
	}
	r.batchUpdatesTotal.Inc()
	r.batchSize.Observe(float64(size))
	r.recordOutcome(changed, rebuildDepth)
}

func (r *Recorder) recordOutcome(changed bool, rebuildDepth int) {
	r.rebuildDepth.Observe(float64(rebuildDepth))
	if changed {
		r.changedTotal.Inc()
	} else {
		r.unchangedTotal.Inc()
	}
}
