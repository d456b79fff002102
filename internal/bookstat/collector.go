// Package bookstat provides an optional Prometheus-backed implementation
// of orderbook.Metrics. It is an ambient instrumentation concern, not a
// core requirement: a Book constructed without a Collector behaves
// identically, just without counters.
package bookstat

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts order-book activity and measures matching-loop
// latency, grounded on the same client_golang counters/histograms used
// for engine instrumentation elsewhere in the retrieved pack.
type Collector struct {
	submits      *prometheus.CounterVec
	trades       prometheus.Counter
	cancels      prometheus.Counter
	modifies     prometheus.Counter
	matchLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics against
// reg. symbol is attached as a constant label so multiple books (one
// per symbol, per the sharding model in spec.md §5) can share a
// registry without colliding.
func NewCollector(reg prometheus.Registerer, symbol string) *Collector {
	c := &Collector{
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "lobcore",
			Subsystem:   "book",
			Name:        "submits_total",
			Help:        "Number of Submit calls, partitioned by acceptance.",
			ConstLabels: prometheus.Labels{"symbol": symbol},
		}, []string{"accepted"}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lobcore",
			Subsystem:   "book",
			Name:        "trades_total",
			Help:        "Number of Trade events emitted.",
			ConstLabels: prometheus.Labels{"symbol": symbol},
		}),
		cancels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lobcore",
			Subsystem:   "book",
			Name:        "cancels_total",
			Help:        "Number of successful Cancel calls.",
			ConstLabels: prometheus.Labels{"symbol": symbol},
		}),
		modifies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lobcore",
			Subsystem:   "book",
			Name:        "modifies_total",
			Help:        "Number of successful Modify calls.",
			ConstLabels: prometheus.Labels{"symbol": symbol},
		}),
		matchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "lobcore",
			Subsystem:   "book",
			Name:        "match_loop_duration_seconds",
			Help:        "Wall-clock time spent in the taker matching loop per Submit or repricing Modify.",
			ConstLabels: prometheus.Labels{"symbol": symbol},
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
	}
	reg.MustRegister(c.submits, c.trades, c.cancels, c.modifies, c.matchLatency)
	return c
}

// ObserveSubmit implements orderbook.Metrics.
func (c *Collector) ObserveSubmit(accepted bool) {
	label := "false"
	if accepted {
		label = "true"
	}
	c.submits.WithLabelValues(label).Inc()
}

// ObserveTrade implements orderbook.Metrics.
func (c *Collector) ObserveTrade() { c.trades.Inc() }

// ObserveCancel implements orderbook.Metrics.
func (c *Collector) ObserveCancel() { c.cancels.Inc() }

// ObserveModify implements orderbook.Metrics.
func (c *Collector) ObserveModify() { c.modifies.Inc() }

// Timer starts a matching-loop latency measurement; call the returned
// func once the loop has finished. The book stops it when the matching
// loop returns, before any residual is rested or discarded.
func (c *Collector) Timer() func() {
	start := time.Now()
	return func() { c.matchLatency.Observe(time.Since(start).Seconds()) }
}
