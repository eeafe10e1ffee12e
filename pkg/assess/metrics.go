package assess

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	greedyPolicy  = "greedy"
	regionPolicy  = "region_counting"
	minimaxPolicy = "minimax"
)

var (
	// moveDuration tracks how long each policy takes to pick a move.
	moveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dotsboxes_next_move_duration_seconds",
		Help:    "Time spent choosing the next move, by policy",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"policy"})

	searchNodes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dotsboxes_minimax_nodes_total",
		Help: "Search nodes expanded by minimax",
	})

	searchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dotsboxes_minimax_cache_hits_total",
		Help: "Transposition table hits during minimax search",
	})

	searchCacheSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dotsboxes_minimax_cache_entries",
		Help:    "Transposition table entries at the end of a search",
		Buckets: prometheus.ExponentialBuckets(16, 4, 10),
	})
)

func observeMove(policy string, start time.Time) {
	moveDuration.WithLabelValues(policy).Observe(time.Since(start).Seconds())
}
