package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tourism",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Number of Redis cache hits.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tourism",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Number of Redis cache misses.",
	})
)
