package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sparsegraph.graph")

var (
	loadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sparsegraph_load_total",
		Help: "Total edge list loads by result",
	}, []string{"result"})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sparsegraph_load_duration_seconds",
		Help:    "Duration of edge list ingestion and CSR construction",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	droppedEdges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sparsegraph_dropped_edges_total",
		Help: "Input pairs discarded for a negative endpoint",
	})

	bfsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sparsegraph_bfs_total",
		Help: "Total bounded BFS queries by result",
	}, []string{"result"})

	bfsNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sparsegraph_bfs_nodes",
		Help:    "Nodes returned per bounded BFS query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sparsegraph_cache_lookups_total",
		Help: "BFS cache lookups by result",
	}, []string{"result"})
)
