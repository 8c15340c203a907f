package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sparse_graph_go/graphutils"
)

// edgeList accumulates accepted directed edges during ingestion.
type edgeList struct {
	edges      []graphutils.Edge
	maxNode    int32
	dropped    int64
	undirected bool
}

func newEdgeList(opts Options, capacity int) *edgeList {
	return &edgeList{
		edges:      make([]graphutils.Edge, 0, capacity),
		maxNode:    -1,
		undirected: opts.Undirected,
	}
}

func (l *edgeList) add(u, v int32) {
	if u < 0 || v < 0 {
		l.dropped++
		return
	}
	l.edges = append(l.edges, graphutils.Edge{Src: u, Dst: v})
	if l.undirected {
		l.edges = append(l.edges, graphutils.Edge{Src: v, Dst: u})
	}
	if u > l.maxNode {
		l.maxNode = u
	}
	if v > l.maxNode {
		l.maxNode = v
	}
}

func (l *edgeList) nodeCount() int {
	return int(l.maxNode) + 1
}

// Load opens the edge list at path and builds a SparseGraph from it.
func Load(ctx context.Context, path string, opts Options) (*SparseGraph, error) {
	ctx, span := tracer.Start(ctx, "graph.Load", trace.WithAttributes(
		attribute.String("dataset", path),
		attribute.Bool("undirected", opts.Undirected),
	))
	defer span.End()

	opts.logger().InfoContext(ctx, "loading dataset", "path", path)

	f, err := os.Open(path)
	if err != nil {
		loadTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return nil, fmt.Errorf("%w: open %s: %w", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	g, err := Read(ctx, f, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	span.SetAttributes(
		attribute.Int("nodes", g.NumNodes()),
		attribute.Int64("edges", g.NumEdges()),
	)
	return g, nil
}

// Read builds a SparseGraph from whitespace separated "src dst" pairs read from r.
func Read(ctx context.Context, r io.Reader, opts Options) (*SparseGraph, error) {
	start := time.Now()
	l := newEdgeList(opts, opts.edgeCapacity())
	if err := graphutils.ReadEdgeList(r, l.add); err != nil {
		loadTotal.WithLabelValues("error").Inc()
		if errors.Is(err, ErrMalformedInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	g := newSparseGraph(l, opts)
	loadDuration.Observe(time.Since(start).Seconds())
	loadTotal.WithLabelValues("ok").Inc()
	droppedEdges.Add(float64(l.dropped))

	opts.logger().InfoContext(ctx, "csr built",
		"load_id", uuid.NewString(),
		"nodes", g.NumNodes(),
		"edges", g.NumEdges(),
		"dropped", l.dropped,
		"memory_mb", g.MemoryMB(),
		"duration", time.Since(start),
	)
	return g, nil
}

// FromEdges builds a SparseGraph from in-memory pairs, applying the same
// filtering and mirroring rules as Read.
func FromEdges(edges []graphutils.Edge, opts Options) *SparseGraph {
	l := collectEdges(edges, opts)
	return newSparseGraph(l, opts)
}

func collectEdges(edges []graphutils.Edge, opts Options) *edgeList {
	capacity := len(edges)
	if opts.Undirected {
		capacity *= 2
	}
	l := newEdgeList(opts, capacity)
	for _, e := range edges {
		l.add(e.Src, e.Dst)
	}
	return l
}
