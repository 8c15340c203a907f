// Package graph provides a static, read-mostly graph store for adjacency
// queries and bounded-depth traversal.
//
// # Lifecycle
//
// A graph is built exactly once from a finite edge list (Load, Read or
// FromEdges) and is immutable afterwards. Construction either returns a
// fully built graph or an error, never both.
//
// # Thread Safety
//
// Every query method is read-only and may be called from many goroutines
// at once without locking. BfsSubgraph allocates its own working memory
// per call.
package graph

import (
	"log/slog"

	"sparse_graph_go/logging"
)

// Graph is the query surface shared by every backing representation.
type Graph interface {
	// NumNodes is one greater than the largest node id seen at build time.
	NumNodes() int
	// NumEdges is the number of directed edges stored.
	NumEdges() int64
	// NodeWithMaxDegree returns the lowest id among nodes with the largest
	// out-degree, or -1 for an empty graph.
	NodeWithMaxDegree() int
	// Neighbors returns a copy of node's out-neighbors in stored order.
	// Out-of-range ids yield an empty slice.
	Neighbors(node int) []int
	// BfsSubgraph extracts the breadth-first subgraph around source,
	// expanding only nodes shallower than maxDepth.
	BfsSubgraph(source, maxDepth int) (*Subgraph, error)
}

// Subgraph is the result of a bounded BFS. EdgeSrc and EdgeDst are aligned.
type Subgraph struct {
	Nodes   []int
	EdgeSrc []int
	EdgeDst []int
}

// NumEdges returns the number of subgraph edges.
func (s *Subgraph) NumEdges() int {
	return len(s.EdgeSrc)
}

// Clone returns a deep copy of s.
func (s *Subgraph) Clone() *Subgraph {
	return &Subgraph{
		Nodes:   append([]int(nil), s.Nodes...),
		EdgeSrc: append([]int(nil), s.EdgeSrc...),
		EdgeDst: append([]int(nil), s.EdgeDst...),
	}
}

// DefaultEdgeCapacity is the initial capacity of the ingestion buffer.
const DefaultEdgeCapacity = 1 << 20

// Options controls ingestion.
type Options struct {
	// Undirected mirrors every accepted edge (u, v) as (v, u). Directed is the default.
	Undirected bool
	// EdgeCapacity preallocates the ingestion buffer; 0 means DefaultEdgeCapacity.
	EdgeCapacity int
	// Logger receives load and query diagnostics; nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

func (o Options) edgeCapacity() int {
	if o.EdgeCapacity <= 0 {
		return DefaultEdgeCapacity
	}
	return o.EdgeCapacity
}
