package graph

import (
	"log/slog"

	"sparse_graph_go/graphutils"
)

// AdjacencyGraph backs Graph with one neighbor slice per node. It answers
// every query exactly like SparseGraph built from the same edges.
type AdjacencyGraph struct {
	adj    [][]int32
	edges  int64
	logger *slog.Logger
}

var _ Graph = (*AdjacencyGraph)(nil)

// NewAdjacencyGraph builds an AdjacencyGraph, filtering and mirroring edges
// the same way as FromEdges.
func NewAdjacencyGraph(edges []graphutils.Edge, opts Options) *AdjacencyGraph {
	l := collectEdges(edges, opts)
	return &AdjacencyGraph{
		adj:    graphutils.BuildAdj(l.nodeCount(), l.edges),
		edges:  int64(len(l.edges)),
		logger: opts.logger(),
	}
}

func (g *AdjacencyGraph) NumNodes() int { return len(g.adj) }

func (g *AdjacencyGraph) NumEdges() int64 { return g.edges }

func (g *AdjacencyGraph) NodeWithMaxDegree() int {
	best, bestDeg := -1, -1
	for i, nbrs := range g.adj {
		if len(nbrs) > bestDeg {
			best, bestDeg = i, len(nbrs)
		}
	}
	return best
}

func (g *AdjacencyGraph) Neighbors(node int) []int {
	if node < 0 || node >= len(g.adj) {
		return []int{}
	}
	out := make([]int, len(g.adj[node]))
	for i, v := range g.adj[node] {
		out[i] = int(v)
	}
	return out
}

func (g *AdjacencyGraph) BfsSubgraph(source, maxDepth int) (*Subgraph, error) {
	return boundedBFS(len(g.adj), func(u int32) []int32 { return g.adj[u] }, source, maxDepth, g.logger)
}
