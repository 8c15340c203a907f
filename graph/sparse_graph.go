package graph

import (
	"log/slog"

	"sparse_graph_go/graphutils"
	"sparse_graph_go/parlay_go"
)

// SparseGraph is the CSR backing of Graph. The three arrays are owned by the
// graph and never handed out; queries return copies.
type SparseGraph struct {
	nodes      int
	edges      int64
	undirected bool

	rowOffsets []int64 // len nodes+1
	colIdx     []int32 // len edges
	outDegree  []int32 // len nodes

	logger *slog.Logger
}

var _ Graph = (*SparseGraph)(nil)

func newSparseGraph(l *edgeList, opts Options) *SparseGraph {
	n := l.nodeCount()
	offs, cols, deg := graphutils.BuildCSR(n, l.edges)
	return &SparseGraph{
		nodes:      n,
		edges:      int64(len(cols)),
		undirected: l.undirected,
		rowOffsets: offs,
		colIdx:     cols,
		outDegree:  deg,
		logger:     opts.logger(),
	}
}

func (g *SparseGraph) NumNodes() int { return g.nodes }

func (g *SparseGraph) NumEdges() int64 { return g.edges }

// Directed reports whether edges were stored without mirroring.
func (g *SparseGraph) Directed() bool { return !g.undirected }

func (g *SparseGraph) NodeWithMaxDegree() int {
	best, bestDeg := -1, int32(-1)
	for i, d := range g.outDegree {
		if d > bestDeg {
			best, bestDeg = i, d
		}
	}
	return best
}

// OutDegree returns the out-degree of node, or 0 when node is out of range.
func (g *SparseGraph) OutDegree(node int) int {
	if node < 0 || node >= g.nodes {
		return 0
	}
	return int(g.outDegree[node])
}

func (g *SparseGraph) Neighbors(node int) []int {
	row := g.row(node)
	out := make([]int, len(row))
	parlay_go.Append(row, out)
	return out
}

func (g *SparseGraph) BfsSubgraph(source, maxDepth int) (*Subgraph, error) {
	return boundedBFS(g.nodes, func(u int32) []int32 { return g.row(int(u)) }, source, maxDepth, g.logger)
}

// IsolatedNodes returns, in increasing order, the nodes without out-edges.
func (g *SparseGraph) IsolatedNodes() []int {
	return parlay_go.PackIndex(g.nodes, func(i int) bool { return g.outDegree[i] == 0 })
}

// MemoryMB estimates the footprint of the CSR arrays in MiB.
func (g *SparseGraph) MemoryMB() float64 {
	bytes := len(g.rowOffsets)*8 + len(g.colIdx)*4 + len(g.outDegree)*4
	return float64(bytes) / (1024 * 1024)
}

// row is the internal view of node's neighbor block; it must not escape.
func (g *SparseGraph) row(node int) []int32 {
	if node < 0 || node >= g.nodes {
		return nil
	}
	return g.colIdx[g.rowOffsets[node]:g.rowOffsets[node+1]]
}
