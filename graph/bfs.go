package graph

import (
	"fmt"
	"log/slog"
)

// boundedBFS runs a level-order BFS from source over n nodes. Only nodes with
// depth < maxDepth expand. An edge (u, v) is emitted when v sits exactly one
// level below u, whether v was discovered through u or through a sibling.
func boundedBFS(n int, adj func(u int32) []int32, source, maxDepth int, logger *slog.Logger) (*Subgraph, error) {
	if source < 0 || source >= n {
		bfsTotal.WithLabelValues("out_of_range").Inc()
		return nil, fmt.Errorf("%w: bfs source %d not in [0, %d)", ErrNodeOutOfRange, source, n)
	}
	if maxDepth < 0 {
		maxDepth = 0
	}

	depth := make([]int32, n)
	for i := range depth {
		depth[i] = -1
	}
	queue := make([]int32, 0, n)

	depth[source] = 0
	queue = append(queue, int32(source))
	out := &Subgraph{Nodes: []int{source}}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		d := depth[u]
		if int(d) >= maxDepth {
			continue
		}
		for _, v := range adj(u) {
			switch depth[v] {
			case -1:
				depth[v] = d + 1
				queue = append(queue, v)
				out.Nodes = append(out.Nodes, int(v))
				out.EdgeSrc = append(out.EdgeSrc, int(u))
				out.EdgeDst = append(out.EdgeDst, int(v))
			case d + 1:
				out.EdgeSrc = append(out.EdgeSrc, int(u))
				out.EdgeDst = append(out.EdgeDst, int(v))
			}
		}
	}

	bfsTotal.WithLabelValues("ok").Inc()
	bfsNodes.Observe(float64(len(out.Nodes)))
	logger.Debug("bfs subgraph",
		"source", source,
		"max_depth", maxDepth,
		"nodes", len(out.Nodes),
		"edges", out.NumEdges(),
	)
	return out, nil
}
