package graphutils

// Edge is a directed arc from Src to Dst
type Edge struct {
	Src, Dst int32
}

// BuildCSR: two-pass counting sort of edges into CSR form.
// Neighbor order inside each row follows the input order of the edges.
// Edges whose source falls outside [0, n) are skipped.
func BuildCSR(n int, edges []Edge) (offsets []int64, cols []int32, degree []int32) {
	degree = make([]int32, n)
	for _, e := range edges {
		if e.Src >= 0 && int(e.Src) < n {
			degree[e.Src]++
		}
	}

	// Exclusive prefix sum with a leading zero
	offsets = make([]int64, n+1)
	for u := 0; u < n; u++ {
		offsets[u+1] = offsets[u] + int64(degree[u])
	}

	cols = make([]int32, offsets[n])
	for i := range cols {
		cols[i] = -1
	}

	// Per-node write cursors
	cursor := make([]int64, n)
	copy(cursor, offsets[:n])
	for _, e := range edges {
		if e.Src < 0 || int(e.Src) >= n {
			continue
		}
		cols[cursor[e.Src]] = e.Dst
		cursor[e.Src]++
	}
	return offsets, cols, degree
}

// BuildAdj: turns an edge list into an adjacency list [][]int32 with n rows
func BuildAdj(n int, edges []Edge) [][]int32 {
	G := make([][]int32, n)
	for _, e := range edges {
		if e.Src < 0 || int(e.Src) >= n {
			continue
		}
		G[e.Src] = append(G[e.Src], e.Dst)
	}
	return G
}

// BuildAdjFromCSR: turns CSR into an adjacency list [][]int32
func BuildAdjFromCSR(offsets []int64, cols []int32) [][]int32 {
	n := len(offsets) - 1
	if n < 0 {
		return nil
	}
	G := make([][]int32, n)
	for u := 0; u < n; u++ {
		G[u] = append([]int32(nil), cols[offsets[u]:offsets[u+1]]...)
	}
	return G
}
