package graphutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSR(t *testing.T) {
	edges := []Edge{{0, 1}, {2, 0}, {0, 2}, {1, 1}, {0, 1}}
	offs, cols, deg := BuildCSR(3, edges)

	assert.Equal(t, []int64{0, 3, 4, 5}, offs)
	// Input order kept within a row, duplicates and self-loops included
	assert.Equal(t, []int32{1, 2, 1, 1, 0}, cols)
	assert.Equal(t, []int32{3, 1, 1}, deg)
}

func TestBuildCSR_Invariants(t *testing.T) {
	edges := []Edge{{4, 0}, {1, 3}, {4, 4}, {0, 2}, {3, 1}, {4, 1}, {1, 0}}
	n := 5
	offs, cols, deg := BuildCSR(n, edges)

	require.Len(t, offs, n+1)
	require.Len(t, deg, n)
	assert.Equal(t, int64(0), offs[0])
	assert.Equal(t, int64(len(edges)), offs[n])
	for u := 0; u < n; u++ {
		assert.LessOrEqual(t, offs[u], offs[u+1])
		assert.Equal(t, int64(deg[u]), offs[u+1]-offs[u], "node %d", u)
	}
	for _, v := range cols {
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(n))
	}
}

func TestBuildCSR_SkipsOutOfRangeSource(t *testing.T) {
	offs, cols, deg := BuildCSR(2, []Edge{{0, 1}, {5, 0}, {-1, 0}, {1, 0}})

	assert.Equal(t, []int64{0, 1, 2}, offs)
	assert.Equal(t, []int32{1, 0}, cols)
	assert.Equal(t, []int32{1, 1}, deg)
}

func TestBuildCSR_Empty(t *testing.T) {
	offs, cols, deg := BuildCSR(0, nil)

	assert.Equal(t, []int64{0}, offs)
	assert.Empty(t, cols)
	assert.Empty(t, deg)
}

func TestBuildAdjMatchesCSR(t *testing.T) {
	edges := []Edge{{3, 0}, {0, 1}, {3, 2}, {1, 3}, {0, 3}, {3, 0}}
	offs, cols, _ := BuildCSR(4, edges)

	assert.Equal(t, BuildAdj(4, edges), BuildAdjFromCSR(offs, cols))
}
