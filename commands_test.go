package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparse_graph_go/graph"
)

func writeEdges(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCmd(t *testing.T) {
	path := writeEdges(t, "0 1\n1 2\n0 2\n5 0\n")

	out, err := run(t, "stats", "-f", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "mode:        directed")
	assert.Contains(t, out, "nodes:       6")
	assert.Contains(t, out, "edges:       4")
	assert.Contains(t, out, "max degree:  node 0 (2)")
	assert.Contains(t, out, "isolated:    3")
}

func TestNeighborsCmd(t *testing.T) {
	path := writeEdges(t, "0 1\n1 2\n0 2\n")

	out, err := run(t, "neighbors", "2", "-f", path, "--undirected")
	require.NoError(t, err)
	assert.Equal(t, "Vertex 2 has 2 neighbors: [1 0]\n", out)

	out, err = run(t, "neighbors", "9", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Vertex 9 has 0 neighbors: []\n", out)

	_, err = run(t, "neighbors", "x", "-f", path)
	assert.Error(t, err)
}

func TestBfsCmd(t *testing.T) {
	path := writeEdges(t, "0 1\n0 2\n1 3\n2 3\n")

	out, err := run(t, "bfs", "0", "3", "--depth", "2", "-f", path, "--cache-size", "8")
	require.NoError(t, err)
	assert.Equal(t, "source 0 depth 2: 4 nodes, 4 edges\n"+
		"  nodes: [0 1 2 3]\n"+
		"  edges: [0->1 0->2 1->3 2->3]\n"+
		"source 3 depth 2: 1 nodes, 0 edges\n"+
		"  nodes: [3]\n"+
		"  edges: []\n", out)
}

func TestBfsCmd_OutOfRange(t *testing.T) {
	path := writeEdges(t, "0 1\n")

	_, err := run(t, "bfs", "7", "-f", path)
	assert.ErrorIs(t, err, graph.ErrNodeOutOfRange)
}

func TestMissingDataset(t *testing.T) {
	t.Setenv("SPARSEGRAPH_DATASET", "")

	_, err := run(t, "stats")
	assert.ErrorContains(t, err, "no dataset")

	_, err = run(t, "stats", "-f", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, graph.ErrSourceUnavailable)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := writeEdges(t, "0 1\n1 2\n")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"dataset: "+path+"\nundirected: true\nmax_depth: 1\nlog_level: warn\n"), 0644))

	out, err := run(t, "bfs", "1", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "source 1 depth 1: 3 nodes, 2 edges")

	out, err = run(t, "bfs", "1", "--config", cfgPath, "--undirected=false", "-d", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "source 1 depth 5: 2 nodes, 1 edges")
}
