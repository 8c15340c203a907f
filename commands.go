package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sparse_graph_go/graph"
	"sparse_graph_go/logging"
)

// app carries the resolved settings shared by every subcommand
type app struct {
	configPath string
	flags      Config
	cfg        Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sparsegraph",
		Short: "Query a static CSR graph built from an edge list",
		Long: `Loads a whitespace separated "src dst" edge list into a compressed sparse
row graph and answers degree, neighbor and bounded BFS queries.

Examples:
  sparsegraph stats -f data/edges.txt
  sparsegraph neighbors 42 -f data/edges.txt --undirected
  sparsegraph bfs 0 7 13 --depth 3 -f data/edges.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVarP(&a.flags.Dataset, "dataset", "f", "", "path to the edge list")
	pf.BoolVar(&a.flags.Undirected, "undirected", false, "mirror every edge")
	pf.StringVar(&a.flags.LogLevel, "log-level", "info", "debug, info, warn or error")
	pf.BoolVar(&a.flags.JSONLogs, "json-logs", false, "emit logs as JSON")
	pf.IntVar(&a.flags.CacheSize, "cache-size", 0, "BFS result cache entries (0 disables)")

	root.AddCommand(a.statsCmd(), a.neighborsCmd(), a.bfsCmd())
	return root
}

// setup merges config file, env and explicitly set flags, then builds the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset = a.flags.Dataset
	}
	if flags.Changed("undirected") {
		cfg.Undirected = a.flags.Undirected
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = a.flags.JSONLogs
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = a.flags.CacheSize
	}
	if flags.Changed("depth") {
		cfg.MaxDepth = a.flags.MaxDepth
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{Level: level, JSON: cfg.JSONLogs, Output: cmd.ErrOrStderr()})
	a.cfg = cfg
	return nil
}

func (a *app) load(ctx context.Context) (*graph.SparseGraph, error) {
	if a.cfg.Dataset == "" {
		return nil, errors.New("no dataset given (use -f, the config file or SPARSEGRAPH_DATASET)")
	}
	return graph.Load(ctx, a.cfg.Dataset, graph.Options{
		Undirected: a.cfg.Undirected,
		Logger:     a.logger,
	})
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node and edge counts, the max-degree node and memory use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			mode := "directed"
			if !g.Directed() {
				mode = "undirected"
			}
			fmt.Fprintf(out, "mode:        %s\n", mode)
			fmt.Fprintf(out, "nodes:       %d\n", g.NumNodes())
			fmt.Fprintf(out, "edges:       %d\n", g.NumEdges())
			best := g.NodeWithMaxDegree()
			fmt.Fprintf(out, "max degree:  node %d (%d)\n", best, g.OutDegree(best))
			fmt.Fprintf(out, "isolated:    %d\n", len(g.IsolatedNodes()))
			fmt.Fprintf(out, "memory:      %.3f MB\n", g.MemoryMB())
			return nil
		},
	}
}

func (a *app) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors NODE",
		Short: "Print the out-neighbors of a node in stored order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node %q: %w", args[0], err)
			}
			g, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			nbrs := g.Neighbors(node)
			fmt.Fprintf(cmd.OutOrStdout(), "Vertex %d has %d neighbors: %s\n", node, len(nbrs), joinInts(nbrs))
			return nil
		},
	}
}

func (a *app) bfsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs SOURCE...",
		Short: "Extract the bounded BFS subgraph around one or more sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := make([]int, len(args))
			for i, s := range args {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid source %q: %w", s, err)
				}
				sources[i] = v
			}
			g, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			var q graph.Graph = g
			if a.cfg.CacheSize > 0 {
				if q, err = graph.NewCachedGraph(g, a.cfg.CacheSize); err != nil {
					return err
				}
			}
			results, err := runBFS(q, sources, a.cfg.MaxDepth)
			if err != nil {
				return err
			}
			for i, sub := range results {
				writeSubgraph(cmd.OutOrStdout(), sources[i], a.cfg.MaxDepth, sub)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.flags.MaxDepth, "depth", "d", 2, "maximum BFS depth")
	return cmd
}

// runBFS queries every source concurrently; results keep the order of sources
func runBFS(g graph.Graph, sources []int, maxDepth int) ([]*graph.Subgraph, error) {
	results := make([]*graph.Subgraph, len(sources))
	var eg errgroup.Group
	for i, src := range sources {
		eg.Go(func() error {
			sub, err := g.BfsSubgraph(src, maxDepth)
			if err != nil {
				return err
			}
			results[i] = sub
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeSubgraph(w io.Writer, source, maxDepth int, sub *graph.Subgraph) {
	fmt.Fprintf(w, "source %d depth %d: %d nodes, %d edges\n", source, maxDepth, len(sub.Nodes), sub.NumEdges())
	fmt.Fprintf(w, "  nodes: %s\n", joinInts(sub.Nodes))
	pairs := make([]string, sub.NumEdges())
	for i := range pairs {
		pairs[i] = fmt.Sprintf("%d->%d", sub.EdgeSrc[i], sub.EdgeDst[i])
	}
	fmt.Fprintf(w, "  edges: [%s]\n", strings.Join(pairs, " "))
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
