package graph

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type bfsKey struct {
	source, maxDepth int
}

// CachedGraph memoizes BfsSubgraph results of an immutable Graph. Other
// queries pass straight through. Safe for concurrent use.
type CachedGraph struct {
	Graph
	cache *lru.Cache[bfsKey, *Subgraph]
}

var _ Graph = (*CachedGraph)(nil)

// NewCachedGraph wraps g with an LRU cache holding up to size BFS results.
func NewCachedGraph(g Graph, size int) (*CachedGraph, error) {
	cache, err := lru.New[bfsKey, *Subgraph](size)
	if err != nil {
		return nil, fmt.Errorf("bfs cache: %w", err)
	}
	return &CachedGraph{Graph: g, cache: cache}, nil
}

// BfsSubgraph returns a private copy of the cached result when present.
// Errors are never cached.
func (c *CachedGraph) BfsSubgraph(source, maxDepth int) (*Subgraph, error) {
	if maxDepth < 0 {
		maxDepth = 0
	}
	key := bfsKey{source, maxDepth}
	if sub, ok := c.cache.Get(key); ok {
		cacheLookups.WithLabelValues("hit").Inc()
		return sub.Clone(), nil
	}
	cacheLookups.WithLabelValues("miss").Inc()

	sub, err := c.Graph.BfsSubgraph(source, maxDepth)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, sub.Clone())
	return sub, nil
}

// Len returns the number of cached results.
func (c *CachedGraph) Len() int {
	return c.cache.Len()
}
