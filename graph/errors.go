package graph

import (
	"errors"

	"sparse_graph_go/graphutils"
)

// Sentinel errors for graph operations.
var (
	// ErrSourceUnavailable is returned when the edge source cannot be opened or read.
	// No graph is returned alongside it.
	ErrSourceUnavailable = errors.New("edge source unavailable")

	// ErrMalformedInput is returned when the edge source holds a token that is not
	// an integer, or ends with an unpaired id.
	ErrMalformedInput = graphutils.ErrMalformedInput

	// ErrNodeOutOfRange is returned by BfsSubgraph for a source outside [0, NumNodes()).
	ErrNodeOutOfRange = errors.New("node out of range")
)
