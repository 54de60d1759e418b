package grid

import "errors"

// Sentinel errors for grid construction and queries.
var (
	// ErrMapNotFound indicates the map reader could not be opened by the caller
	// (surfaced here for callers that wrap os.Open errors into this sentinel).
	ErrMapNotFound = errors.New("grid: map source not found")

	// ErrDimensionMismatch indicates a header height/width disagreeing with the
	// number of rows or columns actually present in the map or weights source.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrBadHeader indicates a map or weights header is missing height/width
	// (or, for weights, channels) fields.
	ErrBadHeader = errors.New("grid: malformed header")

	// ErrChannelMismatch indicates a weights source declares channels != 4.
	ErrChannelMismatch = errors.New("grid: only 4-channel weights are supported")

	// ErrNotNeighbors indicates GetWeight was asked for the edge between two
	// nodes that are not spatially adjacent.
	ErrNotNeighbors = errors.New("grid: nodes are not neighbors")

	// ErrUnweighted indicates GetWeight was called on a grid with no loaded
	// weights (channels == 0). A★ must not be invoked in that mode.
	ErrUnweighted = errors.New("grid: graph has no weights loaded")

	// ErrUnknownOrientation indicates an Orientation outside {-1,0,1,2,3}.
	ErrUnknownOrientation = errors.New("grid: unknown orientation")

	// ErrNodeNotFound indicates a lookup for a node id/position outside the
	// grid or on an obstacle cell.
	ErrNodeNotFound = errors.New("grid: node not found")
)
