// Package grid implements a directed, weighted 4-neighbour grid in which an
// agent's position is a (Node, Orientation) pair. It provides neighbour
// expansion respecting orientation, map/weights file I/O, and a single-agent
// A★ search over the composite node×orientation space.
//
// Grid cells are addressed by a stable integer id = y*width + x. Obstacle
// cells have no Node; the corresponding slot is nil. Weights, when present,
// are stored as a flat height*width*4 array, one outgoing edge weight per
// cardinal channel (0:+y, 1:−x, 2:−y, 3:+x).
package grid
