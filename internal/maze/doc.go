// Package maze provides the maze data model and its generation algorithms.
//
// A maze is a fixed-size grid of Wall and Ground cells. Passages are carved on
// a lattice of odd/odd "room" cells, with the even cells between two rooms
// acting as connectors. Generation is a randomized recursive backtracker that
// yields a perfect maze (exactly one path between any two carved rooms),
// followed by a classification pass that tags each wall with the connector
// shape it needs to be drawn with.
//
// The package is UI-agnostic and deterministic for a given random source. It
// never draws anything itself: renderers iterate cells and rewards through
// read-only queries and resolve categories to glyphs on their own.
package maze
