// Package voxeltree implements a sparse voxel octree: a spatial index over
// an unbounded, axis-aligned cubic space that stores payloads for voxels of
// power-of-two sizes while spending no memory on unoccupied regions.
//
// The tree always covers a cube of width 2^rootLevel centered on the origin
// and grows by re-rooting whenever a Set falls outside it, so callers never
// size it up front. Node positions are derived from the path down from the
// root rather than stored, and every traversal uses only integer shifts and
// sign tests (see the voxel package).
//
// A tree is not safe for concurrent use. Set and Remove mutate interior
// nodes and Set may swap the root, so callers sharing a tree across
// goroutines must serialize access themselves.
package voxeltree

import (
	"github.com/voxelforge/voxeltree/voxel"
)

// Tree is a sparse spatial index over voxels of power-of-two sizes.
type Tree interface {
	// Size returns the number of filled voxels in the tree.
	Size() int

	// RootLevel returns the exponent of the tree's current coverage: the
	// root spans [-2^(RootLevel-1), 2^(RootLevel-1)) on every axis. It only
	// ever increases.
	RootLevel() int

	// MetaData returns the merged bounds and payload properties of
	// everything that has been stored in the tree.
	MetaData() MetaData

	// Set stores d at exactly the voxel v, growing the tree first if v lies
	// outside its bounds. Setting a coarse voxel discards anything finer
	// stored beneath it; setting a fine voxel beneath a coarse filled one
	// subdivides the coarse voxel, preserving its data at the finer
	// granularity everywhere but v.
	Set(v voxel.Voxel, d Data) error

	// At returns the data stored at exactly the voxel v. A voxel covered by
	// a coarser filled voxel but not stored itself reports absent; use
	// AtCovering for occupancy queries.
	At(v voxel.Voxel) (Data, bool)

	// AtCovering returns the data covering the voxel v, whether stored at
	// exactly v or inherited from a coarser filled voxel containing it,
	// along with the voxel the data is actually stored at.
	AtCovering(v voxel.Voxel) (voxel.Voxel, Data, bool)

	// Remove deletes the data stored at exactly the voxel v and returns it.
	// Voxels only covered by a coarser filled voxel report absent; carving
	// a hole out of a coarse voxel is not supported.
	Remove(v voxel.Voxel) (Data, bool)

	// Iterate visits every filled voxel in octant order and calls fn with
	// the voxel derived from its position in the tree. If fn returns false,
	// iteration stops.
	Iterate(fn func(v voxel.Voxel, d Data) bool)

	// CheckStructure walks the whole tree and reports every structural
	// invariant violation found, or nil for a well-formed tree.
	CheckStructure() error
}
