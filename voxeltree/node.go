package voxeltree

import (
	"github.com/voxelforge/voxeltree/voxel"
)

// Each node in the octree is either an internal node holding exactly eight
// octant children, an empty leaf representing unoccupied space, or a filled
// leaf holding one payload for a fully occupied voxel at the node's level.
const (
	internalNode = nodeType(iota)
	leafNodeEmpty
	leafNodeFilled
)

// nodeType represents the possible types of nodes in the octree.
type nodeType uint8

// node is one cell of the octree. Its level and position are implied by the
// path from the root and are recomputed during traversal, never stored.
type node struct {
	nodeType nodeType
	children []*node // octant-indexed, internal nodes only
	data     Data    // filled leaves only
}

func newLeafNodeEmpty() *node {
	return &node{nodeType: leafNodeEmpty}
}

func newLeafNodeFilled(d Data) *node {
	return &node{nodeType: leafNodeFilled, data: d}
}

func newInternalNode() *node {
	children := make([]*node, voxel.NumOctants)
	for i := range children {
		children[i] = newLeafNodeEmpty()
	}
	return &node{nodeType: internalNode, children: children}
}

// subdivide turns a filled leaf into an internal node whose eight children
// are filled leaves carrying the coarse payload, so the value survives at
// finer granularity. The children share the one Data value, which is safe
// because Data is immutable.
func (n *node) subdivide() {
	children := make([]*node, voxel.NumOctants)
	for i := range children {
		children[i] = newLeafNodeFilled(n.data)
	}
	n.nodeType = internalNode
	n.children = children
	n.data = nil
}

// allEmpty reports whether every child of an internal node is an empty
// leaf, i.e. the node is prunable.
func (n *node) allEmpty() bool {
	for _, child := range n.children {
		if child.nodeType != leafNodeEmpty {
			return false
		}
	}
	return true
}

// countFilled returns the number of filled leaves in the subtree rooted at
// n.
func (n *node) countFilled() int {
	switch n.nodeType {
	case internalNode:
		count := 0
		for _, child := range n.children {
			count += child.countFilled()
		}
		return count
	case leafNodeFilled:
		return 1
	case leafNodeEmpty:
	}
	return 0
}

// iterate visits every filled leaf under n in octant order. n occupies the
// cube of width 2^level with the given minimum corner. Returns false if the
// visitor stopped the walk.
func (n *node) iterate(level int, min voxel.Point, fn func(v voxel.Voxel, d Data) bool) bool {
	switch n.nodeType {
	case leafNodeFilled:
		return fn(voxel.Voxel{Min: min, Level: level}, n.data)
	case internalNode:
		for i, child := range n.children {
			childMin := voxel.OctantMin(min, level, voxel.Octant(i))
			if !child.iterate(level-1, childMin, fn) {
				return false
			}
		}
	case leafNodeEmpty:
	}
	return true
}
