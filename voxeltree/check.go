package voxeltree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/voxelforge/voxeltree/voxel"
)

// CheckStructure walks the entire tree and aggregates every violation of
// the structural invariants rather than stopping at the first: the root is
// internal, internal nodes have exactly eight children and no payload,
// leaves have no children, filled leaves have a payload, and every node's
// derived position is aligned to its level. Intended for tests and
// debugging; it visits every node.
func (t *sparseTree) CheckStructure() error {
	var err error
	if t.rootLevel < DefaultRootLevel || t.rootLevel > voxel.MaxLevel {
		err = multierr.Append(err, errors.Errorf("root level (%d) out of range", t.rootLevel))
		return err
	}
	if t.root.nodeType != internalNode {
		err = multierr.Append(err, errors.New("root is not an internal node"))
		return err
	}

	half := int64(1) << (t.rootLevel - 1)
	rootMin := voxel.Point{X: -half, Y: -half, Z: -half}
	err = multierr.Append(err, checkNode(t.root, t.rootLevel, rootMin))

	if filled := t.root.countFilled(); filled != t.size {
		err = multierr.Append(err, errors.Errorf("tree size (%d) does not match filled leaf count (%d)", t.size, filled))
	}
	return err
}

func checkNode(n *node, level int, min voxel.Point) error {
	var err error
	v := voxel.Voxel{Min: min, Level: level}

	switch n.nodeType {
	case internalNode:
		if level < 1 {
			// Do not recurse: octant corners below level 0 are undefined.
			return errors.Errorf("internal node at level %d cannot subdivide", level)
		}
		if n.data != nil {
			err = multierr.Append(err, errors.Errorf("internal node at %v has a payload", v))
		}
		if len(n.children) != voxel.NumOctants {
			err = multierr.Append(err, errors.Errorf("internal node at %v has %d children", v, len(n.children)))
			return err
		}
		for i, child := range n.children {
			childMin := voxel.OctantMin(min, level, voxel.Octant(i))
			err = multierr.Append(err, checkNode(child, level-1, childMin))
		}
	case leafNodeFilled:
		if n.data == nil {
			err = multierr.Append(err, errors.Errorf("filled leaf at %v has no payload", v))
		}
		fallthrough
	case leafNodeEmpty:
		if len(n.children) != 0 {
			err = multierr.Append(err, errors.Errorf("leaf at %v has children", v))
		}
		if n.nodeType == leafNodeEmpty && n.data != nil {
			err = multierr.Append(err, errors.Errorf("empty leaf at %v has a payload", v))
		}
		if verr := v.Validate(); verr != nil {
			err = multierr.Append(err, errors.Wrapf(verr, "leaf position at %v violates alignment", v))
		}
	default:
		err = multierr.Append(err, errors.Errorf("unknown node type (%d) at %v", n.nodeType, v))
	}
	return err
}
