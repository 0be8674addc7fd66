package voxeltree

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/voxelforge/voxeltree/voxel"
)

// DefaultRootLevel is the smallest coverage a tree can start with: a width
// two cube spanning [-1, 1) on every axis, just enough for one unit voxel
// per octant. Callers that know their working volume should start larger to
// avoid early growth churn.
const DefaultRootLevel = 1

// Config holds the construction-time options of a tree.
type Config struct {
	// InitialRootLevel sets the tree's starting coverage; zero means
	// DefaultRootLevel. The root level only ever grows from here.
	InitialRootLevel int

	// DisablePruning keeps branches whose voxels have all been removed
	// allocated instead of collapsing them back into empty leaves. Lookups
	// are unaffected either way; only the memory footprint under heavy
	// remove traffic differs.
	DisablePruning bool
}

// sparseTree is the octree implementation of Tree. The root is always an
// internal node spanning an origin-centered cube of width 2^rootLevel;
// keeping the top level subdivided is what lets growth relink the eight
// octants without breaking the centering on the origin.
type sparseTree struct {
	logger    golog.Logger
	root      *node
	rootLevel int
	size      int
	meta      MetaData
	prune     bool
}

// New creates an empty tree with the specified initial root level.
func New(rootLevel int, logger golog.Logger) (Tree, error) {
	return NewWithConfig(Config{InitialRootLevel: rootLevel}, logger)
}

// NewWithConfig creates an empty tree from a config.
func NewWithConfig(cfg Config, logger golog.Logger) (Tree, error) {
	rootLevel := cfg.InitialRootLevel
	if rootLevel == 0 {
		rootLevel = DefaultRootLevel
	}
	if rootLevel < DefaultRootLevel || rootLevel > voxel.MaxLevel {
		return nil, errors.Errorf("invalid root level (%d) for voxel tree, must be in [%d, %d]",
			rootLevel, DefaultRootLevel, voxel.MaxLevel)
	}

	return &sparseTree{
		logger:    logger,
		root:      newInternalNode(),
		rootLevel: rootLevel,
		meta:      NewMetaData(),
		prune:     !cfg.DisablePruning,
	}, nil
}

func (t *sparseTree) Size() int {
	return t.size
}

func (t *sparseTree) RootLevel() int {
	return t.rootLevel
}

func (t *sparseTree) MetaData() MetaData {
	return t.meta
}

// contains reports whether the voxel v lies entirely inside the root's
// bounds. The root level itself is excluded: a voxel that large could only
// be the root, which is always kept subdivided.
func (t *sparseTree) contains(v voxel.Voxel) bool {
	if v.Level >= t.rootLevel {
		return false
	}
	half := int64(1) << (t.rootLevel - 1)
	w := v.SideLength()
	return v.Min.X >= -half && v.Min.X+w <= half &&
		v.Min.Y >= -half && v.Min.Y+w <= half &&
		v.Min.Z >= -half && v.Min.Z+w <= half
}

// grow re-roots the tree until the voxel v fits inside its bounds. Each
// step doubles coverage: every occupied octant of the old root is rehung as
// the diagonally-opposite corner child of the matching octant of the new
// root, which keeps the tree centered on the origin and relinks whole
// subtrees without walking them. Cost is proportional to the number of
// doublings, never to the amount of data already stored.
func (t *sparseTree) grow(v voxel.Voxel) error {
	for !t.contains(v) {
		if t.rootLevel >= voxel.MaxLevel {
			return errors.Errorf("cannot grow voxel tree beyond level %d to hold %v", voxel.MaxLevel, v)
		}

		newRoot := newInternalNode()
		for i, child := range t.root.children {
			if child.nodeType == leafNodeEmpty {
				// Unoccupied octants stay plain empty leaves.
				continue
			}
			wrapper := newInternalNode()
			wrapper.children[voxel.Octant(i).Mirror()] = child
			newRoot.children[i] = wrapper
		}
		t.root = newRoot
		t.rootLevel++
		t.logger.Debugf("grew voxel tree to root level %d", t.rootLevel)
	}
	return nil
}

// Set validates the voxel, grows the tree to cover it if needed, then
// descends from the root subdividing lazily until the target is replaced
// with a filled leaf.
func (t *sparseTree) Set(v voxel.Voxel, d Data) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if d == nil {
		t.logger.Debug("no data given, skipping insertion")
		return nil
	}

	if err := t.grow(v); err != nil {
		return err
	}
	t.setRecursive(t.root, t.rootLevel, voxel.Point{}, v, d)
	t.meta.Merge(v, d)
	return nil
}

// setRecursive descends from n, an internal node at the given level and
// center, toward the voxel v. Empty leaves on the path are subdivided into
// eight empty children; filled leaves into eight copies of their payload.
// The node at v's own level is replaced outright with a filled leaf,
// discarding any finer structure beneath it.
func (t *sparseTree) setRecursive(n *node, level int, center voxel.Point, v voxel.Voxel, d Data) {
	o := voxel.OctantAt(center, v.Min)
	child := n.children[o]

	if level-1 == v.Level {
		switch child.nodeType {
		case internalNode:
			t.size -= child.countFilled()
		case leafNodeFilled:
			t.size--
		case leafNodeEmpty:
		}
		n.children[o] = newLeafNodeFilled(d)
		t.size++
		return
	}

	switch child.nodeType {
	case leafNodeEmpty:
		child = newInternalNode()
		n.children[o] = child
	case leafNodeFilled:
		child.subdivide()
		t.size += voxel.NumOctants - 1
	case internalNode:
	}
	t.setRecursive(child, level-1, voxel.ChildCenter(center, level, o), v, d)
}

// find descends to the node at exactly the voxel v without mutating
// anything. If the descent ends early at a leaf coarser than v, that leaf
// and its level are returned with exact false; an out-of-bounds or
// malformed voxel returns nil.
func (t *sparseTree) find(v voxel.Voxel) (found *node, level int, exact bool) {
	if v.Validate() != nil || !t.contains(v) {
		return nil, 0, false
	}

	n, lvl, center := t.root, t.rootLevel, voxel.Point{}
	for lvl > v.Level {
		if n.nodeType != internalNode {
			return n, lvl, false
		}
		o := voxel.OctantAt(center, v.Min)
		n = n.children[o]
		lvl--
		if lvl > v.Level {
			center = voxel.ChildCenter(center, lvl+1, o)
		}
	}
	return n, lvl, true
}

// At performs no growth and no subdivision; voxels outside the current
// bounds are simply absent.
func (t *sparseTree) At(v voxel.Voxel) (Data, bool) {
	n, _, exact := t.find(v)
	if !exact || n.nodeType != leafNodeFilled {
		return nil, false
	}
	return n.data, true
}

// AtCovering additionally reports data inherited from a coarser filled
// voxel: if the descent toward v ends at a filled leaf above v's level,
// that leaf covers v entirely and its data applies.
func (t *sparseTree) AtCovering(v voxel.Voxel) (voxel.Voxel, Data, bool) {
	n, lvl, exact := t.find(v)
	if n == nil || n.nodeType != leafNodeFilled {
		return voxel.Voxel{}, nil, false
	}
	if exact {
		return v, n.data, true
	}
	return voxel.Containing(v.Min, lvl), n.data, true
}

// Remove follows the same descent as At and replaces an exact hit with an
// empty leaf, returning the payload that was stored there.
func (t *sparseTree) Remove(v voxel.Voxel) (Data, bool) {
	if v.Validate() != nil || !t.contains(v) {
		return nil, false
	}
	return t.removeRecursive(t.root, t.rootLevel, voxel.Point{}, v)
}

// removeRecursive descends from n, an internal node at the given level and
// center, toward the voxel v. On the way back up, branches left with eight
// empty children are collapsed back into empty leaves when pruning is
// enabled. The root is never collapsed.
func (t *sparseTree) removeRecursive(n *node, level int, center voxel.Point, v voxel.Voxel) (Data, bool) {
	o := voxel.OctantAt(center, v.Min)
	child := n.children[o]

	if level-1 == v.Level {
		if child.nodeType != leafNodeFilled {
			return nil, false
		}
		n.children[o] = newLeafNodeEmpty()
		t.size--
		return child.data, true
	}

	if child.nodeType != internalNode {
		// Either unoccupied space or a coarser filled voxel covering v;
		// nothing is stored at exactly v.
		return nil, false
	}
	d, removed := t.removeRecursive(child, level-1, voxel.ChildCenter(center, level, o), v)
	if removed && t.prune && child.allEmpty() {
		n.children[o] = newLeafNodeEmpty()
	}
	return d, removed
}

func (t *sparseTree) Iterate(fn func(v voxel.Voxel, d Data) bool) {
	half := int64(1) << (t.rootLevel - 1)
	t.root.iterate(t.rootLevel, voxel.Point{X: -half, Y: -half, Z: -half}, fn)
}
