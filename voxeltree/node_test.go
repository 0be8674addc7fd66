package voxeltree

import (
	"testing"

	"go.viam.com/test"

	"github.com/voxelforge/voxeltree/voxel"
)

func TestNodeCreation(t *testing.T) {
	t.Run("create empty leaf node", func(t *testing.T) {
		n := newLeafNodeEmpty()

		test.That(t, n.nodeType, test.ShouldResemble, leafNodeEmpty)
		test.That(t, n.data, test.ShouldBeNil)
		test.That(t, n.children, test.ShouldBeNil)
	})

	t.Run("create filled leaf node", func(t *testing.T) {
		d := NewValueData(1)
		n := newLeafNodeFilled(d)

		test.That(t, n.nodeType, test.ShouldResemble, leafNodeFilled)
		test.That(t, n.data, test.ShouldResemble, d)
		test.That(t, n.children, test.ShouldBeNil)
	})

	t.Run("create internal node", func(t *testing.T) {
		n := newInternalNode()

		test.That(t, n.nodeType, test.ShouldResemble, internalNode)
		test.That(t, n.data, test.ShouldBeNil)
		test.That(t, len(n.children), test.ShouldEqual, voxel.NumOctants)
		for _, child := range n.children {
			test.That(t, child.nodeType, test.ShouldResemble, leafNodeEmpty)
		}
	})
}

func TestSubdivide(t *testing.T) {
	d := NewValueData(7)
	n := newLeafNodeFilled(d)
	n.subdivide()

	test.That(t, n.nodeType, test.ShouldResemble, internalNode)
	test.That(t, n.data, test.ShouldBeNil)
	test.That(t, len(n.children), test.ShouldEqual, voxel.NumOctants)
	for _, child := range n.children {
		test.That(t, child.nodeType, test.ShouldResemble, leafNodeFilled)
		test.That(t, child.data, test.ShouldResemble, d)
	}
	test.That(t, n.countFilled(), test.ShouldEqual, voxel.NumOctants)
}

func TestAllEmpty(t *testing.T) {
	n := newInternalNode()
	test.That(t, n.allEmpty(), test.ShouldBeTrue)

	n.children[3] = newLeafNodeFilled(NewBasicData())
	test.That(t, n.allEmpty(), test.ShouldBeFalse)

	n.children[3] = newInternalNode()
	test.That(t, n.allEmpty(), test.ShouldBeFalse)
}

func TestCountFilled(t *testing.T) {
	test.That(t, newLeafNodeEmpty().countFilled(), test.ShouldEqual, 0)
	test.That(t, newLeafNodeFilled(NewBasicData()).countFilled(), test.ShouldEqual, 1)

	n := newInternalNode()
	n.children[0] = newLeafNodeFilled(NewBasicData())
	n.children[5] = newLeafNodeFilled(NewBasicData())
	nested := newInternalNode()
	nested.children[7] = newLeafNodeFilled(NewBasicData())
	n.children[2] = nested
	test.That(t, n.countFilled(), test.ShouldEqual, 3)
}
