package voxel

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestVoxelValidate(t *testing.T) {
	t.Run("aligned voxels are valid", func(t *testing.T) {
		test.That(t, New(0, 0, 0, 0).Validate(), test.ShouldBeNil)
		test.That(t, New(-1, 4, 7, 0).Validate(), test.ShouldBeNil)
		test.That(t, New(4, -8, 16, 2).Validate(), test.ShouldBeNil)
		test.That(t, New(-32, 0, 32, 5).Validate(), test.ShouldBeNil)
		test.That(t, New(0, 0, 0, MaxLevel).Validate(), test.ShouldBeNil)
	})

	t.Run("misaligned positions fail fast", func(t *testing.T) {
		test.That(t, New(1, 0, 0, 1).Validate(), test.ShouldNotBeNil)
		test.That(t, New(0, 2, 0, 2).Validate(), test.ShouldNotBeNil)
		test.That(t, New(4, 4, -3, 2).Validate(), test.ShouldNotBeNil)
		test.That(t, New(-2, 0, 0, 2).Validate(), test.ShouldNotBeNil)
	})

	t.Run("levels outside the supported range fail fast", func(t *testing.T) {
		test.That(t, Voxel{Level: -1}.Validate(), test.ShouldNotBeNil)
		test.That(t, Voxel{Level: MaxLevel + 1}.Validate(), test.ShouldNotBeNil)
	})
}

func TestContaining(t *testing.T) {
	test.That(t, Containing(NewPoint(5, -3, 0), 2), test.ShouldResemble, New(4, -4, 0, 2))
	test.That(t, Containing(NewPoint(-1, -4, 7), 3), test.ShouldResemble, New(-8, -8, 0, 3))
	test.That(t, Containing(NewPoint(4, 0, 0), 0), test.ShouldResemble, New(4, 0, 0, 0))
}

func TestContains(t *testing.T) {
	coarse := New(4, 0, -4, 2)

	test.That(t, coarse.Contains(coarse), test.ShouldBeTrue)
	test.That(t, coarse.Contains(New(4, 0, -4, 0)), test.ShouldBeTrue)
	test.That(t, coarse.Contains(New(7, 3, -1, 0)), test.ShouldBeTrue)
	test.That(t, coarse.Contains(New(6, 2, -4, 1)), test.ShouldBeTrue)

	test.That(t, coarse.Contains(New(8, 0, -4, 0)), test.ShouldBeFalse)
	test.That(t, coarse.Contains(New(4, 0, -8, 2)), test.ShouldBeFalse)
	test.That(t, coarse.Contains(New(0, 0, 0, 3)), test.ShouldBeFalse)
}

func TestWorldGeometry(t *testing.T) {
	v := New(-4, 0, 4, 2)

	test.That(t, v.SideLength(), test.ShouldEqual, 4)

	min, max := v.Bounds()
	test.That(t, min, test.ShouldResemble, r3.Vector{X: -4, Y: 0, Z: 4})
	test.That(t, max, test.ShouldResemble, r3.Vector{X: 0, Y: 4, Z: 8})
	test.That(t, v.Center(), test.ShouldResemble, r3.Vector{X: -2, Y: 2, Z: 6})

	// Unit voxels have half-integer centers.
	test.That(t, New(0, 0, 0, 0).Center(), test.ShouldResemble, r3.Vector{X: .5, Y: .5, Z: .5})
}
