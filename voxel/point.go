package voxel

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Point is an integer position in world units.
type Point struct {
	X, Y, Z int64
}

// NewPoint is a convenience constructor for a point.
func NewPoint(x, y, z int64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Vector converts the point to a world-space r3.Vector.
func (p Point) Vector() r3.Vector {
	return r3.Vector{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Bounds returns the voxel's world-space bounds: the minimum corner and the
// exclusive maximum corner.
func (v Voxel) Bounds() (r3.Vector, r3.Vector) {
	w := float64(v.SideLength())
	min := v.Min.Vector()
	return min, min.Add(r3.Vector{X: w, Y: w, Z: w})
}

// Center returns the voxel's center in world space. Level zero voxels have
// half-integer centers, which is why this is float valued.
func (v Voxel) Center() r3.Vector {
	half := float64(v.SideLength()) / 2.
	return v.Min.Vector().Add(r3.Vector{X: half, Y: half, Z: half})
}
