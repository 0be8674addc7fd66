// Package voxel provides the integer coordinate math for axis-aligned voxels
// whose widths are powers of two.
//
// A voxel at level l is a cube of width 2^l whose minimum corner components
// are multiples of 2^l. Keeping positions on that lattice means every
// containment and octant test below is exact integer arithmetic, with no
// division and no rounding, at any supported depth.
package voxel

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxLevel bounds voxel and root levels so widths, half-widths and octant
// offsets stay representable in int64 world units.
const MaxLevel = 62

// Voxel identifies an axis-aligned cube of width 2^Level whose minimum
// corner sits at Min. The components of Min must be multiples of the width.
type Voxel struct {
	Min   Point
	Level int
}

// New is a convenience constructor for a voxel from its minimum corner
// coordinates and level.
func New(x, y, z int64, level int) Voxel {
	return Voxel{Min: Point{X: x, Y: y, Z: z}, Level: level}
}

// Containing returns the level `level` voxel that contains the point p.
func Containing(p Point, level int) Voxel {
	return Voxel{
		Min: Point{
			X: (p.X >> level) << level,
			Y: (p.Y >> level) << level,
			Z: (p.Z >> level) << level,
		},
		Level: level,
	}
}

// SideLength returns the voxel's width in world units.
func (v Voxel) SideLength() int64 {
	return 1 << v.Level
}

// Validate checks the voxel against the addressing contract: a level in
// [0, MaxLevel], corner components aligned to the width and within the
// representable coordinate range. Silently rounding a misaligned position
// would corrupt octant selection, so callers get an error instead.
func (v Voxel) Validate() error {
	if v.Level < 0 {
		return errors.Errorf("invalid voxel level (%d), must be non-negative", v.Level)
	}
	if v.Level > MaxLevel {
		return errors.Errorf("invalid voxel level (%d), must be at most %d", v.Level, MaxLevel)
	}
	w := v.SideLength()
	if v.Min.X%w != 0 || v.Min.Y%w != 0 || v.Min.Z%w != 0 {
		return errors.Errorf("voxel position %v is not aligned to its width (%d)", v.Min, w)
	}
	limit := int64(1) << MaxLevel
	if v.Min.X < -limit || v.Min.X >= limit ||
		v.Min.Y < -limit || v.Min.Y >= limit ||
		v.Min.Z < -limit || v.Min.Z >= limit {
		return errors.Errorf("voxel position %v is outside the representable range", v.Min)
	}
	return nil
}

// Contains reports whether w lies entirely inside v. A voxel contains
// itself.
func (v Voxel) Contains(w Voxel) bool {
	if w.Level > v.Level {
		return false
	}
	return w.Min.X>>v.Level == v.Min.X>>v.Level &&
		w.Min.Y>>v.Level == v.Min.Y>>v.Level &&
		w.Min.Z>>v.Level == v.Min.Z>>v.Level
}

func (v Voxel) String() string {
	return fmt.Sprintf("voxel %v at level %d", v.Min, v.Level)
}
