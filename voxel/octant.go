package voxel

// NumOctants is the number of children of a subdivided cube.
const NumOctants = 8

// Octant indexes one of the eight children of a subdivided cube. Bit 2
// selects the high x half, bit 1 the high y half and bit 0 the high z half,
// so octant 0 touches the cube's minimum corner and octant 7 its maximum.
type Octant uint8

const (
	highX = Octant(4)
	highY = Octant(2)
	highZ = Octant(1)
)

// Mirror returns the octant diagonally opposite across the cube's center.
func (o Octant) Mirror() Octant {
	return o ^ (NumOctants - 1)
}

// OctantAt returns the octant of a cube centered at center that holds a box
// with minimum corner min. The box must be aligned so it does not straddle
// the center plane on any axis, which holds for any voxel finer than the
// cube; a single sign test per axis then places it exactly.
func OctantAt(center, min Point) Octant {
	var o Octant
	if min.X >= center.X {
		o |= highX
	}
	if min.Y >= center.Y {
		o |= highY
	}
	if min.Z >= center.Z {
		o |= highZ
	}
	return o
}

// ChildCenter returns the center of octant o of a cube with the given
// center and level. The child is centered within its octant, offset by a
// quarter width on each axis. Only valid for level >= 2, where the offset
// is still a whole number of units; callers never need the center of a
// level zero node since descent stops before computing it.
func ChildCenter(center Point, level int, o Octant) Point {
	off := int64(1) << (level - 2)
	return center.Add(Point{
		X: octantSign(o&highX != 0, off),
		Y: octantSign(o&highY != 0, off),
		Z: octantSign(o&highZ != 0, off),
	})
}

// OctantMin returns the minimum corner of octant o of a cube with the given
// minimum corner and level.
func OctantMin(min Point, level int, o Octant) Point {
	w := int64(1) << (level - 1)
	var p Point
	if o&highX != 0 {
		p.X = w
	}
	if o&highY != 0 {
		p.Y = w
	}
	if o&highZ != 0 {
		p.Z = w
	}
	return min.Add(p)
}

func octantSign(high bool, off int64) int64 {
	if high {
		return off
	}
	return -off
}
