package voxel

// Key returns the voxel's index on a z-order curve over the voxels of its
// level: the Morton interleave of its grid coordinates (minimum corner
// divided by width), zig-zag encoded to fold negatives in. Keys are unique
// among voxels of a single level whose grid coordinates lie within 2^20 of
// the origin; consumers indexing beyond that should key on the Voxel value
// itself.
func (v Voxel) Key() uint64 {
	gx := zigzag(v.Min.X >> v.Level)
	gy := zigzag(v.Min.Y >> v.Level)
	gz := zigzag(v.Min.Z >> v.Level)
	return spread3(gx) | spread3(gy)<<1 | spread3(gz)<<2
}

// zigzag maps signed integers to unsigned ones with small magnitudes
// staying small: 0, -1, 1, -2, 2, ... become 0, 1, 2, 3, 4, ...
func zigzag(x int64) uint64 {
	return uint64((x << 1) ^ (x >> 63))
}

// spread3 spaces the low 21 bits of v three apart so three coordinates can
// be interleaved into one word.
func spread3(v uint64) uint64 {
	v &= 0x1FFFFF
	v = (v | v<<32) & 0x1F00000000FFFF
	v = (v | v<<16) & 0x1F0000FF0000FF
	v = (v | v<<8) & 0x100F00F00F00F00F
	v = (v | v<<4) & 0x10C30C30C30C30C3
	v = (v | v<<2) & 0x1249249249249249
	return v
}
