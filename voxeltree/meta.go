package voxeltree

import (
	"math"

	"github.com/voxelforge/voxeltree/voxel"
)

// MetaData summarizes what has been stored in a tree: the world-space
// bounds of every voxel ever set and whether any payload carried color or
// value data. Bounds do not shrink when voxels are removed.
type MetaData struct {
	HasColor bool
	HasValue bool

	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewMetaData creates a new metadata struct.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.MaxFloat64, MaxX: -math.MaxFloat64,
		MinY: math.MaxFloat64, MaxY: -math.MaxFloat64,
		MinZ: math.MaxFloat64, MaxZ: -math.MaxFloat64,
	}
}

// Merge folds the world-space bounds of voxel v and the properties of its
// data into the metadata.
func (meta *MetaData) Merge(v voxel.Voxel, d Data) {
	if d != nil {
		if d.HasColor() {
			meta.HasColor = true
		}
		if d.HasValue() {
			meta.HasValue = true
		}
	}

	min, max := v.Bounds()
	meta.MinX = math.Min(meta.MinX, min.X)
	meta.MinY = math.Min(meta.MinY, min.Y)
	meta.MinZ = math.Min(meta.MinZ, min.Z)
	meta.MaxX = math.Max(meta.MaxX, max.X)
	meta.MaxY = math.Max(meta.MaxY, max.Y)
	meta.MaxZ = math.Max(meta.MaxZ, max.Z)
}
