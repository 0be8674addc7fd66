package voxeltree

import (
	"image/color"
)

// Data describes the payload stored at a filled voxel.
type Data interface {
	// HasColor returns whether or not this voxel is colored.
	HasColor() bool

	// RGB255 returns, if colored, the RGB components of the color.
	RGB255() (uint8, uint8, uint8)

	// Color returns the native color of the voxel.
	Color() color.Color

	// HasValue returns whether or not this voxel has a user data value
	// associated with it, such as a material or block identifier.
	HasValue() bool

	// Value returns the user data value, if it exists.
	Value() int
}

type basicData struct {
	hasColor bool
	c        color.NRGBA

	hasValue bool
	value    int
}

// NewBasicData returns a payload that marks a voxel occupied with no
// further attributes.
func NewBasicData() Data {
	return &basicData{}
}

// NewColoredData returns a payload carrying a color.
func NewColoredData(c color.NRGBA) Data {
	return &basicData{c: c, hasColor: true}
}

// NewValueData returns a payload carrying a user data value.
func NewValueData(v int) Data {
	return &basicData{value: v, hasValue: true}
}

func (bd *basicData) HasColor() bool {
	return bd.hasColor
}

func (bd *basicData) RGB255() (uint8, uint8, uint8) {
	return bd.c.R, bd.c.G, bd.c.B
}

func (bd *basicData) Color() color.Color {
	return &bd.c
}

func (bd *basicData) HasValue() bool {
	return bd.hasValue
}

func (bd *basicData) Value() int {
	return bd.value
}
