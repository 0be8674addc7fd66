package voxeltree

import (
	"image/color"
	"testing"

	"go.viam.com/test"
)

func TestDataVariants(t *testing.T) {
	d := NewBasicData()
	test.That(t, d.HasColor(), test.ShouldBeFalse)
	test.That(t, d.HasValue(), test.ShouldBeFalse)

	d = NewValueData(21)
	test.That(t, d.HasValue(), test.ShouldBeTrue)
	test.That(t, d.Value(), test.ShouldEqual, 21)
	test.That(t, d.HasColor(), test.ShouldBeFalse)

	d = NewColoredData(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	test.That(t, d.HasColor(), test.ShouldBeTrue)
	r, g, b := d.RGB255()
	test.That(t, r, test.ShouldEqual, 10)
	test.That(t, g, test.ShouldEqual, 20)
	test.That(t, b, test.ShouldEqual, 30)
	test.That(t, d.HasValue(), test.ShouldBeFalse)
}
