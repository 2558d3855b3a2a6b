package mandel

import (
	"errors"
	"image"
	"math"
	"testing"
)

func testView() ViewState {
	return ViewState{
		Corner:     complex(-2, -2),
		Size:       4,
		Resolution: 500,
		Depth:      200,
		Intensity:  200,
	}
}

func TestViewStateValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ViewState)
		ok     bool
	}{
		{"valid", func(*ViewState) {}, true},
		{"zero size", func(v *ViewState) { v.Size = 0 }, false},
		{"negative size", func(v *ViewState) { v.Size = -1 }, false},
		{"zero resolution", func(v *ViewState) { v.Resolution = 0 }, false},
		{"zero depth", func(v *ViewState) { v.Depth = 0 }, false},
		{"negative intensity", func(v *ViewState) { v.Intensity = -1 }, false},
		{"intensity above 255", func(v *ViewState) { v.Intensity = 256 }, false},
		{"intensity bounds", func(v *ViewState) { v.Intensity = 0 }, true},
	}
	for _, tc := range cases {
		v := testView()
		tc.mutate(&v)
		err := v.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidParameter", tc.name, err)
		}
	}
}

func TestPixelToComplex(t *testing.T) {
	v := testView()
	v.Resolution = 4 // scale of exactly 1

	cases := []struct {
		p    image.Point
		want complex128
	}{
		{image.Pt(0, 0), complex(-2, -2)},
		{image.Pt(2, 2), complex(0, 0)},
		{image.Pt(4, 0), complex(2, -2)},
		{image.Pt(1, 3), complex(-1, 1)},
	}
	for _, tc := range cases {
		if got := v.PixelToComplex(tc.p); got != tc.want {
			t.Errorf("PixelToComplex(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestDeriveSubViewRoundTrip(t *testing.T) {
	v := testView()
	rects := []image.Rectangle{
		image.Rect(10, 20, 30, 40),
		image.Rect(0, 0, 500, 500),
		image.Rect(123, 77, 124, 78),
		image.Rect(450, 450, 499, 499),
	}
	for _, rect := range rects {
		sub, err := v.DeriveSubView(rect.Min, rect.Max)
		if err != nil {
			t.Fatalf("DeriveSubView(%v): %v", rect, err)
		}
		got := v.ZoomRegionRect(sub.Corner, sub.Size)
		if dx := got.Min.X - rect.Min.X; dx < -1 || dx > 1 {
			t.Errorf("rect %v round-tripped to %v", rect, got)
		}
		if dy := got.Min.Y - rect.Min.Y; dy < -1 || dy > 1 {
			t.Errorf("rect %v round-tripped to %v", rect, got)
		}
		if d := got.Dx() - rect.Dx(); d < -1 || d > 1 {
			t.Errorf("rect %v round-tripped to %v", rect, got)
		}
	}
}

func TestDeriveSubViewSquareFromRectangle(t *testing.T) {
	v := testView()
	sub, err := v.DeriveSubView(image.Pt(100, 100), image.Pt(150, 120))
	if err != nil {
		t.Fatalf("DeriveSubView: %v", err)
	}
	want := 50 * v.Scale() // larger edge wins
	if math.Abs(sub.Size-want) > 1e-12 {
		t.Errorf("sub size = %v, want %v", sub.Size, want)
	}
	if sub.Corner != v.PixelToComplex(image.Pt(100, 100)) {
		t.Errorf("sub corner = %v, want mapping of selection top-left", sub.Corner)
	}
	if sub.Resolution != v.Resolution || sub.Depth != v.Depth || sub.Intensity != v.Intensity {
		t.Errorf("image parameters changed: %+v", sub)
	}
}

func TestDeriveSubViewDegenerate(t *testing.T) {
	v := testView()
	cases := []struct {
		tl, br image.Point
	}{
		{image.Pt(10, 10), image.Pt(10, 40)}, // zero width
		{image.Pt(10, 10), image.Pt(40, 10)}, // zero height
		{image.Pt(10, 10), image.Pt(10, 10)}, // zero area
		{image.Pt(40, 40), image.Pt(10, 10)}, // inverted
	}
	for _, tc := range cases {
		if _, err := v.DeriveSubView(tc.tl, tc.br); !errors.Is(err, ErrDegenerateSelection) {
			t.Errorf("DeriveSubView(%v, %v) err = %v, want ErrDegenerateSelection", tc.tl, tc.br, err)
		}
	}
}

func TestDeriveSubViewRejectsInvalidView(t *testing.T) {
	v := testView()
	v.Resolution = 0
	if _, err := v.DeriveSubView(image.Pt(0, 0), image.Pt(10, 10)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestZoomRegionRect(t *testing.T) {
	v := testView()
	v.Resolution = 4 // scale of exactly 1
	got := v.ZoomRegionRect(complex(-1, 0), 2)
	want := image.Rect(1, 2, 3, 4)
	if got != want {
		t.Errorf("ZoomRegionRect = %v, want %v", got, want)
	}
}

func TestCoordinateLabel(t *testing.T) {
	v := testView() // scale 0.008 -> 2 decimals
	if got, want := v.CoordinateLabel(image.Pt(0, 0)), "(-2.00-2.00i)"; got != want {
		t.Errorf("CoordinateLabel = %q, want %q", got, want)
	}
	if got, want := v.CoordinateLabel(image.Pt(250, 250)), "(0.00+0.00i)"; got != want {
		t.Errorf("CoordinateLabel = %q, want %q", got, want)
	}
}
