package mandel

import (
	"fmt"
	"image"
	"math"
)

// ViewState describes one rendered viewport: a square region of the
// complex plane plus the image parameters to render it with. Values are
// immutable once rendered; deriving a zoomed view produces a new value.
//
// Axis convention: pixel (0,0) maps to Corner, increasing column increases
// the real part and increasing row increases the imaginary part. The
// inverse mapping (ZoomRegionRect) uses the same convention, so selection
// rectangles round-trip.
type ViewState struct {
	Corner     complex128 // complex coordinate of pixel (0,0)
	Size       float64    // edge length of the plotted square, > 0
	Resolution int        // pixels per image edge, >= 1
	Depth      int        // max iterations == number of color levels, >= 1
	Intensity  int        // peak channel brightness, 0..255
}

// Validate reports ErrInvalidParameter (wrapped with the offending field)
// for any out-of-range value.
func (v ViewState) Validate() error {
	if !(v.Size > 0) {
		return fmt.Errorf("%w: size %v", ErrInvalidParameter, v.Size)
	}
	if v.Resolution < 1 {
		return fmt.Errorf("%w: resolution %d", ErrInvalidParameter, v.Resolution)
	}
	if v.Depth < 1 {
		return fmt.Errorf("%w: depth %d", ErrInvalidParameter, v.Depth)
	}
	if v.Intensity < 0 || v.Intensity > 255 {
		return fmt.Errorf("%w: intensity %d", ErrInvalidParameter, v.Intensity)
	}
	return nil
}

// Scale returns the complex-plane span of a single pixel.
func (v ViewState) Scale() float64 {
	return v.Size / float64(v.Resolution)
}

// PixelToComplex maps a pixel coordinate to the complex coordinate at its
// origin corner. Points outside [0,Resolution) extrapolate linearly.
func (v ViewState) PixelToComplex(p image.Point) complex128 {
	s := v.Scale()
	return v.Corner + complex(float64(p.X)*s, float64(p.Y)*s)
}

// DeriveSubView converts a pixel-space selection rectangle into the view
// of the selected sub-region. The new corner is the complex coordinate of
// tl; the new size spans the larger rectangle edge, so any selection
// yields a square view (the interactive client already constrains its
// rubber band to a square). Resolution, depth and intensity carry over.
//
// A selection with zero or negative extent returns ErrDegenerateSelection
// and no state transition takes place.
func (v ViewState) DeriveSubView(tl, br image.Point) (ViewState, error) {
	if err := v.Validate(); err != nil {
		return ViewState{}, err
	}
	w, h := br.X-tl.X, br.Y-tl.Y
	if w <= 0 || h <= 0 {
		return ViewState{}, fmt.Errorf("%w: %dx%d px", ErrDegenerateSelection, w, h)
	}
	span := w
	if h > span {
		span = h
	}
	sub := v
	sub.Corner = v.PixelToComplex(tl)
	sub.Size = float64(span) * v.Scale()
	return sub, nil
}

// ZoomRegionRect is the inverse of DeriveSubView: it maps a complex-plane
// square (corner + edge length) back to the pixel rectangle it occupies in
// this view, for drawing a marker box without changing state. The result
// is not clipped; callers intersect it with the image bounds.
func (v ViewState) ZoomRegionRect(boxCorner complex128, boxSize float64) image.Rectangle {
	s := v.Scale()
	d := boxCorner - v.Corner
	x := int(math.Round(real(d) / s))
	y := int(math.Round(imag(d) / s))
	side := int(math.Round(boxSize / s))
	return image.Rect(x, y, x+side, y+side)
}

// CoordinateLabel formats the complex coordinate under pixel p for a
// status display, with decimal precision matched to the current zoom
// scale so that deeper zooms show more digits.
func (v ViewState) CoordinateLabel(p image.Point) string {
	prec := 0
	if s := v.Scale(); s > 0 {
		prec = int(math.Abs(math.Log10(s)))
	}
	c := v.PixelToComplex(p)
	return fmt.Sprintf("(%.*f%+.*fi)", prec, real(c), prec, imag(c))
}
