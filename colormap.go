package mandel

import (
	"fmt"
	"image/color"
	"math"
)

// ColorMap maps iteration counts in [0, depth] to display colors. Counts
// below depth walk a gradient from blue through green to red, traced along
// quarter circles so neighbouring channels trade brightness smoothly; the
// peak channel value is the configured intensity. A count equal to depth
// marks a point inside the set and always maps to black, independent of
// intensity.
type ColorMap struct {
	depth  int
	colors []color.RGBA
}

// NewColorMap builds the palette for the given depth and intensity.
// Depth must be at least 1 and intensity within [0, 255].
func NewColorMap(depth, intensity int) (*ColorMap, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth %d", ErrInvalidParameter, depth)
	}
	if intensity < 0 || intensity > 255 {
		return nil, fmt.Errorf("%w: intensity %d", ErrInvalidParameter, intensity)
	}

	colors := make([]color.RGBA, depth+1)
	tRange := depth / 2
	bRange := depth - tRange

	// Blue to green
	for i := 0; i < tRange; i++ {
		alpha := float64(i) / float64(tRange) * 0.5 * math.Pi
		colors[i] = color.RGBA{
			G: uint8(float64(intensity) * math.Sin(alpha)),
			B: uint8(float64(intensity) * math.Cos(alpha)),
			A: 255,
		}
	}

	// Green to red
	for i := 0; i < bRange; i++ {
		alpha := float64(i) / float64(bRange) * 0.5 * math.Pi
		colors[tRange+i] = color.RGBA{
			R: uint8(float64(intensity) * math.Sin(alpha)),
			G: uint8(float64(intensity) * math.Cos(alpha)),
			A: 255,
		}
	}

	// Interior color for count == depth
	colors[depth] = color.RGBA{A: 255}

	return &ColorMap{depth: depth, colors: colors}, nil
}

// Depth returns the iteration depth the palette was built for.
func (cm *ColorMap) Depth() int {
	return cm.depth
}

// Color returns the color for iteration count n. Counts outside [0, depth]
// are clamped to the nearest palette entry.
func (cm *ColorMap) Color(n int) color.RGBA {
	if n < 0 {
		n = 0
	}
	if n > cm.depth {
		n = cm.depth
	}
	return cm.colors[n]
}
