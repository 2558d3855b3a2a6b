package mandel

import (
	"image"
	"image/color"
)

// Grid holds the iteration count of every pixel of a rendered view.
// Counts are in [0, depth]; a count equal to depth means the pixel's
// coordinate is treated as a member of the set.
type Grid struct {
	resolution int
	depth      int
	counts     []int
}

func newGrid(resolution, depth int) *Grid {
	return &Grid{
		resolution: resolution,
		depth:      depth,
		counts:     make([]int, resolution*resolution),
	}
}

// Resolution returns the grid's edge length in pixels.
func (g *Grid) Resolution() int {
	return g.resolution
}

// Depth returns the iteration cap the grid was rendered with.
func (g *Grid) Depth() int {
	return g.depth
}

// At returns the iteration count at (row, col).
func (g *Grid) At(row, col int) int {
	return g.counts[row*g.resolution+col]
}

func (g *Grid) set(row, col, n int) {
	g.counts[row*g.resolution+col] = n
}

// RGBA converts the grid into an image using the given palette. Pixel
// (col, row) receives the color of count At(row, col).
func (g *Grid) RGBA(cm *ColorMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.resolution, g.resolution))
	for row := 0; row < g.resolution; row++ {
		for col := 0; col < g.resolution; col++ {
			img.SetRGBA(col, row, cm.Color(g.At(row, col)))
		}
	}
	return img
}

// DrawRegionBox draws the one-pixel border of box onto img, clipped to the
// image bounds. Used to mark a prospective zoom region on a rendered frame.
func DrawRegionBox(img *image.RGBA, box image.Rectangle, c color.RGBA) {
	bounds := img.Bounds()
	clip := box.Intersect(bounds)
	if clip.Empty() {
		return
	}
	top, bottom := box.Min.Y, box.Max.Y-1
	for x := clip.Min.X; x < clip.Max.X; x++ {
		if top >= bounds.Min.Y && top < bounds.Max.Y {
			img.SetRGBA(x, top, c)
		}
		if bottom >= bounds.Min.Y && bottom < bounds.Max.Y {
			img.SetRGBA(x, bottom, c)
		}
	}
	left, right := box.Min.X, box.Max.X-1
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		if left >= bounds.Min.X && left < bounds.Max.X {
			img.SetRGBA(left, y, c)
		}
		if right >= bounds.Min.X && right < bounds.Max.X {
			img.SetRGBA(right, y, c)
		}
	}
}
