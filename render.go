package mandel

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
)

// Renderer computes the iteration grid of a view. The zero value renders
// per-pixel on the calling goroutine.
type Renderer struct {
	// BlockSize is the edge length of the coarse unit: every block of
	// BlockSize×BlockSize pixels shares the evaluation of its origin
	// pixel, which makes low-fidelity preview renders cheap. Values
	// below 2 render every pixel individually.
	BlockSize int

	// Workers fans independent block rows out to this many goroutines.
	// Rows write disjoint parts of the grid, so the only coordination
	// is the final join. Values below 2 render on the calling goroutine.
	Workers int

	// Progress, when non-nil, is called after each completed block row
	// with (completedRows, totalRows). With Workers > 1 it may be called
	// from multiple goroutines.
	Progress func(completedRows, totalRows int)
}

// Render computes the grid for view. It validates all parameters before
// touching any pixel and returns ErrInvalidParameter on bad input. The
// call blocks until the grid is complete or ctx is cancelled; a cancelled
// render returns ctx.Err() and its partial results are discarded.
func (r Renderer) Render(ctx context.Context, view ViewState) (*Grid, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}
	if r.BlockSize < 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidParameter, r.BlockSize)
	}
	if r.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidParameter, r.Workers)
	}

	block := r.BlockSize
	if block < 1 {
		block = 1
	}
	res := view.Resolution
	totalRows := (res + block - 1) / block
	grid := newGrid(res, view.Depth)

	var done atomic.Int64
	rowDone := func() {
		if r.Progress != nil {
			r.Progress(int(done.Add(1)), totalRows)
		}
	}

	if r.Workers <= 1 {
		for rowStart := 0; rowStart < res; rowStart += block {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			renderBlockRow(view, grid, rowStart, block)
			rowDone()
		}
		return grid, nil
	}

	rows := make(chan int)
	go func() {
		defer close(rows)
		for rowStart := 0; rowStart < res; rowStart += block {
			select {
			case rows <- rowStart:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < r.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rowStart := range rows {
				if ctx.Err() != nil {
					return
				}
				renderBlockRow(view, grid, rowStart, block)
				rowDone()
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// renderBlockRow fills one row of blocks. Blocks at the right and bottom
// edges are clipped if the resolution is not divisible by the block size.
func renderBlockRow(view ViewState, grid *Grid, rowStart, block int) {
	res := view.Resolution
	rowEnd := min(rowStart+block, res)
	for colStart := 0; colStart < res; colStart += block {
		n := Iterations(view.PixelToComplex(image.Pt(colStart, rowStart)), view.Depth)
		colEnd := min(colStart+block, res)
		for row := rowStart; row < rowEnd; row++ {
			for col := colStart; col < colEnd; col++ {
				grid.set(row, col, n)
			}
		}
	}
}
