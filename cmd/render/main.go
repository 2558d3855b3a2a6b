// render is the offline exporter: it renders a square region of the
// Mandelbrot set and saves it as a PNG or BMP file. The region is given
// either by corner and size or by one of the named landmark regions.
package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	mandel "github.com/marben/mandelzoom"
)

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

func mainCmd() *cobra.Command {
	var (
		re, im, size                 float64
		landmark                     string
		resolution, depth, intensity int
		block, workers               int
		out                          string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a region of the Mandelbrot set to an image file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			view := mandel.ViewState{
				Corner:     complex(re, im),
				Size:       size,
				Resolution: resolution,
				Depth:      depth,
				Intensity:  intensity,
			}
			if landmark != "" {
				region, ok := mandel.Landmarks[landmark]
				if !ok {
					return fmt.Errorf("unknown landmark %q (have: %s)", landmark, strings.Join(landmarkNames(), ", "))
				}
				view = region.View(resolution, depth, intensity)
			}

			renderer := mandel.Renderer{BlockSize: block, Workers: workers}
			grid, err := renderer.Render(cmd.Context(), view)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			cm, err := mandel.NewColorMap(view.Depth, view.Intensity)
			if err != nil {
				return fmt.Errorf("color map: %w", err)
			}

			img := grid.RGBA(cm)
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()

			switch ext := filepath.Ext(out); ext {
			case ".bmp":
				err = bmp.Encode(f, img)
			case ".png":
				err = png.Encode(f, img)
			default:
				return fmt.Errorf("unsupported output format %q, want .png or .bmp", ext)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", out, err)
			}

			log.Printf("saved %q: %dx%d pixels, depth %d", out, view.Resolution, view.Resolution, view.Depth)
			return nil
		},
	}

	cmd.Flags().Float64Var(&re, "re", -2, "real part of the view corner")
	cmd.Flags().Float64Var(&im, "im", -2, "imaginary part of the view corner")
	cmd.Flags().Float64Var(&size, "size", 4, "edge length of the plotted square")
	cmd.Flags().StringVar(&landmark, "landmark", "", "named region overriding corner and size ("+strings.Join(landmarkNames(), ", ")+")")
	cmd.Flags().IntVar(&resolution, "resolution", 1000, "image edge length in pixels")
	cmd.Flags().IntVar(&depth, "depth", 200, "max iterations / color levels")
	cmd.Flags().IntVar(&intensity, "intensity", 200, "peak channel brightness, 0-255")
	cmd.Flags().IntVar(&block, "block", 0, "coarse unit size in pixels for fast previews")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "render goroutines")
	cmd.Flags().StringVarP(&out, "out", "o", "mandel.png", "output file (.png or .bmp)")

	return cmd
}

func landmarkNames() []string {
	names := make([]string, 0, len(mandel.Landmarks))
	for name := range mandel.Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
