package mandel

import "math"

// Region is an axis-aligned rectangle in the complex plane, used to name
// interesting parts of the set. Views are square, so View centers the
// region inside a square spanning its larger edge.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// View builds the ViewState that frames this region at the given image
// parameters.
func (r Region) View(resolution, depth, intensity int) ViewState {
	size := math.Max(r.Xmax-r.Xmin, r.Ymax-r.Ymin)
	cx := (r.Xmin + r.Xmax) / 2
	cy := (r.Ymin + r.Ymax) / 2
	return ViewState{
		Corner:     complex(cx-size/2, cy-size/2),
		Size:       size,
		Resolution: resolution,
		Depth:      depth,
		Intensity:  intensity,
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// The full set with some margin on all sides
	FullSet = Region{
		Xmin: -2.0,
		Xmax: 2.0,
		Ymin: -2.0,
		Ymax: 2.0,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmarks maps region names accepted on the command line to their
// definitions.
var Landmarks = map[string]Region{
	"full":       FullSet,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}
