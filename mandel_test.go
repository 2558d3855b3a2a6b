package mandel

import "testing"

func TestIterationsImmediateDivergence(t *testing.T) {
	// Anything already outside the escape radius diverges at count 0.
	cases := []complex128{
		complex(3, 0),
		complex(0, 3),
		complex(-2.5, 2.5),
		complex(100, -100),
	}
	for _, c := range cases {
		if n := Iterations(c, 50); n != 0 {
			t.Errorf("Iterations(%v, 50) = %d, want 0", c, n)
		}
	}
}

func TestIterationsOriginIsMember(t *testing.T) {
	for _, maxIter := range []int{1, 10, 100, 1000} {
		if n := Iterations(0, maxIter); n != maxIter {
			t.Errorf("Iterations(0, %d) = %d, want %d", maxIter, n, maxIter)
		}
	}
}

func TestIterationsKnownMembers(t *testing.T) {
	// Points well inside the main cardioid and the period-2 bulb.
	for _, c := range []complex128{complex(-1, 0), complex(-0.1, 0.1), complex(0.25, 0)} {
		if n := Iterations(c, 200); n != 200 {
			t.Errorf("Iterations(%v, 200) = %d, want 200", c, n)
		}
	}
}

func TestIterationsMonotonicInCap(t *testing.T) {
	// Raising the cap evaluates the same trajectory further, so the
	// result can never decrease.
	points := []complex128{
		complex(0.3, 0.5),
		complex(-0.75, 0.1),
		complex(0.4, 0.4),
		complex(-1.25, 0.05),
	}
	for _, c := range points {
		prev := 0
		for maxIter := 1; maxIter <= 256; maxIter *= 2 {
			n := Iterations(c, maxIter)
			if n < prev {
				t.Fatalf("Iterations(%v, %d) = %d, below previous result %d", c, maxIter, n, prev)
			}
			if n > maxIter {
				t.Fatalf("Iterations(%v, %d) = %d, exceeds cap", c, maxIter, n)
			}
			prev = n
		}
	}
}
