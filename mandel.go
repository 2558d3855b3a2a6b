// Package mandel implements an escape-time Mandelbrot renderer together
// with the view/navigation model that drives interactive zooming.
//
// The core is pure: a ViewState describes a square region of the complex
// plane plus image parameters, Renderer.Render turns it into a Grid of
// iteration counts, and a ColorMap turns counts into displayable colors.
// History tracks committed zooms so a viewer can step back.
package mandel

// Iterations returns the number of completed iterations of
//
//	z(n+1) = z(n)² + c, z(1) = c
//
// before |z| exceeds 2, capped at maxIterations. A return value equal to
// maxIterations means the trajectory stayed bounded, i.e. c is treated as
// a member of the set. The divergence test compares |z|² against 4 to
// avoid the square root. Values of c that already lie outside the escape
// radius return 0.
func Iterations(c complex128, maxIterations int) int {
	z := c
	for n := 0; n < maxIterations; n++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return n
		}
		z = z*z + c
	}
	return maxIterations
}
