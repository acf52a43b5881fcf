package grade

import "testing"

// absf returns |v| for tolerance checks.
func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// pixelClose reports whether two pixels match channel-wise within tol.
func pixelClose(a, b Pixel, tol float64) bool {
	return absf(a.R-b.R) <= tol && absf(a.G-b.G) <= tol && absf(a.B-b.B) <= tol
}

// checkPixel fails the test when got is not within tol of want.
func checkPixel(t *testing.T, name string, got, want Pixel, tol float64) {
	t.Helper()
	if !pixelClose(got, want, tol) {
		t.Errorf("%s = %+v, want %+v (tolerance %v)", name, got, want, tol)
	}
}

// newTestRaster creates a raster filled with one RGBA color.
func newTestRaster(w, h int, red, green, blue, alpha uint8) *Raster {
	r := NewRaster(w, h)
	r.Fill(red, green, blue, alpha)
	return r
}
