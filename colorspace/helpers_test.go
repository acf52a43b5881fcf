package colorspace

import "testing"

// absDiff returns |a-b| for tolerance checks.
func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// checkClose fails the test when got is not within tol of want.
func checkClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if absDiff(got, want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tol)
	}
}
