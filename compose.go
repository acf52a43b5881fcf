package grade

// Compose folds a sequence of affine transforms into a single
// transform. The input order is application order: Compose(a, b, c)
// returns the transform that applies a first, then b, then c.
//
// An empty sequence composes to the identity. Composition is
// associative: the composed transform applied to any pixel matches
// sequential application of each input within 1e-6 before clamping.
func Compose(transforms ...Affine) Affine {
	out := Identity()
	for _, t := range transforms {
		out = t.Multiply(out)
	}
	return out
}
