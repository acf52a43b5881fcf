package colorspace

// RGBToYCbCr converts 8-bit RGB to full-range YCbCr (ITU-R BT.601).
// Luma Y is in [0,255]; the chroma planes Cb and Cr are centered on 128.
// Results are returned unrounded so downstream consumers keep precision.
func RGBToYCbCr(r, g, b uint8) (y, cb, cr float64) {
	rf := float64(r)
	gf := float64(g)
	bf := float64(b)

	y = 0.299*rf + 0.587*gf + 0.114*bf
	cb = 128 - 0.168736*rf - 0.331264*gf + 0.5*bf
	cr = 128 + 0.5*rf - 0.418688*gf - 0.081312*bf
	return y, cb, cr
}
