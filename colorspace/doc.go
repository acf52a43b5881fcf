// Package colorspace provides color space conversions for grade.
//
// This package contains the conversions the engine and its inspection
// tools rely on:
//   - sRGB transfer function (EOTF/OETF, piecewise IEC 61966-2-1)
//   - HSV and HSL (hexcone models)
//   - CIE XYZ and CIE L*a*b* (D65 reference white)
//   - YCbCr (ITU-R BT.601, full range)
//
// Scalar conversions operate on single components or single pixels.
// ConvertRaster walks a raw RGBA byte buffer and produces one point per
// pixel, which is the feed used by external scatter visualizations.
//
// All conversions are pure functions of their inputs. None of them
// allocate except ConvertRaster, which allocates its result slice.
package colorspace
