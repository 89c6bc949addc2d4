package exposure

import (
	"math"

	"camview/pkg/capture"
)

// srgbToLinear maps an 8-bit sRGB channel value to linear light:
// the linear segment below 0.04045, the 2.4-power curve above it.
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		v := float64(i) / 255.0
		if v < 0.04045 {
			srgbToLinear[i] = v / 12.92
		} else {
			srgbToLinear[i] = math.Pow((v+0.055)/1.055, 2.4)
		}
	}
}

// Lightness returns the CIE L* perceptual lightness of a frame: relative
// luminance (Rec. 709 weights over linearized channels) averaged across
// all pixels, then pushed through the L* curve. Roughly 0 for black,
// 100 for white; mid-gray (128,128,128) lands near 53.6.
func Lightness(f *capture.Frame) float64 {
	pix := f.Pix
	var sum float64
	for i := 0; i+2 < len(pix); i += 3 {
		sum += 0.2126*srgbToLinear[pix[i]] +
			0.7152*srgbToLinear[pix[i+1]] +
			0.0722*srgbToLinear[pix[i+2]]
	}

	y := sum / float64(f.Width*f.Height)

	if y <= 0.008856 {
		return y * 903.3
	}
	return 116*math.Cbrt(y) - 16
}
