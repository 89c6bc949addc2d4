// Package capture pulls frames from a local video device and decodes them
// to interleaved RGB via OpenCV (gocv). It is the hardware half of the
// frame pipeline; presentation and exposure feedback live elsewhere.
package capture

import "errors"

// Sentinel errors for the capture loop. Both are recoverable per-frame:
// the caller logs, skips the iteration, and tries again on the next one.
var (
	// ErrNoDevice is returned when no capture device opens during a scan.
	ErrNoDevice = errors.New("capture: no camera found")

	// ErrRead is returned when the device delivered no frame.
	ErrRead = errors.New("capture: read failed")

	// ErrDecode is returned when the delivered frame decoded to nothing.
	ErrDecode = errors.New("capture: empty frame")
)

// Frame is one decoded capture: a Width x Height grid of RGB triples.
// Pix is interleaved R,G,B with len == Width*Height*3. Frames are owned by
// the pipeline from decode until blit and never retained across iterations.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// Uniform returns a frame filled with a single RGB color. Used by the
// feedback tests and benchmarks; production frames come from a Source.
func Uniform(width, height int, r, g, b byte) *Frame {
	pix := make([]byte, width*height*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
	}
	return &Frame{Width: width, Height: height, Pix: pix}
}
