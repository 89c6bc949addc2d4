package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	"camview/internal/log"
)

// Source wraps a gocv VideoCapture and reuses its Mats across reads so the
// steady-state loop does not allocate per frame.
type Source struct {
	cam    *gocv.VideoCapture
	index  int
	raw    gocv.Mat
	rgb    gocv.Mat
	mirror bool
	width  int
	height int
}

// Open opens the capture device at index.
func Open(index int) (*Source, error) {
	cam, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("capture: open device %d: %w", index, err)
	}

	s := &Source{
		cam:    cam,
		index:  index,
		raw:    gocv.NewMat(),
		rgb:    gocv.NewMat(),
		width:  int(cam.Get(gocv.VideoCaptureFrameWidth)),
		height: int(cam.Get(gocv.VideoCaptureFrameHeight)),
	}
	return s, nil
}

// Scan probes device indices 0..max-1 and returns the first that opens.
func Scan(max int) (*Source, error) {
	for i := 0; i < max; i++ {
		s, err := Open(i)
		if err == nil {
			return s, nil
		}
		log.Debug("device index did not open", "index", i, "err", err)
	}
	return nil, ErrNoDevice
}

// RequestFrameRate asks the driver for fps. The request is best-effort:
// a driver that ignores it is logged, not treated as an error.
func (s *Source) RequestFrameRate(fps int) {
	s.cam.Set(gocv.VideoCaptureFPS, float64(fps))

	if got := int(s.cam.Get(gocv.VideoCaptureFPS)); got != fps {
		log.Warn("driver ignored frame rate request", "requested", fps, "applied", got)
	}
}

// Resolution returns the native capture size queried at open time.
func (s *Source) Resolution() (width, height int) {
	return s.width, s.height
}

// DevicePath returns the V4L2 node backing this capture index, for the
// control fd to open alongside the stream.
func (s *Source) DevicePath() string {
	return fmt.Sprintf("/dev/video%d", s.index)
}

// SetMirror enables or disables the horizontal flip applied after decode.
func (s *Source) SetMirror(m bool) {
	s.mirror = m
}

// Mirror reports whether frames are flipped horizontally.
func (s *Source) Mirror() bool {
	return s.mirror
}

// NextFrame blocks for the device's next frame and decodes it to RGB.
func (s *Source) NextFrame() (*Frame, error) {
	if ok := s.cam.Read(&s.raw); !ok {
		return nil, ErrRead
	}
	if s.raw.Empty() {
		return nil, ErrDecode
	}

	if s.mirror {
		gocv.Flip(s.raw, &s.raw, 1)
	}

	gocv.CvtColor(s.raw, &s.rgb, gocv.ColorBGRToRGB)

	return &Frame{
		Width:  s.rgb.Cols(),
		Height: s.rgb.Rows(),
		Pix:    s.rgb.ToBytes(),
	}, nil
}

// Close releases the device and the reusable Mats.
func (s *Source) Close() error {
	s.raw.Close()
	s.rgb.Close()
	return s.cam.Close()
}
