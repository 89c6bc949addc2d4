//go:build !linux

package control

// V4L2 is unavailable off Linux; the viewer still runs, with every
// hardware control reported absent and the proxies inert.
type V4L2 struct{}

// OpenV4L2 always fails on non-Linux hosts.
func OpenV4L2(path string) (*V4L2, error) {
	return nil, ErrAbsent
}

// QueryControl implements Device.
func (d *V4L2) QueryControl(id ID) (Info, error) {
	return Info{}, ErrAbsent
}

// WriteControl implements Device.
func (d *V4L2) WriteControl(id ID, value int32) error {
	return ErrAbsent
}

// Close implements the capture teardown contract.
func (d *V4L2) Close() error {
	return nil
}
