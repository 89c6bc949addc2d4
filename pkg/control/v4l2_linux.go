//go:build linux

package control

import (
	"fmt"

	"github.com/vladimirvivien/go4vl/device"
	"github.com/vladimirvivien/go4vl/v4l2"
)

// V4L2 implements Device over a dedicated fd on the camera's device node.
// The streaming fd belongs to the capture side; V4L2 allows control ioctls
// on a second open of the same node.
type V4L2 struct {
	dev *device.Device
}

// OpenV4L2 opens path (e.g. /dev/video0) for control access only.
func OpenV4L2(path string) (*V4L2, error) {
	dev, err := device.Open(path)
	if err != nil {
		return nil, fmt.Errorf("control: open %s: %w", path, err)
	}
	return &V4L2{dev: dev}, nil
}

// QueryControl implements Device.
func (d *V4L2) QueryControl(id ID) (Info, error) {
	ctrl, err := v4l2.GetControl(d.dev.Fd(), v4l2.CtrlID(id))
	if err != nil {
		return Info{}, fmt.Errorf("control: query %d: %w", id, err)
	}
	return Info{
		Range: Range{
			Min:     ctrl.Minimum,
			Max:     ctrl.Maximum,
			Step:    ctrl.Step,
			Default: ctrl.Default,
		},
		Value: ctrl.Value,
	}, nil
}

// WriteControl implements Device.
func (d *V4L2) WriteControl(id ID, value int32) error {
	if err := d.dev.SetControlValue(v4l2.CtrlID(id), value); err != nil {
		return fmt.Errorf("control: write %d=%d: %w", id, value, err)
	}
	return nil
}

// Close releases the control fd.
func (d *V4L2) Close() error {
	return d.dev.Close()
}
