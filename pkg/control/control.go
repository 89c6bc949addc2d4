// Package control wraps the integer exposure controls a capture device
// exposes (gamma, brightness). Each Proxy caches the control's range and
// last-applied value so redundant writes never reach the hardware, and a
// control the device does not expose degrades to an inert proxy instead of
// erroring at every call site.
package control

import (
	"errors"

	"camview/internal/log"
)

// ErrAbsent is returned by a Device when the requested control is not
// exposed by the hardware.
var ErrAbsent = errors.New("control: not exposed by device")

// ID identifies a hardware control. Values are V4L2 control IDs.
type ID uint32

// Controls the viewer drives.
const (
	Brightness ID = 9963776 // V4L2_CID_BRIGHTNESS
	Gamma      ID = 9963792 // V4L2_CID_GAMMA
)

// Range holds the device-reported bounds for one control.
// Queried once per control; read-only for the session.
type Range struct {
	Min     int32
	Max     int32
	Step    int32
	Default int32
}

// Info is the result of a control query: the range plus the value the
// hardware currently holds.
type Info struct {
	Range
	Value int32
}

// Device is the control half of the capture hardware. Implemented by the
// V4L2 backend in production and by fakes in tests.
type Device interface {
	// QueryControl returns range and current value, or ErrAbsent (possibly
	// wrapped) when the hardware has no such control.
	QueryControl(id ID) (Info, error)

	// WriteControl applies value to the control.
	WriteControl(id ID, value int32) error
}

// Proxy tracks one hardware control. The cached value is authoritative:
// reads never go back to the device, and a failed write keeps the new
// cached value (failures are reported, not retried or rolled back).
type Proxy struct {
	dev     Device
	id      ID
	name    string
	present bool
	rng     Range
	current int32
}

// NewProxy queries the control once and returns a proxy for it. A nil
// device or a failed query yields an inert proxy whose mutating operations
// are all no-ops.
func NewProxy(dev Device, id ID, name string) *Proxy {
	p := &Proxy{dev: dev, id: id, name: name}
	if dev == nil {
		return p
	}

	info, err := dev.QueryControl(id)
	if err != nil {
		log.Warn("control unavailable", "control", name, "err", err)
		return p
	}

	p.present = true
	p.rng = info.Range
	p.current = info.Value
	return p
}

// Present reports whether the device exposes this control.
func (p *Proxy) Present() bool {
	return p.present
}

// Range returns the device-reported bounds. Zero value when absent.
func (p *Proxy) Range() Range {
	return p.rng
}

// Current returns the last applied value. It is cached, never re-queried.
func (p *Proxy) Current() int32 {
	return p.current
}

// Clamp bounds v into the control's [Min, Max]. When the control is
// absent, v passes through unchanged.
func (p *Proxy) Clamp(v int32) int32 {
	if !p.present {
		return v
	}
	if v < p.rng.Min {
		return p.rng.Min
	}
	if v > p.rng.Max {
		return p.rng.Max
	}
	return v
}

// Set clamps v and applies it. Writing the value already held is a no-op,
// so each actual change costs exactly one device write.
func (p *Proxy) Set(v int32) {
	if !p.present {
		return
	}

	v = p.Clamp(v)
	if v == p.current {
		return
	}
	p.current = v

	if err := p.dev.WriteControl(p.id, v); err != nil {
		log.Warn("control write failed", "control", p.name, "value", v, "err", err)
	}
}

// Reset applies the device default.
func (p *Proxy) Reset() {
	p.Set(p.rng.Default)
}

// SetMax applies the device maximum.
func (p *Proxy) SetMax() {
	p.Set(p.rng.Max)
}
