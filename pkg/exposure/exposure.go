// Package exposure decides, once per frame, whether and how the gamma and
// brightness hardware controls move. Manual mode applies direct user
// input; Auto mode runs a bang-bang feedback loop on the perceptual
// lightness of each decoded frame.
package exposure

import (
	"math"

	"camview/pkg/capture"
	"camview/pkg/control"
)

// Mode is the exposure control state. Exactly one mode is active at a
// time; transitions reset both controls to device defaults first.
type Mode int

const (
	// Manual applies user key input to gamma directly.
	Manual Mode = iota
	// Auto derives a gamma adjustment from measured lightness each frame.
	Auto
)

// Feedback constants. The single-unit step and wide dead-band are
// intentional: there is no readback of the brightness a gamma change
// produces, so the loop stays slow rather than oscillating.
const (
	// TargetLightness is the L* value Auto mode steers toward.
	TargetLightness = 15.0

	// DeadBand is the tolerance around the target inside which gamma
	// holds steady.
	DeadBand = 10.0
)

// Controller owns the mode state machine and both control proxies.
type Controller struct {
	gamma      *control.Proxy
	brightness *control.Proxy

	mode       Mode
	fullbright bool  // meaningful only in Manual
	manual     int32 // stored manual gamma, meaningful only in Manual
}

// New returns a controller in Manual mode with the gamma proxy's current
// value as the stored manual setting.
func New(gamma, brightness *control.Proxy) *Controller {
	return &Controller{
		gamma:      gamma,
		brightness: brightness,
		mode:       Manual,
		manual:     gamma.Current(),
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Auto reports whether the feedback loop is driving gamma.
func (c *Controller) Auto() bool {
	return c.mode == Auto
}

// Fullbright reports whether manual full-bright is engaged.
func (c *Controller) Fullbright() bool {
	return c.mode == Manual && c.fullbright
}

// Gamma returns the gamma value currently applied to the hardware.
func (c *Controller) Gamma() int32 {
	return c.gamma.Current()
}

// ToggleMode resets both controls to device defaults, then flips
// Manual<->Auto. Entering Manual captures the just-reset gamma value as
// the stored manual setting.
func (c *Controller) ToggleMode() {
	c.gamma.Reset()
	c.brightness.Reset()

	if c.mode == Manual {
		c.mode = Auto
		return
	}
	c.mode = Manual
	c.fullbright = false
	c.manual = c.gamma.Current()
}

// ToggleFullbright flips full-bright. Engaging drives both controls to
// their maxima; disengaging restores the stored manual gamma and resets
// brightness to default. Ignored outside Manual.
func (c *Controller) ToggleFullbright() {
	if c.mode != Manual {
		return
	}

	c.fullbright = !c.fullbright
	if c.fullbright {
		c.gamma.SetMax()
		c.brightness.SetMax()
	} else {
		c.gamma.Set(c.manual)
		c.brightness.Reset()
	}
}

// StepGamma adjusts manual gamma by delta raw units and reads the clamped
// result back, so the stored value never drifts outside hardware bounds.
// Ignored outside Manual.
func (c *Controller) StepGamma(delta int32) {
	if c.mode != Manual {
		return
	}

	c.gamma.Set(c.manual + delta)
	c.manual = c.gamma.Current()
}

// Observe runs one Auto feedback step against the decoded frame: outside
// the dead-band, gamma moves exactly one raw unit toward the target.
// No-op in Manual.
func (c *Controller) Observe(f *capture.Frame) {
	if c.mode != Auto {
		return
	}

	diff := TargetLightness - Lightness(f)
	if math.Abs(diff) <= DeadBand {
		return
	}

	g := c.gamma.Current()
	if diff < 0 {
		c.gamma.Set(g - 1)
	} else {
		c.gamma.Set(g + 1)
	}
}

// ResetAll returns both controls to device defaults. Runs unconditionally
// at quit; teardown is a contract, not best-effort.
func (c *Controller) ResetAll() {
	c.gamma.Reset()
	c.brightness.Reset()
}
