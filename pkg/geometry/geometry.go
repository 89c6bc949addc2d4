// Package geometry keeps the window shaped like the camera. After a user
// resize it settles the window onto the nearest size matching the camera's
// native aspect ratio, fitting to whichever dimension constrains.
package geometry

// Window is the minimal resize surface the manager needs. Implemented by
// the viewer's ebiten window and by fakes in tests.
type Window interface {
	Size() (width, height int)
	SetSize(width, height int)
}

// Manager holds the immutable target aspect (native width/height at
// startup) and the resize-pending flag.
type Manager struct {
	win     Window
	aspect  float64
	nativeW int
	nativeH int
	pending bool
}

// New returns a manager targeting the camera's native resolution.
func New(win Window, nativeW, nativeH int) *Manager {
	return &Manager{
		win:     win,
		aspect:  float64(nativeW) / float64(nativeH),
		nativeW: nativeW,
		nativeH: nativeH,
	}
}

// MarkResized records that a resize event arrived; the next Settle calls
// will re-fit the window until the size stops changing.
func (m *Manager) MarkResized() {
	m.pending = true
}

// Pending reports whether a resize is still settling.
func (m *Manager) Pending() bool {
	return m.pending
}

// Settle runs one settling step: while a resize is pending, re-fit the
// window to the target aspect. A fit that changes nothing means the window
// has settled, which clears the pending flag.
func (m *Manager) Settle() {
	if !m.pending {
		return
	}
	if !m.SetClosestAspect() {
		m.pending = false
	}
}

// SetClosestAspect resizes the window to the nearest size with the target
// aspect ratio, keeping the constraining dimension fixed: if scaling the
// height would overshoot the current width, width stays and height
// derives from it, otherwise height stays. Reports whether the window
// size changed.
func (m *Manager) SetClosestAspect() bool {
	width, height := m.win.Size()

	var newW, newH int
	if float64(height)*m.aspect > float64(width) {
		newW = width
		newH = int(float64(width) / m.aspect)
	} else {
		newW = int(float64(height) * m.aspect)
		newH = height
	}

	if newW == width && newH == height {
		return false
	}

	m.win.SetSize(newW, newH)
	return true
}

// ResetNative snaps the window back to the camera's native resolution
// unconditionally.
func (m *Manager) ResetNative() {
	m.win.SetSize(m.nativeW, m.nativeH)
}

// SameSize reports whether a decoded frame exactly matches the drawable
// area, selecting the pixel-for-pixel blit over the scaled one.
func SameSize(frameW, frameH, drawableW, drawableH int) bool {
	return frameW == drawableW && frameH == drawableH
}
