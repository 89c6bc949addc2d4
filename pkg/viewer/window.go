package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"camview/pkg/geometry"
)

// Window is the presentation surface the viewer manipulates: resize for
// aspect settling plus the informational title.
type Window interface {
	geometry.Window
	SetTitle(title string)
}

// EbitenWindow adapts the process's single ebiten window to Window.
type EbitenWindow struct{}

// Size returns the current window size in pixels.
func (EbitenWindow) Size() (int, int) {
	return ebiten.WindowSize()
}

// SetSize resizes the window.
func (EbitenWindow) SetSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetTitle replaces the window title.
func (EbitenWindow) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}
