// Package viewer runs the capture-display-control loop as an ebiten game.
// One cooperative thread owns everything: Update drains input commands,
// settles window geometry, pulls and decodes a frame, runs the exposure
// feedback, and refreshes the title; Draw blits the frame it produced.
package viewer

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"camview/internal/log"
	"camview/pkg/average"
	"camview/pkg/capture"
	"camview/pkg/exposure"
	"camview/pkg/geometry"
)

// Loop constants carried over from the viewer's tuning: the FPS readout
// averages the last five frame intervals, and the title refreshes every
// ten iterations unless a key press forces it sooner.
const (
	averagerSize  = 5
	titleInterval = 10
)

// Source is the capture half of the frame pipeline.
type Source interface {
	// NextFrame blocks for the next decoded RGB frame.
	NextFrame() (*capture.Frame, error)

	// SetMirror enables or disables horizontal mirroring.
	SetMirror(m bool)

	// Mirror reports the current mirror setting.
	Mirror() bool
}

// App is the loop state: exposure mode, geometry, timing, and the frame
// in flight. It is mutated only from the game loop's thread.
type App struct {
	win  Window
	src  Source
	ctrl *exposure.Controller
	geom *geometry.Manager
	avg  *average.Averager
	rend renderer

	frame    *capture.Frame // latest decoded frame; previous one stays on screen after a failed capture
	fps      float64
	sameSize bool

	titleDelay   int
	lastIter     time.Time
	lastW, lastH int
	drawW, drawH int
}

// New builds the loop state around an opened source and controller.
// nativeW/nativeH fix the target aspect ratio for the session.
func New(win Window, src Source, ctrl *exposure.Controller, nativeW, nativeH int) *App {
	return &App{
		win:      win,
		src:      src,
		ctrl:     ctrl,
		geom:     geometry.New(win, nativeW, nativeH),
		avg:      average.New(averagerSize),
		lastIter: time.Now(),
		lastW:    nativeW,
		lastH:    nativeH,
		drawW:    nativeW,
		drawH:    nativeH,
	}
}

// Update implements ebiten.Game. One call is one loop iteration.
func (a *App) Update() error {
	for _, cmd := range pollCommands() {
		if cmd == CmdQuit {
			return ebiten.Termination
		}
		a.apply(cmd)
	}

	if w, h := a.win.Size(); w != a.lastW || h != a.lastH {
		a.lastW, a.lastH = w, h
		a.geom.MarkResized()
	}

	a.step(time.Now())
	return nil
}

// apply executes one user command. Every command also forces the title
// to refresh on this iteration.
func (a *App) apply(cmd Command) {
	switch cmd {
	case CmdResetWindow:
		a.geom.ResetNative()
	case CmdToggleMirror:
		a.src.SetMirror(!a.src.Mirror())
	case CmdToggleAuto:
		a.ctrl.ToggleMode()
	case CmdToggleFullbright:
		a.ctrl.ToggleFullbright()
	case CmdGammaUp:
		a.ctrl.StepGamma(1)
	case CmdGammaDown:
		a.ctrl.StepGamma(-1)
	}

	a.titleDelay = 0
}

// step runs the capture/feedback/timing portion of one iteration.
// A failed capture or decode logs and abandons the iteration; the next
// one retries immediately with no backoff.
func (a *App) step(now time.Time) {
	a.geom.Settle()

	f, err := a.src.NextFrame()
	if err != nil {
		log.Warn("skipping frame", "err", err)
		return
	}
	a.frame = f

	a.ctrl.Observe(f)

	a.sameSize = geometry.SameSize(f.Width, f.Height, a.drawW, a.drawH)

	ms := float64(now.Sub(a.lastIter)) / float64(time.Millisecond)
	a.lastIter = now
	a.fps = 1000.0 / a.avg.Add(ms)

	a.titleDelay--
	if a.titleDelay <= 0 {
		a.win.SetTitle(buildTitle(a.drawW, a.drawH, a.fps, a.ctrl, a.sameSize))
		a.titleDelay = titleInterval
	}
}

// Draw implements ebiten.Game: blit the iteration's frame. With no frame
// yet (or after a failed capture) whatever is on screen stays there.
func (a *App) Draw(screen *ebiten.Image) {
	a.rend.draw(screen, a.frame, a.sameSize)
}

// Layout implements ebiten.Game with a 1:1 logical-to-window mapping and
// records the drawable size for the same-size check and the title.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.drawW, a.drawH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// buildTitle formats the informational title line, e.g.
// "[EXACT SIZE] 1280x720, 9.8 fps, [AUTO] 102 gamma".
func buildTitle(w, h int, fps float64, ctrl *exposure.Controller, sameSize bool) string {
	var tag string
	switch {
	case ctrl.Auto():
		tag = "[AUTO] "
	case ctrl.Fullbright():
		tag = "[FULLBRIGHT] "
	}

	title := fmt.Sprintf("%dx%d, %.1f fps, %s%d gamma", w, h, fps, tag, ctrl.Gamma())
	if sameSize {
		title = "[EXACT SIZE] " + title
	}
	return title
}
