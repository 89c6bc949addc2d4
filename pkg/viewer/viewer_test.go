package viewer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"camview/pkg/capture"
	"camview/pkg/control"
	"camview/pkg/exposure"
)

type fakeWindow struct {
	w, h   int
	titles []string
}

func (f *fakeWindow) Size() (int, int)  { return f.w, f.h }
func (f *fakeWindow) SetSize(w, h int)  { f.w, f.h = w, h }
func (f *fakeWindow) SetTitle(t string) { f.titles = append(f.titles, t) }

func (f *fakeWindow) lastTitle() string {
	if len(f.titles) == 0 {
		return ""
	}
	return f.titles[len(f.titles)-1]
}

type fakeSource struct {
	frame  *capture.Frame
	err    error
	mirror bool
}

func (f *fakeSource) NextFrame() (*capture.Frame, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.frame, nil
}

func (f *fakeSource) SetMirror(m bool) { f.mirror = m }
func (f *fakeSource) Mirror() bool     { return f.mirror }

type fakeDevice struct {
	values map[control.ID]int32
}

func (d *fakeDevice) QueryControl(id control.ID) (control.Info, error) {
	return control.Info{
		Range: control.Range{Min: 0, Max: 255, Step: 1, Default: 100},
		Value: d.values[id],
	}, nil
}

func (d *fakeDevice) WriteControl(id control.ID, value int32) error {
	d.values[id] = value
	return nil
}

func newTestApp(frameW, frameH int) (*App, *fakeWindow, *fakeSource, *exposure.Controller) {
	dev := &fakeDevice{values: map[control.ID]int32{
		control.Gamma:      100,
		control.Brightness: 100,
	}}
	ctrl := exposure.New(
		control.NewProxy(dev, control.Gamma, "gamma"),
		control.NewProxy(dev, control.Brightness, "brightness"),
	)

	win := &fakeWindow{w: frameW, h: frameH}
	src := &fakeSource{frame: capture.Uniform(frameW, frameH, 40, 40, 40)}

	app := New(win, src, ctrl, frameW, frameH)
	return app, win, src, ctrl
}

func TestBuildTitle(t *testing.T) {
	app, _, _, ctrl := newTestApp(640, 480)
	_ = app

	got := buildTitle(640, 480, 9.96, ctrl, false)
	want := "640x480, 10.0 fps, 100 gamma"
	if got != want {
		t.Errorf("manual title: got %q, want %q", got, want)
	}

	ctrl.ToggleMode()
	got = buildTitle(640, 480, 10, ctrl, true)
	want = "[EXACT SIZE] 640x480, 10.0 fps, [AUTO] 100 gamma"
	if got != want {
		t.Errorf("auto title: got %q, want %q", got, want)
	}

	ctrl.ToggleMode()
	ctrl.ToggleFullbright()
	got = buildTitle(800, 450, 30, ctrl, false)
	if !strings.Contains(got, "[FULLBRIGHT] ") {
		t.Errorf("fullbright title missing tag: %q", got)
	}
	if strings.Contains(got, "[EXACT SIZE]") {
		t.Errorf("unexpected exact-size prefix: %q", got)
	}
}

func TestApply_ToggleMirror(t *testing.T) {
	app, _, src, _ := newTestApp(640, 480)

	app.apply(CmdToggleMirror)
	if !src.mirror {
		t.Error("mirror not enabled")
	}
	app.apply(CmdToggleMirror)
	if src.mirror {
		t.Error("mirror not disabled")
	}
}

func TestApply_ResetWindowSnapsToNative(t *testing.T) {
	app, win, _, _ := newTestApp(640, 480)
	win.w, win.h = 1000, 900

	app.apply(CmdResetWindow)
	if win.w != 640 || win.h != 480 {
		t.Errorf("window: got %dx%d, want native 640x480", win.w, win.h)
	}
}

func TestApply_ForcesTitleRefresh(t *testing.T) {
	app, win, _, _ := newTestApp(640, 480)
	base := time.Now()

	app.step(base) // initial refresh, countdown now at titleInterval
	titles := len(win.titles)

	app.apply(CmdGammaUp)
	app.step(base.Add(100 * time.Millisecond))
	if len(win.titles) != titles+1 {
		t.Errorf("title refreshes after key press: got %d, want %d", len(win.titles), titles+1)
	}
}

func TestStep_TitleCadence(t *testing.T) {
	app, win, _, _ := newTestApp(640, 480)
	base := time.Now()

	// First iteration refreshes immediately; the next refresh is ten
	// iterations later.
	for i := 0; i < 11; i++ {
		app.step(base.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	if len(win.titles) != 2 {
		t.Errorf("title refreshes over 11 iterations: got %d, want 2", len(win.titles))
	}
}

func TestStep_SameSizeFlag(t *testing.T) {
	app, win, _, _ := newTestApp(640, 480)

	app.step(time.Now())
	if !app.sameSize {
		t.Error("matching frame and drawable not flagged same size")
	}
	if !strings.HasPrefix(win.lastTitle(), "[EXACT SIZE] ") {
		t.Errorf("title missing exact-size prefix: %q", win.lastTitle())
	}

	app.drawW, app.drawH = 800, 600
	app.titleDelay = 0
	app.step(time.Now())
	if app.sameSize {
		t.Error("mismatched drawable flagged same size")
	}
	if strings.HasPrefix(win.lastTitle(), "[EXACT SIZE] ") {
		t.Errorf("unexpected exact-size prefix: %q", win.lastTitle())
	}
}

func TestStep_FPSFromRollingAverage(t *testing.T) {
	app, _, _, _ := newTestApp(640, 480)
	base := time.Now()
	app.lastIter = base

	// Six steady 100ms intervals fill the five-sample window.
	for i := 1; i <= 6; i++ {
		app.step(base.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	if app.fps < 9.99 || app.fps > 10.01 {
		t.Errorf("fps: got %v, want 10.0", app.fps)
	}
}

func TestStep_CaptureFailureKeepsPreviousFrame(t *testing.T) {
	app, win, src, _ := newTestApp(640, 480)

	app.step(time.Now())
	shown := app.frame
	titles := len(win.titles)

	src.err = errors.New("device busy")
	app.step(time.Now())

	if app.frame != shown {
		t.Error("frame replaced on failed capture")
	}
	if len(win.titles) != titles {
		t.Error("title refreshed on an aborted iteration")
	}

	// Next successful capture resumes normally.
	src.err = nil
	app.step(time.Now())
	if app.frame == nil {
		t.Error("no frame after capture recovered")
	}
}

func TestStep_AutoFeedbackDrivesGamma(t *testing.T) {
	app, _, src, ctrl := newTestApp(640, 480)
	app.apply(CmdToggleAuto)
	src.frame = capture.Uniform(640, 480, 200, 200, 200) // far too bright

	start := ctrl.Gamma()
	app.step(time.Now())
	app.step(time.Now())

	if got := ctrl.Gamma(); got != start-2 {
		t.Errorf("gamma after two bright frames: got %d, want %d", got, start-2)
	}
}

func TestUpdate_ResizeMarksGeometry(t *testing.T) {
	app, win, _, _ := newTestApp(640, 480)

	// Simulate the user dragging the window larger, then let the
	// settling logic walk it back onto the 4:3 aspect.
	win.w, win.h = 700, 480
	if w, h := app.win.Size(); w != app.lastW || h != app.lastH {
		app.lastW, app.lastH = w, h
		app.geom.MarkResized()
	}

	app.step(time.Now())
	if w, h := win.Size(); w != 640 || h != 480 {
		t.Errorf("window after settle: got %dx%d, want 640x480", w, h)
	}
}
