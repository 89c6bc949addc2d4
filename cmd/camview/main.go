// Command camview shows a live feed from the first usable camera in a
// resizable, always-on-top window and keeps perceived brightness inside a
// target band by nudging the device's gamma and brightness controls.
//
// Keys: G toggles auto exposure, F full-bright, Up/Down step gamma,
// M mirrors the image, Space snaps the window to the camera's native
// size, Escape quits.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"camview/internal/config"
	"camview/internal/log"
	"camview/pkg/capture"
	"camview/pkg/control"
	"camview/pkg/exposure"
	"camview/pkg/viewer"
)

func main() {
	log.Init(config.LogLevel())

	if err := run(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	src, err := openSource()
	if err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer src.Close()

	src.RequestFrameRate(config.FPS())
	src.SetMirror(config.Mirror())

	width, height := src.Resolution()
	log.Info("camera opened",
		"device", src.DevicePath(), "width", width, "height", height)

	// Control ioctls go over their own fd so the stream keeps the capture
	// fd to itself. No fd means no controls: the proxies run inert and
	// the viewer still shows the feed.
	var dev control.Device
	if v4l2Dev, err := control.OpenV4L2(src.DevicePath()); err != nil {
		log.Warn("hardware controls unavailable", "err", err)
	} else {
		dev = v4l2Dev
		defer v4l2Dev.Close()
	}

	gamma := control.NewProxy(dev, control.Gamma, "gamma")
	brightness := control.NewProxy(dev, control.Brightness, "brightness")
	ctrl := exposure.New(gamma, brightness)

	// Both controls return to device defaults however the loop ends.
	defer ctrl.ResetAll()

	ebiten.SetWindowTitle("cam")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowFloating(true)

	app := viewer.New(viewer.EbitenWindow{}, src, ctrl, width, height)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window loop: %w", err)
	}
	return nil
}

func openSource() (*capture.Source, error) {
	if idx := config.Device(); idx >= 0 {
		return capture.Open(idx)
	}
	return capture.Scan(config.MaxDeviceIndex)
}
