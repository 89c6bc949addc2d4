package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is one discrete user action. Key handling is synchronous: all
// pending commands are drained once per loop iteration, in order, by the
// single consumer thread.
type Command int

const (
	// CmdQuit exits the loop after the current iteration completes.
	CmdQuit Command = iota
	// CmdResetWindow snaps the window back to the camera's native size.
	CmdResetWindow
	// CmdToggleMirror flips horizontal mirroring.
	CmdToggleMirror
	// CmdToggleAuto switches between Manual and Auto exposure.
	CmdToggleAuto
	// CmdToggleFullbright flips manual full-bright.
	CmdToggleFullbright
	// CmdGammaUp raises manual gamma one raw unit.
	CmdGammaUp
	// CmdGammaDown lowers manual gamma one raw unit.
	CmdGammaDown
)

var keymap = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CmdQuit},
	{ebiten.KeySpace, CmdResetWindow},
	{ebiten.KeyM, CmdToggleMirror},
	{ebiten.KeyG, CmdToggleAuto},
	{ebiten.KeyF, CmdToggleFullbright},
	{ebiten.KeyArrowUp, CmdGammaUp},
	{ebiten.KeyArrowDown, CmdGammaDown},
}

// pollCommands translates this tick's key presses into commands.
func pollCommands() []Command {
	var cmds []Command
	for _, m := range keymap {
		if inpututil.IsKeyJustPressed(m.key) {
			cmds = append(cmds, m.cmd)
		}
	}
	return cmds
}
