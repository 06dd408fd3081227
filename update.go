package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is where the display gets its keys from once per frame.
type InputSource interface {
	// JustPressedKeys returns the keys that went down since the last frame.
	JustPressedKeys() []ebiten.Key
	// CloseRequested is true when the user tried to close the window.
	CloseRequested() bool
}

// EbitenInput reads the keyboard and the window through ebiten. It only
// works while ebiten.RunGame is running.
type EbitenInput struct {
	justPressedKeys []ebiten.Key
}

func (in *EbitenInput) JustPressedKeys() []ebiten.Key {
	in.justPressedKeys = in.justPressedKeys[:0]
	in.justPressedKeys = inpututil.AppendJustPressedKeys(in.justPressedKeys)
	return in.justPressedKeys
}

func (in *EbitenInput) CloseRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

// keyActions is what each key does. The display is in charge of the keyboard
// because on the device it is the only thing with a window.
var keyActions = map[ebiten.Key]func(m *DisplayModule){
	ebiten.KeyQ:     func(m *DisplayModule) { m.RequestShutdown() },
	ebiten.KeyS:     func(m *DisplayModule) { m.Controller.TriggerSmile() },
	ebiten.KeyA:     func(m *DisplayModule) { m.Controller.TriggerShake() },
	ebiten.KeyY:     func(m *DisplayModule) { m.Controller.TriggerNod() },
	ebiten.KeyH:     func(m *DisplayModule) { m.Controller.TriggerHeartEyes() },
	ebiten.KeyB:     func(m *DisplayModule) { m.Controller.TriggerBlink() },
	ebiten.KeyLeft:  func(m *DisplayModule) { m.Controller.SetLookDirection("left") },
	ebiten.KeyRight: func(m *DisplayModule) { m.Controller.SetLookDirection("right") },
	ebiten.KeyUp:    func(m *DisplayModule) { m.Controller.SetLookDirection("up") },
	ebiten.KeyDown:  func(m *DisplayModule) { m.Controller.SetLookDirection("down") },
	ebiten.KeyC:     func(m *DisplayModule) { m.Controller.SetLookDirection("center") },
}

// HandleKey runs the action bound to k, if there is one.
func (m *DisplayModule) HandleKey(k ebiten.Key) bool {
	action, ok := keyActions[k]
	if !ok {
		return false
	}
	m.log.Debug("key pressed", slog.String("key", k.String()))
	action(m)
	return true
}

func (m *DisplayModule) handleInput() {
	if m.input == nil {
		return
	}
	if m.input.CloseRequested() && !m.closeRequested {
		m.closeRequested = true
		m.RequestShutdown()
	}
	for _, k := range m.input.JustPressedKeys() {
		m.HandleKey(k)
	}
}
