package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRobot(t *testing.T, change func(cfg *Config)) (*Robot, *FakeClock) {
	cfg, err := LoadConfig(&embeddedFiles, false)
	require.NoError(t, err)
	if change != nil {
		change(&cfg)
	}
	clock := NewFakeClock()
	r := NewRobot(cfg, &embeddedFiles, clock, nil, 1, testLogger())
	return r, clock
}

func TestRobot_RegistersConfiguredModules(t *testing.T) {
	r, _ := newTestRobot(t, nil)
	assert.Equal(t, []string{DisplayModuleName, NetworkModuleName}, r.registry.Names())

	r, _ = newTestRobot(t, func(cfg *Config) {
		cfg.EnabledModules = []string{"display", "camera", "audio"}
		cfg.Camera.Enabled = true
		cfg.Script.PlaybackFile = "data/script-demo.yaml"
	})
	// Audio is listed but switched off in its own section.
	assert.Equal(t, []string{DisplayModuleName, CameraModuleName, ScriptModuleName},
		r.registry.Names())
}

func TestRobot_RunsAScriptUntilShutdown(t *testing.T) {
	r, clock := newTestRobot(t, func(cfg *Config) {
		cfg.Display.AutoAnimations = false
		cfg.Script.PlaybackFile = "data/script-demo.yaml"
	})
	r.Start()
	assert.Same(t, r.display, r.Display())

	// The script looks up-left after one second.
	require.NoError(t, r.Update())
	clock.Advance(1)
	require.NoError(t, r.Update())
	require.NoError(t, r.Update())
	left := r.display.Controller.Left
	assert.Equal(t, left.NominalPos().Plus(Pt{-20, -15}), left.Target)

	// And smiles at 2.5 seconds.
	clock.Advance(1.5)
	require.NoError(t, r.Update())
	require.NoError(t, r.Update())
	assert.Equal(t, EyeSmiling, r.display.Controller.Left.State)

	r.Bus().Emit(EventShutdown, nil, "test")
	assert.Equal(t, ebiten.Termination, r.Update())
	r.Stop()
	// Nothing queued during shutdown is left behind.
	assert.Equal(t, 0, r.Bus().ProcessEvents())
}

func TestRobot_LayoutIsTheDisplaySize(t *testing.T) {
	r, _ := newTestRobot(t, nil)
	w, h := r.Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}
