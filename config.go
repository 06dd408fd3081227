package main

import (
	"fmt"
	"image/color"
	"slices"
)

// Config is everything the robot reads at startup. It is loaded from
// data/config.yaml and then selectively overridden by environment variables,
// which is handy on the device itself where editing the embedded file means
// rebuilding.
type Config struct {
	LogLevel       string        `yaml:"LogLevel" env:"ROBOEYES_LOG_LEVEL"`
	EnabledModules []string      `yaml:"EnabledModules" env:"ROBOEYES_MODULES" envSeparator:","`
	Display        DisplayConfig `yaml:"Display"`
	Camera         CameraConfig  `yaml:"Camera"`
	Audio          AudioConfig   `yaml:"Audio"`
	Sensor         SensorConfig  `yaml:"Sensor"`
	Network        NetworkConfig `yaml:"Network"`
	Script         ScriptConfig  `yaml:"Script"`
}

type RGB struct {
	R uint8 `yaml:"R"`
	G uint8 `yaml:"G"`
	B uint8 `yaml:"B"`
}

func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

type Interval struct {
	Min float64 `yaml:"Min"`
	Max float64 `yaml:"Max"`
}

// DisplayConfig holds the screen, the eye geometry and all the animation
// tuning. Durations are in seconds.
type DisplayConfig struct {
	ScreenWidth     int     `yaml:"ScreenWidth" env:"ROBOEYES_SCREEN_WIDTH"`
	ScreenHeight    int     `yaml:"ScreenHeight" env:"ROBOEYES_SCREEN_HEIGHT"`
	FPS             int     `yaml:"FPS" env:"ROBOEYES_FPS"`
	BackgroundColor RGB     `yaml:"BackgroundColor"`
	Fullscreen      bool    `yaml:"Fullscreen" env:"ROBOEYES_FULLSCREEN"`
	AssetRoot       string  `yaml:"AssetRoot" env:"ROBOEYES_ASSET_ROOT"`
	InfoFontSize    float64 `yaml:"InfoFontSize"`

	EyeWidth        float64 `yaml:"EyeWidth"`
	EyeHeight       float64 `yaml:"EyeHeight"`
	EyeGap          float64 `yaml:"EyeGap"`
	EyeColor        RGB     `yaml:"EyeColor"`
	EyeBorderRadius float64 `yaml:"EyeBorderRadius"`

	MaxOffsetX   float64 `yaml:"MaxOffsetX"`
	MaxOffsetY   float64 `yaml:"MaxOffsetY"`
	EyeMoveSpeed float64 `yaml:"EyeMoveSpeed"`

	ShadowLayers     int     `yaml:"ShadowLayers"`
	ShadowSpread     float64 `yaml:"ShadowSpread"`
	PerspectiveShift float64 `yaml:"PerspectiveShift"`

	HeartColor RGB `yaml:"HeartColor"`

	BlinkDuration  float64 `yaml:"BlinkDuration"`
	SmileDuration  float64 `yaml:"SmileDuration"`
	HeartDuration  float64 `yaml:"HeartDuration"`
	ShakeDuration  float64 `yaml:"ShakeDuration"`
	NodDuration    float64 `yaml:"NodDuration"`
	ShakeCycles    float64 `yaml:"ShakeCycles"`
	ShakeAmplitude float64 `yaml:"ShakeAmplitude"`
	NodCycles      float64 `yaml:"NodCycles"`
	NodAmplitude   float64 `yaml:"NodAmplitude"`

	AnimationCycle    []string `yaml:"AnimationCycle"`
	AnimationInterval Interval `yaml:"AnimationInterval"`
	AutoAnimations    bool     `yaml:"AutoAnimations" env:"ROBOEYES_AUTO_ANIMATIONS"`
}

type CameraConfig struct {
	Enabled     bool `yaml:"Enabled" env:"ROBOEYES_CAMERA_ENABLED"`
	DeviceIndex int  `yaml:"DeviceIndex"`
	Width       int  `yaml:"Width"`
	Height      int  `yaml:"Height"`
	FPS         int  `yaml:"FPS"`
}

type AudioConfig struct {
	Enabled    bool `yaml:"Enabled" env:"ROBOEYES_AUDIO_ENABLED"`
	SampleRate int  `yaml:"SampleRate"`
	Channels   int  `yaml:"Channels"`
}

type SensorConfig struct {
	Enabled    bool `yaml:"Enabled" env:"ROBOEYES_SENSOR_ENABLED"`
	UpdateRate int  `yaml:"UpdateRate"`
}

type NetworkConfig struct {
	Enabled        bool    `yaml:"Enabled" env:"ROBOEYES_NETWORK_ENABLED"`
	Timeout        float64 `yaml:"Timeout"`
	UpdateInterval float64 `yaml:"UpdateInterval"`
}

// ScriptConfig controls playing back and recording event scripts. See
// script.go.
type ScriptConfig struct {
	PlaybackFile  string `yaml:"PlaybackFile" env:"ROBOEYES_PLAYBACK_FILE"`
	RecordToFile  bool   `yaml:"RecordToFile" env:"ROBOEYES_RECORD"`
	RecordingFile string `yaml:"RecordingFile" env:"ROBOEYES_RECORDING_FILE"`
}

// Names used in DisplayConfig.AnimationCycle.
const (
	CycleBlink = "blink"
	CycleLook  = "look"
	CycleSmile = "smile"
	CycleShake = "shake"
	CycleNod   = "nod"
)

var cycleEntries = []string{CycleBlink, CycleLook, CycleSmile, CycleShake, CycleNod}

var moduleNames = []string{
	DisplayModuleName,
	NetworkModuleName,
	CameraModuleName,
	AudioModuleName,
	SensorModuleName,
}

func (c *Config) Validate() error {
	if err := c.Display.Validate(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	for _, m := range c.EnabledModules {
		if !slices.Contains(moduleNames, m) {
			return fmt.Errorf("unknown module in EnabledModules: %q", m)
		}
	}
	if c.Script.RecordToFile && c.Script.RecordingFile == "" {
		return fmt.Errorf("script: RecordToFile is set but RecordingFile is empty")
	}
	return nil
}

func (d *DisplayConfig) Validate() error {
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", d.ScreenWidth, d.ScreenHeight)
	}
	if d.FPS <= 0 {
		return fmt.Errorf("invalid FPS: %d", d.FPS)
	}
	if d.EyeWidth <= 0 || d.EyeHeight <= 0 {
		return fmt.Errorf("invalid eye size %vx%v", d.EyeWidth, d.EyeHeight)
	}
	if d.ShadowLayers < 0 || d.ShadowSpread < 0 {
		return fmt.Errorf("invalid shadow settings: %d layers, spread %v",
			d.ShadowLayers, d.ShadowSpread)
	}
	if d.EyeMoveSpeed < 0 || d.EyeMoveSpeed > 1 {
		return fmt.Errorf("EyeMoveSpeed must be in [0, 1], got %v", d.EyeMoveSpeed)
	}
	durations := map[string]float64{
		"BlinkDuration": d.BlinkDuration,
		"SmileDuration": d.SmileDuration,
		"HeartDuration": d.HeartDuration,
		"ShakeDuration": d.ShakeDuration,
		"NodDuration":   d.NodDuration,
	}
	for name, v := range durations {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	if d.AnimationInterval.Min < 0 || d.AnimationInterval.Max < d.AnimationInterval.Min {
		return fmt.Errorf("invalid AnimationInterval [%v, %v]",
			d.AnimationInterval.Min, d.AnimationInterval.Max)
	}
	for _, entry := range d.AnimationCycle {
		if !slices.Contains(cycleEntries, entry) {
			return fmt.Errorf("unknown AnimationCycle entry: %q", entry)
		}
	}
	return nil
}

// ModuleEnabled reports if name appears in EnabledModules. The display is
// always on, there is nothing to run without it.
func (c *Config) ModuleEnabled(name string) bool {
	return name == DisplayModuleName || slices.Contains(c.EnabledModules, name)
}
