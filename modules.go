package main

import (
	"log/slog"
)

// moduleBase carries what every module needs: its name, the bus and a
// logger tagged with the module name.
type moduleBase struct {
	name string
	bus  *EventBus
	log  *slog.Logger
}

func newModuleBase(name string, log *slog.Logger) moduleBase {
	return moduleBase{name: name, log: log.With(slog.String("module", name))}
}

func (m *moduleBase) Name() string {
	return m.name
}

// The modules below only announce themselves. The hardware they stand for
// is not wired yet, but the display already reacts to the events they will
// publish (face-detected, display-info).

type CameraModule struct {
	moduleBase
	cfg CameraConfig
}

func NewCameraModule(cfg CameraConfig, log *slog.Logger) *CameraModule {
	return &CameraModule{newModuleBase(CameraModuleName, log), cfg}
}

func (m *CameraModule) Initialize(bus *EventBus) error {
	m.bus = bus
	m.log.Info("camera module initialized",
		slog.Int("device", m.cfg.DeviceIndex),
		slog.Int("width", m.cfg.Width),
		slog.Int("height", m.cfg.Height),
		slog.Int("fps", m.cfg.FPS))
	return nil
}

func (m *CameraModule) Update() error {
	return nil
}

func (m *CameraModule) Shutdown() error {
	m.log.Info("camera module shut down")
	return nil
}

type AudioModule struct {
	moduleBase
	cfg AudioConfig
}

func NewAudioModule(cfg AudioConfig, log *slog.Logger) *AudioModule {
	return &AudioModule{newModuleBase(AudioModuleName, log), cfg}
}

func (m *AudioModule) Initialize(bus *EventBus) error {
	m.bus = bus
	m.log.Info("audio module initialized",
		slog.Int("sample_rate", m.cfg.SampleRate),
		slog.Int("channels", m.cfg.Channels))
	return nil
}

func (m *AudioModule) Update() error {
	return nil
}

func (m *AudioModule) Shutdown() error {
	m.log.Info("audio module shut down")
	return nil
}

type SensorModule struct {
	moduleBase
	cfg SensorConfig
}

func NewSensorModule(cfg SensorConfig, log *slog.Logger) *SensorModule {
	return &SensorModule{newModuleBase(SensorModuleName, log), cfg}
}

func (m *SensorModule) Initialize(bus *EventBus) error {
	m.bus = bus
	m.log.Info("sensor module initialized", slog.Int("update_rate", m.cfg.UpdateRate))
	return nil
}

func (m *SensorModule) Update() error {
	return nil
}

func (m *SensorModule) Shutdown() error {
	m.log.Info("sensor module shut down")
	return nil
}

// NetworkModule is where remote data comes from. Fetching is not part of
// this program yet; results reach the display as display-info events.
type NetworkModule struct {
	moduleBase
	cfg NetworkConfig
}

func NewNetworkModule(cfg NetworkConfig, log *slog.Logger) *NetworkModule {
	return &NetworkModule{newModuleBase(NetworkModuleName, log), cfg}
}

func (m *NetworkModule) Initialize(bus *EventBus) error {
	m.bus = bus
	m.log.Info("network module initialized",
		slog.Float64("timeout", m.cfg.Timeout),
		slog.Float64("update_interval", m.cfg.UpdateInterval))
	return nil
}

func (m *NetworkModule) Update() error {
	return nil
}

func (m *NetworkModule) Shutdown() error {
	m.log.Info("network module shut down")
	return nil
}

// StubModuleEnabled reports the per-section Enabled flag of a stub module.
func StubModuleEnabled(cfg *Config, name string) bool {
	switch name {
	case CameraModuleName:
		return cfg.Camera.Enabled
	case AudioModuleName:
		return cfg.Audio.Enabled
	case SensorModuleName:
		return cfg.Sensor.Enabled
	case NetworkModuleName:
		return cfg.Network.Enabled
	}
	return true
}
