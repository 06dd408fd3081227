package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Robot ties the modules together and runs them in the ebitengine loop. It
// implements ebiten.Game.
type Robot struct {
	cfg            *Config
	fsys           FS
	clock          Clock
	log            *slog.Logger
	bus            *EventBus
	registry       *Registry
	display        *DisplayModule
	quit           bool
	devModeEnabled bool
	folderWatcher  FolderWatcher
}

// NewRobot builds the bus, the registry and every module the config asks
// for. Nothing runs until Start.
func NewRobot(cfg Config, fsys FS, clock Clock, input InputSource, seed uint64,
	log *slog.Logger) *Robot {
	r := &Robot{
		cfg:   &cfg,
		fsys:  fsys,
		clock: clock,
		log:   log,
	}
	r.bus = NewEventBus(log, clock)
	r.registry = NewRegistry(r.bus, log)

	r.display = NewDisplayModule(&r.cfg.Display, clock, input, NewRand(seed), log)
	r.registry.Register(r.display)
	for _, name := range []string{NetworkModuleName, CameraModuleName,
		AudioModuleName, SensorModuleName} {
		if !r.cfg.ModuleEnabled(name) || !StubModuleEnabled(r.cfg, name) {
			continue
		}
		switch name {
		case NetworkModuleName:
			r.registry.Register(NewNetworkModule(r.cfg.Network, log))
		case CameraModuleName:
			r.registry.Register(NewCameraModule(r.cfg.Camera, log))
		case AudioModuleName:
			r.registry.Register(NewAudioModule(r.cfg.Audio, log))
		case SensorModuleName:
			r.registry.Register(NewSensorModule(r.cfg.Sensor, log))
		}
	}
	if r.cfg.Script.RecordToFile {
		r.registry.Register(NewRecorder(r.cfg.Script.RecordingFile, clock, log))
	}
	if r.cfg.Script.PlaybackFile != "" {
		r.registry.Register(NewScriptModule(fsys, r.cfg.Script.PlaybackFile, clock, log))
	}
	return r
}

// WatchFolder turns on developer mode: the config is reloaded whenever a
// file in folder changes.
func (r *Robot) WatchFolder(folder string) {
	r.devModeEnabled = true
	r.folderWatcher.Folder = folder
	// The first check only records the current state of the folder.
	r.folderWatcher.FolderContentsChanged()
}

func (r *Robot) Bus() *EventBus {
	return r.bus
}

func (r *Robot) Display() *DisplayModule {
	return r.display
}

// Start initializes the modules.
func (r *Robot) Start() {
	r.bus.Subscribe(EventShutdown, func(e Event) error {
		if !r.quit {
			r.log.Info("quitting", slog.String("source", e.Source))
		}
		r.quit = true
		return nil
	})
	r.registry.InitializeAll()
}

// Stop shuts the modules down. Events still queued are dropped.
func (r *Robot) Stop() {
	r.registry.ShutdownAll()
	r.bus.Clear()
}

func (r *Robot) Update() error {
	if r.devModeEnabled && r.folderWatcher.FolderContentsChanged() {
		r.reloadConfig()
	}

	r.bus.ProcessEvents()
	if r.quit {
		return ebiten.Termination
	}
	r.registry.UpdateAll()
	return nil
}

func (r *Robot) Draw(screen *ebiten.Image) {
	r.display.Draw(screen)
}

// reloadConfig applies a changed config to the running robot. Only the
// display follows the new values, the set of modules stays the same until
// the next start. A broken config is reported and ignored.
func (r *Robot) reloadConfig() {
	cfg, err := LoadConfig(r.fsys, r.devModeEnabled)
	if err != nil {
		r.log.Error("config reload failed", slog.Any("err", err))
		return
	}
	*r.cfg = cfg
	r.display.Reconfigure()
	ebiten.SetTPS(r.cfg.Display.FPS)
	r.log.Info("config reloaded")
}

// Run starts the modules, runs the frame loop until a shutdown is requested
// and then stops the modules.
func (r *Robot) Run() error {
	r.Start()
	defer r.Stop()

	d := r.cfg.Display
	ebiten.SetWindowTitle("RoboEyes")
	ebiten.SetWindowSize(d.ScreenWidth, d.ScreenHeight)
	ebiten.SetFullscreen(d.Fullscreen)
	ebiten.SetTPS(d.FPS)
	// The display repaints only what changed since the previous frame.
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(r)
}
