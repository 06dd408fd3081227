package main

import (
	"fmt"
	"log/slog"
)

const (
	DisplayModuleName  = "display"
	NetworkModuleName  = "network"
	CameraModuleName   = "camera"
	AudioModuleName    = "audio"
	SensorModuleName   = "sensor"
	ScriptModuleName   = "script"
	RecorderModuleName = "recorder"
)

// Module is one capability of the robot: the display, the camera, the
// network and so on. The registry drives every module through this
// interface, once per frame, on the main goroutine.
type Module interface {
	Name() string
	// Initialize is called once, before the first Update. The module keeps
	// the bus to publish events and subscribes to the ones it cares about.
	Initialize(bus *EventBus) error
	Update() error
	Shutdown() error
}

// Registry holds one instance of each module, by name.
type Registry struct {
	modules  map[string]Module
	order    []string
	disabled map[string]bool
	bus      *EventBus
	log      *slog.Logger
}

func NewRegistry(bus *EventBus, log *slog.Logger) *Registry {
	return &Registry{
		modules:  map[string]Module{},
		disabled: map[string]bool{},
		bus:      bus,
		log:      log,
	}
}

// Register adds a module. A module with the same name is replaced but keeps
// its place in the update order.
func (r *Registry) Register(m Module) {
	name := m.Name()
	if _, ok := r.modules[name]; ok {
		r.log.Warn("module already registered, replacing", slog.String("module", name))
	} else {
		r.order = append(r.order, name)
	}
	r.modules[name] = m
	r.log.Info("registered module", slog.String("module", name))
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Disable(name string) {
	r.disabled[name] = true
}

func (r *Registry) Enabled(name string) bool {
	_, ok := r.modules[name]
	return ok && !r.disabled[name]
}

// InitializeAll initializes modules in registration order and announces the
// result of each on the bus. A module that fails to initialize is disabled,
// the others carry on.
func (r *Registry) InitializeAll() {
	for _, name := range r.order {
		r.log.Info("initializing module", slog.String("module", name))
		err := r.call(name, func(m Module) error { return m.Initialize(r.bus) })
		if err != nil {
			r.log.Error("failed to initialize module",
				slog.String("module", name), slog.Any("err", err))
			r.Disable(name)
			r.bus.Emit(EventModuleError, ModuleData{Module: name, Err: err.Error()}, "registry")
			continue
		}
		r.bus.Emit(EventModuleReady, ModuleData{Module: name}, "registry")
	}
}

// UpdateAll updates every enabled module. Errors are logged, a broken module
// does not stop the others or the frame.
func (r *Registry) UpdateAll() {
	for _, name := range r.order {
		if r.disabled[name] {
			continue
		}
		if err := r.call(name, Module.Update); err != nil {
			r.log.Error("error updating module",
				slog.String("module", name), slog.Any("err", err))
		}
	}
}

// ShutdownAll announces the shutdown, gives handlers a last chance to react
// and then shuts the modules down in registration order.
func (r *Registry) ShutdownAll() {
	r.log.Info("shutting down")
	r.bus.Emit(EventShutdown, nil, "registry")
	r.bus.ProcessEvents()
	for _, name := range r.order {
		r.log.Info("shutting down module", slog.String("module", name))
		if err := r.call(name, Module.Shutdown); err != nil {
			r.log.Error("error shutting down module",
				slog.String("module", name), slog.Any("err", err))
		}
	}
	r.log.Info("shutdown complete")
}

// call runs f on a module and turns a panic into an error.
func (r *Registry) call(name string, f func(Module) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("module %s panicked: %v", name, p)
		}
	}()
	return f(r.modules[name])
}
