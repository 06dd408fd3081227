package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DisplayModule owns the screen. It animates the eyes, shows overlays on top
// of them and reads the keyboard.
type DisplayModule struct {
	moduleBase
	cfg            *DisplayConfig
	clock          Clock
	rand           Rand
	input          InputSource
	assets         FS
	face           font.Face
	Controller     *EyesController
	Overlay        *Overlay
	dirty          DirtyTracker
	closeRequested bool
}

// NewDisplayModule builds the display. cfg is shared with the rest of the
// robot, a config reload changes it in place and then calls Reconfigure.
// input may be nil, then no keys are read.
func NewDisplayModule(cfg *DisplayConfig, clock Clock, input InputSource, rnd Rand,
	log *slog.Logger) *DisplayModule {
	m := &DisplayModule{
		moduleBase: newModuleBase(DisplayModuleName, log),
		cfg:        cfg,
		clock:      clock,
		rand:       rnd,
		input:      input,
	}
	m.Controller = NewEyesController(cfg, clock, rnd)
	m.assets = DiskFS(cfg.AssetRoot)
	return m
}

// NewInfoFace loads the font used on info cards.
func NewInfoFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

func (m *DisplayModule) Initialize(bus *EventBus) error {
	m.bus = bus
	face, err := NewInfoFace(m.cfg.InfoFontSize)
	if err != nil {
		return err
	}
	m.face = face
	NewBridge(m.Controller, m, m.log).Subscribe(bus)
	m.dirty.Invalidate(ScreenRect(m.cfg))
	m.log.Info("display module initialized",
		slog.Int("width", m.cfg.ScreenWidth),
		slog.Int("height", m.cfg.ScreenHeight),
		slog.Int("fps", m.cfg.FPS))
	return nil
}

func (m *DisplayModule) Update() error {
	m.handleInput()
	if m.Overlay != nil && m.Overlay.Expired(m.clock.Now()) {
		m.log.Debug("overlay expired")
		m.setOverlay(nil)
	}
	m.Controller.Update()
	return nil
}

// Draw paints one frame. The screen keeps what was drawn in the previous
// frame, so only what changed is painted.
func (m *DisplayModule) Draw(screen *ebiten.Image) {
	background := m.cfg.BackgroundColor.NRGBA(255)
	if m.Overlay != nil {
		screen.Fill(background)
		DrawOverlay(screen, m.Overlay, m.face, color.White)
		m.dirty.Next([]image.Rectangle{screen.Bounds()})
		return
	}

	FillRects(screen, m.dirty.Next(m.Controller.BoundingRects()), background)
	DrawShapes(screen, m.Controller.Shapes())
}

func (m *DisplayModule) Shutdown() error {
	m.setOverlay(nil)
	m.log.Info("display module shut down")
	return nil
}

// ShowImage covers the screen with the image at path, relative to the asset
// root. duration is in seconds, 0 keeps the image up until something else
// replaces it.
func (m *DisplayModule) ShowImage(path string, duration float64) error {
	img, err := LoadImage(m.assets, path)
	if err != nil {
		return err
	}
	m.log.Debug("showing image", slog.String("path", path),
		slog.Float64("duration", duration))
	m.setOverlay(NewImageOverlay(img, ScreenRect(m.cfg), m.clock.Now(),
		Seconds(max(duration, 0))))
	return nil
}

// ShowInfo shows an info card. A missing icon is not an error, the card is
// shown without it.
func (m *DisplayModule) ShowInfo(info InfoData) error {
	var icon image.Image
	if info.IconPath != "" {
		var err error
		icon, err = LoadImage(m.assets, info.IconPath)
		if err != nil {
			m.log.Warn("showing info without icon", slog.Any("err", err))
		}
	}
	info.Duration = max(info.Duration, 0)
	m.log.Debug("showing info", slog.String("title", info.Title))
	m.setOverlay(NewInfoOverlay(info, icon, ScreenRect(m.cfg), m.clock.Now()))
	return nil
}

func (m *DisplayModule) setOverlay(o *Overlay) {
	if m.Overlay != nil && m.Overlay.cached != nil {
		m.Overlay.cached.Deallocate()
	}
	if m.Overlay != nil && o == nil {
		// The eyes come back on a screen that still shows the overlay.
		m.dirty.Invalidate(ScreenRect(m.cfg))
	}
	m.Overlay = o
}

// RequestShutdown asks the whole robot to stop. The request goes through the
// bus so every module hears about it.
func (m *DisplayModule) RequestShutdown() {
	m.log.Info("shutdown requested")
	if m.bus != nil {
		m.bus.Emit(EventShutdown, nil, m.name)
	}
}

// Reconfigure rebuilds the eyes after the config changed. The controller is
// replaced in place because the bridge holds on to it.
func (m *DisplayModule) Reconfigure() {
	*m.Controller = *NewEyesController(m.cfg, m.clock, m.rand)
	m.assets = DiskFS(m.cfg.AssetRoot)
	if face, err := NewInfoFace(m.cfg.InfoFontSize); err == nil {
		m.face = face
	} else {
		m.log.Error("keeping the old font", slog.Any("err", err))
	}
	m.dirty.Invalidate(ScreenRect(m.cfg))
	m.log.Info("display reconfigured")
}
