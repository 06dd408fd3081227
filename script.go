package main

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// Script is a list of events with the time at which each one happens,
// counted in seconds from the moment the robot started. Scripts are used to
// demo the eyes without any hardware and to replay what a robot did.
type Script struct {
	Id     string        `yaml:"Id"`
	Events []ScriptEvent `yaml:"Events"`
}

// ScriptEvent is an Event in a form that reads well in yaml. Only the
// fields that belong to Kind are used.
type ScriptEvent struct {
	At        float64 `yaml:"At"`
	Kind      string  `yaml:"Kind"`
	Emotion   string  `yaml:"Emotion,omitempty"`
	Direction string  `yaml:"Direction,omitempty"`
	Animation string  `yaml:"Animation,omitempty"`
	Position  *Pt     `yaml:"Position,omitempty"`
	ImagePath string  `yaml:"ImagePath,omitempty"`
	Title     string  `yaml:"Title,omitempty"`
	Subtitle  string  `yaml:"Subtitle,omitempty"`
	IconPath  string  `yaml:"IconPath,omitempty"`
	Duration  float64 `yaml:"Duration,omitempty"`
}

// scriptKinds are the events a script can contain: the ones that change
// what is on the screen.
var scriptKinds = []EventKind{
	EventDisplayEmotion,
	EventDisplayLook,
	EventDisplayAnimation,
	EventFaceDetected,
	EventDisplayImage,
	EventDisplayInfo,
}

func (s ScriptEvent) ToEvent() (kind EventKind, data any, err error) {
	kind, ok := ParseEventKind(s.Kind)
	if !ok || !slices.Contains(scriptKinds, kind) {
		return 0, nil, fmt.Errorf("unsupported event kind in script: %q", s.Kind)
	}
	switch kind {
	case EventDisplayEmotion:
		data = EmotionData{Emotion: s.Emotion}
	case EventDisplayLook:
		data = LookData{Direction: s.Direction}
	case EventDisplayAnimation:
		data = AnimationData{Animation: s.Animation}
	case EventFaceDetected:
		data = FaceData{Position: s.Position}
	case EventDisplayImage:
		data = ImageData{ImagePath: s.ImagePath, Duration: s.Duration}
	case EventDisplayInfo:
		data = InfoData{Title: s.Title, Subtitle: s.Subtitle,
			IconPath: s.IconPath, Duration: s.Duration}
	}
	return kind, data, nil
}

// ScriptEventFromEvent is the reverse of ToEvent. It fails for events that
// don't belong in a script or whose payload is not what the kind expects.
func ScriptEventFromEvent(e Event, at float64) (s ScriptEvent, err error) {
	s.At = at
	s.Kind = e.Kind.String()
	switch e.Kind {
	case EventDisplayEmotion:
		var d EmotionData
		d, err = payload[EmotionData](e)
		s.Emotion = d.Emotion
	case EventDisplayLook:
		var d LookData
		d, err = payload[LookData](e)
		s.Direction = d.Direction
	case EventDisplayAnimation:
		var d AnimationData
		d, err = payload[AnimationData](e)
		s.Animation = d.Animation
	case EventFaceDetected:
		var d FaceData
		d, err = payload[FaceData](e)
		s.Position = d.Position
	case EventDisplayImage:
		var d ImageData
		d, err = payload[ImageData](e)
		s.ImagePath = d.ImagePath
		s.Duration = d.Duration
	case EventDisplayInfo:
		var d InfoData
		d, err = payload[InfoData](e)
		s.Title = d.Title
		s.Subtitle = d.Subtitle
		s.IconPath = d.IconPath
		s.Duration = d.Duration
	default:
		err = fmt.Errorf("event kind %s does not belong in a script", e.Kind)
	}
	return
}

func LoadScript(fsys FS, filename string) (s Script, err error) {
	if err = LoadYAML(fsys, filename, &s); err != nil {
		return
	}
	for i, e := range s.Events {
		if _, _, err = e.ToEvent(); err != nil {
			err = fmt.Errorf("event %d: %w", i, err)
			return
		}
		if e.At < 0 {
			err = fmt.Errorf("event %d: negative time %v", i, e.At)
			return
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].At < s.Events[j].At
	})
	return
}

func (s *Script) Serialize() ([]byte, error) {
	return yaml.Marshal(s)
}

// ScriptModule plays a script: each event is published on the bus once its
// time has come.
type ScriptModule struct {
	moduleBase
	fsys     FS
	filename string
	clock    Clock
	script   Script
	start    time.Time
	next     int
}

func NewScriptModule(fsys FS, filename string, clock Clock, log *slog.Logger) *ScriptModule {
	return &ScriptModule{
		moduleBase: newModuleBase(ScriptModuleName, log),
		fsys:       fsys,
		filename:   filename,
		clock:      clock,
	}
}

func (m *ScriptModule) Initialize(bus *EventBus) (err error) {
	m.bus = bus
	if m.script, err = LoadScript(m.fsys, m.filename); err != nil {
		return err
	}
	m.start = m.clock.Now()
	m.next = 0
	m.log.Info("playing script",
		slog.String("file", m.filename),
		slog.String("id", m.script.Id),
		slog.Int("events", len(m.script.Events)))
	return nil
}

func (m *ScriptModule) Update() error {
	elapsed := m.clock.Now().Sub(m.start)
	for m.next < len(m.script.Events) && elapsed >= Seconds(m.script.Events[m.next].At) {
		e := m.script.Events[m.next]
		m.next++
		// Already validated by LoadScript.
		kind, data, _ := e.ToEvent()
		m.bus.Emit(kind, data, m.name)
	}
	return nil
}

func (m *ScriptModule) Finished() bool {
	return m.next >= len(m.script.Events)
}

func (m *ScriptModule) Shutdown() error {
	m.log.Info("script stopped",
		slog.Int("played", m.next), slog.Int("events", len(m.script.Events)))
	return nil
}

// Recorder writes every screen-changing event that goes over the bus to a
// script file, so a session can be played back later.
//
// The file is rewritten in the frame after an event arrives rather than only
// at shutdown. If the robot crashes, the events that led to the crash are
// already on disk.
type Recorder struct {
	moduleBase
	filename string
	clock    Clock
	script   Script
	start    time.Time
	unsaved  bool
	ids      []int64
}

func NewRecorder(filename string, clock Clock, log *slog.Logger) *Recorder {
	return &Recorder{
		moduleBase: newModuleBase(RecorderModuleName, log),
		filename:   filename,
		clock:      clock,
	}
}

func (r *Recorder) Initialize(bus *EventBus) error {
	r.bus = bus
	r.start = r.clock.Now()
	r.script = Script{Id: uuid.NewString()}
	for _, kind := range scriptKinds {
		r.ids = append(r.ids, bus.Subscribe(kind, r.record))
	}
	r.log.Info("recording events",
		slog.String("file", r.filename), slog.String("id", r.script.Id))
	return nil
}

func (r *Recorder) record(e Event) error {
	at := e.Time.Sub(r.start).Seconds()
	s, err := ScriptEventFromEvent(e, max(at, 0))
	if err != nil {
		return fmt.Errorf("not recorded: %w", err)
	}
	r.script.Events = append(r.script.Events, s)
	r.unsaved = true
	return nil
}

// Events returns what was recorded so far.
func (r *Recorder) Events() []ScriptEvent {
	return r.script.Events
}

func (r *Recorder) Update() error {
	if !r.unsaved {
		return nil
	}
	return r.save()
}

func (r *Recorder) save() error {
	data, err := r.script.Serialize()
	if err != nil {
		return fmt.Errorf("serialize recording: %w", err)
	}
	if err = WriteFile(r.filename, data); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	r.unsaved = false
	return nil
}

func (r *Recorder) Shutdown() error {
	for i, id := range r.ids {
		r.bus.Unsubscribe(scriptKinds[i], id)
	}
	r.ids = nil
	if err := r.save(); err != nil {
		return err
	}
	r.log.Info("recording saved",
		slog.String("file", r.filename), slog.Int("events", len(r.script.Events)))
	return nil
}
