package main

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventKind int64

const (
	EventDisplayEmotion EventKind = iota
	EventDisplayLook
	EventDisplayAnimation
	EventDisplayImage
	EventDisplayInfo
	EventCameraFrame
	EventFaceDetected
	EventMotionDetected
	EventAudioDetected
	EventSpeechRecognized
	EventAudioLevel
	EventSensorData
	EventProximityAlert
	EventNetworkRequest
	EventShutdown
	EventModuleReady
	EventModuleError
	nEventKinds
)

var eventKindNames = [nEventKinds]string{
	"emotion",
	"look",
	"animation",
	"display-image",
	"display-info",
	"camera-frame",
	"face-detected",
	"motion-detected",
	"audio-detected",
	"speech-recognized",
	"audio-level",
	"sensor-data",
	"proximity-alert",
	"network-request",
	"shutdown",
	"module-ready",
	"module-error",
}

func (k EventKind) String() string {
	if k < 0 || k >= nEventKinds {
		return fmt.Sprintf("EventKind(%d)", int64(k))
	}
	return eventKindNames[k]
}

func ParseEventKind(name string) (EventKind, bool) {
	for i, n := range eventKindNames {
		if n == name {
			return EventKind(i), true
		}
	}
	return 0, false
}

// Payloads. Each event kind carries one of these in Event.Data, by value.

type EmotionData struct {
	Emotion string
}

type AnimationData struct {
	Animation string
}

type LookData struct {
	Direction string
}

type FaceData struct {
	Position *Pt
}

type ImageData struct {
	ImagePath string
	Duration  float64 // seconds, 0 means until replaced
}

// InfoData is a small card with an optional icon and two lines of text, for
// things like a game rank fetched by the network module.
type InfoData struct {
	Title    string
	Subtitle string
	IconPath string
	Duration float64
}

type ModuleData struct {
	Module string
	Err    string
}

type Event struct {
	Id     uuid.UUID
	Kind   EventKind
	Data   any
	Source string
	Time   time.Time
}

// Handler reacts to an event. A returned error is logged by the bus and does
// not stop the event from reaching the other handlers.
type Handler func(Event) error

type subscriber struct {
	id      int64
	handler Handler
}

// EventBus is the queue through which modules talk to each other.
//
// Publishing is allowed from any goroutine. Delivery only happens in
// ProcessEvents, which the main loop calls once per frame, so handlers always
// run on the main goroutine and can touch the display state freely.
// Events published while ProcessEvents runs (usually by handlers) wait for
// the next call. This keeps a frame's work bounded even if handlers keep
// publishing.
type EventBus struct {
	mu          sync.Mutex
	queue       []Event
	subscribers map[EventKind][]subscriber
	nextId      int64
	clock       Clock
	log         *slog.Logger
}

func NewEventBus(log *slog.Logger, clock Clock) *EventBus {
	return &EventBus{
		subscribers: map[EventKind][]subscriber{},
		clock:       clock,
		log:         log,
	}
}

// Subscribe registers a handler for a kind of event. Handlers of the same
// kind run in the order they subscribed. The returned id can be passed to
// Unsubscribe.
func (b *EventBus) Subscribe(kind EventKind, h Handler) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextId++
	b.subscribers[kind] = append(b.subscribers[kind], subscriber{b.nextId, h})
	b.log.Debug("subscribed", slog.String("kind", kind.String()))
	return b.nextId
}

func (b *EventBus) Unsubscribe(kind EventKind, id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subscribers[kind]
	for i := range subs {
		if subs[i].id == id {
			b.subscribers[kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish queues an event. Missing ids and timestamps are filled in.
func (b *EventBus) Publish(e Event) {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	if e.Time.IsZero() {
		e.Time = b.clock.Now()
	}
	b.mu.Lock()
	b.queue = append(b.queue, e)
	b.mu.Unlock()
}

func (b *EventBus) Emit(kind EventKind, data any, source string) {
	b.Publish(Event{Kind: kind, Data: data, Source: source})
}

func (b *EventBus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// ProcessEvents delivers the events queued so far, in order, and returns how
// many were delivered.
func (b *EventBus) ProcessEvents() int {
	b.mu.Lock()
	events := b.queue
	b.queue = nil
	b.mu.Unlock()

	for _, e := range events {
		b.mu.Lock()
		subs := append([]subscriber(nil), b.subscribers[e.Kind]...)
		b.mu.Unlock()
		for _, s := range subs {
			b.deliver(s.handler, e)
		}
	}
	return len(events)
}

func (b *EventBus) deliver(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				slog.String("kind", e.Kind.String()),
				slog.String("event", e.Id.String()),
				slog.Any("panic", r))
		}
	}()
	if err := h(e); err != nil {
		b.log.Error("event handler failed",
			slog.String("kind", e.Kind.String()),
			slog.String("event", e.Id.String()),
			slog.Any("err", err))
	}
}

// Clear drops all queued events.
func (b *EventBus) Clear() {
	b.mu.Lock()
	b.queue = nil
	b.mu.Unlock()
}
