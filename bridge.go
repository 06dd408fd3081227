package main

import (
	"fmt"
	"log/slog"
)

// EyeCommands is what the bridge can ask of the eyes.
type EyeCommands interface {
	Trigger(kind AnimationType) bool
	SetLookDirection(direction string)
}

// OverlayCommands is what the bridge can ask of the screen.
type OverlayCommands interface {
	ShowImage(path string, duration float64) error
	ShowInfo(info InfoData) error
}

// emotionAnimations maps emotions to the animation that shows them.
var emotionAnimations = map[string]AnimationType{
	"happy":    AnimationSmile,
	"love":     AnimationHeart,
	"surprise": AnimationShake,
}

// Bridge turns events from the bus into calls on the eyes and the screen.
// It is the boundary between the outside world and the animation logic:
// whatever arrives here that doesn't make sense is logged and dropped, the
// eyes never see it.
type Bridge struct {
	eyes     EyeCommands
	overlays OverlayCommands
	log      *slog.Logger
}

func NewBridge(eyes EyeCommands, overlays OverlayCommands, log *slog.Logger) *Bridge {
	return &Bridge{eyes: eyes, overlays: overlays, log: log}
}

func (b *Bridge) Subscribe(bus *EventBus) {
	bus.Subscribe(EventDisplayEmotion, b.OnEmotion)
	bus.Subscribe(EventDisplayAnimation, b.OnAnimation)
	bus.Subscribe(EventDisplayLook, b.OnLook)
	bus.Subscribe(EventFaceDetected, b.OnFaceDetected)
	bus.Subscribe(EventDisplayImage, b.OnDisplayImage)
	bus.Subscribe(EventDisplayInfo, b.OnDisplayInfo)
}

// payload extracts the data of an event, accepting both T and *T.
func payload[T any](e Event) (T, error) {
	switch v := e.Data.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s event %s has payload %T, expected %T",
		e.Kind, e.Id, e.Data, zero)
}

func (b *Bridge) OnEmotion(e Event) error {
	data, err := payload[EmotionData](e)
	if err != nil {
		b.log.Warn("ignoring event", slog.Any("err", err))
		return nil
	}
	b.log.Debug("emotion event", slog.String("emotion", data.Emotion))
	kind, ok := emotionAnimations[data.Emotion]
	if !ok {
		b.log.Warn("unknown emotion", slog.String("emotion", data.Emotion))
		return nil
	}
	b.eyes.Trigger(kind)
	return nil
}

func (b *Bridge) OnAnimation(e Event) error {
	data, err := payload[AnimationData](e)
	if err != nil {
		b.log.Warn("ignoring event", slog.Any("err", err))
		return nil
	}
	b.log.Debug("animation event", slog.String("animation", data.Animation))
	kind, ok := ParseAnimationType(data.Animation)
	if !ok {
		b.log.Warn("unknown animation", slog.String("animation", data.Animation))
		return nil
	}
	b.eyes.Trigger(kind)
	return nil
}

func (b *Bridge) OnLook(e Event) error {
	data, err := payload[LookData](e)
	if err != nil {
		b.log.Warn("ignoring event", slog.Any("err", err))
		return nil
	}
	if data.Direction == "" {
		data.Direction = "center"
	}
	b.log.Debug("look event", slog.String("direction", data.Direction))
	b.eyes.SetLookDirection(data.Direction)
	return nil
}

// OnFaceDetected looks straight at the person. The face position is not
// mapped to a direction yet, only its presence matters.
func (b *Bridge) OnFaceDetected(e Event) error {
	data, err := payload[FaceData](e)
	if err != nil {
		b.log.Warn("ignoring event", slog.Any("err", err))
		return nil
	}
	if data.Position == nil {
		return nil
	}
	b.log.Debug("face detected",
		slog.Float64("x", data.Position.X), slog.Float64("y", data.Position.Y))
	b.eyes.SetLookDirection("center")
	return nil
}

func (b *Bridge) OnDisplayImage(e Event) error {
	data, err := payload[ImageData](e)
	if err != nil {
		b.log.Warn("ignoring event", slog.Any("err", err))
		return nil
	}
	if data.ImagePath == "" {
		b.log.Warn("display-image event without a path", slog.String("event", e.Id.String()))
		return nil
	}
	if err = b.overlays.ShowImage(data.ImagePath, data.Duration); err != nil {
		b.log.Error("failed to show image",
			slog.String("path", data.ImagePath), slog.Any("err", err))
	}
	return nil
}

func (b *Bridge) OnDisplayInfo(e Event) error {
	data, err := payload[InfoData](e)
	if err != nil {
		b.log.Warn("ignoring event", slog.Any("err", err))
		return nil
	}
	if err = b.overlays.ShowInfo(data); err != nil {
		b.log.Error("failed to show info", slog.Any("err", err))
	}
	return nil
}
