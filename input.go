package teapot

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Input tuning.
const (
	// YawStep is the teapot rotation applied per Left or Right key press.
	YawStep float32 = 0.1
	// DollyStep is the eye movement applied per Up or Down key press.
	DollyStep float32 = 1

	eventQueueSize = 64
)

// EventKind distinguishes input events.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is an input event queued with Post and applied at the start of the
// next frame.
type Event struct {
	Kind EventKind
	// Key is set for EventKey.
	Key gpucontext.Key
	// Width and Height are set for EventResize.
	Width, Height int
}

// KeyEvent returns a key press event.
func KeyEvent(k gpucontext.Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// ResizeEvent returns a viewport resize event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// Post queues e for the next frame. It never blocks and is safe to call
// from any goroutine. It reports false when the queue is full and the
// event was dropped.
func (s *Scene) Post(e Event) bool {
	select {
	case s.events <- e:
		return true
	default:
		s.stats.droppedEvents.Add(1)
		return false
	}
}

// Subscribe forwards key presses and window resizes from src to Post.
//
// Keys: Left and Right turn the teapot, Up and Down move the eye closer
// and farther, R toggles the reflection and Space pauses spinning.
func (s *Scene) Subscribe(src gpucontext.EventSource) {
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		s.Post(KeyEvent(key))
	})
	src.OnResize(func(width, height int) {
		s.Post(ResizeEvent(width, height))
	})
}

// drainEvents applies every queued event. Called with s.mu held.
func (s *Scene) drainEvents() {
	for {
		select {
		case e := <-s.events:
			s.apply(e)
		default:
			return
		}
	}
}

func (s *Scene) apply(e Event) {
	s.stats.events.Add(1)
	switch e.Kind {
	case EventKey:
		s.applyKey(e.Key)
	case EventResize:
		if err := s.setViewport(e.Width, e.Height); err != nil {
			Logger().Debug("teapot: resize ignored", "width", e.Width, "height", e.Height, "err", err)
		}
	}
}

func (s *Scene) applyKey(k gpucontext.Key) {
	switch k {
	case gpucontext.KeyLeft:
		s.yaw -= YawStep
	case gpucontext.KeyRight:
		s.yaw += YawStep
	case gpucontext.KeyUp:
		s.camera.Dolly(-DollyStep)
	case gpucontext.KeyDown:
		s.camera.Dolly(DollyStep)
	case gpucontext.KeyR:
		s.reflection = !s.reflection
		Logger().Debug("teapot: reflection toggled", "on", s.reflection)
	case gpucontext.KeySpace:
		s.spinning = !s.spinning
	}
}
