package teapot

import "sync/atomic"

// Stats counts what a Scene has rendered.
type Stats struct {
	// Frames is the number of completed Render calls.
	Frames uint64
	// Draws is the number of DrawElements calls issued.
	Draws uint64
	// DegradedBinds counts attribute binds that fell back to a disabled
	// slot because the object had no buffer for it.
	DegradedBinds uint64
	// GLErrors counts frames that ended with a pending GL error.
	GLErrors uint64
	// Events is the number of input events applied.
	Events uint64
	// DroppedEvents counts events discarded because the queue was full.
	DroppedEvents uint64
}

type statsCounters struct {
	frames        atomic.Uint64
	draws         atomic.Uint64
	degradedBinds atomic.Uint64
	glErrors      atomic.Uint64
	events        atomic.Uint64
	droppedEvents atomic.Uint64
}

func (c *statsCounters) snapshot() Stats {
	return Stats{
		Frames:        c.frames.Load(),
		Draws:         c.draws.Load(),
		DegradedBinds: c.degradedBinds.Load(),
		GLErrors:      c.glErrors.Load(),
		Events:        c.events.Load(),
		DroppedEvents: c.droppedEvents.Load(),
	}
}
