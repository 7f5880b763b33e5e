package sched

import (
	"time"
)

// StatusKind represents the type of registry event.
type StatusKind int

const (
	StatusEnqueue StatusKind = iota
	StatusStop
	StatusClear
	StatusFinish
	StatusTick
)

// StatusEvent is emitted on key registry actions and once per Advance.
type StatusEvent struct {
	Time  time.Time
	Kind  StatusKind
	Task  TaskID
	Delay float64
	Count int // slot count after the tick, for StatusTick
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusEnqueue:
		return "Enqueued"
	case StatusStop:
		return "Stopped"
	case StatusClear:
		return "Cleared"
	case StatusFinish:
		return "Finish"
	case StatusTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// StatusChannel exposes a read-only event stream (optional consumers).
// The stream is buffered and lossy: events are dropped rather than
// blocking the tick loop when no one is draining.
func (r *Registry) StatusChannel() <-chan StatusEvent {
	if r.statusCh == nil {
		r.statusCh = make(chan StatusEvent, 256)
	}
	return r.statusCh
}

func (r *Registry) emit(ev StatusEvent) {
	if r.statusCh == nil {
		return
	}
	ev.Time = time.Now()
	select {
	case r.statusCh <- ev:
	default:
	}
}
