package sched

import (
	"github.com/webriots/coro"
)

// TaskID uniquely identifies a scheduled task within its registry.
// IDs are issued by Schedule and never reused; 0 is reserved for the
// empty-slot marker.
type TaskID uint64

// Task represents one resumable unit of work. Each Resume call advances
// the task by a single step and returns the suspension it paused on,
// plus whether it is still running. A task that has reported false must
// not be resumed again.
type Task interface {
	Resume() (Suspend, bool)
}

// StepFunc adapts a plain step function into a Task. The function is
// invoked once per eligible tick; it owns whatever state it needs to
// carry between steps.
type StepFunc func() (Suspend, bool)

func (f StepFunc) Resume() (Suspend, bool) { return f() }

// Yielder is handed to a Routine body and provides its suspension points.
// Calling any method pauses the body until the registry resumes it.
type Yielder struct {
	yield func(Suspend) struct{}
}

// Sleep pauses the body for the given number of seconds of tick time.
func (y *Yielder) Sleep(seconds float64) { y.yield(Delay(seconds)) }

// Await pauses the body behind t; the registry steps t to completion
// inside the same slot before the body runs again.
func (y *Yielder) Await(t Task) { y.yield(Nested(t)) }

// Pause gives up the rest of the current tick; the body is eligible
// again on the next one.
func (y *Yielder) Pause() { y.yield(Yield()) }

type routine struct {
	resume func(struct{}) (Suspend, bool)
}

func (r *routine) Resume() (Suspend, bool) { return r.resume(struct{}{}) }

// Routine runs body as a resumable coroutine: the body executes straight
// through, pausing at each Yielder call, and the returned Task completes
// when the body returns. A panic inside the body propagates out of the
// Resume call (and hence out of Registry.Advance) as a wrapped error.
func Routine(body func(*Yielder)) Task {
	r := &routine{}
	r.resume, _ = coro.New(func(yield func(Suspend) struct{}, _ func() struct{}) Suspend {
		body(&Yielder{yield: yield})
		return Suspend{}
	})
	return r
}
