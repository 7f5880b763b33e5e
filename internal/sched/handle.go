package sched

// Handle is a lightweight, copyable reference to a scheduled task. It
// does not own the task; every query and mutation delegates to the
// registry that issued it. Once the task leaves the registry the handle
// dangles permanently — its identity is never reissued. The zero Handle
// is valid and refers to nothing.
type Handle struct {
	reg *Registry
	id  TaskID
}

// IsRunning reports whether the task is still held by the registry.
// Always false for the zero Handle.
func (h Handle) IsRunning() bool {
	if h.reg == nil {
		return false
	}
	return h.reg.IsRunning(h)
}

// Stop stops the task. Returns false immediately when it is not running.
func (h Handle) Stop() bool {
	if !h.IsRunning() {
		return false
	}
	return h.reg.Stop(h)
}

// Wait returns a task that completes once the watched task is no longer
// running; until then it yields one tick at a time. Suspending on it
// (Yielder.Await, or a Nested suspension) is how one task joins on
// another that was scheduled independently: the waiting task resumes,
// via the usual nested-chain collapse, in the same Advance call that
// observes the watched task gone.
//
// Stopping the waiting task does not stop the watched one; the watched
// task occupies its own slot and keeps running until stopped itself.
func (h Handle) Wait() Task {
	return StepFunc(func() (Suspend, bool) {
		if h.IsRunning() {
			return Yield(), true
		}
		return Suspend{}, false
	})
}
