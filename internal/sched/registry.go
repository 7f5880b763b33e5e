package sched

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// slot is the registry's record of one scheduled task. chain[0] is the
// task handed to Schedule; when a task suspends on a nested task, that
// task is pushed behind it, so the tail of chain is the innermost
// pending suspension (the slot's current frontier). delay is the
// remaining wait of that frontier, not of the top-level task.
//
// A stopped slot is only marked empty (id 0, chain nil); it keeps its
// position, and its storage, until the next Advance sweeps it out.
type slot struct {
	id    TaskID
	chain []Task
	delay float64
}

// Registry owns the set of active tasks and drives them cooperatively:
// one Advance call per external tick resumes every eligible slot in
// scheduling order. All methods must be called from the single goroutine
// that owns the registry; Schedule and Stop are safe to call from inside
// a task body during its own resumption, Advance is not.
type Registry struct {
	slots    *arraylist.List // of *slot, in scheduling order
	nextID   TaskID
	statusCh chan StatusEvent
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: arraylist.New()}
}

// Schedule appends t with no initial delay, eligible on the very next
// Advance call, and returns a Handle bound to its identity.
func (r *Registry) Schedule(t Task) Handle {
	return r.ScheduleAfter(t, 0)
}

// ScheduleAfter appends t with an initial delay in seconds. A negative
// delay clamps to zero. Scheduling from inside a task body appends a
// slot that is not visited until the next Advance call.
func (r *Registry) ScheduleAfter(t Task, delay float64) Handle {
	if delay < 0 {
		delay = 0
	}
	r.nextID++
	id := r.nextID
	r.slots.Add(&slot{id: id, chain: []Task{t}, delay: delay})
	r.emit(StatusEvent{Kind: StatusEnqueue, Task: id, Delay: delay})
	return Handle{reg: r, id: id}
}

// Stop marks the handle's slot empty. The task stops being stepped at
// once and IsRunning reports false immediately, but the slot itself is
// swept out on the next Advance, so Count is unchanged until then.
// Returns false when the identity is not present (already completed,
// already stopped, or never scheduled here).
func (r *Registry) Stop(h Handle) bool {
	if h.reg != r {
		return false
	}
	s := r.find(h.id)
	if s == nil {
		return false
	}
	s.id = 0
	s.chain = nil
	s.delay = 0
	r.emit(StatusEvent{Kind: StatusStop, Task: h.id})
	return true
}

// StopAll drops every slot immediately; Count is 0 on return. Unlike
// Stop there is no lazy sweep.
func (r *Registry) StopAll() {
	r.slots.Clear()
	r.emit(StatusEvent{Kind: StatusClear})
}

// IsRunning reports whether a slot currently holds the handle's
// identity. Empty-marked slots do not count, and neither does a handle
// issued by a different registry.
func (r *Registry) IsRunning(h Handle) bool {
	if h.reg != r {
		return false
	}
	return r.find(h.id) != nil
}

// Count returns the current slot count, including stopped slots that
// have not been swept yet.
func (r *Registry) Count() int {
	return r.slots.Size()
}

// Advance runs one tick: every slot present at the start of the call is
// visited in scheduling order, each fully resolved (including any
// nested-chain collapse) before the next begins. elapsed is the time
// since the previous tick, in seconds; the registry keeps no clock of
// its own. Returns true iff at least one slot was present when the call
// began, even if all of them completed or were empty during it.
func (r *Registry) Advance(elapsed float64) bool {
	if r.slots.Empty() {
		return false
	}
	n := r.slots.Size()
	for i := 0; i < n && i < r.slots.Size(); {
		v, _ := r.slots.Get(i)
		s := v.(*slot)
		if s.id == 0 {
			// stopped earlier; sweep it now
			r.slots.Remove(i)
			n--
			continue
		}
		if s.step(elapsed) {
			i++
			continue
		}
		if s.id != 0 {
			// id 0 here means the task stopped its own slot
			// mid-resumption, which is a stop, not a finish
			r.emit(StatusEvent{Kind: StatusFinish, Task: s.id})
		}
		r.slots.Remove(i)
		n--
	}
	r.emit(StatusEvent{Kind: StatusTick, Count: r.slots.Size()})
	return true
}

// find locates the slot holding id. Linear scan, first match: identities
// are unique, so at most one slot can hold a given id.
func (r *Registry) find(id TaskID) *slot {
	if id == 0 {
		return nil
	}
	it := r.slots.Iterator()
	for it.Next() {
		if s := it.Value().(*slot); s.id == id {
			return s
		}
	}
	return nil
}

// step advances the slot by one tick and reports whether its top-level
// task is still running.
func (s *slot) step(elapsed float64) bool {
	if s.delay > 0 {
		s.delay -= elapsed
		if s.delay > 0 {
			return true
		}
		// the wait ran out mid-tick; resume in this same call, and
		// the overshoot is not carried into the next wait
		s.delay = 0
	}
	for {
		task := s.chain[len(s.chain)-1]
		sv, running := task.Resume()
		if s.id == 0 {
			// the task stopped its own slot during this resumption
			// (Stop niled the chain out from under us); drop the
			// whole chain without resuming anything further
			return false
		}
		if !running {
			if len(s.chain) == 1 {
				return false
			}
			// an inner task finished: drop its frame, clear any
			// residual wait, and give the outer task its step in
			// the same tick
			s.chain = s.chain[:len(s.chain)-1]
			s.delay = 0
			continue
		}
		switch sv.kind {
		case suspendDelay:
			s.delay = sv.delay
		case suspendNested:
			// the fresh nested task gets its first step next tick
			s.chain = append(s.chain, sv.nested)
		case suspendYield:
			// eligible again next tick, no wait
		}
		return true
	}
}
