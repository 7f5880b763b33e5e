package sched

// suspendKind discriminates the value a task pauses on.
type suspendKind int

const (
	suspendYield suspendKind = iota
	suspendDelay
	suspendNested
)

// Suspend is what a task produces each time it is resumed and pauses:
// a delay to wait out, a nested task to run first, or nothing at all.
// The zero value behaves like Yield().
type Suspend struct {
	kind   suspendKind
	delay  float64
	nested Task
}

// Delay suspends for the given number of seconds before the next resumption.
// Negative values clamp to zero (eligible again on the very next tick).
func Delay(seconds float64) Suspend {
	if seconds < 0 {
		seconds = 0
	}
	return Suspend{kind: suspendDelay, delay: seconds}
}

// Nested suspends behind another task: the registry steps t to completion
// (inside the same slot) before the suspending task runs again.
func Nested(t Task) Suspend {
	return Suspend{kind: suspendNested, nested: t}
}

// Yield suspends with neither a delay nor a nested task; the task is
// eligible again on the next tick.
func Yield() Suspend {
	return Suspend{}
}

func (s Suspend) String() string {
	switch s.kind {
	case suspendDelay:
		return "Delay"
	case suspendNested:
		return "Nested"
	default:
		return "Yield"
	}
}
