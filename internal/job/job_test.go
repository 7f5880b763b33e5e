package job

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cotick/internal/sched"
)

func TestSuperviseJoinsOnWorker(t *testing.T) {
	r := require.New(t)
	log := zerolog.Nop()
	reg := sched.NewRegistry()

	reg.Schedule(Supervise(log, reg, "sup", Countdown(log, "worker", 2)))

	ticks := 0
	for ; ticks < 20; ticks++ {
		if !reg.Advance(0.1) {
			break
		}
	}
	r.Less(ticks, 20, "supervisor never joined")
	r.Equal(0, reg.Count())
}

func TestPulseSleepsBetweenBeats(t *testing.T) {
	r := require.New(t)
	reg := sched.NewRegistry()

	reg.Schedule(Pulse(zerolog.Nop(), "p", 0.5, 2))

	reg.Advance(0.1) // first resumption starts the first wait
	r.Equal(1, reg.Count())
	reg.Advance(0.5) // first beat, second wait begins
	r.Equal(1, reg.Count())
	reg.Advance(0.5) // second beat, routine returns
	r.Equal(0, reg.Count())
}
