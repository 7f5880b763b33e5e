package job

import (
	"github.com/rs/zerolog"

	"cotick/internal/sched"
)

// Pulse returns a routine that logs a heartbeat every interval seconds,
// n times, then completes.
func Pulse(log zerolog.Logger, name string, interval float64, n int) sched.Task {
	return sched.Routine(func(y *sched.Yielder) {
		for i := 1; i <= n; i++ {
			y.Sleep(interval)
			log.Info().Str("job", name).Int("beat", i).Msg("pulse")
		}
	})
}

// Countdown returns a routine that counts down one step per tick, with
// no delay in between. Handy for exercising plain per-tick yielding.
func Countdown(log zerolog.Logger, name string, from int) sched.Task {
	return sched.Routine(func(y *sched.Yielder) {
		for i := from; i > 0; i-- {
			log.Debug().Str("job", name).Int("left", i).Msg("countdown")
			y.Pause()
		}
		log.Info().Str("job", name).Msg("countdown done")
	})
}
