package job

import (
	"github.com/rs/zerolog"

	"cotick/internal/sched"
)

// Supervise returns a routine that schedules worker as an independent
// task on reg and then joins on it via its handle. The worker keeps its
// own slot, so stopping the supervisor would not stop the worker.
func Supervise(log zerolog.Logger, reg *sched.Registry, name string, worker sched.Task) sched.Task {
	return sched.Routine(func(y *sched.Yielder) {
		h := reg.Schedule(worker)
		log.Info().Str("job", name).Msg("worker scheduled, waiting")
		y.Await(h.Wait())
		log.Info().Str("job", name).Msg("worker finished")
	})
}
