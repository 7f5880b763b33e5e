package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cotick/internal/job"
	"cotick/internal/sched"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		csvPath    string
	)
	cmd := &cobra.Command{
		Use:   "cotick",
		Short: "Drive a set of demo cooperative tasks through the tick registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sched.Load(configPath)
			if csvPath != "" {
				cfg.CSVPath = csvPath
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "path to the YAML config")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write registry events to this CSV file (overrides config)")
	return cmd
}

func run(cfg sched.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}).
		Level(level).With().Timestamp().Logger()
	log.Info().Int("tick_ms", cfg.TickMS).Float64("run_seconds", cfg.RunSeconds).Msg("starting")

	reg := sched.NewRegistry()
	events := reg.StatusChannel()

	var csvLog *eventLog
	if cfg.CSVPath != "" {
		csvLog, err = newEventLog(cfg.CSVPath)
		if err != nil {
			return err
		}
		defer csvLog.Close()
	}

	// Everything stays on this goroutine: the registry is advanced and
	// its event stream drained between ticks.
	drain := func() {
		for {
			select {
			case ev := <-events:
				handleEvent(log, csvLog, ev)
			default:
				return
			}
		}
	}

	reg.Schedule(job.Pulse(log, "pulse", 1.0, 5))
	reg.ScheduleAfter(job.Countdown(log, "count", 10), 0.5)
	reg.Schedule(job.Supervise(log, reg, "super", job.Pulse(log, "worker", 0.5, 4)))
	// never completes on its own; stopped by handle below
	runaway := reg.Schedule(job.Pulse(log, "runaway", 0.25, 1<<30))

	clock := sched.NewTickClock(256)
	clock.Start(time.Duration(cfg.TickMS) * time.Millisecond)
	defer clock.Stop()

	total := 0.0
	for dt := range clock.Ch {
		if cfg.RunSeconds > 0 && total >= cfg.RunSeconds/2 && runaway.IsRunning() {
			runaway.Stop()
			log.Info().Msg("runaway job stopped by handle")
		}
		if !reg.Advance(dt) {
			log.Info().Int64("ticks", clock.Count()).Msg("registry drained")
			break
		}
		drain()
		total += dt
		if cfg.RunSeconds > 0 && total >= cfg.RunSeconds {
			reg.StopAll()
			log.Info().Int64("ticks", clock.Count()).Msg("run time over, all tasks stopped")
			break
		}
	}
	drain()
	return nil
}

// handleEvent logs one registry event. Ticks occur constantly, so they
// are skipped for the brevity of output.
func handleEvent(log zerolog.Logger, csvLog *eventLog, ev sched.StatusEvent) {
	if ev.Kind == sched.StatusTick {
		return
	}
	log.Debug().
		Stringer("event", ev.Kind).
		Uint64("task", uint64(ev.Task)).
		Float64("delay", ev.Delay).
		Msg("registry")
	if csvLog != nil {
		csvLog.record(ev)
	}
}
