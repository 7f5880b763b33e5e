package main

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"cotick/internal/sched"
)

// eventLog appends registry events to a CSV file, one row per event.
type eventLog struct {
	f *os.File
	w *csv.Writer
}

func newEventLog(path string) (*eventLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"timestamp", "event", "task_id", "delay", "count"})
	w.Flush()
	return &eventLog{f: f, w: w}, nil
}

func (l *eventLog) record(ev sched.StatusEvent) {
	l.w.Write([]string{
		ev.Time.Format(time.RFC3339Nano),
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.Task), 10),
		strconv.FormatFloat(ev.Delay, 'f', 3, 64),
		strconv.Itoa(ev.Count),
	})
	l.w.Flush()
}

func (l *eventLog) Close() error {
	l.w.Flush()
	return l.f.Close()
}
