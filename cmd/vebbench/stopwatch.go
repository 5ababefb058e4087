package main

import (
	"log/slog"
	"time"
)

// stopwatch logs the time spent in consecutive phases of a run.
type stopwatch struct {
	logger *slog.Logger
	start  time.Time
	last   time.Time
}

func newStopwatch(logger *slog.Logger, name string) *stopwatch {
	now := time.Now()
	logger = logger.With("stopwatch", name)
	logger.Debug("starting stopwatch")
	return &stopwatch{
		logger: logger,
		start:  now,
		last:   now,
	}
}

// lap logs and returns the time elapsed since the previous lap.
func (s *stopwatch) lap(phase string) time.Duration {
	now := time.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	s.logger.Info("phase done", "phase", phase, "elapsed", elapsed)
	return elapsed
}

// total logs and returns the time elapsed since the stopwatch started.
func (s *stopwatch) total() time.Duration {
	elapsed := time.Since(s.start)
	s.logger.Info("total", "elapsed", elapsed)
	return elapsed
}
