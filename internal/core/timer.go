package core

import "time"

// FixedStep gates simulation ticks by elapsed wall-clock time, independent of
// how often the render loop polls it.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep firing once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &FixedStep{interval: interval}
}

// ShouldStep reports whether a full interval has elapsed since the last tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		return true
	}
	return false
}

// Reset discards any accumulated time, delaying the next tick by a full
// interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
