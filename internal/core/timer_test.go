package core

import (
	"testing"
	"time"
)

func TestShouldStepWaitsForInterval(t *testing.T) {
	fs := NewFixedStep(time.Hour)
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			t.Fatal("ShouldStep fired before the interval elapsed")
		}
	}
}

func TestShouldStepFiresAfterInterval(t *testing.T) {
	fs := NewFixedStep(time.Millisecond)
	fs.ShouldStep()
	time.Sleep(5 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("ShouldStep must fire once the interval has elapsed")
	}
}

func TestResetDiscardsAccumulatedTime(t *testing.T) {
	fs := NewFixedStep(time.Millisecond)
	fs.ShouldStep()
	time.Sleep(5 * time.Millisecond)
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("ShouldStep must not fire immediately after Reset")
	}
}
