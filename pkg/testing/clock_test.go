package testing

import (
	stdtesting "testing"
	"time"
)

func TestFakeClockAdvance(t *stdtesting.T) {
	clock := NewFakeClock()
	start := clock.Now()

	clock.Advance(16 * time.Millisecond)
	if got := clock.Now().Sub(start); got != 16*time.Millisecond {
		t.Fatalf("advanced by %v, want 16ms", got)
	}

	clock.Advance(time.Second)
	if got := clock.Now().Sub(start); got != time.Second+16*time.Millisecond {
		t.Fatalf("advanced by %v, want 1.016s", got)
	}
}

func TestFakeClockSet(t *stdtesting.T) {
	clock := NewFakeClock()
	target := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(target)
	if !clock.Now().Equal(target) {
		t.Fatalf("Now() = %v, want %v", clock.Now(), target)
	}
}

func TestFakeClockDoesNotTick(t *stdtesting.T) {
	clock := NewFakeClock()
	a := clock.Now()
	time.Sleep(5 * time.Millisecond)
	b := clock.Now()
	if !a.Equal(b) {
		t.Fatal("fake clock moved without Advance")
	}
}
