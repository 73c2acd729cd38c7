package loop

import (
	"testing"
	"time"
)

func TestChainRunsFirstStepImmediately(t *testing.T) {
	m := NewManualScheduler()
	calls := 0
	c := NewChain(m, 200*time.Millisecond, func() bool {
		calls++
		return true
	})

	c.Start()

	if calls != 1 {
		t.Errorf("calls after Start = %d, expected 1", calls)
	}
	if !c.Active() {
		t.Error("chain should be active after a continuing step")
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, expected exactly one scheduled step", m.Pending())
	}
}

func TestChainFixedDelay(t *testing.T) {
	m := NewManualScheduler()
	var times []time.Duration
	c := NewChain(m, 200*time.Millisecond, func() bool {
		times = append(times, m.Now())
		return len(times) < 4
	})

	c.Start()
	m.Advance(10 * time.Second)

	expected := []time.Duration{0, 200 * time.Millisecond, 400 * time.Millisecond, 600 * time.Millisecond}
	if len(times) != len(expected) {
		t.Fatalf("steps ran at %v, expected %v", times, expected)
	}
	for i := range expected {
		if times[i] != expected[i] {
			t.Errorf("step %d ran at %v, expected %v", i, times[i], expected[i])
		}
	}
}

func TestChainStopsForGood(t *testing.T) {
	m := NewManualScheduler()
	calls := 0
	c := NewChain(m, 500*time.Millisecond, func() bool {
		calls++
		return calls < 3
	})

	c.Start()
	m.Advance(time.Minute)

	if c.Active() {
		t.Error("chain should be inactive after a terminal step")
	}
	if calls != 3 {
		t.Errorf("calls = %d, expected 3", calls)
	}
	if m.Pending() != 0 {
		t.Errorf("terminal step must not schedule anything, Pending() = %d", m.Pending())
	}
	if c.Steps() != 3 {
		t.Errorf("Steps() = %d, expected 3", c.Steps())
	}

	// Restarting a finished chain is a no-op
	c.Start()
	m.Advance(time.Minute)
	if calls != 3 {
		t.Errorf("finished chain ran again, calls = %d", calls)
	}
}

func TestChainStartTwice(t *testing.T) {
	m := NewManualScheduler()
	calls := 0
	c := NewChain(m, 100*time.Millisecond, func() bool {
		calls++
		return true
	})

	c.Start()
	c.Start()

	if calls != 1 || m.Pending() != 1 {
		t.Errorf("second Start should be ignored, calls = %d pending = %d", calls, m.Pending())
	}
}
