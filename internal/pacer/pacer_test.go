package pacer

import (
	"testing"
	"time"
)

// fakeClock advances manually and records sleeps instead of blocking.
type fakeClock struct {
	now    time.Time
	slept  []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Sleep(d time.Duration)   { c.slept = append(c.slept, d) }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestPacer(c *fakeClock) *Pacer {
	return NewWithClock(DefaultWindow, DefaultDelay, c.Now, c.Sleep)
}

func TestWait_FirstDispatchNoDelay(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(clock)

	p.Wait()

	if len(clock.slept) != 0 {
		t.Errorf("first dispatch should not sleep, slept %v", clock.slept)
	}
}

func TestWait_BurstInsideWindowDelays(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(clock)

	p.Wait()
	clock.Advance(2 * time.Second)
	p.Wait()

	if len(clock.slept) != 1 {
		t.Fatalf("expected 1 sleep, got %d", len(clock.slept))
	}
	if clock.slept[0] != DefaultDelay {
		t.Errorf("expected delay %v, got %v", DefaultDelay, clock.slept[0])
	}
}

func TestWait_SparseUsageNoDelay(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(clock)

	p.Wait()
	clock.Advance(25 * time.Second)
	p.Wait()

	if len(clock.slept) != 0 {
		t.Errorf("dispatch outside the window should not sleep, slept %v", clock.slept)
	}
}

func TestWait_TimestampUpdatedWithoutDelay(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(clock)

	p.Wait()
	clock.Advance(25 * time.Second)
	p.Wait() // no delay, but must stamp
	clock.Advance(2 * time.Second)
	p.Wait() // inside window relative to previous stamp

	if len(clock.slept) != 1 {
		t.Errorf("expected exactly 1 sleep, got %d", len(clock.slept))
	}
}
