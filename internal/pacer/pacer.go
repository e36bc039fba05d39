// Package pacer spaces out consecutive requests to the provider.
//
// The provider tolerates sparse traffic but throttles bursts, so the pacer
// only delays a dispatch when the previous one happened inside a trailing
// window. Chat traffic is interactive and is not paced.
package pacer

import (
	"sync"
	"time"
)

const (
	// DefaultWindow is the trailing window within which a previous
	// dispatch triggers a delay.
	DefaultWindow = 20 * time.Second

	// DefaultDelay is the minimum spacing applied inside the window.
	DefaultDelay = 750 * time.Millisecond
)

// Pacer tracks the last dispatch time and delays bursty callers.
// Safe for concurrent use.
type Pacer struct {
	mu     sync.Mutex
	last   time.Time
	window time.Duration
	delay  time.Duration

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Pacer with the default window and delay.
func New() *Pacer {
	return &Pacer{
		window: DefaultWindow,
		delay:  DefaultDelay,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// NewWithClock creates a Pacer with an injected clock and sleep function.
func NewWithClock(window, delay time.Duration, now func() time.Time, sleep func(time.Duration)) *Pacer {
	return &Pacer{
		window: window,
		delay:  delay,
		now:    now,
		sleep:  sleep,
	}
}

// Wait blocks for the minimum delay if the previous dispatch happened
// within the trailing window. The last-dispatch timestamp is always
// updated, whether or not a delay was applied.
func (p *Pacer) Wait() {
	p.mu.Lock()
	var delay time.Duration
	if !p.last.IsZero() && p.now().Sub(p.last) < p.window {
		delay = p.delay
	}
	p.last = p.now()
	p.mu.Unlock()

	if delay > 0 {
		p.sleep(delay)
	}
}
