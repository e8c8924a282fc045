// Package clock provides the system clock adapter.
package clock

import (
	"time"

	"golang-actiontrigger/internal/port"
)

// RealClock implements the Clock port with the time package.
type RealClock struct{}

// Ensure RealClock implements the Clock port
var _ port.Clock = RealClock{}

// NewRealClock creates a new RealClock.
func NewRealClock() RealClock {
	return RealClock{}
}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewTicker returns a ticker backed by time.Ticker.
func (RealClock) NewTicker(d time.Duration) port.Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
