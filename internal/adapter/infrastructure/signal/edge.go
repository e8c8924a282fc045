// Package signal provides feeds that publish boolean messages on the
// trigger_input channel from external inputs.
package signal

import (
	"context"
	"time"

	"golang-actiontrigger/internal/port"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Feed publishes trigger_input messages until its context is cancelled.
type Feed interface {
	Run(ctx context.Context, publisher port.SignalPublisher) error
	Name() string
}

// pollEdges samples read every interval and publishes true on each rising edge.
// Read errors are logged at most once per second and reset the edge state.
func pollEdges(ctx context.Context, interval time.Duration, read func() (bool, error), publisher port.SignalPublisher, logger *logrus.Entry) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	readErrors := rate.Sometimes{Interval: time.Second}
	previous := false
	primed := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			level, err := read()
			if err != nil {
				readErrors.Do(func() {
					logger.WithError(err).Error("Failed to read trigger input")
				})
				primed = false
				continue
			}
			// the first sample only establishes the level
			if primed && level && !previous {
				publisher.Publish(true)
			}
			previous = level
			primed = true
		}
	}
}
