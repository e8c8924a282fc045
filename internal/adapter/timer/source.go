// Package timer provides the periodic trigger source.
package timer

import (
	"context"
	"fmt"
	"time"

	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"
)

// Kind is the trigger_src value selecting this source.
const Kind = "timer"

// Source emits one trigger event per period. Ticks are approximately periodic;
// a tick missed while the consumer is busy is dropped, not made up later.
type Source struct {
	period time.Duration
	clock  port.Clock
}

// Ensure Source implements the TriggerSource port
var _ port.TriggerSource = (*Source)(nil)

// NewSource creates a timer source firing every period.
func NewSource(period time.Duration, clock port.Clock) (*Source, error) {
	if period <= 0 {
		return nil, fmt.Errorf("timer period must be > 0, got %s", period)
	}
	return &Source{period: period, clock: clock}, nil
}

// Kind returns the source name.
func (s *Source) Kind() string {
	return Kind
}

// Run emits events on out until the context is cancelled.
func (s *Source) Run(ctx context.Context, out chan<- port.TriggerEvent) error {
	logger := logging.WithComponent("timer").WithField("period", s.period.String())
	logger.Info("Starting timer trigger source")

	ticker := s.clock.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Timer trigger source stopped due to context cancellation")
			return ctx.Err()
		case at := <-ticker.C():
			select {
			case out <- port.TriggerEvent{Source: Kind, At: at}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
