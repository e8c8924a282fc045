// Package subscriber provides the trigger source fed by the trigger_input channel.
package subscriber

import (
	"context"

	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"
)

// Kind is the trigger_src value selecting this source.
const Kind = "subscriber"

// Source turns every trigger_input message into one trigger event.
// The boolean payload is not inspected: false triggers just like true.
type Source struct {
	queue *Queue
	clock port.Clock
}

// Ensure Source implements the TriggerSource port
var _ port.TriggerSource = (*Source)(nil)

// NewSource creates a source consuming queue.
func NewSource(queue *Queue, clock port.Clock) *Source {
	return &Source{queue: queue, clock: clock}
}

// Kind returns the source name.
func (s *Source) Kind() string {
	return Kind
}

// Run emits one event per queued message until the context is cancelled.
func (s *Source) Run(ctx context.Context, out chan<- port.TriggerEvent) error {
	logger := logging.WithComponent("subscriber").WithField("topic", "trigger_input")
	logger.Info("Starting trigger_input subscriber")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscriber stopped due to context cancellation")
			return ctx.Err()
		case value := <-s.queue.Messages():
			logger.WithField("data", value).Debug("Received trigger_input message")
			select {
			case out <- port.TriggerEvent{Source: Kind, At: s.clock.Now()}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
