package action

import (
	"context"
	"fmt"

	"golang-actiontrigger/internal/port"
)

// Run starts source and handles its events one at a time, in arrival order,
// until the context is cancelled. An event being dispatched when the context
// is cancelled is finished before Run returns.
func (d *Dispatcher) Run(ctx context.Context, source port.TriggerSource) error {
	logger := d.logger.WithField("source", source.Kind())

	events := make(chan port.TriggerEvent)
	sourceDone := make(chan error, 1)

	sourceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sourceDone <- source.Run(sourceCtx, events)
	}()

	logger.Info("Dispatching action commands")

	for {
		select {
		case <-ctx.Done():
			cancel()
			<-sourceDone
			logger.Info("Dispatcher stopped due to context cancellation")
			return ctx.Err()
		case err := <-sourceDone:
			if err == nil {
				err = fmt.Errorf("trigger source %s stopped", source.Kind())
			}
			return err
		case ev := <-events:
			d.OnTriggerEvent(ev)
		}
	}
}
