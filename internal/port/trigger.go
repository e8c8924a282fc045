package port

//go:generate mockgen -destination=../mock/mock_trigger.go -package=mock golang-actiontrigger/internal/port TriggerSource,SignalPublisher

import (
	"context"
	"time"
)

// TriggerEvent is one trigger produced by a TriggerSource.
type TriggerEvent struct {
	// Source is the kind of source that produced the event ("timer" or "subscriber").
	Source string
	// At is the time the event was produced.
	At time.Time
}

// TriggerSource is the primary port for trigger producers.
// Implementations deliver events on out until the context is cancelled.
type TriggerSource interface {
	// Run produces trigger events on out and blocks until the context is cancelled.
	Run(ctx context.Context, out chan<- TriggerEvent) error

	// Kind returns the configured name of the source.
	Kind() string
}

// SignalPublisher accepts inbound boolean trigger messages.
type SignalPublisher interface {
	Publish(value bool)
}
