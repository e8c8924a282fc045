package action

import (
	"fmt"
	"sync"
	"time"

	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// errorLogInterval bounds failure logging to one line per call site and interval.
const errorLogInterval = time.Second

// Outcome is the result of handling one trigger event.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeConfigureFailed
	OutcomeCommandFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeConfigureFailed:
		return "configure_failed"
	case OutcomeCommandFailed:
		return "command_failed"
	default:
		return "unknown"
	}
}

// Recorder observes dispatch outcomes, e.g. for metrics.
type Recorder interface {
	ObserveDispatch(source string, outcome Outcome, elapsed time.Duration)
}

// Dispatcher sends one action command per trigger event:
// configure the scope, run the ActionCommand feature, report the outcome.
// A failed event is never retried; the next event is an independent attempt.
type Dispatcher struct {
	registry     port.FeatureRegistry
	configurator *Configurator
	scope        Scope
	recorder     Recorder
	logger       *logrus.Entry

	configureErrors rate.Sometimes
	commandErrors   rate.Sometimes

	mu         sync.RWMutex
	last       Outcome
	dispatched bool
}

// NewDispatcher creates a dispatcher sending commands scoped by scope.
// recorder may be nil.
func NewDispatcher(registry port.FeatureRegistry, scope Scope, recorder Recorder) *Dispatcher {
	return &Dispatcher{
		registry:        registry,
		configurator:    NewConfigurator(registry),
		scope:           scope,
		recorder:        recorder,
		logger:          logging.WithComponent("dispatcher"),
		configureErrors: rate.Sometimes{Interval: errorLogInterval},
		commandErrors:   rate.Sometimes{Interval: errorLogInterval},
	}
}

// OnTriggerEvent handles one trigger event and runs to completion before returning.
func (d *Dispatcher) OnTriggerEvent(ev port.TriggerEvent) Outcome {
	start := time.Now()
	outcome, err := d.dispatch()
	elapsed := time.Since(start)

	logger := d.logger.WithField("source", ev.Source)
	switch outcome {
	case OutcomeSuccess:
		if d.failedBefore() {
			logger.Info("Action command sent again after failures")
		}
		logger.WithField("elapsed", elapsed).Debug("Action command sent")
	case OutcomeConfigureFailed:
		d.configureErrors.Do(func() {
			logger.WithError(err).Error("Failed to prepare action command")
		})
	case OutcomeCommandFailed:
		d.commandErrors.Do(func() {
			logger.WithError(err).Error("Failed to send action command")
		})
	}

	if d.recorder != nil {
		d.recorder.ObserveDispatch(ev.Source, outcome, elapsed)
	}

	d.mu.Lock()
	d.last = outcome
	d.dispatched = true
	d.mu.Unlock()

	return outcome
}

func (d *Dispatcher) dispatch() (Outcome, error) {
	if err := d.configurator.Prepare(d.scope); err != nil {
		return OutcomeConfigureFailed, fmt.Errorf("%w: %w", ErrConfigureFailed, err)
	}

	command, err := d.registry.FeatureByName(port.FeatureActionCommand)
	if err != nil {
		return OutcomeCommandFailed, fmt.Errorf("%w: %w", ErrCommandNotFound, err)
	}
	if err := command.RunCommand(); err != nil {
		return OutcomeCommandFailed, fmt.Errorf("%w: %w", ErrCommandExecutionFailed, err)
	}
	return OutcomeSuccess, nil
}

func (d *Dispatcher) failedBefore() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dispatched && d.last != OutcomeSuccess
}

// LastOutcome returns the outcome of the most recent trigger event.
// ok is false until the first event has been handled.
func (d *Dispatcher) LastOutcome() (outcome Outcome, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.last, d.dispatched
}
