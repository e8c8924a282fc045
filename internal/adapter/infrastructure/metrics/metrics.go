// Package metrics exposes Prometheus collectors for action command dispatch.
package metrics

import (
	"time"

	"golang-actiontrigger/internal/action"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "actiontrigger_dispatch_total",
			Help: "Total number of trigger events dispatched, by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "actiontrigger_dispatch_duration_seconds",
			Help:    "Time spent configuring and sending one action command",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		},
	)

	TriggerInputDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "actiontrigger_trigger_input_dropped_total",
			Help: "Total number of trigger_input messages dropped because the queue was full",
		},
	)

	ActionAcks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "actiontrigger_action_acks",
			Help:    "Number of devices acknowledging each action command",
			Buckets: prometheus.LinearBuckets(0, 1, 9),
		},
	)

	InterfaceOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "actiontrigger_interface_open",
			Help: "Whether the action command interface is open (1 = open, 0 = closed)",
		},
		[]string{"interface"},
	)
)

// Recorder records dispatch outcomes into the collectors.
type Recorder struct{}

// Ensure Recorder implements action.Recorder
var _ action.Recorder = Recorder{}

// ObserveDispatch counts one dispatched trigger event.
func (Recorder) ObserveDispatch(source string, outcome action.Outcome, elapsed time.Duration) {
	DispatchTotal.WithLabelValues(source, outcome.String()).Inc()
	DispatchDuration.Observe(elapsed.Seconds())
}

// ObserveAcks records how many devices acknowledged one command.
func ObserveAcks(n int) {
	ActionAcks.Observe(float64(n))
}

// ObserveDroppedInput counts one dropped trigger_input message.
func ObserveDroppedInput() {
	TriggerInputDropped.Inc()
}

// SetInterfaceOpen tracks the open state of the action command interface.
func SetInterfaceOpen(iface string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	InterfaceOpen.WithLabelValues(iface).Set(v)
}
