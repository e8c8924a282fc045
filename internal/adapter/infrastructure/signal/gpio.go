package signal

import (
	"context"
	"fmt"

	"golang-actiontrigger/internal/pkg/config"
	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"

	"github.com/stianeikeland/go-rpio/v4"
)

// GPIOFeed publishes a message on each rising edge of a Raspberry Pi input pin.
// Requires access to /dev/gpiomem or root.
type GPIOFeed struct {
	cfg config.GPIOInputConfig
}

// NewGPIOFeed creates a feed polling cfg.Pin.
func NewGPIOFeed(cfg config.GPIOInputConfig) *GPIOFeed {
	return &GPIOFeed{cfg: cfg}
}

// Name identifies the feed in logs.
func (f *GPIOFeed) Name() string {
	return fmt.Sprintf("gpio:%d", f.cfg.Pin)
}

// Run maps GPIO memory, configures the pin as input and polls it until the
// context is cancelled.
func (f *GPIOFeed) Run(ctx context.Context, publisher port.SignalPublisher) error {
	logger := logging.WithComponent("gpio-input").WithField("pin", f.cfg.Pin)

	if err := rpio.Open(); err != nil {
		return fmt.Errorf("failed to open GPIO: %w (are you running on a Raspberry Pi?)", err)
	}
	defer rpio.Close()

	pin := rpio.Pin(f.cfg.Pin)
	pin.Input()
	if f.cfg.PullDown {
		pin.PullDown()
	}
	logger.Info("Starting GPIO trigger input")

	return pollEdges(ctx, f.cfg.Interval, func() (bool, error) {
		return pin.Read() == rpio.High, nil
	}, publisher, logger)
}
