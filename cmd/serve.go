package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang-actiontrigger/internal/action"
	"golang-actiontrigger/internal/adapter/infrastructure/clock"
	"golang-actiontrigger/internal/adapter/infrastructure/file"
	"golang-actiontrigger/internal/adapter/infrastructure/gige"
	"golang-actiontrigger/internal/adapter/infrastructure/metrics"
	"golang-actiontrigger/internal/adapter/infrastructure/network"
	"golang-actiontrigger/internal/adapter/infrastructure/server"
	signalfeed "golang-actiontrigger/internal/adapter/infrastructure/signal"
	"golang-actiontrigger/internal/adapter/subscriber"
	"golang-actiontrigger/internal/adapter/timer"
	"golang-actiontrigger/internal/pkg/config"
	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"

	"github.com/spf13/cobra"
)

var (
	configFlag string
)

// createTriggerSource creates the trigger source named by trigger_src
func createTriggerSource(cfg *config.Config, queue *subscriber.Queue, clk port.Clock) (port.TriggerSource, error) {
	logger := logging.GetLogger()

	switch cfg.TriggerSource {
	case config.TriggerSourceTimer:
		source, err := timer.NewSource(cfg.Period(), clk)
		if err != nil {
			return nil, err
		}
		logger.WithField("period", cfg.Period().String()).Info("Created timer trigger source")
		return source, nil
	case config.TriggerSourceSubscriber:
		logger.WithField("queue_size", cfg.TriggerInput.QueueSize).Info("Created subscriber trigger source")
		return subscriber.NewSource(queue, clk), nil
	}

	return nil, fmt.Errorf("%w: %q", action.ErrUnknownTriggerSource, cfg.TriggerSource)
}

// createSignalFeeds creates the configured trigger_input feeds other than HTTP
func createSignalFeeds(cfg *config.Config) []signalfeed.Feed {
	var feeds []signalfeed.Feed
	if cfg.TriggerInput.Modbus != nil {
		feeds = append(feeds, signalfeed.NewModbusFeed(*cfg.TriggerInput.Modbus))
	}
	if cfg.TriggerInput.GPIO != nil {
		feeds = append(feeds, signalfeed.NewGPIOFeed(*cfg.TriggerInput.GPIO))
	}
	return feeds
}

// setDestinationAddress programs destination_ip so commands are unicast to one device
func setDestinationAddress(registry port.FeatureRegistry, cfg *config.Config) error {
	ip := cfg.DestinationAddress()
	if ip == nil {
		return nil
	}
	feature, err := registry.FeatureByName(port.FeatureActionDestinationAddress)
	if err != nil {
		return err
	}
	return feature.SetInt(gige.AddressValue(ip))
}

// createFeatureRegistry creates the GigE feature registry on the host's network interfaces
func createFeatureRegistry(cfg *config.Config) port.FeatureRegistry {
	return gige.NewSystem(network.NewManagerAdapter(), file.NewManagerAdapter(), gige.Options{
		Port:       cfg.GVCP.Port,
		AckTimeout: cfg.GVCP.AckTimeout,
		OnAcks:     metrics.ObserveAcks,
	})
}

// runDaemon owns the registry session and the opened interface until ctx is cancelled.
// Every exit path after a successful Startup closes the interface, then shuts the registry down.
func runDaemon(ctx context.Context, cfg *config.Config, registry port.FeatureRegistry) error {
	logger := logging.GetLogger()

	if err := registry.Startup(); err != nil {
		return fmt.Errorf("%w: %w", action.ErrRegistryStartup, err)
	}
	defer func() {
		if err := registry.Shutdown(); err != nil {
			logging.WithError(err).Warn("Failed to shut down feature registry")
		}
	}()

	selector := action.NewSelector(registry)
	iface, err := selector.Select(cfg.DestinationInterface)
	if err != nil {
		return err
	}
	defer selector.Close()

	metrics.SetInterfaceOpen(iface.ID(), true)
	defer metrics.SetInterfaceOpen(iface.ID(), false)

	if err := setDestinationAddress(registry, cfg); err != nil {
		logger.WithField("destination_ip", cfg.DestinationIP).WithError(err).Warn("Failed to set action destination address, broadcasting instead")
	}

	queue := subscriber.NewQueue(cfg.TriggerInput.QueueSize, metrics.ObserveDroppedInput)
	source, err := createTriggerSource(cfg, queue, clock.NewRealClock())
	if err != nil {
		return err
	}

	scope := action.Scope{
		DeviceKey: cfg.ActionDeviceKey,
		GroupKey:  cfg.ActionGroupKey,
		GroupMask: cfg.ActionGroupMask,
	}
	dispatcher := action.NewDispatcher(registry, scope, metrics.Recorder{})

	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// trigger_input feeds only matter when something consumes the queue
	if source.Kind() == subscriber.Kind {
		for _, feed := range createSignalFeeds(cfg) {
			wg.Add(1)
			go func(f signalfeed.Feed) {
				defer wg.Done()
				if err := f.Run(ctx, queue); err != nil && !errors.Is(err, context.Canceled) {
					logger.WithField("feed", f.Name()).WithError(err).Error("Trigger input feed failed")
				}
			}(feed)
		}
	}

	if cfg.Server.Listen != "" {
		var publisher port.SignalPublisher
		if cfg.TriggerInput.HTTP && source.Kind() == subscriber.Kind {
			publisher = queue
		}
		srv := server.New(cfg.Server.Listen, publisher, func() server.Status {
			st := server.Status{Interface: iface.ID(), TriggerSource: source.Kind()}
			if outcome, ok := dispatcher.LastOutcome(); ok {
				st.LastOutcome = outcome.String()
			}
			return st
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Run(ctx); err != nil {
				logging.WithError(err).Error("HTTP server failed")
			}
		}()
	}

	logging.WithInterface(iface.ID()).WithFields(map[string]interface{}{
		"trigger_source": source.Kind(),
		"device_key":     scope.DeviceKey,
		"group_key":      scope.GroupKey,
		"group_mask":     scope.GroupMask,
	}).Info("Daemon ready")

	err = dispatcher.Run(ctx, source)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Open the configured interface and send an action command on every trigger",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load and validate configuration
		cfg, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Starting daemon")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case sig := <-sigChan:
				logger.WithField("signal", sig.String()).Info("Received shutdown signal")
				cancel()
			case <-ctx.Done():
			}
		}()

		if err := runDaemon(ctx, cfg, createFeatureRegistry(cfg)); err != nil {
			logging.WithError(err).Error("Daemon stopped")
			return err
		}
		logger.Info("Daemon stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(serveCmd)
}
