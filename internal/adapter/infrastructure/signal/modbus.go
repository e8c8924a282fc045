package signal

import (
	"context"
	"fmt"

	"golang-actiontrigger/internal/pkg/config"
	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"

	"github.com/goburrow/modbus"
)

// CoilReader is the subset of modbus.Client used by ModbusFeed.
type CoilReader interface {
	ReadCoils(address, quantity uint16) ([]byte, error)
}

// ModbusFeed publishes a message on each rising edge of a Modbus TCP coil.
type ModbusFeed struct {
	cfg     config.ModbusInputConfig
	handler *modbus.TCPClientHandler
	client  CoilReader
}

// NewModbusFeed creates a feed polling cfg.Coil on cfg.Endpoint.
func NewModbusFeed(cfg config.ModbusInputConfig) *ModbusFeed {
	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.SlaveId = cfg.UnitID
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}
	return &ModbusFeed{
		cfg:     cfg,
		handler: h,
		client:  modbus.NewClient(h),
	}
}

// Name identifies the feed in logs.
func (f *ModbusFeed) Name() string {
	return "modbus:" + f.cfg.Endpoint
}

// Run polls the coil until the context is cancelled.
func (f *ModbusFeed) Run(ctx context.Context, publisher port.SignalPublisher) error {
	logger := logging.WithComponent("modbus-input").WithFields(map[string]interface{}{
		"endpoint": f.cfg.Endpoint,
		"coil":     f.cfg.Coil,
	})
	logger.Info("Starting Modbus trigger input")

	if f.handler != nil {
		defer f.handler.Close()
	}

	return pollEdges(ctx, f.cfg.Interval, f.readCoil, publisher, logger)
}

func (f *ModbusFeed) readCoil() (bool, error) {
	bits, err := f.client.ReadCoils(f.cfg.Coil, 1)
	if err != nil {
		return false, err
	}
	if len(bits) == 0 {
		return false, fmt.Errorf("modbus: empty coil response")
	}
	return bits[0]&0x01 != 0, nil
}
