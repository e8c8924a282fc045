package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang-actiontrigger/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Trigger source names accepted by trigger_src.
const (
	TriggerSourceTimer      = "timer"
	TriggerSourceSubscriber = "subscriber"
)

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`

	DestinationIP        string  `yaml:"destination_ip"`
	DestinationInterface string  `yaml:"destination_interface"`
	TriggerSource        string  `yaml:"trigger_src"`
	TimerPeriod          float64 `yaml:"timer_period"`
	ActionDeviceKey      uint32  `yaml:"action_device_key"`
	ActionGroupKey       uint32  `yaml:"action_group_key"`
	ActionGroupMask      uint32  `yaml:"action_group_mask"`

	GVCP         GVCPConfig         `yaml:"gvcp"`
	TriggerInput TriggerInputConfig `yaml:"trigger_input"`
	Server       ServerConfig       `yaml:"server"`
}

// GVCPConfig configures the action command transport
type GVCPConfig struct {
	Port int `yaml:"port"`
	// AckTimeout > 0 requests ACTION_ACKs and waits this long for at least one.
	AckTimeout time.Duration `yaml:"ack_timeout"`
}

// TriggerInputConfig configures the inbound trigger_input channel used by the subscriber source
type TriggerInputConfig struct {
	QueueSize int                `yaml:"queue_size"`
	HTTP      bool               `yaml:"http"`
	Modbus    *ModbusInputConfig `yaml:"modbus,omitempty"`
	GPIO      *GPIOInputConfig   `yaml:"gpio,omitempty"`
}

// ModbusInputConfig polls a coil over Modbus TCP
type ModbusInputConfig struct {
	Endpoint string        `yaml:"endpoint"`
	UnitID   uint8         `yaml:"unit_id"`
	Coil     uint16        `yaml:"coil"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// GPIOInputConfig polls a Raspberry Pi input pin
type GPIOInputConfig struct {
	Pin      int           `yaml:"pin"`
	PullDown bool          `yaml:"pull_down"`
	Interval time.Duration `yaml:"interval"`
}

// ServerConfig configures the HTTP server for /metrics, /healthz and /trigger_input
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// Default returns a configuration holding the parameter defaults.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		TriggerSource:   TriggerSourceTimer,
		TimerPeriod:     0.2,
		ActionDeviceKey: 1,
		ActionGroupKey:  1,
		ActionGroupMask: 1,
		GVCP: GVCPConfig{
			Port: 3956,
		},
		TriggerInput: TriggerInputConfig{
			QueueSize: 10,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Period returns timer_period as a duration.
func (c *Config) Period() time.Duration {
	return time.Duration(c.TimerPeriod * float64(time.Second))
}

// DestinationAddress returns the parsed destination_ip, or nil when unset.
func (c *Config) DestinationAddress() net.IP {
	if c.DestinationIP == "" {
		return nil
	}
	return net.ParseIP(c.DestinationIP).To4()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DestinationInterface == "" {
		return fmt.Errorf("destination_interface is required")
	}

	if c.DestinationIP != "" && c.DestinationAddress() == nil {
		return fmt.Errorf("destination_ip %q is not a valid IPv4 address", c.DestinationIP)
	}

	switch c.TriggerSource {
	case TriggerSourceTimer:
		if c.Period() <= 0 {
			return fmt.Errorf("timer_period must be > 0, got %v", c.TimerPeriod)
		}
	case TriggerSourceSubscriber:
	default:
		return fmt.Errorf("unknown trigger_src %q, must be %q or %q", c.TriggerSource, TriggerSourceTimer, TriggerSourceSubscriber)
	}

	if c.GVCP.Port <= 0 || c.GVCP.Port > 65535 {
		return fmt.Errorf("gvcp: port %d out of range", c.GVCP.Port)
	}
	if c.GVCP.AckTimeout < 0 {
		return fmt.Errorf("gvcp: ack_timeout must not be negative")
	}

	if c.TriggerSource == TriggerSourceSubscriber {
		if err := c.validateTriggerInput(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateTriggerInput() error {
	in := c.TriggerInput
	if in.QueueSize < 1 {
		return fmt.Errorf("trigger_input: queue_size must be >= 1")
	}
	if in.HTTP && c.Server.Listen == "" {
		return fmt.Errorf("trigger_input: http requires server.listen")
	}
	if in.Modbus != nil {
		if in.Modbus.Endpoint == "" {
			return fmt.Errorf("trigger_input.modbus: endpoint is required")
		}
		if in.Modbus.Interval <= 0 {
			return fmt.Errorf("trigger_input.modbus: interval must be > 0")
		}
	}
	if in.GPIO != nil {
		if in.GPIO.Pin < 0 {
			return fmt.Errorf("trigger_input.gpio: invalid pin %d", in.GPIO.Pin)
		}
		if in.GPIO.Interval <= 0 {
			return fmt.Errorf("trigger_input.gpio: interval must be > 0")
		}
	}
	if !c.HasSignalFeeds() {
		return fmt.Errorf("trigger_input: subscriber source needs at least one of http, modbus or gpio")
	}
	return nil
}

// HasSignalFeeds reports whether any trigger_input feed is configured.
func (c *Config) HasSignalFeeds() bool {
	in := c.TriggerInput
	return in.HTTP || in.Modbus != nil || in.GPIO != nil
}
