//go:build unit

package config

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "trigger.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	return configFile
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		config, err := Load(writeConfig(t, "destination_interface: eth1\n"))
		require.NoError(t, err)
		assert.Equal(t, "eth1", config.DestinationInterface)
		assert.Equal(t, TriggerSourceTimer, config.TriggerSource)
		assert.Equal(t, 0.2, config.TimerPeriod)
		assert.Equal(t, 200*time.Millisecond, config.Period())
		assert.Equal(t, uint32(1), config.ActionDeviceKey)
		assert.Equal(t, uint32(1), config.ActionGroupKey)
		assert.Equal(t, uint32(1), config.ActionGroupMask)
		assert.Equal(t, "", config.DestinationIP)
		assert.Equal(t, 3956, config.GVCP.Port)
		assert.Equal(t, 10, config.TriggerInput.QueueSize)
		assert.Equal(t, "info", config.Logging.Level)
	})

	t.Run("FullConfig", func(t *testing.T) {
		configContent := `logging:
  level: debug
  format: compact

destination_ip: 192.168.10.255
destination_interface: enp3s0
trigger_src: subscriber
timer_period: 0.5
action_device_key: 305419896
action_group_key: 2
action_group_mask: 4294967295

gvcp:
  port: 3957
  ack_timeout: 50ms

trigger_input:
  queue_size: 20
  http: true
  modbus:
    endpoint: 10.0.0.5:502
    unit_id: 3
    coil: 17
    interval: 20ms
    timeout: 1s
  gpio:
    pin: 17
    pull_down: true
    interval: 5ms

server:
  listen: ":9102"
`
		config, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "enp3s0", config.DestinationInterface)
		assert.Equal(t, TriggerSourceSubscriber, config.TriggerSource)
		assert.Equal(t, uint32(0x12345678), config.ActionDeviceKey)
		assert.Equal(t, uint32(2), config.ActionGroupKey)
		assert.Equal(t, uint32(0xFFFFFFFF), config.ActionGroupMask)
		assert.Equal(t, net.IPv4(192, 168, 10, 255).To4(), config.DestinationAddress())
		assert.Equal(t, 3957, config.GVCP.Port)
		assert.Equal(t, 50*time.Millisecond, config.GVCP.AckTimeout)
		assert.Equal(t, 20, config.TriggerInput.QueueSize)
		assert.True(t, config.TriggerInput.HTTP)
		require.NotNil(t, config.TriggerInput.Modbus)
		assert.Equal(t, "10.0.0.5:502", config.TriggerInput.Modbus.Endpoint)
		assert.Equal(t, uint8(3), config.TriggerInput.Modbus.UnitID)
		assert.Equal(t, uint16(17), config.TriggerInput.Modbus.Coil)
		assert.Equal(t, 20*time.Millisecond, config.TriggerInput.Modbus.Interval)
		require.NotNil(t, config.TriggerInput.GPIO)
		assert.Equal(t, 17, config.TriggerInput.GPIO.Pin)
		assert.True(t, config.TriggerInput.GPIO.PullDown)
		assert.Equal(t, ":9102", config.Server.Listen)
		assert.True(t, config.HasSignalFeeds())
		assert.NoError(t, config.Validate())
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "invalid: yaml: content: [\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("KeyOutOfRange", func(t *testing.T) {
		_, err := Load(writeConfig(t, "destination_interface: eth0\naction_device_key: 4294967296\n"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.DestinationInterface = "eth1"
		return c
	}

	t.Run("ValidDefaults", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "MissingInterface",
			mutate:  func(c *Config) { c.DestinationInterface = "" },
			wantErr: "destination_interface is required",
		},
		{
			name:    "InvalidDestinationIP",
			mutate:  func(c *Config) { c.DestinationIP = "not-an-ip" },
			wantErr: "not a valid IPv4 address",
		},
		{
			name:    "IPv6DestinationIP",
			mutate:  func(c *Config) { c.DestinationIP = "fe80::1" },
			wantErr: "not a valid IPv4 address",
		},
		{
			name:    "ZeroTimerPeriod",
			mutate:  func(c *Config) { c.TimerPeriod = 0 },
			wantErr: "timer_period must be > 0",
		},
		{
			name:    "NegativeTimerPeriod",
			mutate:  func(c *Config) { c.TimerPeriod = -1 },
			wantErr: "timer_period must be > 0",
		},
		{
			name:    "PortOutOfRange",
			mutate:  func(c *Config) { c.GVCP.Port = 70000 },
			wantErr: "port 70000 out of range",
		},
		{
			name:    "NegativeAckTimeout",
			mutate:  func(c *Config) { c.GVCP.AckTimeout = -time.Second },
			wantErr: "ack_timeout must not be negative",
		},
		{
			name: "SubscriberQueueTooSmall",
			mutate: func(c *Config) {
				c.TriggerSource = TriggerSourceSubscriber
				c.TriggerInput.QueueSize = 0
			},
			wantErr: "queue_size must be >= 1",
		},
		{
			name: "SubscriberHTTPWithoutServer",
			mutate: func(c *Config) {
				c.TriggerSource = TriggerSourceSubscriber
				c.TriggerInput.HTTP = true
			},
			wantErr: "http requires server.listen",
		},
		{
			name: "SubscriberModbusWithoutEndpoint",
			mutate: func(c *Config) {
				c.TriggerSource = TriggerSourceSubscriber
				c.TriggerInput.Modbus = &ModbusInputConfig{Interval: time.Millisecond}
			},
			wantErr: "endpoint is required",
		},
		{
			name: "SubscriberGPIOWithoutInterval",
			mutate: func(c *Config) {
				c.TriggerSource = TriggerSourceSubscriber
				c.TriggerInput.GPIO = &GPIOInputConfig{Pin: 4}
			},
			wantErr: "interval must be > 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("SubscriberIgnoresTimerPeriod", func(t *testing.T) {
		c := valid()
		c.TriggerSource = TriggerSourceSubscriber
		c.TimerPeriod = 0
		c.TriggerInput.HTTP = true
		c.Server.Listen = ":9102"
		assert.NoError(t, c.Validate())
	})

	t.Run("SubscriberWithoutFeeds", func(t *testing.T) {
		config, err := Load(writeConfig(t, "destination_interface: eth0\ntrigger_src: subscriber\n"))
		require.NoError(t, err)
		assert.False(t, config.HasSignalFeeds())

		err = config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "needs at least one of http, modbus or gpio")
	})

	t.Run("SubscriberWithOneFeed", func(t *testing.T) {
		c := valid()
		c.TriggerSource = TriggerSourceSubscriber
		c.TriggerInput.GPIO = &GPIOInputConfig{Pin: 4, Interval: time.Millisecond}
		assert.NoError(t, c.Validate())
	})

	t.Run("UnknownSource", func(t *testing.T) {
		for _, name := range []string{"camera-flash", "Timer", ""} {
			c := valid()
			c.TriggerSource = name
			err := c.Validate()
			require.Error(t, err, name)
			assert.Contains(t, err.Error(), "unknown trigger_src")
		}
	})
}
