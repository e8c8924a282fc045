package action

import (
	"fmt"

	"golang-actiontrigger/internal/port"
)

// Scope is the device key, group key and group mask an action command is sent with.
type Scope struct {
	DeviceKey uint32
	GroupKey  uint32
	GroupMask uint32
}

// Configurator writes the action command scope into the feature registry.
type Configurator struct {
	registry port.FeatureRegistry
}

// NewConfigurator creates a configurator on the given registry.
func NewConfigurator(registry port.FeatureRegistry) *Configurator {
	return &Configurator{registry: registry}
}

// Prepare writes the device key, group key and group mask, in that order.
// It stops at the first failure; a partially written scope is not rolled back
// and the caller must not send a command when Prepare fails.
func (c *Configurator) Prepare(scope Scope) error {
	writes := []struct {
		name  string
		value uint32
	}{
		{port.FeatureActionDeviceKey, scope.DeviceKey},
		{port.FeatureActionGroupKey, scope.GroupKey},
		{port.FeatureActionGroupMask, scope.GroupMask},
	}

	for _, w := range writes {
		if err := c.setInt(w.name, int64(w.value)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Configurator) setInt(name string, value int64) error {
	feature, err := c.registry.FeatureByName(name)
	if err != nil {
		return fmt.Errorf("failed to get feature %s: %w", name, err)
	}
	if err := feature.SetInt(value); err != nil {
		return fmt.Errorf("failed to set feature %s=%d: %w", name, value, err)
	}
	return nil
}
