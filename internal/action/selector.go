// Package action implements action command dispatch: selecting the interface
// the command is broadcast on, programming the command scope and sending one
// command per trigger event.
package action

import (
	"fmt"

	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"
)

// Selector finds, validates and opens the interface action commands are sent on.
// It holds the opened interface until Close.
type Selector struct {
	registry port.FeatureRegistry
	handle   port.Interface
}

// NewSelector creates a selector on the given registry.
func NewSelector(registry port.FeatureRegistry) *Selector {
	return &Selector{registry: registry}
}

// Select opens the interface whose ID equals interfaceID.
// Only a GigE (Ethernet) interface is accepted. On error nothing is left open.
func (s *Selector) Select(interfaceID string) (port.Interface, error) {
	logger := logging.WithComponentAndInterface("selector", interfaceID)

	if s.handle != nil {
		return nil, fmt.Errorf("%w: %s already open", ErrInterfaceOpenFailed, s.handle.ID())
	}

	ifaces, err := s.registry.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInterfacesFound, err)
	}
	if len(ifaces) == 0 {
		return nil, ErrNoInterfacesFound
	}

	var match port.Interface
	ids := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		id := iface.ID()
		ids = append(ids, id)
		if match == nil && id == interfaceID {
			match = iface
		}
	}
	logger.WithField("available", ids).Info("Enumerated network interfaces")

	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrInterfaceNotFound, interfaceID)
	}

	ifaceType, err := match.Type()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedInterfaceType, err)
	}
	if ifaceType != port.InterfaceEthernet {
		return nil, fmt.Errorf("%w: %s is %s", ErrUnsupportedInterfaceType, interfaceID, ifaceType)
	}

	if err := match.Open(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterfaceOpenFailed, err)
	}

	s.handle = match
	logger.Info("Interface has been opened")
	return match, nil
}

// Close closes the opened interface. A close failure is logged, never returned.
// Calling Close again, or without a selected interface, does nothing.
func (s *Selector) Close() {
	if s.handle == nil {
		return
	}
	handle := s.handle
	s.handle = nil

	if err := handle.Close(); err != nil {
		logging.WithComponentAndInterface("selector", handle.ID()).WithError(err).Warn("Could not close interface")
	}
}
