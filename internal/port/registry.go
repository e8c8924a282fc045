// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -destination=../mock/mock_registry.go -package=mock golang-actiontrigger/internal/port FeatureRegistry,Interface,Feature

// InterfaceType classifies a network interface exposed by the feature registry.
type InterfaceType int

const (
	InterfaceUnknown InterfaceType = iota
	InterfaceEthernet
	InterfaceLoopback
	InterfaceWireless
)

// String returns the lower-case name of the interface type.
func (t InterfaceType) String() string {
	switch t {
	case InterfaceEthernet:
		return "ethernet"
	case InterfaceLoopback:
		return "loopback"
	case InterfaceWireless:
		return "wireless"
	default:
		return "unknown"
	}
}

// FeatureRegistry is the port to the device-side feature registry.
// It owns the device session, exposes the network interfaces action commands
// can be sent on, and resolves named features.
type FeatureRegistry interface {
	// Startup opens the device session.
	Startup() error

	// Shutdown releases the device session.
	Shutdown() error

	// Interfaces enumerates the interfaces known to the registry.
	Interfaces() ([]Interface, error)

	// FeatureByName looks up an integer or command feature by name.
	FeatureByName(name string) (Feature, error)
}

// Interface is one network adapter as seen by the feature registry.
type Interface interface {
	// ID returns the identifier matched against the configured destination interface.
	ID() string

	// Type returns the interface class.
	Type() (InterfaceType, error)

	// Open prepares the interface for sending action commands.
	Open() error

	// Close releases the interface.
	Close() error
}

// Feature is a named registry feature. Integer features support SetInt,
// command features support RunCommand.
type Feature interface {
	// SetInt writes an integer feature value.
	SetInt(value int64) error

	// RunCommand executes a command feature.
	RunCommand() error
}
