package action

import "errors"

// Startup errors. Any of these aborts serve.
var (
	ErrRegistryStartup          = errors.New("feature registry startup failed")
	ErrNoInterfacesFound        = errors.New("no interfaces found")
	ErrInterfaceNotFound        = errors.New("interface not found")
	ErrUnsupportedInterfaceType = errors.New("selected interface is not a GigE interface")
	ErrInterfaceOpenFailed      = errors.New("could not open interface")
	ErrUnknownTriggerSource     = errors.New("unknown trigger source")
)

// Dispatch errors. These only skip the current trigger event.
var (
	ErrConfigureFailed        = errors.New("failed to prepare action command")
	ErrCommandNotFound        = errors.New("action command feature not found")
	ErrCommandExecutionFailed = errors.New("failed to send action command")
)
