package port

//go:generate mockgen -destination=../mock/mock_infrastructure.go -package=mock golang-actiontrigger/internal/port NetworkManager,FileManager

import (
	"net"
	"time"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for network interface operations.
// This interface abstracts interface enumeration and netlink lookups.
type NetworkManager interface {
	// ListInterfaces returns all network interfaces of the host
	ListInterfaces() ([]net.Interface, error)

	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file reads used to inspect sysfs.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// Clock abstracts time so trigger sources can run against simulated time.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is the subset of time.Ticker used by trigger sources.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}
