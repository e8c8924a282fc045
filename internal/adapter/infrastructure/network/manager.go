// Package network provides network management adapter implementation.
package network

import (
	"fmt"
	"net"

	"golang-actiontrigger/internal/port"

	"github.com/insomniacslk/dhcp/interfaces"
	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using
// insomniacslk/dhcp/interfaces for enumeration and vishvananda/netlink for link details.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ListInterfaces returns every network interface of the host, loopback included.
func (n *ManagerAdapter) ListInterfaces() ([]net.Interface, error) {
	ifaces, err := interfaces.GetInterfacesFunc(func(net.Interface) bool { return true })
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}
	return ifaces, nil
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListAddresses returns IPv4 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}
