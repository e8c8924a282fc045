// Package gige provides a software GigE Vision feature registry. It exposes the
// host's network interfaces and the action command features, and sends action
// commands as GVCP broadcasts on the opened interface.
package gige

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang-actiontrigger/internal/adapter/infrastructure/gvcp"
	"golang-actiontrigger/internal/pkg/logging"
	"golang-actiontrigger/internal/port"

	"github.com/vishvananda/netlink"
)

const sysClassNet = "/sys/class/net"

var (
	ErrNotStarted          = errors.New("gige: system not started")
	ErrAlreadyStarted      = errors.New("gige: system already started")
	ErrFeatureNotFound     = errors.New("gige: feature not found")
	ErrNotInteger          = errors.New("gige: feature is not an integer")
	ErrNotCommand          = errors.New("gige: feature is not a command")
	ErrValueOutOfRange     = errors.New("gige: value out of range")
	ErrNoInterfaceOpen     = errors.New("gige: no interface open")
	ErrInterfaceBusy       = errors.New("gige: another interface is already open")
	ErrNoIPv4Address       = errors.New("gige: interface has no IPv4 address")
	ErrNoAcknowledge       = errors.New("gige: no device acknowledged the action command")
	ErrNegativeAcknowledge = errors.New("gige: device rejected the action command")
)

// Transport sends action commands out of one interface.
type Transport interface {
	SendAction(dst *net.UDPAddr, cmd gvcp.ActionCommand, ackRequired bool) (uint16, error)
	AwaitAcks(requestID uint16, timeout time.Duration) ([]gvcp.Ack, error)
	Close() error
}

// Dialer opens a Transport bound to the named interface.
type Dialer func(ifaceName string) (Transport, error)

// DialGVCP is the default Dialer.
func DialGVCP(ifaceName string) (Transport, error) {
	return gvcp.Listen(ifaceName)
}

// Options configures a System.
type Options struct {
	Port int
	// AckTimeout > 0 requests acknowledges and fails commands nobody acknowledges.
	AckTimeout time.Duration
	Dial       Dialer
	// OnAcks is called with the number of acknowledges collected per command.
	OnAcks func(n int)
}

// System implements the FeatureRegistry port.
type System struct {
	networkMgr port.NetworkManager
	fileMgr    port.FileManager
	opts       Options

	mu      sync.Mutex
	started bool
	open    *netInterface
	values  map[string]int64
}

// Ensure System implements the FeatureRegistry port
var _ port.FeatureRegistry = (*System)(nil)

// NewSystem creates a new GigE feature registry.
func NewSystem(networkMgr port.NetworkManager, fileMgr port.FileManager, opts Options) *System {
	if opts.Port == 0 {
		opts.Port = gvcp.DefaultPort
	}
	if opts.Dial == nil {
		opts.Dial = DialGVCP
	}
	return &System{
		networkMgr: networkMgr,
		fileMgr:    fileMgr,
		opts:       opts,
	}
}

// Startup opens the registry session.
func (s *System) Startup() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.values = map[string]int64{
		port.FeatureActionDeviceKey:          0,
		port.FeatureActionGroupKey:           0,
		port.FeatureActionGroupMask:          0,
		port.FeatureActionDestinationAddress: 0,
	}
	return nil
}

// Shutdown closes an interface left open and ends the session.
func (s *System) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	s.started = false

	if s.open != nil {
		err := s.open.transport.Close()
		s.open = nil
		if err != nil {
			return fmt.Errorf("failed to close interface on shutdown: %w", err)
		}
	}
	return nil
}

// Interfaces enumerates the host's network interfaces.
func (s *System) Interfaces() ([]port.Interface, error) {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil, ErrNotStarted
	}

	ifaces, err := s.networkMgr.ListInterfaces()
	if err != nil {
		return nil, err
	}

	result := make([]port.Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		result = append(result, &netInterface{sys: s, name: iface.Name})
	}
	return result, nil
}

// FeatureByName resolves one of the action command features.
func (s *System) FeatureByName(name string) (port.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if name == port.FeatureActionCommand {
		return &commandFeature{sys: s}, nil
	}
	if _, ok := s.values[name]; ok {
		return &intFeature{sys: s, name: name}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, name)
}

// sendAction broadcasts one ACTION_CMD with the currently programmed keys.
func (s *System) sendAction() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.open == nil {
		return ErrNoInterfaceOpen
	}

	dst := s.open.broadcast
	if addr := s.values[port.FeatureActionDestinationAddress]; addr != 0 {
		dst = AddressFromValue(addr)
	}

	cmd := gvcp.ActionCommand{
		DeviceKey: uint32(s.values[port.FeatureActionDeviceKey]),
		GroupKey:  uint32(s.values[port.FeatureActionGroupKey]),
		GroupMask: uint32(s.values[port.FeatureActionGroupMask]),
	}
	ackRequired := s.opts.AckTimeout > 0

	id, err := s.open.transport.SendAction(&net.UDPAddr{IP: dst, Port: s.opts.Port}, cmd, ackRequired)
	if err != nil {
		return err
	}
	if !ackRequired {
		return nil
	}

	acks, err := s.open.transport.AwaitAcks(id, s.opts.AckTimeout)
	if err != nil {
		return err
	}
	if s.opts.OnAcks != nil {
		s.opts.OnAcks(len(acks))
	}
	if len(acks) == 0 {
		return ErrNoAcknowledge
	}
	for _, ack := range acks {
		if ack.Status != 0 {
			return fmt.Errorf("%w: status 0x%04x", ErrNegativeAcknowledge, ack.Status)
		}
	}
	return nil
}

// AddressValue converts an IPv4 address to the integer value of the destination address feature.
func AddressValue(ip net.IP) int64 {
	v4 := ip.To4()
	if v4 == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint32(v4))
}

// AddressFromValue is the inverse of AddressValue.
func AddressFromValue(v int64) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, uint32(v))
	return ip
}

type netInterface struct {
	sys       *System
	name      string
	transport Transport
	broadcast net.IP
}

func (i *netInterface) ID() string {
	return i.name
}

func (i *netInterface) Type() (port.InterfaceType, error) {
	link, err := i.sys.networkMgr.GetLinkByName(i.name)
	if err != nil {
		return port.InterfaceUnknown, err
	}

	switch link.Attrs().EncapType {
	case "loopback":
		return port.InterfaceLoopback, nil
	case "ether":
		if i.sys.fileMgr.FileExists(filepath.Join(sysClassNet, i.name, "wireless")) {
			return port.InterfaceWireless, nil
		}
		return port.InterfaceEthernet, nil
	default:
		return port.InterfaceUnknown, nil
	}
}

func (i *netInterface) Open() error {
	logger := logging.WithComponentAndInterface("gige", i.name)

	i.sys.mu.Lock()
	defer i.sys.mu.Unlock()

	if !i.sys.started {
		return ErrNotStarted
	}
	if i.sys.open != nil {
		return fmt.Errorf("%w: %s", ErrInterfaceBusy, i.sys.open.name)
	}

	link, err := i.sys.networkMgr.GetLinkByName(i.name)
	if err != nil {
		return err
	}
	addrs, err := i.sys.networkMgr.ListAddresses(link)
	if err != nil {
		return err
	}
	broadcast := broadcastAddress(addrs)
	if broadcast == nil {
		return fmt.Errorf("%w: %s", ErrNoIPv4Address, i.name)
	}

	if state, err := i.sys.fileMgr.ReadFile(filepath.Join(sysClassNet, i.name, "operstate")); err == nil {
		if s := strings.TrimSpace(string(state)); s != "up" {
			logger.WithField("operstate", s).Warn("Interface is not up, action commands may not reach any device")
		}
	}

	transport, err := i.sys.opts.Dial(i.name)
	if err != nil {
		return err
	}

	i.transport = transport
	i.broadcast = broadcast
	i.sys.open = i
	logger.WithField("broadcast", broadcast.String()).Debug("Interface opened")
	return nil
}

func (i *netInterface) Close() error {
	i.sys.mu.Lock()
	defer i.sys.mu.Unlock()

	if i.sys.open != i {
		return fmt.Errorf("gige: interface %s is not open", i.name)
	}
	i.sys.open = nil
	return i.transport.Close()
}

// broadcastAddress returns the directed broadcast of the first IPv4 address.
func broadcastAddress(addrs []netlink.Addr) net.IP {
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}
		ip := addr.IPNet.IP.To4()
		if ip == nil {
			continue
		}
		if b := addr.Broadcast.To4(); b != nil && !b.IsUnspecified() {
			return b
		}
		mask := addr.IPNet.Mask
		if len(mask) == net.IPv6len {
			mask = mask[12:]
		}
		b := make(net.IP, net.IPv4len)
		for k := range b {
			b[k] = ip[k] | ^mask[k]
		}
		return b
	}
	return nil
}

type intFeature struct {
	sys  *System
	name string
}

func (f *intFeature) SetInt(value int64) error {
	if value < 0 || value > math.MaxUint32 {
		return fmt.Errorf("%w: %s=%d", ErrValueOutOfRange, f.name, value)
	}

	f.sys.mu.Lock()
	defer f.sys.mu.Unlock()

	if !f.sys.started {
		return ErrNotStarted
	}
	f.sys.values[f.name] = value
	return nil
}

func (f *intFeature) RunCommand() error {
	return fmt.Errorf("%w: %s", ErrNotCommand, f.name)
}

type commandFeature struct {
	sys *System
}

func (f *commandFeature) SetInt(int64) error {
	return fmt.Errorf("%w: %s", ErrNotInteger, port.FeatureActionCommand)
}

func (f *commandFeature) RunCommand() error {
	return f.sys.sendAction()
}
