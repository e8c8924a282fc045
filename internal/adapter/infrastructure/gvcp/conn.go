package gvcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/insomniacslk/dhcp/interfaces"
)

// Conn is a UDP socket sending action commands out of one network interface.
type Conn struct {
	mu     sync.Mutex
	conn   *net.UDPConn
	nextID uint16
}

// Listen opens a UDP socket bound to the named device so broadcasts leave
// through that interface only.
func Listen(ifaceName string) (*Conn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var bindErr error
			if err := c.Control(func(fd uintptr) {
				bindErr = interfaces.BindToInterface(int(fd), ifaceName)
			}); err != nil {
				return err
			}
			return bindErr
		},
	}

	pc, err := lc.ListenPacket(context.Background(), "udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("failed to bind GVCP socket to %s: %w", ifaceName, err)
	}
	return NewConn(pc.(*net.UDPConn)), nil
}

// NewConn wraps an already opened UDP socket.
func NewConn(conn *net.UDPConn) *Conn {
	return &Conn{conn: conn}
}

// SendAction writes one ACTION_CMD to dst and returns the request ID used.
func (c *Conn) SendAction(dst *net.UDPAddr, cmd ActionCommand, ackRequired bool) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	if c.nextID == 0 {
		c.nextID = 1
	}
	id := c.nextID

	if _, err := c.conn.WriteToUDP(EncodeAction(cmd, id, ackRequired), dst); err != nil {
		return id, fmt.Errorf("failed to send action command to %s: %w", dst, err)
	}
	return id, nil
}

// AwaitAcks collects ACTION_ACKs for requestID until timeout elapses.
// Packets that are not acknowledges for requestID are ignored.
func (c *Conn) AwaitAcks(requestID uint16, timeout time.Duration) ([]Ack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}
	defer c.conn.SetReadDeadline(time.Time{})

	var acks []Ack
	buf := make([]byte, 64)
	for {
		n, _, err := c.conn.ReadFromUDP(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return acks, nil
			}
			return acks, fmt.Errorf("failed to read acknowledge: %w", err)
		}
		ack, err := DecodeAck(buf[:n])
		if err != nil || ack.RequestID != requestID {
			continue
		}
		acks = append(acks, ack)
	}
}

// Close closes the socket.
func (c *Conn) Close() error {
	return c.conn.Close()
}
