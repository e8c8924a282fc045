//go:build unit

package gvcp

import (
	"encoding/binary"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// decodeAction parses an ACTION_CMD the way a camera does.
func decodeAction(b []byte) (ActionCommand, uint16, bool, error) {
	if len(b) < headerSize+actionPayloadSize {
		return ActionCommand{}, 0, false, ErrShortPacket
	}
	if b[0] != headerKey {
		return ActionCommand{}, 0, false, fmt.Errorf("gvcp: bad key 0x%02x", b[0])
	}
	if cmd := binary.BigEndian.Uint16(b[2:4]); cmd != CommandAction {
		return ActionCommand{}, 0, false, fmt.Errorf("gvcp: unexpected command 0x%04x", cmd)
	}
	cmd := ActionCommand{
		DeviceKey: binary.BigEndian.Uint32(b[8:12]),
		GroupKey:  binary.BigEndian.Uint32(b[12:16]),
		GroupMask: binary.BigEndian.Uint32(b[16:20]),
	}
	return cmd, binary.BigEndian.Uint16(b[6:8]), b[1]&FlagAckRequired != 0, nil
}

func encodeAck(ack Ack) []byte {
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint16(b[0:2], ack.Status)
	binary.BigEndian.PutUint16(b[2:4], CommandActionAck)
	binary.BigEndian.PutUint16(b[6:8], ack.RequestID)
	return b
}

// executes reports whether a camera with the given keys acts on cmd.
func executes(cmd ActionCommand, deviceKey, groupKey, groupMask uint32) bool {
	return cmd.DeviceKey == deviceKey && cmd.GroupKey == groupKey && cmd.GroupMask&groupMask != 0
}

// startDevice runs a fake camera (keys 1/1/1) answering every command it executes with an ACTION_ACK.
func startDevice(t *testing.T) (*net.UDPAddr, <-chan ActionCommand) {
	t.Helper()
	device, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { device.Close() })

	received := make(chan ActionCommand, 8)
	go func() {
		buf := make([]byte, 64)
		for {
			n, from, err := device.ReadFromUDP(buf)
			if err != nil {
				return
			}
			cmd, id, ackRequired, err := decodeAction(buf[:n])
			if err != nil {
				continue
			}
			received <- cmd
			if ackRequired && executes(cmd, 1, 1, 1) {
				device.WriteToUDP(encodeAck(Ack{RequestID: id}), from)
			}
		}
	}()
	return device.LocalAddr().(*net.UDPAddr), received
}
