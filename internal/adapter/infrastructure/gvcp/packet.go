// Package gvcp implements the subset of the GigE Vision control protocol
// needed to broadcast action commands and collect their acknowledgements.
package gvcp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// DefaultPort is the well-known GVCP UDP port.
const DefaultPort = 3956

const (
	headerKey = 0x42

	// FlagAckRequired asks receivers to answer with an ACTION_ACK.
	FlagAckRequired = 0x01

	CommandAction    uint16 = 0x0100
	CommandActionAck uint16 = 0x0101

	headerSize        = 8
	actionPayloadSize = 12
)

// ActionCommand is the payload of an ACTION_CMD packet.
type ActionCommand struct {
	DeviceKey uint32
	GroupKey  uint32
	GroupMask uint32
}

// Ack is a decoded ACTION_ACK.
type Ack struct {
	Status    uint16
	RequestID uint16
}

var ErrShortPacket = errors.New("gvcp: short packet")

// EncodeAction builds an ACTION_CMD packet. Commands are executed on receipt;
// scheduled action times are not used.
func EncodeAction(cmd ActionCommand, requestID uint16, ackRequired bool) []byte {
	var flags byte
	if ackRequired {
		flags |= FlagAckRequired
	}

	b := make([]byte, headerSize+actionPayloadSize)
	b[0] = headerKey
	b[1] = flags
	binary.BigEndian.PutUint16(b[2:4], CommandAction)
	binary.BigEndian.PutUint16(b[4:6], actionPayloadSize)
	binary.BigEndian.PutUint16(b[6:8], requestID)
	binary.BigEndian.PutUint32(b[8:12], cmd.DeviceKey)
	binary.BigEndian.PutUint32(b[12:16], cmd.GroupKey)
	binary.BigEndian.PutUint32(b[16:20], cmd.GroupMask)
	return b
}

// DecodeAck parses an ACTION_ACK packet.
func DecodeAck(b []byte) (Ack, error) {
	if len(b) < headerSize {
		return Ack{}, ErrShortPacket
	}
	if cmd := binary.BigEndian.Uint16(b[2:4]); cmd != CommandActionAck {
		return Ack{}, fmt.Errorf("gvcp: unexpected acknowledge 0x%04x", cmd)
	}
	return Ack{
		Status:    binary.BigEndian.Uint16(b[0:2]),
		RequestID: binary.BigEndian.Uint16(b[6:8]),
	}, nil
}
