package jdwp

import (
	"encoding/binary"
	"fmt"
	"math"
)

const headerLen = 11

const flagReply byte = 0x80

// CommandPacket is an outgoing command: a command-set/command pair plus an
// already-serialized body. id is assigned by the Connection at send time,
// not by the caller.
type CommandPacket struct {
	CommandSet CommandSet
	Command    byte
	Body       []byte
}

// encode frames p into the 11-byte JDWP header plus body, using id as the
// packet's correlation id.
func (p CommandPacket) encode(id uint32) ([]byte, error) {
	total := headerLen + len(p.Body)
	if total < 0 || uint64(total) > math.MaxUint32 {
		return nil, &BodyTooLong{BodyLen: len(p.Body)}
	}
	buf := make([]byte, total)
	binary.BigEndian.PutUint32(buf[0:4], uint32(total))
	binary.BigEndian.PutUint32(buf[4:8], id)
	buf[8] = 0 // flags: command packet
	buf[9] = byte(p.CommandSet)
	buf[10] = p.Command
	copy(buf[headerLen:], p.Body)
	return buf, nil
}

// replyPacket is a parsed incoming reply: the fields a Connection needs to
// route the packet and hand the remainder to the waiting caller.
type replyPacket struct {
	ID        uint32
	ErrorCode ErrorCode
	Body      []byte
}

// eventPacket is a parsed incoming command packet from the VM: only
// CmdSetEvent/EventComposite packets are expected on this direction, but the
// header is generic.
type eventPacket struct {
	ID         uint32
	CommandSet CommandSet
	Command    byte
	Body       []byte
}

// decodeHeader reads the common 11-byte header from the start of buf (which
// must be at least headerLen bytes; any body after it is ignored) and reports
// whether it is a reply packet.
func decodeHeader(buf []byte) (length uint32, id uint32, isReply bool, commandSet CommandSet, command byte) {
	length = binary.BigEndian.Uint32(buf[0:4])
	id = binary.BigEndian.Uint32(buf[4:8])
	flags := buf[8]
	isReply = flags&flagReply != 0
	if !isReply {
		commandSet = CommandSet(buf[9])
		command = buf[10]
	}
	return
}

// decodeReply interprets buf (header + body, isReply must be true for its
// header) as a reply packet.
func decodeReply(buf []byte) replyPacket {
	id := binary.BigEndian.Uint32(buf[4:8])
	errCode := ErrorCode(binary.BigEndian.Uint16(buf[9:11]))
	return replyPacket{ID: id, ErrorCode: errCode, Body: buf[headerLen:]}
}

// decodeEvent interprets buf (header + body, isReply must be false for its
// header) as an incoming command packet from the VM.
func decodeEvent(buf []byte) eventPacket {
	id := binary.BigEndian.Uint32(buf[4:8])
	cs := CommandSet(buf[9])
	cmd := buf[10]
	return eventPacket{ID: id, CommandSet: cs, Command: cmd, Body: buf[headerLen:]}
}

func (p eventPacket) String() string {
	return fmt.Sprintf("event{id=%d cmdSet=%s cmd=%d len=%d}", p.ID, p.CommandSet, p.Command, len(p.Body))
}
