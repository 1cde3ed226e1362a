package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandPacketEncode(t *testing.T) {
	t.Parallel()

	pkt := CommandPacket{CommandSet: CmdSetVirtualMachine, Command: 1, Body: []byte{0xAA, 0xBB}}
	buf, err := pkt.encode(7)
	require.NoError(t, err)
	require.Len(t, buf, headerLen+2)

	length, id, isReply, cmdSet, cmd := decodeHeader(buf)
	assert.Equal(t, uint32(headerLen+2), length)
	assert.Equal(t, uint32(7), id)
	assert.False(t, isReply)
	assert.Equal(t, CmdSetVirtualMachine, cmdSet)
	assert.Equal(t, byte(1), cmd)
	assert.Equal(t, []byte{0xAA, 0xBB}, buf[headerLen:])
}

func TestDecodeReply(t *testing.T) {
	t.Parallel()

	buf := make([]byte, headerLen+3)
	buf[0], buf[1], buf[2], buf[3] = 0, 0, 0, byte(len(buf))
	buf[4], buf[5], buf[6], buf[7] = 0, 0, 0, 42
	buf[8] = flagReply
	buf[9] = 0
	buf[10] = 0
	copy(buf[headerLen:], []byte{1, 2, 3})

	reply := decodeReply(buf)
	assert.Equal(t, uint32(42), reply.ID)
	assert.Equal(t, ErrNone, reply.ErrorCode)
	assert.Equal(t, []byte{1, 2, 3}, reply.Body)
}
