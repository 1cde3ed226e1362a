package jdwp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePeer answers VMIDSizes synchronously (the handshake every Open
// performs) and otherwise lets the test drive additional replies/events.
type fakePeer struct {
	t         *testing.T
	transport Transport
	ids       IDSizes
}

func newFakePeer(t *testing.T, conn net.Conn, ids IDSizes) *fakePeer {
	t.Helper()
	return &fakePeer{t: t, transport: newPacketTransport(conn), ids: ids}
}

func (p *fakePeer) serveIDSizesThenRun(extra func(id uint32)) {
	buf, err := p.transport.ReadPacket()
	require.NoError(p.t, err)
	_, id, isReply, cmdSet, cmd := decodeHeader(buf)
	require.False(p.t, isReply)
	require.Equal(p.t, CmdSetVirtualMachine, cmdSet)
	require.Equal(p.t, cmdVMIDSizes, cmd)

	w := newBodyWriter(IDSizes{})
	w.uint32(uint32(p.ids.FieldIDSize))
	w.uint32(uint32(p.ids.MethodIDSize))
	w.uint32(uint32(p.ids.ObjectIDSize))
	w.uint32(uint32(p.ids.ReferenceTypeIDSize))
	w.uint32(uint32(p.ids.FrameIDSize))
	p.replyTo(id, ErrNone, w.Bytes())

	if extra != nil {
		extra(id)
	}
}

func (p *fakePeer) replyTo(id uint32, code ErrorCode, body []byte) {
	total := headerLen + len(body)
	buf := make([]byte, total)
	putUintN(buf[0:4], uint64(total), 4)
	putUintN(buf[4:8], uint64(id), 4)
	buf[8] = flagReply
	putUintN(buf[9:11], uint64(code), 2)
	copy(buf[headerLen:], body)
	require.NoError(p.t, p.transport.WritePacket(buf))
}

func (p *fakePeer) sendComposite(body []byte) {
	pkt := CommandPacket{CommandSet: CmdSetEvent, Command: EventComposite, Body: body}
	buf, err := pkt.encode(0)
	require.NoError(p.t, err)
	require.NoError(p.t, p.transport.WritePacket(buf))
}

func dialPipe(t *testing.T, ids IDSizes) (*Connection, *fakePeer) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	peer := newFakePeer(t, serverConn, ids)

	type result struct {
		conn *Connection
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		c, err := OpenTransport(context.Background(), newPacketTransport(clientConn), Options{})
		resCh <- result{c, err}
	}()

	peer.serveIDSizesThenRun(nil)

	select {
	case r := <-resCh:
		require.NoError(t, r.err)
		return r.conn, peer
	case <-time.After(5 * time.Second):
		t.Fatal("timed out opening connection")
		return nil, nil
	}
}

func TestOpenNegotiatesIDSizes(t *testing.T) {
	t.Parallel()

	ids := IDSizes{FieldIDSize: 4, MethodIDSize: 4, ObjectIDSize: 8, ReferenceTypeIDSize: 8, FrameIDSize: 8}
	conn, _ := dialPipe(t, ids)
	defer conn.Close()

	assert.Equal(t, ids, conn.IDSizes())
}

func TestOpenAssignsUniqueConnectionID(t *testing.T) {
	t.Parallel()

	connA, _ := dialPipe(t, DefaultIDSizes)
	defer connA.Close()
	connB, _ := dialPipe(t, DefaultIDSizes)
	defer connB.Close()

	assert.NotEqual(t, uuid.Nil, connA.ID())
	assert.NotEqual(t, connA.ID(), connB.ID())
}

func TestSendMessageAwaitReply(t *testing.T) {
	t.Parallel()

	conn, peer := dialPipe(t, DefaultIDSizes)
	defer conn.Close()

	go func() {
		buf, err := peer.transport.ReadPacket()
		if err != nil {
			return
		}
		_, id, _, _, _ := decodeHeader(buf)
		w := newBodyWriter(DefaultIDSizes)
		w.string("2.0")
		peer.replyTo(id, ErrNone, w.Bytes())
	}()

	id, err := conn.SendMessage(VMVersion())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	body, err := conn.AwaitReply(ctx, id)
	require.NoError(t, err)

	r := newFieldReader(body, DefaultIDSizes)
	assert.Equal(t, "2.0", r.string())
}

func TestAwaitReplyPropagatesErrorCode(t *testing.T) {
	t.Parallel()

	conn, peer := dialPipe(t, DefaultIDSizes)
	defer conn.Close()

	go func() {
		buf, err := peer.transport.ReadPacket()
		if err != nil {
			return
		}
		_, id, _, _, _ := decodeHeader(buf)
		peer.replyTo(id, ErrInvalidObject, nil)
	}()

	id, err := conn.SendMessage(ObjectReferenceType(conn.IDSizes(), ObjectID(1)))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = conn.AwaitReply(ctx, id)
	require.Error(t, err)

	var replyErr *ReplyError
	require.ErrorAs(t, err, &replyErr)
	assert.Equal(t, ErrInvalidObject, replyErr.Code)
}

func TestEventDispatch(t *testing.T) {
	t.Parallel()

	conn, peer := dialPipe(t, DefaultIDSizes)
	defer conn.Close()

	received := make(chan Event, 1)
	conn.RegisterEventHandler(HandlerFunc(func(e Event) { received <- e }))

	w := newBodyWriter(DefaultIDSizes)
	w.byte(byte(SuspendNone))
	w.repeatCount(1)
	w.byte(byte(EventThreadStart))
	w.int32(1)
	w.objectID(ObjectID(123))
	peer.sendComposite(w.Bytes())

	select {
	case ev := <-received:
		tsEvent, ok := ev.(ThreadStartEvent)
		require.True(t, ok, "expected ThreadStartEvent, got %T", ev)
		assert.Equal(t, ThreadID(123), tsEvent.Thread)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestCloseFailsPendingReplies(t *testing.T) {
	t.Parallel()

	conn, _ := dialPipe(t, DefaultIDSizes)

	id, err := conn.SendMessage(VMVersion())
	require.NoError(t, err)

	require.NoError(t, conn.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = conn.AwaitReply(ctx, id)
	require.Error(t, err)
}
