package jdwp

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Options configures a Connection at Open time.
type Options struct {
	// Logger receives structured diagnostics for the connection's lifetime.
	// The zero value discards everything.
	Logger logr.Logger
}

// Connection is a live JDWP session with a single target VM: a handshake
// has completed, IDSizes have been negotiated, and a writer/reader goroutine
// pair is running to carry command/reply traffic and dispatch events.
//
// A Connection is safe for concurrent use by multiple goroutines.
type Connection struct {
	transport Transport
	log       logr.Logger
	id        uuid.UUID
	ids       IDSizes

	seq     sequence
	pending pendingReplies

	handlersMu sync.Mutex
	handlers   []Handler

	outbound chan outboundPacket

	ctx    context.Context
	group  *errgroup.Group
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

type outboundPacket struct {
	buf []byte
}

// Open dials address, performs the JDWP handshake, negotiates identifier
// widths, and starts the connection's internal I/O goroutines. The returned
// Connection is ready for SendMessage/AwaitReply calls.
func Open(ctx context.Context, address string, opts Options) (*Connection, error) {
	transport, err := DialTCP(ctx, address)
	if err != nil {
		return nil, err
	}
	return newConnection(ctx, transport, opts)
}

// OpenTransport is Open for a caller that already has a handshaken
// Transport, primarily for tests that exercise the engine over net.Pipe.
func OpenTransport(ctx context.Context, transport Transport, opts Options) (*Connection, error) {
	return newConnection(ctx, transport, opts)
}

func newConnection(ctx context.Context, transport Transport, opts Options) (*Connection, error) {
	connID := uuid.New()
	log := withDefault(opts.Logger).WithValues("connID", connID)

	runCtx, cancel := context.WithCancel(context.Background())
	group, runCtx := errgroup.WithContext(runCtx)

	c := &Connection{
		transport: transport,
		log:       log,
		id:        connID,
		ids:       DefaultIDSizes,
		outbound:  make(chan outboundPacket, 16),
		ctx:       runCtx,
		group:     group,
		cancel:    cancel,
	}

	group.Go(func() error { return c.writeLoop(runCtx) })
	group.Go(func() error { return c.readLoop(runCtx) })

	if err := c.negotiateIDSizes(ctx); err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

// negotiateIDSizes sends VirtualMachine.IDSizes synchronously and blocks
// Open from returning until the reply lands, so every other method can
// assume c.ids is final.
func (c *Connection) negotiateIDSizes(ctx context.Context) error {
	id, err := c.SendMessage(VMIDSizes())
	if err != nil {
		return fmt.Errorf("jdwp: requesting id sizes: %w", err)
	}
	body, err := c.AwaitReply(ctx, id)
	if err != nil {
		return fmt.Errorf("jdwp: awaiting id sizes: %w", err)
	}
	r := newFieldReader(body, IDSizes{})
	sizes := IDSizes{
		FieldIDSize:         int(r.uint32()),
		MethodIDSize:        int(r.uint32()),
		ObjectIDSize:        int(r.uint32()),
		ReferenceTypeIDSize: int(r.uint32()),
		FrameIDSize:         int(r.uint32()),
	}
	if err := r.Err(); err != nil {
		return err
	}
	c.ids = sizes
	c.log.V(1).Info("negotiated id sizes", "sizes", sizes)
	return nil
}

// IDSizes returns the identifier widths negotiated during Open.
func (c *Connection) IDSizes() IDSizes { return c.ids }

// ID returns the correlation ID generated for this connection at Open time,
// the same value attached to every log line the connection emits.
func (c *Connection) ID() uuid.UUID { return c.id }

// SendMessage assigns pkt a fresh packet id, frames its already-serialized
// body behind the 11-byte header, and queues the result for the write
// goroutine. It returns the assigned id for use with AwaitReply.
func (c *Connection) SendMessage(pkt CommandPacket) (uint32, error) {
	id := c.seq.nextID()
	buf, err := pkt.encode(id)
	if err != nil {
		return 0, err
	}
	c.pending.register(id)
	select {
	case c.outbound <- outboundPacket{buf: buf}:
		return id, nil
	default:
	}
	// Outbound channel briefly full; block rather than drop, but still
	// honor a connection that's already closing.
	select {
	case c.outbound <- outboundPacket{buf: buf}:
		return id, nil
	case <-c.closedSignal():
		c.pending.abandon(id)
		return 0, ErrConnectionClosed
	}
}

// AwaitReply blocks until the reply for id arrives, ctx is done, or the
// connection closes, whichever comes first. A non-nil error from the reply
// is a *ReplyError wrapping the JDWP error code; the returned body is only
// valid when err is nil.
func (c *Connection) AwaitReply(ctx context.Context, id uint32) ([]byte, error) {
	ch, ok := c.pending.m.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: no pending reply for id %d", ErrLogicError, id)
	}
	select {
	case res := <-ch:
		return res.body, res.err
	case <-ctx.Done():
		c.pending.abandon(id)
		return nil, ctx.Err()
	case <-c.closedSignal():
		return nil, ErrConnectionClosed
	}
}

// RegisterEventHandler adds h to the set of handlers invoked for every
// decoded Composite event. Handlers are invoked synchronously, in
// registration order, from the connection's read goroutine; a slow or
// blocking handler delays delivery of subsequent events.
func (c *Connection) RegisterEventHandler(h Handler) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.handlers = append(c.handlers, h)
}

func (c *Connection) dispatch(ev Event) {
	c.handlersMu.Lock()
	handlers := append([]Handler(nil), c.handlers...)
	c.handlersMu.Unlock()
	for _, h := range handlers {
		dispatchEvent(h, ev)
	}
}

func (c *Connection) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case pkt := <-c.outbound:
			if err := c.transport.WritePacket(pkt.buf); err != nil {
				return err
			}
		}
	}
}

func (c *Connection) readLoop(ctx context.Context) error {
	for {
		buf, err := c.transport.ReadPacket()
		if err != nil {
			if ctx.Err() != nil {
				// Close cancels ctx before closing the transport, so a read
				// failing after that is the shutdown itself.
				err = ErrConnectionClosed
			}
			c.pending.failAll(err)
			return err
		}
		_, id, isReply, cmdSet, cmd := decodeHeader(buf)
		if isReply {
			reply := decodeReply(buf)
			c.pending.fulfill(reply.ID, replyResult{err: reply.ErrorCode.Err(), body: reply.Body})
			continue
		}
		if cmdSet == CmdSetEvent && cmd == EventComposite {
			evPkt := decodeEvent(buf)
			composite, err := ParseComposite(evPkt.Body, c.ids)
			if err != nil {
				c.log.Error(err, "failed to parse composite event")
				c.pending.failAll(ErrConnectionClosed)
				return err
			}
			for _, ev := range composite.Events {
				c.dispatch(ev)
			}
			continue
		}
		c.log.Info("ignoring unexpected command packet from peer", "id", id, "cmdSet", cmdSet, "cmd", cmd)
	}
}

func (c *Connection) closedSignal() <-chan struct{} {
	return c.ctx.Done()
}

// Close terminates the connection: it cancels the internal goroutines,
// closes the transport, fails every pending reply with ErrConnectionClosed,
// and waits for the writer/reader goroutines to exit. It returns the
// transport's close error, or the error that had already stopped one of the
// goroutines before Close was called; errors the goroutines hit because Close
// shut the transport are not reported.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		// The group's context is done before cancel only if a goroutine
		// already failed on its own.
		failedEarlier := c.ctx.Err() != nil
		c.cancel()
		c.closeErr = c.transport.Close()
		c.pending.failAll(ErrConnectionClosed)
		if err := c.group.Wait(); err != nil && c.closeErr == nil && failedEarlier {
			c.closeErr = err
		}
	})
	return c.closeErr
}
