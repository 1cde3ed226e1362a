package jdwp

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sort"
	"sync"
)

// handshake is the literal magic string exchanged by both ends of a JDWP
// connection before any packet traffic, per the protocol's own framing.
const handshake = "JDWP-Handshake"

// Transport abstracts JDWP packet I/O over different connection kinds.
// Implementations must be safe for concurrent use by one reader and one
// writer goroutine; individual reads and writes need not be concurrent with
// each other.
type Transport interface {
	// ReadPacket blocks until one full header+body packet is available and
	// returns its raw bytes, header included.
	ReadPacket() ([]byte, error)

	// WritePacket writes one full header+body packet.
	WritePacket(buf []byte) error

	// Close closes the transport. Blocked ReadPacket/WritePacket calls
	// return an error.
	Close() error
}

// tcpTransport implements Transport over a TCP connection, after the
// initial handshake has completed.
type tcpTransport struct {
	conn   net.Conn
	reader *bufio.Reader

	writeMu sync.Mutex

	mu     sync.Mutex
	closed bool
}

// DialTCP resolves address, walks every returned address trying to connect
// in order (IPv4-mapped addresses first, since JDWP agents historically bind
// IPv4-only), performs the JDWP handshake on whichever address accepts, and
// returns a ready Transport. This mirrors a getaddrinfo/AI_V4MAPPED dial loop
// rather than trying a single resolved address: a host with several
// candidate addresses, only some of which are reachable, still connects.
func DialTCP(ctx context.Context, address string) (Transport, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, &ConnectError{Address: address, Cause: err}
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, &ConnectError{Address: address, Cause: err}
	}
	if len(addrs) == 0 {
		return nil, &ConnectError{Address: address, Cause: fmt.Errorf("no addresses found for %s", host)}
	}
	sortV4MappedFirst(addrs)

	var d net.Dialer
	var lastErr error
	for _, addr := range addrs {
		conn, dialErr := d.DialContext(ctx, "tcp", net.JoinHostPort(addr.String(), port))
		if dialErr != nil {
			lastErr = dialErr
			continue
		}

		t := &tcpTransport{conn: conn, reader: bufio.NewReader(conn)}
		if err := t.doHandshake(); err != nil {
			conn.Close()
			return nil, err
		}
		return t, nil
	}
	return nil, &ConnectError{Address: address, Cause: lastErr}
}

// sortV4MappedFirst reorders addrs in place so that addresses with a 4-byte
// (or IPv4-mapped) form sort before pure IPv6 addresses, preserving the
// resolver's relative order within each group.
func sortV4MappedFirst(addrs []net.IPAddr) {
	sort.SliceStable(addrs, func(i, j int) bool {
		return addrs[i].IP.To4() != nil && addrs[j].IP.To4() == nil
	})
}

// newPacketTransport wraps an already-connected net.Conn as a Transport
// with no handshake step, for tests that drive the packet framing directly
// (e.g. over net.Pipe) without needing a real JDWP peer on both ends.
func newPacketTransport(conn net.Conn) Transport {
	return &tcpTransport{conn: conn, reader: bufio.NewReader(conn)}
}

func (t *tcpTransport) doHandshake() error {
	if _, err := t.conn.Write([]byte(handshake)); err != nil {
		return fmt.Errorf("jdwp: writing handshake: %w", err)
	}
	reply := make([]byte, len(handshake))
	if _, err := io.ReadFull(t.reader, reply); err != nil {
		return fmt.Errorf("jdwp: reading handshake reply: %w", err)
	}
	if string(reply) != handshake {
		return ErrHandshakeFailed
	}
	return nil
}

func (t *tcpTransport) ReadPacket() ([]byte, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrConnectionClosed
	}
	t.mu.Unlock()

	var lenBuf [4]byte
	if _, err := io.ReadFull(t.reader, lenBuf[:]); err != nil {
		return nil, wrapReadErr(err)
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length < headerLen {
		return nil, &ProtocolError{Reason: fmt.Sprintf("packet length %d shorter than header", length), Pos: 0}
	}
	buf := make([]byte, length)
	copy(buf, lenBuf[:])
	if _, err := io.ReadFull(t.reader, buf[4:]); err != nil {
		return nil, wrapReadErr(err)
	}
	return buf, nil
}

func wrapReadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrConnectionClosed
	}
	return fmt.Errorf("jdwp: reading packet: %w", err)
}

func (t *tcpTransport) WritePacket(buf []byte) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrConnectionClosed
	}
	t.mu.Unlock()

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := t.conn.Write(buf); err != nil {
		return fmt.Errorf("jdwp: writing packet: %w", err)
	}
	return nil
}

func (t *tcpTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}
