package jdwp

import (
	"errors"
	"fmt"
)

// ErrConnectionClosed is returned by operations on a Connection that has been
// closed, either by a call to Close or because the transport failed.
var ErrConnectionClosed = errors.New("jdwp: connection closed")

// ErrHandshakeFailed is returned when the peer's handshake reply does not
// match the expected "JDWP-Handshake" magic.
var ErrHandshakeFailed = errors.New("jdwp: handshake failed")

// ErrLogicError is returned for API misuse, such as operating on a
// Connection that was never opened.
var ErrLogicError = errors.New("jdwp: logic error")

// ConnectError wraps a failure to establish the underlying transport.
type ConnectError struct {
	Address string
	Cause   error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("jdwp: connect to %s: %v", e.Address, e.Cause)
}

func (e *ConnectError) Unwrap() error { return e.Cause }

// ProtocolError reports malformed bytes encountered while decoding a packet,
// event, or field: a short read, an unknown tag byte, or an ID width outside
// 1..8. Pos is the byte offset within the buffer being decoded at the point
// of failure.
type ProtocolError struct {
	Reason string
	Pos    int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("jdwp: protocol error at byte %d: %s", e.Pos, e.Reason)
}

// BodyTooLong is returned when a command packet's serialized body would make
// the wire length field (11 + len(body)) overflow a uint32.
type BodyTooLong struct {
	BodyLen int
}

func (e *BodyTooLong) Error() string {
	return fmt.Sprintf("jdwp: body of %d bytes exceeds the maximum packet length", e.BodyLen)
}

// IsFatal reports whether err represents a condition that closes the
// connection: an I/O failure, a protocol desync, or a handshake failure.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConnectionClosed) || errors.Is(err, ErrHandshakeFailed) {
		return true
	}
	var protoErr *ProtocolError
	var connErr *ConnectError
	return errors.As(err, &protoErr) || errors.As(err, &connErr)
}

// IsProtocolError reports whether err (or something it wraps) is a
// ProtocolError.
func IsProtocolError(err error) bool {
	var protoErr *ProtocolError
	return errors.As(err, &protoErr)
}
