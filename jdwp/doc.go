// Package jdwp implements a client-side engine for the Java Debug Wire
// Protocol: the binary protocol spoken between a debugger and a JVM's debug
// agent over a stream socket. It performs the JDWP handshake, serializes and
// sends command packets, correlates replies back to the commands that
// elicited them, and dispatches VM-originated composite events to registered
// handlers.
//
// The package does not implement the JVM side of the protocol, does not parse
// reply bodies into structured values (callers get the raw bytes, or a
// *ReplyError carrying a non-zero JDWP error code; the package's field
// decoder is internal, so callers decode reply bodies themselves), and keeps
// no state across process runs.
package jdwp
