package jdwp

import "sync/atomic"

// sequence hands out the monotonically increasing packet ids a Connection
// assigns to every outgoing command. JDWP ids are opaque 32-bit values the
// protocol never interprets beyond matching a reply to its command; starting
// at 1 and wrapping is fine since a connection will exhaust practical memory
// long before exhausting uint32 ids.
type sequence struct {
	next atomic.Uint32
}

func (s *sequence) nextID() uint32 {
	return s.next.Add(1)
}
