package jdwp

// Every multibyte field on the wire travels in network (big-endian) byte
// order, regardless of the host's native endianness. Fixed-width primitives
// are handled directly with encoding/binary.BigEndian at their point of use;
// the helpers below exist because encoding/binary has no notion of an
// arbitrary 1..8 byte-wide integer, which is what the variable-width JDWP ID
// types need.

// putUintN writes the low n bytes (1..8) of v into dst in big-endian order.
// dst must have length >= n.
func putUintN(dst []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		dst[i] = byte(v >> uint((n-1-i)*8))
	}
}

// getUintN parses n big-endian bytes (1..8) from src into a uint64.
func getUintN(src []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<8 | uint64(src[i])
	}
	return v
}
