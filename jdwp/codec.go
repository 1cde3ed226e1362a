package jdwp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// bodyWriter accumulates the bytes of a command packet body. Every
// cmdset_*.go constructor builds its body by chaining calls against a
// bodyWriter rather than via reflection: the field layout of each command is
// spelled out explicitly, matching the protocol's own fixed, hand-specified
// wire formats.
type bodyWriter struct {
	ids IDSizes
	buf bytes.Buffer
}

func newBodyWriter(ids IDSizes) *bodyWriter {
	return &bodyWriter{ids: ids}
}

func (w *bodyWriter) Bytes() []byte { return w.buf.Bytes() }

func (w *bodyWriter) byte(v byte)       { w.buf.WriteByte(v) }
func (w *bodyWriter) boolean(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *bodyWriter) uint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *bodyWriter) int32(v int32)   { w.uint32(uint32(v)) }
func (w *bodyWriter) uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *bodyWriter) int64(v int64)   { w.uint64(uint64(v)) }
func (w *bodyWriter) uint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *bodyWriter) float32(v float32) { w.uint32(math.Float32bits(v)) }
func (w *bodyWriter) float64(v float64) { w.uint64(math.Float64bits(v)) }

// idN writes v using n bytes, big-endian, as required for the protocol's
// variable-width identifier families.
func (w *bodyWriter) idN(v uint64, n int) {
	var b [8]byte
	putUintN(b[:n], v, n)
	w.buf.Write(b[:n])
}

func (w *bodyWriter) objectID(v ObjectID)               { w.idN(uint64(v), w.ids.ObjectIDSize) }
func (w *bodyWriter) referenceTypeID(v ReferenceTypeID)  { w.idN(uint64(v), w.ids.ReferenceTypeIDSize) }
func (w *bodyWriter) methodID(v MethodID)                { w.idN(uint64(v), w.ids.MethodIDSize) }
func (w *bodyWriter) fieldID(v FieldID)                  { w.idN(uint64(v), w.ids.FieldIDSize) }
func (w *bodyWriter) frameID(v FrameID)                  { w.idN(uint64(v), w.ids.FrameIDSize) }

// string writes a JDWP string: a uint32 byte length followed by UTF-8 bytes
// (no NUL terminator, no encoded character count).
func (w *bodyWriter) string(s string) {
	w.uint32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *bodyWriter) location(l Location) {
	w.byte(byte(l.Type))
	w.referenceTypeID(l.Class)
	w.methodID(l.Method)
	w.uint64(l.Index)
}

// untaggedValue writes v's payload with no leading tag byte, for the three
// commands (ClassType.SetValues, ObjectReference.SetValues,
// ArrayReference.SetValues) whose target field/slot already carries a
// signature the VM uses to infer the value's type.
func (w *bodyWriter) untaggedValue(v Value) {
	switch v.Tag {
	case TagByte:
		w.byte(byte(v.Byte))
	case TagBoolean:
		w.boolean(v.Boolean)
	case TagChar:
		w.uint16(v.Char)
	case TagShort:
		w.uint16(uint16(v.Short))
	case TagInt:
		w.int32(v.Int)
	case TagLong:
		w.int64(v.Long)
	case TagFloat:
		w.float32(v.Float)
	case TagDouble:
		w.float64(v.Double)
	case TagVoid:
		// no payload
	default:
		if v.Tag.isObjectFamily() {
			w.objectID(v.Object)
			return
		}
		panic(fmt.Sprintf("jdwp: untaggedValue: unhandled tag %s", v.Tag))
	}
}

// taggedValue writes v's tag byte followed by its payload.
func (w *bodyWriter) taggedValue(v Value) {
	w.byte(byte(v.Tag))
	w.untaggedValue(v)
}

func (w *bodyWriter) taggedObjectID(t TaggedObjectID) {
	w.byte(byte(t.Tag))
	w.objectID(t.ObjectID)
}

// repeatCount writes the uint32 count that prefixes a repeated group; the
// caller writes the n entries after it.
func (w *bodyWriter) repeatCount(n int) { w.uint32(uint32(n)) }

// fieldReader parses sequential fields out of a byte slice. Unlike
// bodyWriter, decode support is limited to what callers actually need: raw
// field values plus Location and TaggedObjectID, for composite-event
// parsing and for the generic field round-trip tests. Full reply-body
// decoding is left to callers, by design.
type fieldReader struct {
	ids IDSizes
	buf []byte
	pos int
	err error
}

func newFieldReader(buf []byte, ids IDSizes) *fieldReader {
	return &fieldReader{ids: ids, buf: buf}
}

func (r *fieldReader) fail(reason string) {
	if r.err == nil {
		r.err = &ProtocolError{Reason: reason, Pos: r.pos}
	}
}

func (r *fieldReader) Err() error { return r.err }

func (r *fieldReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.buf) {
		r.fail(fmt.Sprintf("short read: need %d bytes, have %d", n, len(r.buf)-r.pos))
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *fieldReader) byte() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *fieldReader) boolean() bool { return r.byte() != 0 }

func (r *fieldReader) uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *fieldReader) uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *fieldReader) int32() int32 { return int32(r.uint32()) }

func (r *fieldReader) uint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func (r *fieldReader) int64() int64 { return int64(r.uint64()) }

func (r *fieldReader) float32() float32 { return math.Float32frombits(r.uint32()) }
func (r *fieldReader) float64() float64 { return math.Float64frombits(r.uint64()) }

func (r *fieldReader) idN(n int) uint64 {
	if n < 1 || n > 8 {
		r.fail(fmt.Sprintf("invalid id width %d", n))
		return 0
	}
	b := r.take(n)
	if b == nil {
		return 0
	}
	return getUintN(b, n)
}

func (r *fieldReader) objectID() ObjectID              { return ObjectID(r.idN(r.ids.ObjectIDSize)) }
func (r *fieldReader) referenceTypeID() ReferenceTypeID { return ReferenceTypeID(r.idN(r.ids.ReferenceTypeIDSize)) }
func (r *fieldReader) methodID() MethodID              { return MethodID(r.idN(r.ids.MethodIDSize)) }
func (r *fieldReader) fieldID() FieldID                { return FieldID(r.idN(r.ids.FieldIDSize)) }
func (r *fieldReader) frameID() FrameID                { return FrameID(r.idN(r.ids.FrameIDSize)) }

func (r *fieldReader) string() string {
	n := r.uint32()
	b := r.take(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

func (r *fieldReader) location() Location {
	return Location{
		Type:   TypeTag(r.byte()),
		Class:  r.referenceTypeID(),
		Method: r.methodID(),
		Index:  r.uint64(),
	}
}

func (r *fieldReader) untaggedValue(tag Tag) Value {
	switch tag {
	case TagByte:
		return Value{Tag: tag, Byte: int8(r.byte())}
	case TagBoolean:
		return Value{Tag: tag, Boolean: r.boolean()}
	case TagChar:
		return Value{Tag: tag, Char: r.uint16()}
	case TagShort:
		return Value{Tag: tag, Short: int16(r.uint16())}
	case TagInt:
		return Value{Tag: tag, Int: r.int32()}
	case TagLong:
		return Value{Tag: tag, Long: r.int64()}
	case TagFloat:
		return Value{Tag: tag, Float: r.float32()}
	case TagDouble:
		return Value{Tag: tag, Double: r.float64()}
	case TagVoid:
		return Value{Tag: tag}
	default:
		if tag.isObjectFamily() {
			return Value{Tag: tag, Object: r.objectID()}
		}
		r.fail(fmt.Sprintf("unknown value tag %q", byte(tag)))
		return Value{}
	}
}

func (r *fieldReader) taggedValue() Value {
	tag := Tag(r.byte())
	return r.untaggedValue(tag)
}

func (r *fieldReader) taggedObjectID() TaggedObjectID {
	tag := Tag(r.byte())
	return TaggedObjectID{Tag: tag, ObjectID: r.objectID()}
}
