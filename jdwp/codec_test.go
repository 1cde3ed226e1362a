package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetUintN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width int
		value uint64
	}{
		{1, 0xAB},
		{2, 0xBEEF},
		{4, 0xDEADBEEF},
		{8, 0x0102030405060708},
	}
	for _, tc := range cases {
		buf := make([]byte, tc.width)
		putUintN(buf, tc.value, tc.width)
		assert.Equal(t, tc.value, getUintN(buf, tc.width), "width %d", tc.width)
	}
}

func TestBodyWriterReaderRoundTrip_IDWidths(t *testing.T) {
	t.Parallel()

	for width := 1; width <= 8; width++ {
		ids := IDSizes{ObjectIDSize: width, ReferenceTypeIDSize: width, MethodIDSize: width, FieldIDSize: width, FrameIDSize: width}
		w := newBodyWriter(ids)
		obj := ObjectID(0xFF)
		w.objectID(obj)

		r := newFieldReader(w.Bytes(), ids)
		require.NoError(t, r.Err())
		assert.Equal(t, obj, r.objectID())
	}
}

func TestBodyWriterReaderRoundTrip_Primitives(t *testing.T) {
	t.Parallel()

	w := newBodyWriter(DefaultIDSizes)
	w.byte(0x7F)
	w.boolean(true)
	w.uint16(0xBEEF)
	w.int32(-12345)
	w.int64(-9876543210)
	w.float32(3.5)
	w.float64(2.71828)
	w.string("hello, jdwp")

	r := newFieldReader(w.Bytes(), DefaultIDSizes)
	assert.Equal(t, byte(0x7F), r.byte())
	assert.Equal(t, true, r.boolean())
	assert.Equal(t, uint16(0xBEEF), r.uint16())
	assert.Equal(t, int32(-12345), r.int32())
	assert.Equal(t, int64(-9876543210), r.int64())
	assert.Equal(t, float32(3.5), r.float32())
	assert.Equal(t, 2.71828, r.float64())
	assert.Equal(t, "hello, jdwp", r.string())
	require.NoError(t, r.Err())
}

func TestBodyWriterReaderRoundTrip_Location(t *testing.T) {
	t.Parallel()

	loc := Location{Type: TypeTagClass, Class: ReferenceTypeID(42), Method: MethodID(7), Index: 99}
	w := newBodyWriter(DefaultIDSizes)
	w.location(loc)

	r := newFieldReader(w.Bytes(), DefaultIDSizes)
	assert.Equal(t, loc, r.location())
	require.NoError(t, r.Err())
}

func TestBodyWriterReaderRoundTrip_TaggedValue(t *testing.T) {
	t.Parallel()

	values := []Value{
		ByteValue(-1),
		BooleanValue(true),
		CharValue('Z'),
		ShortValue(-2000),
		IntValue(123456),
		LongValue(-1234567890123),
		FloatValue(1.5),
		DoubleValue(-2.5),
		VoidValue(),
		ObjectValue(TagObject, ObjectID(99)),
		ObjectValue(TagString, ObjectID(100)),
	}

	for _, v := range values {
		w := newBodyWriter(DefaultIDSizes)
		w.taggedValue(v)
		r := newFieldReader(w.Bytes(), DefaultIDSizes)
		got := r.taggedValue()
		require.NoError(t, r.Err())
		assert.Equal(t, v, got, "tag %s", v.Tag)
	}
}

func TestBodyWriterReaderRoundTrip_TaggedObjectID(t *testing.T) {
	t.Parallel()

	tagged := TaggedObjectID{Tag: TagThread, ObjectID: ObjectID(555)}
	w := newBodyWriter(DefaultIDSizes)
	w.taggedObjectID(tagged)

	r := newFieldReader(w.Bytes(), DefaultIDSizes)
	assert.Equal(t, tagged, r.taggedObjectID())
	require.NoError(t, r.Err())
}

func TestFieldReader_TaggedObjectIDWireBytes(t *testing.T) {
	t.Parallel()

	buf := fromHexSpaced(t, "01 DE AD BE EF CA FE F0 0D")
	r := newFieldReader(buf, DefaultIDSizes)
	got := r.taggedObjectID()
	require.NoError(t, r.Err())

	assert.Equal(t, Tag(1), got.Tag)
	assert.Equal(t, ObjectID(0xDEADBEEFCAFEF00D), got.ObjectID)
}

func TestFieldReader_ShortReadIsProtocolError(t *testing.T) {
	t.Parallel()

	r := newFieldReader([]byte{0x01, 0x02}, DefaultIDSizes)
	_ = r.uint64()
	require.Error(t, r.Err())
	assert.True(t, IsProtocolError(r.Err()))
}

func TestObjectValue_PanicsOnNonObjectTag(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { ObjectValue(TagInt, ObjectID(1)) })
}
