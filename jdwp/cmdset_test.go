package jdwp

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromHexSpaced(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func TestVMVersionWireBytes(t *testing.T) {
	t.Parallel()

	buf, err := VMVersion().encode(1)
	require.NoError(t, err)
	assert.Equal(t, fromHexSpaced(t, "00 00 00 0B 00 00 00 01 00 01 01"), buf)
}

func TestVMClassesBySignatureWireBytes(t *testing.T) {
	t.Parallel()

	buf, err := VMClassesBySignature("Ljava/lang/String;").encode(7)
	require.NoError(t, err)

	wantHeader := fromHexSpaced(t, "00 00 00 21 00 00 00 07 00 01 02")
	assert.Equal(t, wantHeader, buf[:headerLen])
	assert.Equal(t, fromHexSpaced(t, "00 00 00 12"), buf[headerLen:headerLen+4])
	assert.Equal(t, "Ljava/lang/String;", string(buf[headerLen+4:]))
}

func TestVMDisposeObjectsWireBytes(t *testing.T) {
	t.Parallel()

	refs := make([]ObjectID, 4)
	counts := make([]int32, 4)
	for i := range refs {
		refs[i] = ObjectID(0xDEADBEEFCAFEF00D)
		counts[i] = 1
	}
	pkt := VMDisposeObjects(DefaultIDSizes, refs, counts)

	require.Equal(t, fromHexSpaced(t, "00 00 00 04"), pkt.Body[:4])
	entry := fromHexSpaced(t, "DE AD BE EF CA FE F0 0D 00 00 00 01")
	for i := 0; i < 4; i++ {
		start := 4 + i*len(entry)
		assert.Equal(t, entry, pkt.Body[start:start+len(entry)], "entry %d", i)
	}
}

func TestParseCompositeTwoEvents(t *testing.T) {
	t.Parallel()

	thread := ThreadID(11)
	thread2 := ThreadID(22)
	loc := Location{Type: TypeTagClass, Class: ReferenceTypeID(33), Method: MethodID(44), Index: 55}

	w := newBodyWriter(DefaultIDSizes)
	w.byte(byte(SuspendAll))
	w.repeatCount(2)

	w.byte(byte(EventBreakpoint))
	w.int32(3)
	w.objectID(ObjectID(thread))
	w.location(loc)

	w.byte(byte(EventVMStart))
	w.int32(4)
	w.objectID(ObjectID(thread2))

	composite, err := ParseComposite(w.Bytes(), DefaultIDSizes)
	require.NoError(t, err)
	require.Len(t, composite.Events, 2)

	bp, ok := composite.Events[0].(BreakpointEvent)
	require.True(t, ok)
	assert.Equal(t, EventRequestID(3), bp.RequestID())
	assert.Equal(t, thread, bp.Thread)
	assert.Equal(t, loc, bp.Location)

	start, ok := composite.Events[1].(VMStartEvent)
	require.True(t, ok)
	assert.Equal(t, EventRequestID(4), start.RequestID())
	assert.Equal(t, thread2, start.Thread)
}

func TestEventRequestSetClassMatchWireBytes(t *testing.T) {
	t.Parallel()

	pkt := EventRequestSet(DefaultIDSizes, EventClassPrepare, SuspendAll, []EventModifier{
		ClassMatchModifier{Pattern: "com.foo.*"},
	})

	want := fromHexSpaced(t, "08 02 00 00 00 01 05 00 00 00 09 63 6F 6D 2E 66 6F 6F 2E 2A")
	assert.Equal(t, want, pkt.Body)
}
