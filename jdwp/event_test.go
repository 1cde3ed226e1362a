package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler overrides only Breakpoint and falls back to a generic
// catch-all for everything else, the shape BaseHandler exists to support.
type recordingHandler struct {
	BaseHandler
	breakpoints []BreakpointEvent
}

func (h *recordingHandler) HandleBreakpoint(e BreakpointEvent) {
	h.breakpoints = append(h.breakpoints, e)
}

func TestDispatchEventCallsOverriddenVariantMethod(t *testing.T) {
	t.Parallel()

	var caught []Event
	h := &recordingHandler{BaseHandler: BaseHandler{Fallback: func(e Event) { caught = append(caught, e) }}}

	loc := Location{Type: TypeTagClass, Class: ReferenceTypeID(1), Method: MethodID(2), Index: 3}
	bp := BreakpointEvent{eventHeader{kind: EventBreakpoint, id: 7}, ThreadID(9), loc}
	dispatchEvent(h, bp)

	require.Len(t, h.breakpoints, 1)
	assert.Equal(t, bp, h.breakpoints[0])
	assert.Empty(t, caught, "overridden variant method must not also hit the fallback")
}

func TestDispatchEventFallsBackToCatchAll(t *testing.T) {
	t.Parallel()

	var caught []Event
	h := &recordingHandler{BaseHandler: BaseHandler{Fallback: func(e Event) { caught = append(caught, e) }}}

	ts := ThreadStartEvent{eventHeader{kind: EventThreadStart, id: 5}, ThreadID(1)}
	dispatchEvent(h, ts)

	require.Len(t, caught, 1)
	assert.Equal(t, ts, caught[0])
}

func TestHandlerFuncImplementsEveryVariant(t *testing.T) {
	t.Parallel()

	var kinds []EventKind
	f := HandlerFunc(func(e Event) { kinds = append(kinds, e.Kind()) })

	dispatchEvent(f, VMStartEvent{eventHeader{kind: EventVMStart, id: 1}, ThreadID(1)})
	dispatchEvent(f, ClassUnloadEvent{eventHeader{kind: EventClassUnload, id: 2}, "Lfoo/Bar;"})

	require.Len(t, kinds, 2)
	assert.Equal(t, EventVMStart, kinds[0])
	assert.Equal(t, EventClassUnload, kinds[1])
}
