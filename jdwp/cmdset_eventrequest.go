package jdwp

// Commands in the EventRequest command set (15).
const (
	cmdEventRequestSet                  byte = 1
	cmdEventRequestClear                byte = 2
	cmdEventRequestClearAllBreakpoints  byte = 3
)

// EventRequestID identifies an event request created by EventRequestSet, for
// later use with EventRequestClear.
type EventRequestID int32

// EventModifier narrows the events an EventRequestSet call reports. Each
// modifier kind has a fixed wire layout; encode writes that layout
// (excluding the leading mod-kind byte, which EventRequestSet writes).
type EventModifier interface {
	modKind() byte
	encode(ids IDSizes, w *bodyWriter)
}

// CountModifier fires the event only on its Nth occurrence, then
// auto-deletes the request. Valid for any event kind.
type CountModifier struct{ Count int32 }

// ConditionalModifier evaluates a previously registered expression to decide
// whether to report the event. No debugger is known to create these; kept
// for protocol completeness.
type ConditionalModifier struct{ ExprID int32 }

// ThreadOnlyModifier restricts events to those occurring in a single thread.
type ThreadOnlyModifier struct{ Thread ThreadID }

// ClassOnlyModifier restricts events to those whose location is in the given
// class or one of its subtypes.
type ClassOnlyModifier struct{ Class ReferenceTypeID }

// ClassMatchModifier restricts events to classes whose name matches a
// pattern. The pattern may use a leading or trailing "*" wildcard.
type ClassMatchModifier struct{ Pattern string }

// ClassExcludeModifier excludes events from classes whose name matches a
// pattern, with the same pattern rules as ClassMatchModifier.
type ClassExcludeModifier struct{ Pattern string }

// LocationOnlyModifier restricts events to one exact location. Valid for
// breakpoint, field access/modification, and step events.
type LocationOnlyModifier struct{ Location Location }

// ExceptionOnlyModifier restricts exception events by exception type and by
// whether the exception is caught, uncaught, or both.
type ExceptionOnlyModifier struct {
	ExceptionOrNull ReferenceTypeID
	Caught          bool
	Uncaught        bool
}

// FieldOnlyModifier restricts field access/modification events to a single
// field.
type FieldOnlyModifier struct {
	Declaring ReferenceTypeID
	Field     FieldID
}

// StepModifier restricts step events to a thread and a size/depth pair.
type StepModifier struct {
	Thread ThreadID
	Size   StepSize
	Depth  StepDepth
}

// InstanceOnlyModifier restricts events to those whose "this" is the given
// object.
type InstanceOnlyModifier struct{ Instance ObjectID }

// SourceNameMatchModifier restricts ClassPrepare events to classes whose
// source file name matches a pattern. Requires the
// canUseSourceNameFilters capability.
type SourceNameMatchModifier struct{ Pattern string }

func (CountModifier) modKind() byte            { return 1 }
func (ConditionalModifier) modKind() byte      { return 2 }
func (ThreadOnlyModifier) modKind() byte       { return 3 }
func (ClassOnlyModifier) modKind() byte        { return 4 }
func (ClassMatchModifier) modKind() byte       { return 5 }
func (ClassExcludeModifier) modKind() byte     { return 6 }
func (LocationOnlyModifier) modKind() byte     { return 7 }
func (ExceptionOnlyModifier) modKind() byte    { return 8 }
func (FieldOnlyModifier) modKind() byte        { return 9 }
func (StepModifier) modKind() byte             { return 10 }
func (InstanceOnlyModifier) modKind() byte     { return 11 }
func (SourceNameMatchModifier) modKind() byte  { return 12 }

func (m CountModifier) encode(ids IDSizes, w *bodyWriter)  { w.int32(m.Count) }
func (m ConditionalModifier) encode(ids IDSizes, w *bodyWriter) { w.int32(m.ExprID) }
func (m ThreadOnlyModifier) encode(ids IDSizes, w *bodyWriter) { w.objectID(ObjectID(m.Thread)) }
func (m ClassOnlyModifier) encode(ids IDSizes, w *bodyWriter)  { w.referenceTypeID(m.Class) }
func (m ClassMatchModifier) encode(ids IDSizes, w *bodyWriter) { w.string(m.Pattern) }
func (m ClassExcludeModifier) encode(ids IDSizes, w *bodyWriter) { w.string(m.Pattern) }

func (m LocationOnlyModifier) encode(ids IDSizes, w *bodyWriter) { w.location(m.Location) }

func (m ExceptionOnlyModifier) encode(ids IDSizes, w *bodyWriter) {
	w.referenceTypeID(m.ExceptionOrNull)
	w.boolean(m.Caught)
	w.boolean(m.Uncaught)
}

func (m FieldOnlyModifier) encode(ids IDSizes, w *bodyWriter) {
	w.referenceTypeID(m.Declaring)
	w.fieldID(m.Field)
}

func (m StepModifier) encode(ids IDSizes, w *bodyWriter) {
	w.objectID(ObjectID(m.Thread))
	w.int32(int32(m.Size))
	w.int32(int32(m.Depth))
}

func (m InstanceOnlyModifier) encode(ids IDSizes, w *bodyWriter) { w.objectID(m.Instance) }
func (m SourceNameMatchModifier) encode(ids IDSizes, w *bodyWriter) { w.string(m.Pattern) }

// EventRequestSet asks the VM to begin reporting events of the given kind,
// under the given suspend policy and (possibly empty) set of modifiers.
func EventRequestSet(ids IDSizes, kind EventKind, policy SuspendPolicy, modifiers []EventModifier) CommandPacket {
	w := newBodyWriter(ids)
	w.byte(byte(kind))
	w.byte(byte(policy))
	w.repeatCount(len(modifiers))
	for _, m := range modifiers {
		w.byte(m.modKind())
		m.encode(ids, w)
	}
	return CommandPacket{CmdSetEventRequest, cmdEventRequestSet, w.Bytes()}
}

// EventRequestClear cancels a single event request.
func EventRequestClear(kind EventKind, id EventRequestID) CommandPacket {
	w := newBodyWriter(IDSizes{})
	w.byte(byte(kind))
	w.int32(int32(id))
	return CommandPacket{CmdSetEventRequest, cmdEventRequestClear, w.Bytes()}
}

// EventRequestClearAllBreakpoints removes every breakpoint set by this
// debugger.
func EventRequestClearAllBreakpoints() CommandPacket {
	return CommandPacket{CmdSetEventRequest, cmdEventRequestClearAllBreakpoints, nil}
}
