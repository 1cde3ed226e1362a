package jdwp

import "fmt"

// Event is implemented by every concrete event record a Composite packet can
// carry. Kind and ID let a Handler dispatch without a type switch when it
// only cares about routing, while the concrete type carries the kind's own
// fields.
type Event interface {
	Kind() EventKind
	RequestID() EventRequestID
}

type eventHeader struct {
	kind EventKind
	id   EventRequestID
}

func (h eventHeader) Kind() EventKind        { return h.kind }
func (h eventHeader) RequestID() EventRequestID { return h.id }

// VMStartEvent reports that the target VM has started and, by default,
// suspended before executing any bytecode.
type VMStartEvent struct {
	eventHeader
	Thread ThreadID
}

// VMDeathEvent reports that the target VM has shut down. It carries no
// fields; its arrival is the signal itself.
type VMDeathEvent struct {
	eventHeader
}

// SingleStepEvent reports a stepping request's notification.
type SingleStepEvent struct {
	eventHeader
	Thread   ThreadID
	Location Location
}

// BreakpointEvent reports a breakpoint hit.
type BreakpointEvent struct {
	eventHeader
	Thread   ThreadID
	Location Location
}

// MethodEntryEvent reports entry into a method.
type MethodEntryEvent struct {
	eventHeader
	Thread   ThreadID
	Location Location
}

// MethodExitEvent reports a method about to return.
type MethodExitEvent struct {
	eventHeader
	Thread   ThreadID
	Location Location
}

// MethodExitWithReturnValueEvent is MethodExitEvent plus the value about to
// be returned.
type MethodExitWithReturnValueEvent struct {
	eventHeader
	Thread      ThreadID
	Location    Location
	ReturnValue Value
}

// MonitorContendedEnterEvent reports a thread about to block entering a
// monitor another thread holds.
type MonitorContendedEnterEvent struct {
	eventHeader
	Thread   ThreadID
	Object   TaggedObjectID
	Location Location
}

// MonitorContendedEnteredEvent reports a thread having entered a monitor
// after contention.
type MonitorContendedEnteredEvent struct {
	eventHeader
	Thread   ThreadID
	Object   TaggedObjectID
	Location Location
}

// MonitorWaitEvent reports a thread about to wait on a monitor.
type MonitorWaitEvent struct {
	eventHeader
	Thread   ThreadID
	Object   TaggedObjectID
	Location Location
	Timeout  int64
}

// MonitorWaitedEvent reports a thread having finished waiting on a monitor.
type MonitorWaitedEvent struct {
	eventHeader
	Thread   ThreadID
	Object   TaggedObjectID
	Location Location
	TimedOut bool
}

// ExceptionEvent reports an exception being thrown, possibly before any
// catch handler is located.
type ExceptionEvent struct {
	eventHeader
	Thread        ThreadID
	Location      Location
	Exception     TaggedObjectID
	CatchLocation Location
}

// ThreadStartEvent reports a thread starting.
type ThreadStartEvent struct {
	eventHeader
	Thread ThreadID
}

// ThreadDeathEvent reports a thread terminating.
type ThreadDeathEvent struct {
	eventHeader
	Thread ThreadID
}

// ClassPrepareEvent reports a class or interface reaching the prepared
// state.
type ClassPrepareEvent struct {
	eventHeader
	Thread     ThreadID
	RefType    TypeTag
	TypeID     ReferenceTypeID
	Signature  string
	Status     ClassStatus
}

// ClassUnloadEvent reports a class being unloaded.
type ClassUnloadEvent struct {
	eventHeader
	Signature string
}

// FieldAccessEvent reports a field about to be read. Requires the
// canWatchFieldAccess capability to have been requested.
type FieldAccessEvent struct {
	eventHeader
	Thread    ThreadID
	Location  Location
	RefType   TypeTag
	TypeID    ReferenceTypeID
	Field     FieldID
	Object    TaggedObjectID
}

// FieldModificationEvent reports a field about to be written. Requires the
// canWatchFieldModification capability.
type FieldModificationEvent struct {
	eventHeader
	Thread    ThreadID
	Location  Location
	RefType   TypeTag
	TypeID    ReferenceTypeID
	Field     FieldID
	Object    TaggedObjectID
	ValueToBe Value
}

// Composite is the decoded body of an Event command set's Composite command:
// the single packet the VM uses to deliver every event to the debugger.
type Composite struct {
	SuspendPolicy SuspendPolicy
	Events        []Event
}

// ParseComposite decodes a Composite packet body. ids must be the IDSizes
// negotiated for the connection the packet arrived on.
func ParseComposite(body []byte, ids IDSizes) (Composite, error) {
	r := newFieldReader(body, ids)
	c := Composite{SuspendPolicy: SuspendPolicy(r.byte())}
	n := int(r.uint32())
	c.Events = make([]Event, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		kind := EventKind(r.byte())
		reqID := EventRequestID(r.int32())
		hdr := eventHeader{kind: kind, id: reqID}
		ev, err := parseEvent(r, hdr)
		if err != nil {
			return Composite{}, err
		}
		c.Events = append(c.Events, ev)
	}
	if err := r.Err(); err != nil {
		return Composite{}, err
	}
	return c, nil
}

func parseEvent(r *fieldReader, hdr eventHeader) (Event, error) {
	switch hdr.kind {
	case EventVMStart:
		return VMStartEvent{hdr, r.threadID()}, r.Err()
	case EventVMDeath:
		return VMDeathEvent{hdr}, r.Err()
	case EventSingleStep:
		return SingleStepEvent{hdr, r.threadID(), r.location()}, r.Err()
	case EventBreakpoint:
		return BreakpointEvent{hdr, r.threadID(), r.location()}, r.Err()
	case EventMethodEntry:
		return MethodEntryEvent{hdr, r.threadID(), r.location()}, r.Err()
	case EventMethodExit:
		return MethodExitEvent{hdr, r.threadID(), r.location()}, r.Err()
	case EventMethodExitWithReturnValue:
		th := r.threadID()
		loc := r.location()
		return MethodExitWithReturnValueEvent{hdr, th, loc, r.taggedValue()}, r.Err()
	case EventMonitorContendedEnter:
		th := r.threadID()
		obj := r.taggedObjectID()
		return MonitorContendedEnterEvent{hdr, th, obj, r.location()}, r.Err()
	case EventMonitorContendedEntered:
		th := r.threadID()
		obj := r.taggedObjectID()
		return MonitorContendedEnteredEvent{hdr, th, obj, r.location()}, r.Err()
	case EventMonitorWait:
		th := r.threadID()
		obj := r.taggedObjectID()
		loc := r.location()
		return MonitorWaitEvent{hdr, th, obj, loc, r.int64()}, r.Err()
	case EventMonitorWaited:
		th := r.threadID()
		obj := r.taggedObjectID()
		loc := r.location()
		return MonitorWaitedEvent{hdr, th, obj, loc, r.boolean()}, r.Err()
	case EventException:
		th := r.threadID()
		loc := r.location()
		exc := r.taggedObjectID()
		return ExceptionEvent{hdr, th, loc, exc, r.location()}, r.Err()
	case EventThreadStart:
		return ThreadStartEvent{hdr, r.threadID()}, r.Err()
	case EventThreadDeath:
		return ThreadDeathEvent{hdr, r.threadID()}, r.Err()
	case EventClassPrepare:
		th := r.threadID()
		tag := TypeTag(r.byte())
		typeID := r.referenceTypeID()
		sig := r.string()
		status := ClassStatus(r.int32())
		return ClassPrepareEvent{hdr, th, tag, typeID, sig, status}, r.Err()
	case EventClassUnload:
		return ClassUnloadEvent{hdr, r.string()}, r.Err()
	case EventFieldAccess:
		th := r.threadID()
		loc := r.location()
		tag := TypeTag(r.byte())
		typeID := r.referenceTypeID()
		field := r.fieldID()
		return FieldAccessEvent{hdr, th, loc, tag, typeID, field, r.taggedObjectID()}, r.Err()
	case EventFieldModification:
		th := r.threadID()
		loc := r.location()
		tag := TypeTag(r.byte())
		typeID := r.referenceTypeID()
		field := r.fieldID()
		obj := r.taggedObjectID()
		return FieldModificationEvent{hdr, th, loc, tag, typeID, field, obj, r.taggedValue()}, r.Err()
	default:
		return nil, &ProtocolError{Reason: fmt.Sprintf("unhandled event kind %s", hdr.kind), Pos: r.pos}
	}
}

// threadID reads an object-family id of thread width and aliases it
// as a ThreadID; thread ids share the object id width on the wire.
func (r *fieldReader) threadID() ThreadID { return ThreadID(r.objectID()) }

// Handler is implemented by callers wanting to react to VM-originated
// events. RegisterEventHandler on a Connection dispatches every decoded
// Composite event to the registered Handler: the method matching the
// event's concrete kind is called when overridden, otherwise HandleEvent is
// called as the catch-all.
//
// Callers should embed BaseHandler rather than implement Handler directly,
// so new event kinds added to this package don't break existing callers.
type Handler interface {
	HandleEvent(Event)

	HandleVMStart(VMStartEvent)
	HandleVMDeath(VMDeathEvent)
	HandleSingleStep(SingleStepEvent)
	HandleBreakpoint(BreakpointEvent)
	HandleMethodEntry(MethodEntryEvent)
	HandleMethodExit(MethodExitEvent)
	HandleMethodExitWithReturnValue(MethodExitWithReturnValueEvent)
	HandleMonitorContendedEnter(MonitorContendedEnterEvent)
	HandleMonitorContendedEntered(MonitorContendedEnteredEvent)
	HandleMonitorWait(MonitorWaitEvent)
	HandleMonitorWaited(MonitorWaitedEvent)
	HandleException(ExceptionEvent)
	HandleThreadStart(ThreadStartEvent)
	HandleThreadDeath(ThreadDeathEvent)
	HandleClassPrepare(ClassPrepareEvent)
	HandleClassUnload(ClassUnloadEvent)
	HandleFieldAccess(FieldAccessEvent)
	HandleFieldModification(FieldModificationEvent)
}

// BaseHandler is a Handler whose every per-variant method delegates to
// HandleEvent, which itself defaults to a no-op. Embed it and override only
// the methods a particular caller cares about.
type BaseHandler struct {
	// Fallback, if set, is called by HandleEvent for any event whose
	// variant-specific method was not overridden. A nil Fallback discards
	// the event.
	Fallback func(Event)
}

func (b BaseHandler) HandleEvent(e Event) {
	if b.Fallback != nil {
		b.Fallback(e)
	}
}

func (b BaseHandler) HandleVMStart(e VMStartEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleVMDeath(e VMDeathEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleSingleStep(e SingleStepEvent) { b.HandleEvent(e) }
func (b BaseHandler) HandleBreakpoint(e BreakpointEvent) { b.HandleEvent(e) }
func (b BaseHandler) HandleMethodEntry(e MethodEntryEvent) { b.HandleEvent(e) }
func (b BaseHandler) HandleMethodExit(e MethodExitEvent)   { b.HandleEvent(e) }
func (b BaseHandler) HandleMethodExitWithReturnValue(e MethodExitWithReturnValueEvent) {
	b.HandleEvent(e)
}
func (b BaseHandler) HandleMonitorContendedEnter(e MonitorContendedEnterEvent) { b.HandleEvent(e) }
func (b BaseHandler) HandleMonitorContendedEntered(e MonitorContendedEnteredEvent) {
	b.HandleEvent(e)
}
func (b BaseHandler) HandleMonitorWait(e MonitorWaitEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleMonitorWaited(e MonitorWaitedEvent) { b.HandleEvent(e) }
func (b BaseHandler) HandleException(e ExceptionEvent)         { b.HandleEvent(e) }
func (b BaseHandler) HandleThreadStart(e ThreadStartEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleThreadDeath(e ThreadDeathEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleClassPrepare(e ClassPrepareEvent)   { b.HandleEvent(e) }
func (b BaseHandler) HandleClassUnload(e ClassUnloadEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleFieldAccess(e FieldAccessEvent)     { b.HandleEvent(e) }
func (b BaseHandler) HandleFieldModification(e FieldModificationEvent) { b.HandleEvent(e) }

// HandlerFunc adapts a plain function to the Handler interface: every
// variant method forwards to it, so it behaves as a pure catch-all with no
// per-kind filtering.
type HandlerFunc func(Event)

func (f HandlerFunc) HandleEvent(e Event) { f(e) }

func (f HandlerFunc) HandleVMStart(e VMStartEvent)     { f(e) }
func (f HandlerFunc) HandleVMDeath(e VMDeathEvent)     { f(e) }
func (f HandlerFunc) HandleSingleStep(e SingleStepEvent) { f(e) }
func (f HandlerFunc) HandleBreakpoint(e BreakpointEvent) { f(e) }
func (f HandlerFunc) HandleMethodEntry(e MethodEntryEvent) { f(e) }
func (f HandlerFunc) HandleMethodExit(e MethodExitEvent)   { f(e) }
func (f HandlerFunc) HandleMethodExitWithReturnValue(e MethodExitWithReturnValueEvent) { f(e) }
func (f HandlerFunc) HandleMonitorContendedEnter(e MonitorContendedEnterEvent)   { f(e) }
func (f HandlerFunc) HandleMonitorContendedEntered(e MonitorContendedEnteredEvent) { f(e) }
func (f HandlerFunc) HandleMonitorWait(e MonitorWaitEvent)     { f(e) }
func (f HandlerFunc) HandleMonitorWaited(e MonitorWaitedEvent) { f(e) }
func (f HandlerFunc) HandleException(e ExceptionEvent)         { f(e) }
func (f HandlerFunc) HandleThreadStart(e ThreadStartEvent)     { f(e) }
func (f HandlerFunc) HandleThreadDeath(e ThreadDeathEvent)     { f(e) }
func (f HandlerFunc) HandleClassPrepare(e ClassPrepareEvent)   { f(e) }
func (f HandlerFunc) HandleClassUnload(e ClassUnloadEvent)     { f(e) }
func (f HandlerFunc) HandleFieldAccess(e FieldAccessEvent)     { f(e) }
func (f HandlerFunc) HandleFieldModification(e FieldModificationEvent) { f(e) }

// dispatchEvent calls the Handler method matching e's concrete kind.
func dispatchEvent(h Handler, e Event) {
	switch ev := e.(type) {
	case VMStartEvent:
		h.HandleVMStart(ev)
	case VMDeathEvent:
		h.HandleVMDeath(ev)
	case SingleStepEvent:
		h.HandleSingleStep(ev)
	case BreakpointEvent:
		h.HandleBreakpoint(ev)
	case MethodEntryEvent:
		h.HandleMethodEntry(ev)
	case MethodExitEvent:
		h.HandleMethodExit(ev)
	case MethodExitWithReturnValueEvent:
		h.HandleMethodExitWithReturnValue(ev)
	case MonitorContendedEnterEvent:
		h.HandleMonitorContendedEnter(ev)
	case MonitorContendedEnteredEvent:
		h.HandleMonitorContendedEntered(ev)
	case MonitorWaitEvent:
		h.HandleMonitorWait(ev)
	case MonitorWaitedEvent:
		h.HandleMonitorWaited(ev)
	case ExceptionEvent:
		h.HandleException(ev)
	case ThreadStartEvent:
		h.HandleThreadStart(ev)
	case ThreadDeathEvent:
		h.HandleThreadDeath(ev)
	case ClassPrepareEvent:
		h.HandleClassPrepare(ev)
	case ClassUnloadEvent:
		h.HandleClassUnload(ev)
	case FieldAccessEvent:
		h.HandleFieldAccess(ev)
	case FieldModificationEvent:
		h.HandleFieldModification(ev)
	default:
		h.HandleEvent(e)
	}
}
