package jdwp

// Commands in the ObjectReference command set (9).
const (
	cmdObjRefReferenceType      byte = 1
	cmdObjRefGetValues          byte = 2
	cmdObjRefSetValues          byte = 3
	cmdObjRefMonitorInfo        byte = 5
	cmdObjRefInvokeMethod       byte = 6
	cmdObjRefDisableCollection  byte = 7
	cmdObjRefEnableCollection   byte = 8
	cmdObjRefIsCollected        byte = 9
	cmdObjRefReferringObjects   byte = 10
)

// ObjectReferenceType requests the runtime reference type of an object,
// which may be a subtype of the type a field or variable declares it as.
func ObjectReferenceType(ids IDSizes, obj ObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	return CommandPacket{CmdSetObjectReference, cmdObjRefReferenceType, w.Bytes()}
}

// ObjectGetValues requests the values of one or more instance fields of an
// object.
func ObjectGetValues(ids IDSizes, obj ObjectID, fields []FieldID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	w.repeatCount(len(fields))
	for _, f := range fields {
		w.fieldID(f)
	}
	return CommandPacket{CmdSetObjectReference, cmdObjRefGetValues, w.Bytes()}
}

// ObjectSetValues sets the values of one or more instance fields, untagged.
func ObjectSetValues(ids IDSizes, obj ObjectID, values []FieldValue) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	w.repeatCount(len(values))
	for _, fv := range values {
		w.fieldID(fv.Field)
		w.untaggedValue(fv.Value)
	}
	return CommandPacket{CmdSetObjectReference, cmdObjRefSetValues, w.Bytes()}
}

// ObjectMonitorInfo requests an object's monitor state: its owning thread,
// entry count, and the threads waiting to enter it. Requires the
// canGetMonitorInfo capability.
func ObjectMonitorInfo(ids IDSizes, obj ObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	return CommandPacket{CmdSetObjectReference, cmdObjRefMonitorInfo, w.Bytes()}
}

// ObjectInvokeMethod invokes an instance method virtually, suspending the
// invoking thread until it completes.
func ObjectInvokeMethod(ids IDSizes, obj ObjectID, thread ThreadID, class ClassID, method MethodID, args []Value, options InvokeOptions) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	w.objectID(ObjectID(thread))
	w.referenceTypeID(ReferenceTypeID(class))
	w.methodID(method)
	w.repeatCount(len(args))
	for _, a := range args {
		w.taggedValue(a)
	}
	w.int32(int32(options))
	return CommandPacket{CmdSetObjectReference, cmdObjRefInvokeMethod, w.Bytes()}
}

// ObjectDisableCollection prevents an object from being garbage collected,
// so long as it is not already unreachable.
func ObjectDisableCollection(ids IDSizes, obj ObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	return CommandPacket{CmdSetObjectReference, cmdObjRefDisableCollection, w.Bytes()}
}

// ObjectEnableCollection reverses a prior ObjectDisableCollection.
func ObjectEnableCollection(ids IDSizes, obj ObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	return CommandPacket{CmdSetObjectReference, cmdObjRefEnableCollection, w.Bytes()}
}

// ObjectIsCollected reports whether an object has been garbage collected.
func ObjectIsCollected(ids IDSizes, obj ObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	return CommandPacket{CmdSetObjectReference, cmdObjRefIsCollected, w.Bytes()}
}

// ObjectReferringObjects requests up to maxReferrers objects that directly
// reference the given object. A maxReferrers of 0 requests all referrers.
// Requires the canGetInstanceInfo capability.
func ObjectReferringObjects(ids IDSizes, obj ObjectID, maxReferrers int32) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(obj)
	w.int32(maxReferrers)
	return CommandPacket{CmdSetObjectReference, cmdObjRefReferringObjects, w.Bytes()}
}
