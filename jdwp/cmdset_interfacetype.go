package jdwp

// InterfaceType command set (5) has a single command, added for static and
// default interface methods.
const cmdInterfaceTypeInvokeMethod byte = 1

// InterfaceTypeInvokeMethod invokes a static or default method declared on
// an interface.
func InterfaceTypeInvokeMethod(ids IDSizes, iface InterfaceID, thread ThreadID, method MethodID, args []Value, options InvokeOptions) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(ReferenceTypeID(iface))
	w.objectID(ObjectID(thread))
	w.methodID(method)
	w.repeatCount(len(args))
	for _, a := range args {
		w.taggedValue(a)
	}
	w.int32(int32(options))
	return CommandPacket{CmdSetInterfaceType, cmdInterfaceTypeInvokeMethod, w.Bytes()}
}
