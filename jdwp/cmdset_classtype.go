package jdwp

// Commands in the ClassType command set (3).
const (
	cmdClassTypeSuperclass   byte = 1
	cmdClassTypeSetValues    byte = 2
	cmdClassTypeInvokeMethod byte = 3
	cmdClassTypeNewInstance  byte = 4
)

// InvokeOptions is the bitmask argument shared by every InvokeMethod
// command, requesting single-threaded execution and/or non-virtual dispatch.
type InvokeOptions int32

const (
	InvokeSingleThreaded InvokeOptions = 1
	InvokeNonvirtual     InvokeOptions = 2
)

// FieldValue pairs a field with the value to assign it, as used by the
// various SetValues commands.
type FieldValue struct {
	Field FieldID
	Value Value
}

// ClassTypeSuperclass requests the superclass of a class; java.lang.Object
// has no superclass and returns a nil ReferenceTypeID.
func ClassTypeSuperclass(ids IDSizes, class ClassID) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(ReferenceTypeID(class))
	return CommandPacket{CmdSetClassType, cmdClassTypeSuperclass, w.Bytes()}
}

// ClassTypeSetValues sets the values of one or more static fields. Each
// value is written untagged: the VM infers its type from the field's own
// signature.
func ClassTypeSetValues(ids IDSizes, class ClassID, values []FieldValue) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(ReferenceTypeID(class))
	w.repeatCount(len(values))
	for _, fv := range values {
		w.fieldID(fv.Field)
		w.untaggedValue(fv.Value)
	}
	return CommandPacket{CmdSetClassType, cmdClassTypeSetValues, w.Bytes()}
}

// ClassTypeInvokeMethod invokes a static method, suspending the invoking
// thread until it completes.
func ClassTypeInvokeMethod(ids IDSizes, class ClassID, thread ThreadID, method MethodID, args []Value, options InvokeOptions) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(ReferenceTypeID(class))
	w.objectID(ObjectID(thread))
	w.methodID(method)
	w.repeatCount(len(args))
	for _, a := range args {
		w.taggedValue(a)
	}
	w.int32(int32(options))
	return CommandPacket{CmdSetClassType, cmdClassTypeInvokeMethod, w.Bytes()}
}

// ClassTypeNewInstance invokes a constructor, creating a new instance of the
// class.
func ClassTypeNewInstance(ids IDSizes, class ClassID, thread ThreadID, method MethodID, args []Value, options InvokeOptions) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(ReferenceTypeID(class))
	w.objectID(ObjectID(thread))
	w.methodID(method)
	w.repeatCount(len(args))
	for _, a := range args {
		w.taggedValue(a)
	}
	w.int32(int32(options))
	return CommandPacket{CmdSetClassType, cmdClassTypeNewInstance, w.Bytes()}
}
