package jdwp

// ClassObjectReference command set (17) has a single command.
const cmdClassObjectReflectedType byte = 1

// ClassObjectReflectedType requests the reference type corresponding to a
// java.lang.Class instance.
func ClassObjectReflectedType(ids IDSizes, classObject ClassObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(classObject))
	return CommandPacket{CmdSetClassObjectReference, cmdClassObjectReflectedType, w.Bytes()}
}
