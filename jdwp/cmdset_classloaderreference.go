package jdwp

// ClassLoaderReference command set (14) has a single command.
const cmdClassLoaderVisibleClasses byte = 1

// ClassLoaderVisibleClasses requests the classes a class loader has been
// asked to load, directly or as a result of loading another class.
func ClassLoaderVisibleClasses(ids IDSizes, loader ClassLoaderID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(loader))
	return CommandPacket{CmdSetClassLoaderReference, cmdClassLoaderVisibleClasses, w.Bytes()}
}
