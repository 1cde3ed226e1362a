package jdwp

// StringReference command set (10) has a single command.
const cmdStringRefValue byte = 1

// StringValue requests the characters of a String object.
func StringValue(ids IDSizes, str StringID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(str))
	return CommandPacket{CmdSetStringReference, cmdStringRefValue, w.Bytes()}
}
