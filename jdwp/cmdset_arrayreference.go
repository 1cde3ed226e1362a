package jdwp

// Commands in the ArrayReference command set (13).
const (
	cmdArrayRefLength    byte = 1
	cmdArrayRefGetValues byte = 2
	cmdArrayRefSetValues byte = 3
)

// ArrayLength requests the length of an array instance.
func ArrayLength(ids IDSizes, a ArrayID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(a))
	return CommandPacket{CmdSetArrayReference, cmdArrayRefLength, w.Bytes()}
}

// ArrayGetValues requests length elements of an array, starting at
// firstIndex.
func ArrayGetValues(ids IDSizes, a ArrayID, firstIndex, length int32) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(a))
	w.int32(firstIndex)
	w.int32(length)
	return CommandPacket{CmdSetArrayReference, cmdArrayRefGetValues, w.Bytes()}
}

// ArraySetValues sets a contiguous run of an array's elements starting at
// firstIndex, from an untagged, homogeneously-typed region.
func ArraySetValues(ids IDSizes, a ArrayID, firstIndex int32, values ArrayRegion) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(a))
	w.int32(firstIndex)
	w.int32(int32(values.Len()))
	if values.ElementTag.isObjectFamily() {
		for _, o := range values.Object {
			w.objectID(o.ObjectID)
		}
	} else {
		for _, v := range values.Primitive {
			w.untaggedValue(v)
		}
	}
	return CommandPacket{CmdSetArrayReference, cmdArrayRefSetValues, w.Bytes()}
}
