package jdwp

// ArrayType command set (4) has a single command.
const cmdArrayTypeNewInstance byte = 1

// ArrayTypeNewInstance creates a new array instance of the given length.
func ArrayTypeNewInstance(ids IDSizes, arrayType ArrayTypeID, length int32) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(ReferenceTypeID(arrayType))
	w.int32(length)
	return CommandPacket{CmdSetArrayType, cmdArrayTypeNewInstance, w.Bytes()}
}
