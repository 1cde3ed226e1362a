package jdwp

// Commands in the ReferenceType command set (2): queries against a loaded
// class, interface, or array type.
const (
	cmdRefTypeSignature              byte = 1
	cmdRefTypeClassLoader            byte = 2
	cmdRefTypeModifiers              byte = 3
	cmdRefTypeFields                 byte = 4
	cmdRefTypeMethods                byte = 5
	cmdRefTypeGetValues              byte = 6
	cmdRefTypeSourceFile             byte = 7
	cmdRefTypeNestedTypes            byte = 8
	cmdRefTypeStatus                 byte = 9
	cmdRefTypeInterfaces             byte = 10
	cmdRefTypeClassObject            byte = 11
	cmdRefTypeSourceDebugExtension   byte = 12
	cmdRefTypeSignatureWithGeneric   byte = 13
	cmdRefTypeFieldsWithGeneric      byte = 14
	cmdRefTypeMethodsWithGeneric     byte = 15
	cmdRefTypeInstances              byte = 16
	cmdRefTypeClassFileVersion       byte = 17
	cmdRefTypeConstantPool           byte = 18
)

func refTypeBody(ids IDSizes, t ReferenceTypeID) []byte {
	w := newBodyWriter(ids)
	w.referenceTypeID(t)
	return w.Bytes()
}

// ReferenceTypeSignature requests the JNI signature of a reference type.
func ReferenceTypeSignature(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeSignature, refTypeBody(ids, t)}
}

// ReferenceTypeClassLoader requests the class loader that defined a
// reference type.
func ReferenceTypeClassLoader(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeClassLoader, refTypeBody(ids, t)}
}

// ReferenceTypeModifiers requests a type's access flags.
func ReferenceTypeModifiers(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeModifiers, refTypeBody(ids, t)}
}

// ReferenceTypeFields requests a type's declared fields, not including
// fields inherited from supertypes.
func ReferenceTypeFields(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeFields, refTypeBody(ids, t)}
}

// ReferenceTypeMethods requests a type's declared methods, not including
// methods inherited from supertypes.
func ReferenceTypeMethods(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeMethods, refTypeBody(ids, t)}
}

// ReferenceTypeGetValues requests the values of one or more static fields.
// Each field must be declared directly by t, not inherited.
func ReferenceTypeGetValues(ids IDSizes, t ReferenceTypeID, fields []FieldID) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(t)
	w.repeatCount(len(fields))
	for _, f := range fields {
		w.fieldID(f)
	}
	return CommandPacket{CmdSetReferenceType, cmdRefTypeGetValues, w.Bytes()}
}

// ReferenceTypeSourceFile requests the name of the source file that declared
// a type.
func ReferenceTypeSourceFile(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeSourceFile, refTypeBody(ids, t)}
}

// ReferenceTypeNestedTypes requests the types nested within a type.
func ReferenceTypeNestedTypes(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeNestedTypes, refTypeBody(ids, t)}
}

// ReferenceTypeStatus requests a type's verification/preparation status.
func ReferenceTypeStatus(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeStatus, refTypeBody(ids, t)}
}

// ReferenceTypeInterfaces requests the interfaces a type directly
// implements.
func ReferenceTypeInterfaces(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeInterfaces, refTypeBody(ids, t)}
}

// ReferenceTypeClassObject requests the java.lang.Class instance
// corresponding to a reference type.
func ReferenceTypeClassObject(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeClassObject, refTypeBody(ids, t)}
}

// ReferenceTypeSourceDebugExtension requests the SourceDebugExtension
// attribute of a type. Requires the canGetSourceDebugExtension capability.
func ReferenceTypeSourceDebugExtension(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeSourceDebugExtension, refTypeBody(ids, t)}
}

// ReferenceTypeSignatureWithGeneric is ReferenceTypeSignature plus the
// type's generic signature, if any.
func ReferenceTypeSignatureWithGeneric(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeSignatureWithGeneric, refTypeBody(ids, t)}
}

// ReferenceTypeFieldsWithGeneric is ReferenceTypeFields plus each field's
// generic signature.
func ReferenceTypeFieldsWithGeneric(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeFieldsWithGeneric, refTypeBody(ids, t)}
}

// ReferenceTypeMethodsWithGeneric is ReferenceTypeMethods plus each method's
// generic signature.
func ReferenceTypeMethodsWithGeneric(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeMethodsWithGeneric, refTypeBody(ids, t)}
}

// ReferenceTypeInstances requests up to maxInstances live instances of a
// type. A maxInstances of 0 requests all instances. Requires the
// canGetInstanceInfo capability.
func ReferenceTypeInstances(ids IDSizes, t ReferenceTypeID, maxInstances int32) CommandPacket {
	w := newBodyWriter(ids)
	w.referenceTypeID(t)
	w.int32(maxInstances)
	return CommandPacket{CmdSetReferenceType, cmdRefTypeInstances, w.Bytes()}
}

// ReferenceTypeClassFileVersion requests the major/minor class file version
// of a type.
func ReferenceTypeClassFileVersion(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeClassFileVersion, refTypeBody(ids, t)}
}

// ReferenceTypeConstantPool requests the raw constant pool of a type.
func ReferenceTypeConstantPool(ids IDSizes, t ReferenceTypeID) CommandPacket {
	return CommandPacket{CmdSetReferenceType, cmdRefTypeConstantPool, refTypeBody(ids, t)}
}
