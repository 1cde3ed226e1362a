package jdwp

// Commands in the VirtualMachine command set (1). These target the VM as a
// whole rather than any particular object, thread, or type.
const (
	cmdVMVersion                 byte = 1
	cmdVMClassesBySignature      byte = 2
	cmdVMAllClasses              byte = 3
	cmdVMAllThreads              byte = 4
	cmdVMTopLevelThreadGroups    byte = 5
	cmdVMDispose                 byte = 6
	cmdVMIDSizes                 byte = 7
	cmdVMSuspend                 byte = 8
	cmdVMResume                  byte = 9
	cmdVMExit                    byte = 10
	cmdVMCreateString            byte = 11
	cmdVMCapabilities            byte = 12
	cmdVMClassPaths              byte = 13
	cmdVMDisposeObjects          byte = 14
	cmdVMHoldEvents              byte = 15
	cmdVMReleaseEvents           byte = 16
	cmdVMCapabilitiesNew         byte = 17
	cmdVMRedefineClasses         byte = 18
	cmdVMSetDefaultStratum       byte = 19
	cmdVMAllClassesWithGeneric   byte = 20
	cmdVMInstanceCounts          byte = 21
)

// VMVersion requests the target's JDWP and VM version strings.
func VMVersion() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMVersion, nil}
}

// VMClassesBySignature requests every loaded class or interface matching a
// JNI type signature, such as "Lcom/example/Foo;".
func VMClassesBySignature(signature string) CommandPacket {
	w := newBodyWriter(IDSizes{})
	w.string(signature)
	return CommandPacket{CmdSetVirtualMachine, cmdVMClassesBySignature, w.Bytes()}
}

// VMAllClasses requests every loaded class and interface.
func VMAllClasses() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMAllClasses, nil}
}

// VMAllThreads requests every running thread.
func VMAllThreads() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMAllThreads, nil}
}

// VMTopLevelThreadGroups requests the root thread groups of the VM.
func VMTopLevelThreadGroups() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMTopLevelThreadGroups, nil}
}

// VMDispose invalidates this debugger's session, releasing all breakpoints,
// watchpoints, and resuming suspended threads.
func VMDispose() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMDispose, nil}
}

// VMIDSizes requests the byte widths used for each identifier family on this
// connection. Every Connection issues this once during Open.
func VMIDSizes() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMIDSizes, nil}
}

// VMSuspend suspends every thread in the VM.
func VMSuspend() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMSuspend, nil}
}

// VMResume resumes every thread suspended by VMSuspend or by an event with
// SuspendAll policy. Threads individually suspended multiple times need a
// matching number of resumes.
func VMResume() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMResume, nil}
}

// VMExit terminates the target VM with the given exit code.
func VMExit(exitCode int32) CommandPacket {
	w := newBodyWriter(IDSizes{})
	w.int32(exitCode)
	return CommandPacket{CmdSetVirtualMachine, cmdVMExit, w.Bytes()}
}

// VMCreateString creates a new String instance in the target VM without
// making it reachable from any root; CreateString alone will not prevent it
// from being collected.
func VMCreateString(s string) CommandPacket {
	w := newBodyWriter(IDSizes{})
	w.string(s)
	return CommandPacket{CmdSetVirtualMachine, cmdVMCreateString, w.Bytes()}
}

// VMCapabilities requests the target's optional-capability flags (the
// original, pre-1.4 set).
func VMCapabilities() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMCapabilities, nil}
}

// VMClassPaths requests the target's base directory and class/boot paths.
func VMClassPaths() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMClassPaths, nil}
}

// VMDisposeObjects releases references this debugger holds to the given
// objects, each with a ref count of how many times it was sent to the
// debugger.
func VMDisposeObjects(ids IDSizes, refs []ObjectID, refCounts []int32) CommandPacket {
	w := newBodyWriter(ids)
	n := len(refs)
	if len(refCounts) < n {
		n = len(refCounts)
	}
	w.repeatCount(n)
	for i := 0; i < n; i++ {
		w.objectID(refs[i])
		w.uint32(uint32(refCounts[i]))
	}
	return CommandPacket{CmdSetVirtualMachine, cmdVMDisposeObjects, w.Bytes()}
}

// VMHoldEvents tells the target to queue events rather than deliver them,
// until VMReleaseEvents is sent.
func VMHoldEvents() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMHoldEvents, nil}
}

// VMReleaseEvents flushes events queued by VMHoldEvents.
func VMReleaseEvents() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMReleaseEvents, nil}
}

// VMCapabilitiesNew requests the target's full optional-capability flags.
func VMCapabilitiesNew() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMCapabilitiesNew, nil}
}

// ClassDef identifies a class and the new .class bytes to install for it, as
// used by VMRedefineClasses.
type ClassDef struct {
	RefType ReferenceTypeID
	Bytes   []byte
}

// VMRedefineClasses replaces the definitions of one or more classes with new
// class files, under the restrictions of the target's redefinition
// capabilities.
func VMRedefineClasses(ids IDSizes, defs []ClassDef) CommandPacket {
	w := newBodyWriter(ids)
	w.repeatCount(len(defs))
	for _, d := range defs {
		w.referenceTypeID(d.RefType)
		w.uint32(uint32(len(d.Bytes)))
		w.buf.Write(d.Bytes)
	}
	return CommandPacket{CmdSetVirtualMachine, cmdVMRedefineClasses, w.Bytes()}
}

// VMSetDefaultStratum sets the default stratum used for source-debug-extension
// lookups; an empty string reverts to no default stratum.
func VMSetDefaultStratum(stratumID string) CommandPacket {
	w := newBodyWriter(IDSizes{})
	w.string(stratumID)
	return CommandPacket{CmdSetVirtualMachine, cmdVMSetDefaultStratum, w.Bytes()}
}

// VMAllClassesWithGeneric is VMAllClasses plus each class's generic
// signature.
func VMAllClassesWithGeneric() CommandPacket {
	return CommandPacket{CmdSetVirtualMachine, cmdVMAllClassesWithGeneric, nil}
}

// VMInstanceCounts requests the number of live instances of each given
// reference type. Requires the canGetInstanceInfo capability.
func VMInstanceCounts(ids IDSizes, refTypes []ReferenceTypeID) CommandPacket {
	w := newBodyWriter(ids)
	w.repeatCount(len(refTypes))
	for _, rt := range refTypes {
		w.referenceTypeID(rt)
	}
	return CommandPacket{CmdSetVirtualMachine, cmdVMInstanceCounts, w.Bytes()}
}
