package jdwp

// Commands in the ThreadReference command set (11).
const (
	cmdThreadName                         byte = 1
	cmdThreadSuspend                      byte = 2
	cmdThreadResume                       byte = 3
	cmdThreadStatus                       byte = 4
	cmdThreadThreadGroup                  byte = 5
	cmdThreadFrames                       byte = 6
	cmdThreadFrameCount                   byte = 7
	cmdThreadOwnedMonitors                byte = 8
	cmdThreadCurrentContendedMonitor      byte = 9
	cmdThreadStop                         byte = 10
	cmdThreadInterrupt                    byte = 11
	cmdThreadSuspendCount                 byte = 12
	cmdThreadOwnedMonitorsStackDepthInfo  byte = 13
	cmdThreadForceEarlyReturn             byte = 14
)

func threadBody(ids IDSizes, t ThreadID) []byte {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(t))
	return w.Bytes()
}

// ThreadName requests a thread's name.
func ThreadName(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadName, threadBody(ids, t)}
}

// ThreadSuspend suspends a single thread; suspends nest and must be matched
// by an equal number of ThreadResume calls.
func ThreadSuspend(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadSuspend, threadBody(ids, t)}
}

// ThreadResume resumes a single thread, undoing one ThreadSuspend.
func ThreadResume(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadResume, threadBody(ids, t)}
}

// ThreadStatus requests a thread's run and suspend status.
func ThreadStatus(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadStatus, threadBody(ids, t)}
}

// ThreadThreadGroup requests the thread group a thread belongs to.
func ThreadThreadGroup(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadThreadGroup, threadBody(ids, t)}
}

// ThreadFrames requests a slice of a thread's call stack, startFrame frames
// from the top, up to length frames (length -1 means to the bottom). The
// thread must be suspended.
func ThreadFrames(ids IDSizes, t ThreadID, startFrame, length int32) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(t))
	w.int32(startFrame)
	w.int32(length)
	return CommandPacket{CmdSetThreadReference, cmdThreadFrames, w.Bytes()}
}

// ThreadFrameCount requests the number of frames on a suspended thread's
// call stack.
func ThreadFrameCount(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadFrameCount, threadBody(ids, t)}
}

// ThreadOwnedMonitors requests the monitors a thread owns. Requires the
// canGetOwnedMonitorInfo capability.
func ThreadOwnedMonitors(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadOwnedMonitors, threadBody(ids, t)}
}

// ThreadCurrentContendedMonitor requests the monitor a thread is waiting to
// enter. Requires the canGetCurrentContendedMonitor capability.
func ThreadCurrentContendedMonitor(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadCurrentContendedMonitor, threadBody(ids, t)}
}

// ThreadStop causes a thread to throw the given exception object,
// asynchronously.
func ThreadStop(ids IDSizes, t ThreadID, throwable ObjectID) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(t))
	w.objectID(throwable)
	return CommandPacket{CmdSetThreadReference, cmdThreadStop, w.Bytes()}
}

// ThreadInterrupt interrupts a thread, same as Thread.interrupt.
func ThreadInterrupt(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadInterrupt, threadBody(ids, t)}
}

// ThreadSuspendCount requests the number of pending ThreadSuspend calls for
// a thread.
func ThreadSuspendCount(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadSuspendCount, threadBody(ids, t)}
}

// ThreadOwnedMonitorsStackDepthInfo is ThreadOwnedMonitors plus, for each
// monitor, the stack depth at which it was entered. Requires the
// canGetMonitorFrameInfo capability.
func ThreadOwnedMonitorsStackDepthInfo(ids IDSizes, t ThreadID) CommandPacket {
	return CommandPacket{CmdSetThreadReference, cmdThreadOwnedMonitorsStackDepthInfo, threadBody(ids, t)}
}

// ThreadForceEarlyReturn forces a thread's current frame to return
// immediately with the given value. Requires the canForceEarlyReturn
// capability.
func ThreadForceEarlyReturn(ids IDSizes, t ThreadID, value Value) CommandPacket {
	w := newBodyWriter(ids)
	w.objectID(ObjectID(t))
	w.taggedValue(value)
	return CommandPacket{CmdSetThreadReference, cmdThreadForceEarlyReturn, w.Bytes()}
}
