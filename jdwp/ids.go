package jdwp

import "fmt"

// IDSizes holds the byte widths for the VM's variable-width identifier
// families, as returned by VirtualMachine.IDSizes. Widths are queried once
// per connection and are stable for its lifetime.
type IDSizes struct {
	FieldIDSize         int
	MethodIDSize        int
	ObjectIDSize        int
	ReferenceTypeIDSize int
	FrameIDSize         int
}

// DefaultIDSizes are the canonical HotSpot widths, used only as the zero
// value before a connection's real IDSizes pre-flight completes.
var DefaultIDSizes = IDSizes{
	FieldIDSize:         8,
	MethodIDSize:        8,
	ObjectIDSize:        8,
	ReferenceTypeIDSize: 8,
	FrameIDSize:         8,
}

// ObjectID identifies an object instance. Every object-family identifier
// (ThreadID, StringID, ClassLoaderID, ...) is a distinctly typed ObjectID
// sharing the same wire width.
type ObjectID uint64

// ThreadID identifies a thread instance.
type ThreadID uint64

// ThreadGroupID identifies a thread group.
type ThreadGroupID uint64

// StringID identifies a String instance.
type StringID uint64

// ClassLoaderID identifies a class loader instance.
type ClassLoaderID uint64

// ClassObjectID identifies a java.lang.Class instance.
type ClassObjectID uint64

// ArrayID identifies an array instance.
type ArrayID uint64

// ReferenceTypeID identifies a reference type (class, interface, or array
// type). ClassID, InterfaceID and ArrayTypeID are its more specific aliases.
type ReferenceTypeID uint64

// ClassID identifies a class reference type.
type ClassID uint64

// InterfaceID identifies an interface reference type.
type InterfaceID uint64

// ArrayTypeID identifies an array reference type.
type ArrayTypeID uint64

// MethodID identifies a method within a class or interface.
type MethodID uint64

// FieldID identifies a field within a class or interface.
type FieldID uint64

// FrameID identifies a stack frame.
type FrameID uint64

func (i ObjectID) String() string        { return fmt.Sprintf("object<%d>", uint64(i)) }
func (i ThreadID) String() string        { return fmt.Sprintf("thread<%d>", uint64(i)) }
func (i ThreadGroupID) String() string   { return fmt.Sprintf("threadGroup<%d>", uint64(i)) }
func (i StringID) String() string        { return fmt.Sprintf("string<%d>", uint64(i)) }
func (i ClassLoaderID) String() string   { return fmt.Sprintf("classLoader<%d>", uint64(i)) }
func (i ClassObjectID) String() string   { return fmt.Sprintf("classObject<%d>", uint64(i)) }
func (i ArrayID) String() string         { return fmt.Sprintf("array<%d>", uint64(i)) }
func (i ReferenceTypeID) String() string { return fmt.Sprintf("refType<%d>", uint64(i)) }
func (i ClassID) String() string         { return fmt.Sprintf("class<%d>", uint64(i)) }
func (i InterfaceID) String() string     { return fmt.Sprintf("interface<%d>", uint64(i)) }
func (i ArrayTypeID) String() string     { return fmt.Sprintf("arrayType<%d>", uint64(i)) }
func (i MethodID) String() string        { return fmt.Sprintf("method<%d>", uint64(i)) }
func (i FieldID) String() string         { return fmt.Sprintf("field<%d>", uint64(i)) }
func (i FrameID) String() string         { return fmt.Sprintf("frame<%d>", uint64(i)) }
