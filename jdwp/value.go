package jdwp

import "fmt"

// Location names a single bytecode instruction: a type tag and the
// declaring-type/method/index triple that together pin it down.
type Location struct {
	Type   TypeTag
	Class  ReferenceTypeID
	Method MethodID
	Index  uint64
}

func (l Location) String() string {
	return fmt.Sprintf("%s{class=%d method=%d index=%d}", l.Type, uint64(l.Class), uint64(l.Method), l.Index)
}

// TaggedObjectID pairs an object reference with the tag describing its
// runtime family, as used wherever the protocol needs to disambiguate
// between object kinds without a static type (e.g. monitor event objects).
type TaggedObjectID struct {
	Tag      Tag
	ObjectID ObjectID
}

// Value is a tagged JDWP value: a primitive (by-value) or an object
// reference (by-id), discriminated by Tag. Object-family values store their
// id in Object; primitive-family values store it in one of the typed fields.
type Value struct {
	Tag     Tag
	Object  ObjectID
	Byte    int8
	Boolean bool
	Char    uint16
	Short   int16
	Int     int32
	Long    int64
	Float   float32
	Double  float64
}

// ByteValue, BooleanValue, etc. are Value constructors for the primitive
// families, used by callers assembling command bodies.
func ByteValue(v int8) Value       { return Value{Tag: TagByte, Byte: v} }
func BooleanValue(v bool) Value    { return Value{Tag: TagBoolean, Boolean: v} }
func CharValue(v uint16) Value     { return Value{Tag: TagChar, Char: v} }
func ShortValue(v int16) Value     { return Value{Tag: TagShort, Short: v} }
func IntValue(v int32) Value       { return Value{Tag: TagInt, Int: v} }
func LongValue(v int64) Value      { return Value{Tag: TagLong, Long: v} }
func FloatValue(v float32) Value   { return Value{Tag: TagFloat, Float: v} }
func DoubleValue(v float64) Value  { return Value{Tag: TagDouble, Double: v} }
func VoidValue() Value             { return Value{Tag: TagVoid} }

// ObjectValue constructs a Value for any of the object-family tags
// (TagObject, TagArray, TagString, TagThread, TagThreadGroup, TagClassLoader,
// TagClassObject). It panics if tag is not an object-family tag, since that
// indicates a programming error in the caller, not a runtime condition.
func ObjectValue(tag Tag, id ObjectID) Value {
	if !tag.isObjectFamily() {
		panic(fmt.Sprintf("jdwp: ObjectValue called with non-object tag %s", tag))
	}
	return Value{Tag: tag, Object: id}
}

// ArrayRegion is the homogeneous slice of values returned by
// ArrayReference.GetValues and sent to ArrayReference.SetValues. Primitive
// regions carry their elements packed (no per-element tag); object regions
// carry one tag + id pair per element.
type ArrayRegion struct {
	ElementTag Tag
	Primitive  []Value
	Object     []TaggedObjectID
}

func (r ArrayRegion) Len() int {
	if r.ElementTag.isObjectFamily() {
		return len(r.Object)
	}
	return len(r.Primitive)
}
