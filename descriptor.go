package rosmsg

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// Kind classifies a FieldType. It exists at design time only and is never
// written to the wire.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindArray
	KindRecord
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindArray:   "array",
	KindRecord:  "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// FieldType is the declared type of a record field.
type FieldType struct {
	Kind Kind
	// Elem is the element type of a KindArray.
	Elem *FieldType
	// Record describes a KindRecord.
	Record *Descriptor
	// Alias is the ROS spelling of the type when it differs from the
	// canonical one, e.g. "byte" for int8.
	Alias string
}

// Primitive field types.
var (
	TypeBool    = FieldType{Kind: KindBool}
	TypeInt8    = FieldType{Kind: KindInt8}
	TypeInt16   = FieldType{Kind: KindInt16}
	TypeInt32   = FieldType{Kind: KindInt32}
	TypeInt64   = FieldType{Kind: KindInt64}
	TypeUint8   = FieldType{Kind: KindUint8}
	TypeUint16  = FieldType{Kind: KindUint16}
	TypeUint32  = FieldType{Kind: KindUint32}
	TypeUint64  = FieldType{Kind: KindUint64}
	TypeFloat32 = FieldType{Kind: KindFloat32}
	TypeFloat64 = FieldType{Kind: KindFloat64}
	TypeString  = FieldType{Kind: KindString}

	// The deprecated ROS aliases keep their spelling for MD5 sums.
	TypeByte = FieldType{Kind: KindInt8, Alias: "byte"}
	TypeChar = FieldType{Kind: KindUint8, Alias: "char"}
)

// ArrayOf returns the variable-length array type with elements of elem.
func ArrayOf(elem FieldType) FieldType {
	return FieldType{Kind: KindArray, Elem: &elem}
}

// RecordOf returns the nested record type described by d.
func RecordOf(d *Descriptor) FieldType {
	return FieldType{Kind: KindRecord, Record: d}
}

// Name is the type as written in a message definition: "uint8", "byte",
// "string[]", "time", "std_msgs/Header".
func (ft FieldType) Name() string {
	switch {
	case ft.Alias != "":
		return ft.Alias
	case ft.Kind == KindArray && ft.Elem != nil:
		return ft.Elem.Name() + "[]"
	case ft.Kind == KindRecord && ft.Record != nil:
		return ft.Record.Type
	default:
		return ft.Kind.String()
	}
}

// Field is one named, typed member of a record.
type Field struct {
	Name string
	Type FieldType
}

// Constant is a named constant declared by a message definition. Constants are
// part of the MD5 sum but never appear on the wire.
type Constant struct {
	Name  string
	Type  FieldType
	Value string
}

// Descriptor is the explicit, statically declared field list of one record type.
// It is the contract two implementations agree on: the field order here must be
// the order the type's Encode and Decode methods use.
type Descriptor struct {
	// Type is the ROS package-qualified name, e.g. "std_msgs/Header".
	Type      string
	Constants []Constant
	Fields    []Field
	// Builtin marks the ROS builtins time and duration, which are spelled by
	// name rather than by MD5 sum inside other definitions.
	Builtin bool

	md5Once sync.Once
	md5Sum  string
}

// Text is the body of the message definition: constants, then fields.
func (d *Descriptor) Text() string {
	var b strings.Builder
	for _, c := range d.Constants {
		fmt.Fprintf(&b, "%s %s=%s\n", c.Type.Name(), c.Name, c.Value)
	}
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "%s %s\n", f.Type.Name(), f.Name)
	}
	return b.String()
}

// MD5Sum returns the ROS MD5 sum of the type: constants as "type NAME=value",
// builtin fields as "type name", nested message fields as "<md5> name", lines
// joined by newlines.
func (d *Descriptor) MD5Sum() string {
	d.md5Once.Do(func() {
		sum := md5.Sum([]byte(d.md5Text()))
		d.md5Sum = hex.EncodeToString(sum[:])
	})
	return d.md5Sum
}

func (d *Descriptor) md5Text() string {
	lines := make([]string, 0, len(d.Constants)+len(d.Fields))
	for _, c := range d.Constants {
		lines = append(lines, fmt.Sprintf("%s %s=%s", c.Type.Name(), c.Name, c.Value))
	}
	for _, f := range d.Fields {
		if nested := messageDependency(f.Type); nested != nil {
			lines = append(lines, nested.MD5Sum()+" "+f.Name)
			continue
		}
		lines = append(lines, f.Type.Name()+" "+f.Name)
	}
	return strings.Join(lines, "\n")
}

// messageDependency returns the non-builtin record a field refers to, looking
// through arrays, or nil.
func messageDependency(ft FieldType) *Descriptor {
	for ft.Kind == KindArray && ft.Elem != nil {
		ft = *ft.Elem
	}
	if ft.Kind == KindRecord && ft.Record != nil && !ft.Record.Builtin {
		return ft.Record
	}
	return nil
}

const definitionSeparator = "================================================================================"

// Definition returns the full message definition: the type's own text followed by
// every message it depends on, breadth first, each once, introduced by a
// separator line and "MSG: <type>".
func (d *Descriptor) Definition() string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(d.Text(), "\n"))

	seen := map[string]bool{d.Type: true}
	pending := d.dependencies()
	for len(pending) > 0 {
		dep := pending[0]
		pending = pending[1:]
		if seen[dep.Type] {
			continue
		}
		seen[dep.Type] = true

		fmt.Fprintf(&b, "\n\n%s\nMSG: %s\n", definitionSeparator, dep.Type)
		b.WriteString(strings.TrimSuffix(dep.Text(), "\n"))
		pending = append(pending, dep.dependencies()...)
	}
	b.WriteString("\n")
	return b.String()
}

func (d *Descriptor) dependencies() []*Descriptor {
	var deps []*Descriptor
	for _, f := range d.Fields {
		if nested := messageDependency(f.Type); nested != nil {
			deps = append(deps, nested)
		}
	}
	return deps
}

// FixedSize returns the encoded size of the type if every value of it encodes to
// the same number of bytes.
func (ft FieldType) FixedSize() (int, bool) {
	switch ft.Kind {
	case KindBool, KindInt8, KindUint8:
		return 1, true
	case KindInt16, KindUint16:
		return 2, true
	case KindInt32, KindUint32, KindFloat32:
		return 4, true
	case KindInt64, KindUint64, KindFloat64:
		return 8, true
	case KindRecord:
		if ft.Record == nil {
			return 0, false
		}
		total := 0
		for _, f := range ft.Record.Fields {
			size, ok := f.Type.FixedSize()
			if !ok {
				return 0, false
			}
			total += size
		}
		return total, true
	default:
		return 0, false
	}
}

var registry = xsync.NewMapOf[string, *Descriptor]()

// RegisterDescriptor makes d discoverable by its Type through LookupDescriptor.
// Registering two different descriptors under one type name is a programming
// error and panics.
func RegisterDescriptor(d *Descriptor) {
	if existing, loaded := registry.LoadOrStore(d.Type, d); loaded && existing != d {
		panic(fmt.Sprintf("rosmsg: descriptor for %s registered twice", d.Type))
	}
}

// LookupDescriptor returns the descriptor registered for msgType.
func LookupDescriptor(msgType string) (*Descriptor, bool) {
	return registry.Load(msgType)
}
