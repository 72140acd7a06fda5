/*
Package interop is the acceptance harness for exchanging records with other
implementations of the ROS wire format. It holds the reference scenario both
sides encode, a field-by-field comparison that reports every mismatching field,
and helpers for producing and checking reference bytes.
*/
package interop

import "github.com/rostygo/rosmsg"

// LogDescriptor describes the reference record: a cut-down log entry.
var LogDescriptor = &rosmsg.Descriptor{
	Type: "interop/Log",
	Fields: []rosmsg.Field{
		{Name: "name", Type: rosmsg.TypeString},
		{Name: "level", Type: rosmsg.TypeUint8},
		{Name: "msg", Type: rosmsg.TypeString},
		{Name: "topics", Type: rosmsg.ArrayOf(rosmsg.TypeString)},
	},
}

func init() {
	rosmsg.RegisterDescriptor(LogDescriptor)
}

// Log is the reference record.
type Log struct {
	Name   string
	Level  uint8
	Msg    string
	Topics []string
}

// ReferenceLog returns the value both implementations encode.
func ReferenceLog() *Log {
	return &Log{
		Name:   "Test",
		Level:  1,
		Msg:    "This is a test",
		Topics: []string{"Topic1", "Topic2"},
	}
}

func (l *Log) Descriptor() *rosmsg.Descriptor {
	return LogDescriptor
}

func (l *Log) Encode(pe rosmsg.PacketEncoder) error {
	if err := pe.PutString(l.Name); err != nil {
		return err
	}
	pe.PutUint8(l.Level)
	if err := pe.PutString(l.Msg); err != nil {
		return err
	}
	return pe.PutStringArray(l.Topics)
}

func (l *Log) Decode(pd rosmsg.PacketDecoder) (err error) {
	if l.Name, err = pd.GetString(); err != nil {
		return err
	}
	if l.Level, err = pd.GetUint8(); err != nil {
		return err
	}
	if l.Msg, err = pd.GetString(); err != nil {
		return err
	}
	l.Topics, err = pd.GetStringArray()
	return err
}

func (l *Log) FieldValues() []any {
	return []any{l.Name, l.Level, l.Msg, l.Topics}
}
