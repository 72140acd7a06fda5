package interop

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/rostygo/rosmsg"
)

// Fielder is a message that exposes its field values in descriptor order.
type Fielder interface {
	rosmsg.Message
	FieldValues() []any
}

// FieldMismatch reports one field whose encoding differs between two records.
type FieldMismatch struct {
	Field    string
	Expected any
	Actual   any
}

func (m FieldMismatch) Error() string {
	return fmt.Sprintf("field %s: expected %s, got %s", m.Field, dump(m.Expected), dump(m.Actual))
}

var dumpConfig = spew.ConfigState{Indent: " ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

func dump(v any) string {
	return dumpConfig.Sprintf("%#v", v)
}

// CompareFields compares expected and actual field by field. Two values match
// when they encode to the same bytes, so NaNs with equal bits match and a nil
// slice matches an empty one. Every mismatching field is reported.
func CompareFields(expected, actual Fielder) error {
	d := expected.Descriptor()
	if actual.Descriptor().Type != d.Type {
		return fmt.Errorf("interop: cannot compare %s with %s", d.Type, actual.Descriptor().Type)
	}

	want, got := expected.FieldValues(), actual.FieldValues()
	if len(want) != len(d.Fields) || len(got) != len(d.Fields) {
		return fmt.Errorf("interop: %s has %d fields, records hold %d and %d values",
			d.Type, len(d.Fields), len(want), len(got))
	}

	var result *multierror.Error
	for i, f := range d.Fields {
		wantBytes, err := encodeField(f.Type, want[i])
		if err != nil {
			return fmt.Errorf("interop: field %s: %w", f.Name, err)
		}
		gotBytes, err := encodeField(f.Type, got[i])
		if err != nil {
			return fmt.Errorf("interop: field %s: %w", f.Name, err)
		}
		if !bytes.Equal(wantBytes, gotBytes) {
			result = multierror.Append(result, FieldMismatch{Field: f.Name, Expected: want[i], Actual: got[i]})
		}
	}
	return result.ErrorOrNil()
}

type fieldValue struct {
	ft rosmsg.FieldType
	v  any
}

func (f fieldValue) Encode(pe rosmsg.PacketEncoder) error {
	return rosmsg.EncodeValue(pe, f.ft, f.v)
}

func encodeField(ft rosmsg.FieldType, v any) ([]byte, error) {
	return rosmsg.Encode(fieldValue{ft: ft, v: v})
}
