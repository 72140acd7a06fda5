package rosmsg

import "fmt"

// EncodeValue writes v as a field of type ft. It is the descriptor-driven
// counterpart of a hand-written Encode method, for tools that hold a FieldType
// and a value rather than a concrete record type.
//
// Primitives must be passed as their exact Go type (uint8 for KindUint8 and so
// on), strings as string, records as an Encoder. Arrays may be passed as []any
// or as a slice of the element's Go type; arrays of records must be []any.
func EncodeValue(pe PacketEncoder, ft FieldType, v any) error {
	switch ft.Kind {
	case KindBool:
		if tmp, ok := v.(bool); ok {
			pe.PutBool(tmp)
			return nil
		}
	case KindInt8:
		if tmp, ok := v.(int8); ok {
			pe.PutInt8(tmp)
			return nil
		}
	case KindInt16:
		if tmp, ok := v.(int16); ok {
			pe.PutInt16(tmp)
			return nil
		}
	case KindInt32:
		if tmp, ok := v.(int32); ok {
			pe.PutInt32(tmp)
			return nil
		}
	case KindInt64:
		if tmp, ok := v.(int64); ok {
			pe.PutInt64(tmp)
			return nil
		}
	case KindUint8:
		if tmp, ok := v.(uint8); ok {
			pe.PutUint8(tmp)
			return nil
		}
	case KindUint16:
		if tmp, ok := v.(uint16); ok {
			pe.PutUint16(tmp)
			return nil
		}
	case KindUint32:
		if tmp, ok := v.(uint32); ok {
			pe.PutUint32(tmp)
			return nil
		}
	case KindUint64:
		if tmp, ok := v.(uint64); ok {
			pe.PutUint64(tmp)
			return nil
		}
	case KindFloat32:
		if tmp, ok := v.(float32); ok {
			pe.PutFloat32(tmp)
			return nil
		}
	case KindFloat64:
		if tmp, ok := v.(float64); ok {
			pe.PutFloat64(tmp)
			return nil
		}
	case KindString:
		if tmp, ok := v.(string); ok {
			return pe.PutString(tmp)
		}
	case KindArray:
		if ft.Elem != nil {
			if ok, err := encodeArrayValue(pe, *ft.Elem, v); ok {
				return err
			}
		}
	case KindRecord:
		if tmp, ok := v.(Encoder); ok && ft.Record != nil {
			if msg, ok := v.(Message); ok && msg.Descriptor().Type != ft.Record.Type {
				return PacketEncodingError{fmt.Sprintf("field of type %s cannot hold a %s", ft.Name(), msg.Descriptor().Type)}
			}
			return tmp.Encode(pe)
		}
	}
	return PacketEncodingError{fmt.Sprintf("field of type %s cannot hold %T", ft.Name(), v)}
}

func encodeArrayValue(pe PacketEncoder, elem FieldType, v any) (bool, error) {
	switch tmp := v.(type) {
	case []any:
		return true, putSliceValue(pe, elem, tmp)
	case []byte:
		if elem.Kind == KindUint8 {
			return true, pe.PutBytes(tmp)
		}
	case []string:
		if elem.Kind == KindString {
			return true, pe.PutStringArray(tmp)
		}
	case []bool:
		return true, putSliceValue(pe, elem, tmp)
	case []int8:
		return true, putSliceValue(pe, elem, tmp)
	case []int16:
		return true, putSliceValue(pe, elem, tmp)
	case []int32:
		return true, putSliceValue(pe, elem, tmp)
	case []int64:
		return true, putSliceValue(pe, elem, tmp)
	case []uint16:
		return true, putSliceValue(pe, elem, tmp)
	case []uint32:
		return true, putSliceValue(pe, elem, tmp)
	case []uint64:
		return true, putSliceValue(pe, elem, tmp)
	case []float32:
		return true, putSliceValue(pe, elem, tmp)
	case []float64:
		return true, putSliceValue(pe, elem, tmp)
	}
	return false, nil
}

func putSliceValue[T any](pe PacketEncoder, elem FieldType, in []T) error {
	return PutArray(pe, in, func(pe PacketEncoder, v T) error {
		return EncodeValue(pe, elem, v)
	})
}

// DecodeValue reads a field of type ft. Primitives come back as their Go type,
// uint8[] as []byte, string[] as []string, other arrays as []any, time and
// duration as Time and Duration, and other records as *DynamicRecord.
func DecodeValue(pd PacketDecoder, ft FieldType) (any, error) {
	switch ft.Kind {
	case KindBool:
		return pd.GetBool()
	case KindInt8:
		return pd.GetInt8()
	case KindInt16:
		return pd.GetInt16()
	case KindInt32:
		return pd.GetInt32()
	case KindInt64:
		return pd.GetInt64()
	case KindUint8:
		return pd.GetUint8()
	case KindUint16:
		return pd.GetUint16()
	case KindUint32:
		return pd.GetUint32()
	case KindUint64:
		return pd.GetUint64()
	case KindFloat32:
		return pd.GetFloat32()
	case KindFloat64:
		return pd.GetFloat64()
	case KindString:
		return pd.GetString()
	case KindArray:
		if ft.Elem == nil {
			break
		}
		switch ft.Elem.Kind {
		case KindUint8:
			return pd.GetBytes()
		case KindString:
			return pd.GetStringArray()
		}
		elem := *ft.Elem
		return GetArray(pd, func(pd PacketDecoder) (any, error) {
			return DecodeValue(pd, elem)
		})
	case KindRecord:
		if ft.Record == nil {
			break
		}
		switch ft.Record {
		case TimeDescriptor:
			var t Time
			err := t.Decode(pd)
			return t, err
		case DurationDescriptor:
			var d Duration
			err := d.Decode(pd)
			return d, err
		}
		rec := NewDynamicRecord(ft.Record)
		if err := rec.Decode(pd); err != nil {
			return nil, err
		}
		return rec, nil
	}
	return nil, PacketDecodingError{fmt.Sprintf("cannot decode a field of type %s", ft.Name())}
}

// DynamicRecord is a record whose layout comes from a Descriptor at run time
// instead of a Go type. Values holds one value per descriptor field, in order,
// in the forms EncodeValue accepts.
type DynamicRecord struct {
	desc   *Descriptor
	Values []any
}

// NewDynamicRecord returns an empty record of the type d describes.
func NewDynamicRecord(d *Descriptor) *DynamicRecord {
	return &DynamicRecord{desc: d}
}

func (r *DynamicRecord) Descriptor() *Descriptor {
	return r.desc
}

// FieldValues returns the values in descriptor order.
func (r *DynamicRecord) FieldValues() []any {
	return r.Values
}

// Get returns the value of the named field.
func (r *DynamicRecord) Get(name string) (any, bool) {
	for i, f := range r.desc.Fields {
		if f.Name == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

func (r *DynamicRecord) Encode(pe PacketEncoder) error {
	if len(r.Values) != len(r.desc.Fields) {
		return PacketEncodingError{fmt.Sprintf("%s has %d fields, record holds %d values",
			r.desc.Type, len(r.desc.Fields), len(r.Values))}
	}
	for i, f := range r.desc.Fields {
		if err := EncodeValue(pe, f.Type, r.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *DynamicRecord) Decode(pd PacketDecoder) error {
	values := make([]any, len(r.desc.Fields))
	for i, f := range r.desc.Fields {
		v, err := DecodeValue(pd, f.Type)
		if err != nil {
			return err
		}
		values[i] = v
	}
	r.Values = values
	return nil
}
