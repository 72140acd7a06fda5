package rosmsg

// PutArray writes a length-prefixed array whose elements are written by put.
func PutArray[T any](pe PacketEncoder, in []T, put func(PacketEncoder, T) error) error {
	if err := pe.PutArrayLength(len(in)); err != nil {
		return err
	}
	for _, elem := range in {
		if err := put(pe, elem); err != nil {
			return err
		}
	}
	return nil
}

// GetArray reads a length-prefixed array whose elements are read by get. The first
// element failure is returned unchanged and no partial array is returned.
func GetArray[T any](pd PacketDecoder, get func(PacketDecoder) (T, error)) ([]T, error) {
	n, err := pd.GetArrayLength()
	if err != nil {
		return nil, err
	}

	// a corrupt count must not turn into a huge allocation up front
	ret := make([]T, 0, min(n, pd.Remaining()))
	start := pd.Offset()
	for i := 0; i < n; i++ {
		elem, err := get(pd)
		if err != nil {
			return nil, err
		}
		// elements that consume no input are only bounded by the count
		if i == 0 && pd.Offset() == start {
			if err := checkEmptyArrayLength(pd, n); err != nil {
				return nil, err
			}
		}
		ret = append(ret, elem)
	}
	return ret, nil
}

// PutRecordArray writes a length-prefixed array of nested records.
func PutRecordArray[T Encoder](pe PacketEncoder, in []T) error {
	return PutArray(pe, in, func(pe PacketEncoder, elem T) error {
		return elem.Encode(pe)
	})
}

// GetRecordArray reads a length-prefixed array of nested records of type T.
func GetRecordArray[T any, PT interface {
	*T
	Decoder
}](pd PacketDecoder) ([]T, error) {
	return GetArray(pd, func(pd PacketDecoder) (T, error) {
		var elem T
		err := PT(&elem).Decode(pd)
		return elem, err
	})
}

// Element helpers for PutArray and GetArray, one per primitive.

func PutBoolElem(pe PacketEncoder, in bool) error       { pe.PutBool(in); return nil }
func PutInt8Elem(pe PacketEncoder, in int8) error       { pe.PutInt8(in); return nil }
func PutInt16Elem(pe PacketEncoder, in int16) error     { pe.PutInt16(in); return nil }
func PutInt32Elem(pe PacketEncoder, in int32) error     { pe.PutInt32(in); return nil }
func PutInt64Elem(pe PacketEncoder, in int64) error     { pe.PutInt64(in); return nil }
func PutUint8Elem(pe PacketEncoder, in uint8) error     { pe.PutUint8(in); return nil }
func PutUint16Elem(pe PacketEncoder, in uint16) error   { pe.PutUint16(in); return nil }
func PutUint32Elem(pe PacketEncoder, in uint32) error   { pe.PutUint32(in); return nil }
func PutUint64Elem(pe PacketEncoder, in uint64) error   { pe.PutUint64(in); return nil }
func PutFloat32Elem(pe PacketEncoder, in float32) error { pe.PutFloat32(in); return nil }
func PutFloat64Elem(pe PacketEncoder, in float64) error { pe.PutFloat64(in); return nil }
func PutStringElem(pe PacketEncoder, in string) error   { return pe.PutString(in) }

func GetBoolElem(pd PacketDecoder) (bool, error)       { return pd.GetBool() }
func GetInt8Elem(pd PacketDecoder) (int8, error)       { return pd.GetInt8() }
func GetInt16Elem(pd PacketDecoder) (int16, error)     { return pd.GetInt16() }
func GetInt32Elem(pd PacketDecoder) (int32, error)     { return pd.GetInt32() }
func GetInt64Elem(pd PacketDecoder) (int64, error)     { return pd.GetInt64() }
func GetUint8Elem(pd PacketDecoder) (uint8, error)     { return pd.GetUint8() }
func GetUint16Elem(pd PacketDecoder) (uint16, error)   { return pd.GetUint16() }
func GetUint32Elem(pd PacketDecoder) (uint32, error)   { return pd.GetUint32() }
func GetUint64Elem(pd PacketDecoder) (uint64, error)   { return pd.GetUint64() }
func GetFloat32Elem(pd PacketDecoder) (float32, error) { return pd.GetFloat32() }
func GetFloat64Elem(pd PacketDecoder) (float64, error) { return pd.GetFloat64() }
func GetStringElem(pd PacketDecoder) (string, error)   { return pd.GetString() }
