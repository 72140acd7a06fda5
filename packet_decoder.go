package rosmsg

// PacketDecoder is the interface providing helpers for reading with the ROS wire
// rules. Types implementing Decoder only need to worry about calling methods like
// GetString, not about how a string is represented on the wire.
//
// A PacketDecoder is a cursor: every successful Get advances it by exactly the
// bytes consumed and it never rewinds. After the first failed Get every further
// Get returns that same error.
type PacketDecoder interface {
	// Primitives
	GetBool() (bool, error)
	GetInt8() (int8, error)
	GetInt16() (int16, error)
	GetInt32() (int32, error)
	GetInt64() (int64, error)
	GetUint8() (uint8, error)
	GetUint16() (uint16, error)
	GetUint32() (uint32, error)
	GetUint64() (uint64, error)
	GetFloat32() (float32, error)
	GetFloat64() (float64, error)

	// Collections
	GetArrayLength() (int, error)
	GetString() (string, error)
	GetBytes() ([]byte, error)
	GetStringArray() ([]string, error)
	GetInt32Array() ([]int32, error)
	GetInt64Array() ([]int64, error)
	GetFloat64Array() ([]float64, error)

	// Subsets
	Remaining() int
	Offset() int
	GetSubset(length int) (PacketDecoder, error)

	// Err returns the error that put the decoder into its failed state, or nil.
	Err() error

	// Stacks, see PushDecoder
	Push(in PushDecoder) error
	Pop() error
}

// PushDecoder is the interface for decoding fields like lengths where the validity
// of the field depends on what is after it in the buffer. Start them with
// PacketDecoder.Push() where the actual value is located, then
// PacketDecoder.Pop() them when all the bytes they depend upon have been decoded.
type PushDecoder interface {
	// SaveOffset saves the offset into the input buffer as the location to
	// actually read the calculated value when able.
	SaveOffset(in int)

	// ReserveLength returns the length of data to reserve for the input of this
	// decoder (eg 4 bytes for a length).
	ReserveLength() int

	// Check indicates that all required data is now available to calculate and
	// check the field. SaveOffset is guaranteed to have been called first. The
	// implementation should read ReserveLength() bytes of data from the saved
	// offset, and verify it based on the data between the saved offset and curOffset.
	Check(curOffset int, buf []byte) error
}

// limitedDecoder is implemented by the decoders of this package, which carry the
// limits of the Config they were built from.
type limitedDecoder interface {
	checkEmptyArrayLength(n int) error
	checkChunkSize(size uint32) error
}

func checkEmptyArrayLength(pd PacketDecoder, n int) error {
	if ld, ok := pd.(limitedDecoder); ok {
		return ld.checkEmptyArrayLength(n)
	}
	if n > MaxEmptyArrayLength {
		return errInvalidArrayLength
	}
	return nil
}

func checkChunkSize(pd PacketDecoder, size uint32) error {
	if ld, ok := pd.(limitedDecoder); ok {
		return ld.checkChunkSize(size)
	}
	if uint64(size) > uint64(MaxChunkSize) {
		return errInvalidChunkSize
	}
	return nil
}
