package rosmsg

import "github.com/rcrowley/go-metrics"

// PacketEncoder is the interface providing helpers for writing with the ROS wire
// rules. Types implementing Encoder only need to worry about calling methods like
// PutString, not about how a string is represented on the wire.
//
// Every record is encoded twice: once to measure it and once to write it, so an
// Encode method must produce the same calls in the same order on both passes.
type PacketEncoder interface {
	// Primitives
	PutBool(in bool)
	PutInt8(in int8)
	PutInt16(in int16)
	PutInt32(in int32)
	PutInt64(in int64)
	PutUint8(in uint8)
	PutUint16(in uint16)
	PutUint32(in uint32)
	PutUint64(in uint64)
	PutFloat32(in float32)
	PutFloat64(in float64)

	// Collections
	PutArrayLength(in int) error
	PutString(in string) error
	PutBytes(in []byte) error
	PutStringArray(in []string) error
	PutInt32Array(in []int32) error
	PutInt64Array(in []int64) error
	PutFloat64Array(in []float64) error

	// Provide the current offset to record the record size metric
	Offset() int

	// Stacks, see PushEncoder
	Push(in PushEncoder)
	Pop() error

	// MetricRegistry returns the registry the encode was started with, or nil.
	MetricRegistry() metrics.Registry
}

// PushEncoder is the interface for encoding fields like lengths where the value
// depends on what follows it in the buffer. Start them with PacketEncoder.Push()
// where the actual value is located, then PacketEncoder.Pop() them when all the
// bytes they depend upon have been written.
type PushEncoder interface {
	// SaveOffset saves the offset into the output buffer as the location to
	// actually write the calculated value when able.
	SaveOffset(in int)

	// ReserveLength returns the number of bytes to reserve for the output of
	// this encoder (eg 4 bytes for a length).
	ReserveLength() int

	// Run indicates that all required data is now available to calculate and
	// write the field. SaveOffset is guaranteed to have been called first.
	Run(curOffset int, buf []byte) error
}
