package rosmsg

import (
	"encoding/binary"
	"math"

	"github.com/rcrowley/go-metrics"
)

// realEncoder writes into raw, which the prep pass sized exactly. off starts at the
// length of any data the caller asked us to append to.
type realEncoder struct {
	raw      []byte
	off      int
	stack    []PushEncoder
	registry metrics.Registry
}

// primitives

func (re *realEncoder) PutBool(in bool) {
	if in {
		re.PutUint8(1)
		return
	}
	re.PutUint8(0)
}

func (re *realEncoder) PutInt8(in int8) {
	re.raw[re.off] = byte(in)
	re.off++
}

func (re *realEncoder) PutInt16(in int16) {
	re.PutUint16(uint16(in))
}

func (re *realEncoder) PutInt32(in int32) {
	re.PutUint32(uint32(in))
}

func (re *realEncoder) PutInt64(in int64) {
	re.PutUint64(uint64(in))
}

func (re *realEncoder) PutUint8(in uint8) {
	re.raw[re.off] = in
	re.off++
}

func (re *realEncoder) PutUint16(in uint16) {
	binary.LittleEndian.PutUint16(re.raw[re.off:], in)
	re.off += 2
}

func (re *realEncoder) PutUint32(in uint32) {
	binary.LittleEndian.PutUint32(re.raw[re.off:], in)
	re.off += 4
}

func (re *realEncoder) PutUint64(in uint64) {
	binary.LittleEndian.PutUint64(re.raw[re.off:], in)
	re.off += 8
}

func (re *realEncoder) PutFloat32(in float32) {
	re.PutUint32(math.Float32bits(in))
}

func (re *realEncoder) PutFloat64(in float64) {
	re.PutUint64(math.Float64bits(in))
}

func (re *realEncoder) PutArrayLength(in int) error {
	re.PutUint32(uint32(in))
	return nil
}

// collection

func (re *realEncoder) PutString(in string) error {
	re.PutUint32(uint32(len(in)))
	re.off += copy(re.raw[re.off:], in)
	return nil
}

func (re *realEncoder) PutBytes(in []byte) error {
	re.PutUint32(uint32(len(in)))
	re.off += copy(re.raw[re.off:], in)
	return nil
}

func (re *realEncoder) PutStringArray(in []string) error {
	if err := re.PutArrayLength(len(in)); err != nil {
		return err
	}

	for _, val := range in {
		if err := re.PutString(val); err != nil {
			return err
		}
	}

	return nil
}

func (re *realEncoder) PutInt32Array(in []int32) error {
	if err := re.PutArrayLength(len(in)); err != nil {
		return err
	}
	for _, val := range in {
		re.PutInt32(val)
	}
	return nil
}

func (re *realEncoder) PutInt64Array(in []int64) error {
	if err := re.PutArrayLength(len(in)); err != nil {
		return err
	}
	for _, val := range in {
		re.PutInt64(val)
	}
	return nil
}

func (re *realEncoder) PutFloat64Array(in []float64) error {
	if err := re.PutArrayLength(len(in)); err != nil {
		return err
	}
	for _, val := range in {
		re.PutFloat64(val)
	}
	return nil
}

func (re *realEncoder) Offset() int {
	return re.off
}

// stacks

func (re *realEncoder) Push(in PushEncoder) {
	in.SaveOffset(re.off)
	re.off += in.ReserveLength()
	re.stack = append(re.stack, in)
}

func (re *realEncoder) Pop() error {
	if len(re.stack) == 0 {
		return PacketEncodingError{"pop on an empty push stack"}
	}
	// this is go's ugly pop pattern (the inverse of append)
	in := re.stack[len(re.stack)-1]
	re.stack = re.stack[:len(re.stack)-1]

	return in.Run(re.off, re.raw)
}

// we do record metrics during the real encoder pass
func (re *realEncoder) MetricRegistry() metrics.Registry {
	return re.registry
}
