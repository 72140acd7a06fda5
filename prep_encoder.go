package rosmsg

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rcrowley/go-metrics"
)

type prepEncoder struct {
	stack  []PushEncoder
	length int
}

// primitives

func (pe *prepEncoder) PutBool(in bool) {
	pe.length++
}

func (pe *prepEncoder) PutInt8(in int8) {
	pe.length++
}

func (pe *prepEncoder) PutInt16(in int16) {
	pe.length += 2
}

func (pe *prepEncoder) PutInt32(in int32) {
	pe.length += 4
}

func (pe *prepEncoder) PutInt64(in int64) {
	pe.length += 8
}

func (pe *prepEncoder) PutUint8(in uint8) {
	pe.length++
}

func (pe *prepEncoder) PutUint16(in uint16) {
	pe.length += 2
}

func (pe *prepEncoder) PutUint32(in uint32) {
	pe.length += 4
}

func (pe *prepEncoder) PutUint64(in uint64) {
	pe.length += 8
}

func (pe *prepEncoder) PutFloat32(in float32) {
	pe.length += 4
}

func (pe *prepEncoder) PutFloat64(in float64) {
	pe.length += 8
}

func (pe *prepEncoder) PutArrayLength(in int) error {
	if in < 0 || uint64(in) > math.MaxUint32 {
		return PacketEncodingError{fmt.Sprintf("array too long (%d)", in)}
	}
	pe.length += 4
	return nil
}

// arrays

func (pe *prepEncoder) PutString(in string) error {
	if uint64(len(in)) > math.MaxUint32 {
		return PacketEncodingError{fmt.Sprintf("string too long (%d)", len(in))}
	}
	if !utf8.ValidString(in) {
		return PacketEncodingError{"string is not valid UTF-8"}
	}
	pe.length += 4 + len(in)
	return nil
}

func (pe *prepEncoder) PutBytes(in []byte) error {
	if err := pe.PutArrayLength(len(in)); err != nil {
		return err
	}
	pe.length += len(in)
	return nil
}

func (pe *prepEncoder) PutStringArray(in []string) error {
	if err := pe.PutArrayLength(len(in)); err != nil {
		return err
	}
	for _, str := range in {
		if err := pe.PutString(str); err != nil {
			return err
		}
	}
	return nil
}

func (pe *prepEncoder) PutInt32Array(in []int32) error {
	if err := pe.PutArrayLength(len(in)); err != nil {
		return err
	}
	pe.length += 4 * len(in)
	return nil
}

func (pe *prepEncoder) PutInt64Array(in []int64) error {
	if err := pe.PutArrayLength(len(in)); err != nil {
		return err
	}
	pe.length += 8 * len(in)
	return nil
}

func (pe *prepEncoder) PutFloat64Array(in []float64) error {
	if err := pe.PutArrayLength(len(in)); err != nil {
		return err
	}
	pe.length += 8 * len(in)
	return nil
}

func (pe *prepEncoder) Offset() int {
	return pe.length
}

// stackable

func (pe *prepEncoder) Push(in PushEncoder) {
	in.SaveOffset(pe.length)
	pe.length += in.ReserveLength()
	pe.stack = append(pe.stack, in)
}

func (pe *prepEncoder) Pop() error {
	if len(pe.stack) == 0 {
		return PacketEncodingError{"pop on an empty push stack"}
	}
	pe.stack = pe.stack[:len(pe.stack)-1]
	return nil
}

// we do not record metrics during the prep encoder pass
func (pe *prepEncoder) MetricRegistry() metrics.Registry {
	return nil
}
