package rosmsg

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

type realDecoder struct {
	raw   []byte
	off   int
	stack []PushDecoder
	err   error

	maxStringLength     int
	maxArrayLength      int
	maxEmptyArrayLength int
	maxChunkSize        int
}

func newRealDecoder(raw []byte, maxStringLength, maxArrayLength int) *realDecoder {
	return &realDecoder{
		raw:                 raw,
		maxStringLength:     maxStringLength,
		maxArrayLength:      maxArrayLength,
		maxEmptyArrayLength: MaxEmptyArrayLength,
		maxChunkSize:        MaxChunkSize,
	}
}

func newConfigDecoder(raw []byte, conf *Config) *realDecoder {
	rd := newRealDecoder(raw, conf.maxStringLength(), conf.maxArrayLength())
	rd.maxEmptyArrayLength = conf.maxEmptyArrayLength()
	rd.maxChunkSize = conf.maxChunkSize()
	return rd
}

func (rd *realDecoder) Remaining() int {
	return len(rd.raw) - rd.off
}

func (rd *realDecoder) Offset() int {
	return rd.off
}

func (rd *realDecoder) Err() error {
	return rd.err
}

// fail moves the decoder into its failed state. The first error sticks.
func (rd *realDecoder) fail(err error) error {
	if rd.err == nil {
		rd.err = err
	}
	return rd.err
}

// need checks that n more bytes can be consumed.
func (rd *realDecoder) need(n int) error {
	if rd.err != nil {
		return rd.err
	}
	if n < 0 || rd.Remaining() < n {
		return rd.fail(ErrInsufficientData)
	}
	return nil
}

// primitives

func (rd *realDecoder) GetBool() (bool, error) {
	tmp, err := rd.GetUint8()
	return tmp != 0, err
}

func (rd *realDecoder) GetInt8() (int8, error) {
	tmp, err := rd.GetUint8()
	return int8(tmp), err
}

func (rd *realDecoder) GetInt16() (int16, error) {
	tmp, err := rd.GetUint16()
	return int16(tmp), err
}

func (rd *realDecoder) GetInt32() (int32, error) {
	tmp, err := rd.GetUint32()
	return int32(tmp), err
}

func (rd *realDecoder) GetInt64() (int64, error) {
	tmp, err := rd.GetUint64()
	return int64(tmp), err
}

func (rd *realDecoder) GetUint8() (uint8, error) {
	if err := rd.need(1); err != nil {
		return 0, err
	}
	tmp := rd.raw[rd.off]
	rd.off++
	return tmp, nil
}

func (rd *realDecoder) GetUint16() (uint16, error) {
	if err := rd.need(2); err != nil {
		return 0, err
	}
	tmp := binary.LittleEndian.Uint16(rd.raw[rd.off:])
	rd.off += 2
	return tmp, nil
}

func (rd *realDecoder) GetUint32() (uint32, error) {
	if err := rd.need(4); err != nil {
		return 0, err
	}
	tmp := binary.LittleEndian.Uint32(rd.raw[rd.off:])
	rd.off += 4
	return tmp, nil
}

func (rd *realDecoder) GetUint64() (uint64, error) {
	if err := rd.need(8); err != nil {
		return 0, err
	}
	tmp := binary.LittleEndian.Uint64(rd.raw[rd.off:])
	rd.off += 8
	return tmp, nil
}

func (rd *realDecoder) GetFloat32() (float32, error) {
	tmp, err := rd.GetUint32()
	return math.Float32frombits(tmp), err
}

func (rd *realDecoder) GetFloat64() (float64, error) {
	tmp, err := rd.GetUint64()
	return math.Float64frombits(tmp), err
}

// GetArrayLength reads an element count. It cannot check the count against the
// remaining bytes because elements may encode to zero bytes (empty records); the
// element decodes report truncation instead.
func (rd *realDecoder) GetArrayLength() (int, error) {
	tmp, err := rd.GetUint32()
	if err != nil {
		return -1, err
	}
	if uint64(tmp) > uint64(rd.maxArrayLength) {
		return -1, rd.fail(errInvalidArrayLength)
	}
	return int(tmp), nil
}

// collections

// getPayload reads a uint32 byte count and returns that many bytes, aliasing raw.
func (rd *realDecoder) getPayload() ([]byte, error) {
	tmp, err := rd.GetUint32()
	if err != nil {
		return nil, err
	}
	if uint64(tmp) > uint64(rd.Remaining()) {
		return nil, rd.fail(ErrInsufficientData)
	}
	n := int(tmp)
	payload := rd.raw[rd.off : rd.off+n]
	rd.off += n
	return payload, nil
}

func (rd *realDecoder) GetString() (string, error) {
	tmp, err := rd.GetUint32()
	if err != nil {
		return "", err
	}

	switch {
	case uint64(tmp) > uint64(rd.Remaining()):
		return "", rd.fail(ErrInsufficientData)
	case uint64(tmp) > uint64(rd.maxStringLength):
		return "", rd.fail(errInvalidStringLength)
	}

	n := int(tmp)
	payload := rd.raw[rd.off : rd.off+n]
	if !utf8.Valid(payload) {
		return "", rd.fail(ErrInvalidUTF8)
	}
	rd.off += n
	return string(payload), nil
}

// GetBytes decodes a uint8[] field. The result is a copy so decoded records never
// alias the input buffer.
func (rd *realDecoder) GetBytes() ([]byte, error) {
	payload, err := rd.getPayload()
	if err != nil {
		return nil, err
	}
	if len(payload) > rd.maxArrayLength {
		return nil, rd.fail(errInvalidArrayLength)
	}
	tmp := make([]byte, len(payload))
	copy(tmp, payload)
	return tmp, nil
}

func (rd *realDecoder) GetStringArray() ([]string, error) {
	n, err := rd.GetArrayLength()
	if err != nil {
		return nil, err
	}

	// every string costs at least its 4 byte prefix
	if err := rd.need(4 * n); err != nil {
		return nil, err
	}

	ret := make([]string, n)
	for i := range ret {
		if ret[i], err = rd.GetString(); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (rd *realDecoder) GetInt32Array() ([]int32, error) {
	n, err := rd.GetArrayLength()
	if err != nil {
		return nil, err
	}
	if err := rd.need(4 * n); err != nil {
		return nil, err
	}

	ret := make([]int32, n)
	for i := range ret {
		ret[i] = int32(binary.LittleEndian.Uint32(rd.raw[rd.off:]))
		rd.off += 4
	}
	return ret, nil
}

func (rd *realDecoder) GetInt64Array() ([]int64, error) {
	n, err := rd.GetArrayLength()
	if err != nil {
		return nil, err
	}
	if err := rd.need(8 * n); err != nil {
		return nil, err
	}

	ret := make([]int64, n)
	for i := range ret {
		ret[i] = int64(binary.LittleEndian.Uint64(rd.raw[rd.off:]))
		rd.off += 8
	}
	return ret, nil
}

func (rd *realDecoder) GetFloat64Array() ([]float64, error) {
	n, err := rd.GetArrayLength()
	if err != nil {
		return nil, err
	}
	if err := rd.need(8 * n); err != nil {
		return nil, err
	}

	ret := make([]float64, n)
	for i := range ret {
		ret[i] = math.Float64frombits(binary.LittleEndian.Uint64(rd.raw[rd.off:]))
		rd.off += 8
	}
	return ret, nil
}

func (rd *realDecoder) GetSubset(length int) (PacketDecoder, error) {
	if err := rd.need(length); err != nil {
		return nil, err
	}

	start := rd.off
	rd.off += length
	sub := newRealDecoder(rd.raw[start:rd.off], rd.maxStringLength, rd.maxArrayLength)
	sub.maxEmptyArrayLength = rd.maxEmptyArrayLength
	sub.maxChunkSize = rd.maxChunkSize
	return sub, nil
}

// limits

func (rd *realDecoder) checkEmptyArrayLength(n int) error {
	if n > rd.maxEmptyArrayLength {
		return rd.fail(errInvalidArrayLength)
	}
	return nil
}

func (rd *realDecoder) checkChunkSize(size uint32) error {
	if uint64(size) > uint64(rd.maxChunkSize) {
		return rd.fail(errInvalidChunkSize)
	}
	return nil
}

// stacks

func (rd *realDecoder) Push(in PushDecoder) error {
	in.SaveOffset(rd.off)

	if err := rd.need(in.ReserveLength()); err != nil {
		return err
	}

	rd.stack = append(rd.stack, in)

	rd.off += in.ReserveLength()

	return nil
}

func (rd *realDecoder) Pop() error {
	if rd.err != nil {
		return rd.err
	}
	if len(rd.stack) == 0 {
		return rd.fail(PacketDecodingError{"pop on an empty push stack"})
	}
	// this is go's ugly pop pattern (the inverse of append)
	in := rd.stack[len(rd.stack)-1]
	rd.stack = rd.stack[:len(rd.stack)-1]

	if err := in.Check(rd.off, rd.raw); err != nil {
		return rd.fail(err)
	}
	return nil
}
