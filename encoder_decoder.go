package rosmsg

import (
	"slices"

	"github.com/rcrowley/go-metrics"
)

// Encoder is the interface that wraps the basic Encode method.
// Anything implementing Encoder can be turned into bytes using the ROS wire rules.
type Encoder interface {
	Encode(pe PacketEncoder) error
}

// Decoder is the interface that wraps the basic Decode method.
// Anything implementing Decoder can be extracted from bytes using the ROS wire rules.
type Decoder interface {
	Decode(pd PacketDecoder) error
}

// encode appends the encoding of e to dst: a size pass, one allocation, a write pass.
func encode(e Encoder, dst []byte, metricRegistry metrics.Registry) ([]byte, error) {
	if e == nil {
		return dst, nil
	}

	var prepEnc prepEncoder
	var realEnc realEncoder

	err := e.Encode(&prepEnc)
	if err != nil {
		return nil, err
	}
	if len(prepEnc.stack) != 0 {
		return nil, PacketEncodingError{"unbalanced push/pop"}
	}

	start := len(dst)
	realEnc.raw = slices.Grow(dst, prepEnc.length)[:start+prepEnc.length]
	realEnc.off = start
	realEnc.registry = metricRegistry
	err = e.Encode(&realEnc)
	if err != nil {
		return nil, err
	}

	if realEnc.off != len(realEnc.raw) {
		return nil, PacketEncodingError{"record produced different output on its size and write passes"}
	}

	return realEnc.raw, nil
}

// decode runs d over buf and returns the number of bytes consumed.
func decode(buf []byte, d Decoder, conf *Config) (int, error) {
	if d == nil {
		return 0, nil
	}

	helper := newConfigDecoder(buf, conf)
	if err := d.Decode(helper); err != nil {
		return helper.off, err
	}
	if helper.err != nil {
		// the record swallowed a decoder failure
		return helper.off, helper.err
	}
	if len(helper.stack) != 0 {
		return helper.off, PacketDecodingError{"unbalanced push/pop"}
	}

	return helper.off, nil
}

// Encode turns e into bytes with the default limits and no metrics.
func Encode(e Encoder) ([]byte, error) {
	return defaultCodec.Encode(e)
}

// AppendEncode appends the encoding of e to dst and returns the extended slice,
// or dst unchanged on error.
func AppendEncode(dst []byte, e Encoder) ([]byte, error) {
	return defaultCodec.AppendEncode(dst, e)
}

// Decode fills d from the start of buf. Trailing bytes after the record are not
// an error. On failure d may hold some decoded fields; use Unmarshal when the
// caller must never see a partially decoded record.
func Decode(buf []byte, d Decoder) error {
	return defaultCodec.Decode(buf, d)
}

// DecodeExact is Decode, but fails with ErrTrailingData unless the record
// consumed all of buf.
func DecodeExact(buf []byte, d Decoder) error {
	return defaultCodec.DecodeExact(buf, d)
}

// DecodePrefix fills d from the start of buf and returns how many bytes it
// consumed, so a buffer may carry several records back to back.
func DecodePrefix(buf []byte, d Decoder) (int, error) {
	return defaultCodec.DecodePrefix(buf, d)
}

// Unmarshal decodes a fresh T from buf. It returns either a fully decoded value
// or the zero value together with the error.
func Unmarshal[T any, PT interface {
	*T
	Decoder
}](buf []byte) (T, error) {
	var out T
	if err := Decode(buf, PT(&out)); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
