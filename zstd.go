package rosmsg

import (
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/puzpuzpuz/xsync/v3"
)

// zstdEncoders holds one encoder per compression level. EncodeAll on a
// zstd.Encoder is safe for concurrent use.
var zstdEncoders = xsync.NewMapOf[int, *zstd.Encoder]()

// zstdDec writes no further than the capacity of the destination it is given,
// which is how chunk decoding holds a frame to its declared size.
var zstdDec, _ = zstd.NewReader(nil,
	zstd.WithDecodeAllCapLimit(true),
	zstd.WithDecoderMaxMemory(math.MaxUint32))

func getZstdEncoder(level int) *zstd.Encoder {
	enc, _ := zstdEncoders.LoadOrCompute(level, func() *zstd.Encoder {
		encoderLevel := zstd.SpeedDefault
		if level != CompressionLevelDefault {
			encoderLevel = zstd.EncoderLevelFromZstd(level)
		}
		enc, _ := zstd.NewWriter(nil, zstd.WithZeroFrames(true),
			zstd.WithEncoderLevel(encoderLevel))
		return enc
	})
	return enc
}

// zstdDecompress decodes src into a buffer with room for exactly size bytes.
// Frames that inflate past it fail with zstd.ErrDecoderSizeExceeded.
func zstdDecompress(src []byte, size int) ([]byte, error) {
	return zstdDec.DecodeAll(src, make([]byte, 0, size))
}

func zstdCompress(level int, dst, src []byte) ([]byte, error) {
	return getZstdEncoder(level).EncodeAll(src, dst), nil
}
