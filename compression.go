package rosmsg

import "fmt"

// CompressionCodec represents the compression codecs a Chunk can be written with.
type CompressionCodec uint8

const (
	// CompressionNone no compression
	CompressionNone CompressionCodec = iota
	// CompressionGZIP compression using GZIP
	CompressionGZIP
	// CompressionSnappy compression using snappy
	CompressionSnappy
	// CompressionLZ4 compression using LZ4
	CompressionLZ4
	// CompressionZSTD compression using ZSTD
	CompressionZSTD
)

// CompressionLevelDefault is the constant to use in CompressionLevel
// to have the default compression level for any codec. The value is picked
// that we don't use any existing compression levels.
const CompressionLevelDefault = -1000

func (cc CompressionCodec) String() string {
	if !cc.valid() {
		return fmt.Sprintf("CompressionCodec(%d)", uint8(cc))
	}
	return []string{
		"none",
		"gzip",
		"snappy",
		"lz4",
		"zstd",
	}[cc]
}

func (cc CompressionCodec) valid() bool {
	return cc <= CompressionZSTD
}

// MarshalText transforms a CompressionCodec into its string representation.
func (cc CompressionCodec) MarshalText() ([]byte, error) {
	if !cc.valid() {
		return nil, fmt.Errorf("rosmsg: unknown compression codec %d", cc)
	}
	return []byte(cc.String()), nil
}

// UnmarshalText transforms a string into a CompressionCodec.
func (cc *CompressionCodec) UnmarshalText(text []byte) error {
	codecs := map[string]CompressionCodec{
		"none":   CompressionNone,
		"gzip":   CompressionGZIP,
		"snappy": CompressionSnappy,
		"lz4":    CompressionLZ4,
		"zstd":   CompressionZSTD,
	}
	codec, ok := codecs[string(text)]
	if !ok {
		return fmt.Errorf("rosmsg: cannot parse %q as a compression codec", string(text))
	}
	*cc = codec
	return nil
}
