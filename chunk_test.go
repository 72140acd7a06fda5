package rosmsg

import (
	"bytes"
	"context"
	"io"
	"testing"

	snappy "github.com/eapache/go-xerial-snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCodecs = []CompressionCodec{
	CompressionNone,
	CompressionGZIP,
	CompressionSnappy,
	CompressionLZ4,
	CompressionZSTD,
}

var compressingCodecs = allCodecs[1:]

func TestCompressionRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("rosout "), 200)
	for _, cc := range allCodecs {
		t.Run(cc.String(), func(t *testing.T) {
			compressed, err := compress(cc, CompressionLevelDefault, data)
			require.NoError(t, err)
			if cc != CompressionNone {
				assert.Less(t, len(compressed), len(data))
			}

			out, err := decompress(cc, compressed, len(data))
			require.NoError(t, err)
			assert.Equal(t, data, out)
		})
	}
}

func TestGzipCompressionLevel(t *testing.T) {
	data := bytes.Repeat([]byte{0x01, 0x02}, 100)
	compressed, err := compress(CompressionGZIP, 9, data)
	require.NoError(t, err)
	out, err := decompress(CompressionGZIP, compressed, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = compress(CompressionGZIP, 42, data)
	assert.Error(t, err)
}

func TestUnknownCompressionCodec(t *testing.T) {
	_, err := compress(CompressionCodec(9), CompressionLevelDefault, nil)
	var encErr PacketEncodingError
	assert.ErrorAs(t, err, &encErr)

	_, err = decompress(CompressionCodec(9), nil, 0)
	var decErr PacketDecodingError
	assert.ErrorAs(t, err, &decErr)
}

func TestCompressionCodecText(t *testing.T) {
	for _, cc := range allCodecs {
		text, err := cc.MarshalText()
		require.NoError(t, err)

		var parsed CompressionCodec
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, cc, parsed)
	}

	var parsed CompressionCodec
	assert.Error(t, parsed.UnmarshalText([]byte("brotli")))
	_, err := CompressionCodec(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "CompressionCodec(7)", CompressionCodec(7).String())
}

func TestChunkLayout(t *testing.T) {
	expect := []byte{
		0x00,
		0x02, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0xAA, 0xBB,
	}
	testEncodable(t, "uncompressed chunk", &Chunk{Codec: CompressionNone, Size: 2, Payload: []byte{0xAA, 0xBB}}, expect)

	chunk, err := NewChunk(CompressionNone, CompressionLevelDefault, []byte{0xAA, 0xBB})
	require.NoError(t, err)
	testEncodable(t, "built chunk", chunk, expect)
}

func TestChunkEncodeFollowsFields(t *testing.T) {
	chunk, err := NewChunk(CompressionNone, CompressionLevelDefault, []byte("abc"))
	require.NoError(t, err)
	first, err := Encode(chunk)
	require.NoError(t, err)
	again, err := Encode(chunk)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	rebuilt, err := NewChunk(CompressionGZIP, CompressionLevelDefault, []byte("abcdef"))
	require.NoError(t, err)
	*chunk = *rebuilt
	buf, err := Encode(chunk)
	require.NoError(t, err)
	assert.NotEqual(t, first, buf)

	var decoded Chunk
	require.NoError(t, DecodeExact(buf, &decoded))
	assert.Equal(t, CompressionGZIP, decoded.Codec)
	assert.Equal(t, uint32(6), decoded.Size)

	records, err := decoded.records()
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdef"), records)
}

func TestChunkConcurrentEncode(t *testing.T) {
	chunk, err := NewChunk(CompressionZSTD, CompressionLevelDefault, bytes.Repeat([]byte("tf "), 500))
	require.NoError(t, err)

	records := make([]Encoder, 16)
	for i := range records {
		records[i] = chunk
	}
	out, err := EncodeAll(context.Background(), records)
	require.NoError(t, err)
	for _, buf := range out[1:] {
		assert.Equal(t, out[0], buf)
	}
}

func TestChunkBuilderAndReader(t *testing.T) {
	for _, cc := range allCodecs {
		t.Run(cc.String(), func(t *testing.T) {
			conf := NewConfig()
			conf.Chunk.Compression = cc
			conf.Chunk.MaxRecords = 3
			codec, err := NewCodec(conf)
			require.NoError(t, err)

			builder := codec.NewChunkBuilder()
			empty, err := builder.Flush()
			require.NoError(t, err)
			assert.Nil(t, empty)

			for i := 0; i < 3; i++ {
				assert.False(t, builder.Ready())
				rec := logRecordValue
				rec.Level = uint8(i)
				require.NoError(t, builder.Add(&rec))
			}
			assert.True(t, builder.Ready())
			assert.Equal(t, 3, builder.Len())

			chunk, err := builder.Flush()
			require.NoError(t, err)
			require.NotNil(t, chunk)
			assert.Equal(t, 0, builder.Len())
			assert.Equal(t, cc, chunk.Codec)

			buf, err := codec.Encode(chunk)
			require.NoError(t, err)

			var decoded Chunk
			require.NoError(t, codec.DecodeExact(buf, &decoded))
			assert.Equal(t, chunk, &decoded)

			reader, err := codec.NewChunkReader(&decoded)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				var rec logRecord
				require.NoError(t, reader.Next(&rec))
				assert.Equal(t, uint8(i), rec.Level)
				assert.Equal(t, logRecordValue.Topics, rec.Topics)
			}
			var rec logRecord
			assert.Equal(t, io.EOF, reader.Next(&rec))
		})
	}
}

func TestChunkCompressionMetrics(t *testing.T) {
	conf := NewConfig()
	conf.Chunk.Compression = CompressionGZIP
	codec, err := NewCodec(conf)
	require.NoError(t, err)

	chunk, err := NewChunk(CompressionGZIP, CompressionLevelDefault, bytes.Repeat([]byte{0x00}, 1000))
	require.NoError(t, err)
	_, err = codec.Encode(chunk)
	require.NoError(t, err)

	validators := newMetricValidators()
	validators.register(countHistogramValidator(metricCompressionRatio, 1))
	validators.register(minValHistogramValidator(metricCompressionRatio, 200))
	validators.run(t, conf.MetricRegistry)
}

func TestChunkDecodeErrors(t *testing.T) {
	withLogger(t, &testLogger{t: t})

	var chunk Chunk
	err := Decode([]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, &chunk)
	var decErr PacketDecodingError
	assert.ErrorAs(t, err, &decErr, "unknown codec")

	err = Decode([]byte{0x00, 0x02, 0x00}, &chunk)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestChunkDeclaredSizeLimit(t *testing.T) {
	conf := NewConfig()
	conf.Decoder.MaxChunkSize = 4
	codec, err := NewCodec(conf)
	require.NoError(t, err)

	// the size is rejected before the missing payload is even looked at
	var chunk Chunk
	err = codec.Decode([]byte{0x01, 0x05, 0x00, 0x00, 0x00}, &chunk)
	assert.Equal(t, errInvalidChunkSize, err)

	_, err = codec.NewChunkReader(&Chunk{Codec: CompressionNone, Size: 5, Payload: make([]byte, 5)})
	assert.Equal(t, errInvalidChunkSize, err)

	_, err = codec.NewChunkReader(&Chunk{Codec: CompressionNone, Size: 4, Payload: make([]byte, 4)})
	assert.NoError(t, err)
}

func TestChunkReaderRejectsBadPayloads(t *testing.T) {
	var decErr PacketDecodingError

	// header claims 3 bytes, payload has 2
	_, err := defaultCodec.NewChunkReader(&Chunk{Codec: CompressionNone, Size: 3, Payload: []byte{0xAA, 0xBB}})
	assert.ErrorAs(t, err, &decErr, "size mismatch")

	_, err = defaultCodec.NewChunkReader(&Chunk{Codec: CompressionGZIP, Size: 2, Payload: []byte{0xAA, 0xBB}})
	assert.ErrorAs(t, err, &decErr, "corrupt gzip")
}

func TestChunkReaderRejectsUnderstatedSize(t *testing.T) {
	data := make([]byte, 64*1024)
	for _, cc := range compressingCodecs {
		t.Run(cc.String(), func(t *testing.T) {
			payload, err := compress(cc, CompressionLevelDefault, data)
			require.NoError(t, err)

			_, err = defaultCodec.NewChunkReader(&Chunk{Codec: cc, Size: 1, Payload: payload})
			var decErr PacketDecodingError
			assert.ErrorAs(t, err, &decErr)
		})
	}
}

// zeros is an endless stream of zero bytes.
type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestReadBoundedStopsPastSize(t *testing.T) {
	out, err := readBounded(zeros{}, 10)
	require.NoError(t, err)
	assert.Len(t, out, 11)
}

func TestZstdStopsAtDeclaredSize(t *testing.T) {
	payload, err := zstdCompress(CompressionLevelDefault, nil, make([]byte, 64*1024))
	require.NoError(t, err)

	_, err = zstdDecompress(payload, 1)
	assert.ErrorIs(t, err, zstd.ErrDecoderSizeExceeded)

	out, err := zstdDecompress(payload, 64*1024)
	require.NoError(t, err)
	assert.Len(t, out, 64*1024)
}

func TestSnappyDecodedLen(t *testing.T) {
	data := bytes.Repeat([]byte("clock "), 20000)

	raw := snappy.Encode(data)
	n, err := snappyDecodedLen(raw)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)

	framed := snappy.EncodeStream(nil, data)
	n, err = snappyDecodedLen(framed)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)

	out, err := decompress(CompressionSnappy, framed, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = snappyDecompress(framed, len(data)-1)
	var decErr PacketDecodingError
	assert.ErrorAs(t, err, &decErr)

	_, err = snappyDecodedLen(framed[:len(framed)-1])
	assert.ErrorIs(t, err, snappy.ErrMalformed)
}

func TestChunkReaderRejectsEmptyRecords(t *testing.T) {
	reader, err := defaultCodec.NewChunkReader(&Chunk{Size: 1, Payload: []byte{0x01}})
	require.NoError(t, err)
	assert.Equal(t, errZeroLengthRecord, reader.Next(&emptyRecord{}))
}

func TestChunkBuilderRejectsEmptyRecords(t *testing.T) {
	builder := defaultCodec.NewChunkBuilder()
	for i := 0; i < 3; i++ {
		assert.Equal(t, errZeroLengthRecord, builder.Add(&emptyRecord{}))
	}
	assert.Equal(t, 0, builder.Len())

	chunk, err := builder.Flush()
	assert.NoError(t, err)
	assert.Nil(t, chunk)
}
