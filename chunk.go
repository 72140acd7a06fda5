package rosmsg

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/eapache/queue"
	"github.com/rcrowley/go-metrics"
)

// Chunk is a block of records compressed as a unit. On the wire it is
//
//	uint8  codec
//	uint32 uncompressed size
//	uint8[] payload (uint32 length + compressed bytes)
//
// where the uncompressed payload is the records' encodings back to back. A Chunk
// holds only what goes on the wire; NewChunk compresses, NewChunkReader inflates.
type Chunk struct {
	Codec CompressionCodec
	// Size is the length of the uncompressed records in bytes.
	Size uint32
	// Payload holds the records compressed with Codec. With CompressionNone it
	// may share memory with the records it was built from.
	Payload []byte
}

// NewChunk compresses records, the encodings of one or more records back to back,
// into a Chunk.
func NewChunk(cc CompressionCodec, level int, records []byte) (*Chunk, error) {
	if uint64(len(records)) > math.MaxUint32 {
		return nil, PacketEncodingError{fmt.Sprintf("chunk too large (%d bytes)", len(records))}
	}
	payload, err := compress(cc, level, records)
	if err != nil {
		return nil, err
	}
	return &Chunk{Codec: cc, Size: uint32(len(records)), Payload: payload}, nil
}

func (c *Chunk) Encode(pe PacketEncoder) error {
	pe.PutUint8(uint8(c.Codec))
	pe.PutUint32(c.Size)
	if err := pe.PutBytes(c.Payload); err != nil {
		return err
	}
	c.updateCompressionMetrics(pe.MetricRegistry())
	return nil
}

func (c *Chunk) updateCompressionMetrics(r metrics.Registry) {
	if r == nil || len(c.Payload) == 0 {
		return
	}
	ratio := int64(float64(c.Size) / float64(len(c.Payload)) * 100)
	getOrRegisterHistogram(metricCompressionRatio, r).Update(ratio)
}

// Decode reads the chunk without inflating it. The declared size is checked
// against the decoder's chunk limit.
func (c *Chunk) Decode(pd PacketDecoder) (err error) {
	codec, err := pd.GetUint8()
	if err != nil {
		return err
	}
	c.Codec = CompressionCodec(codec)
	if !c.Codec.valid() {
		Logger.Printf("chunk/decode unknown compression codec %d\n", codec)
		return PacketDecodingError{fmt.Sprintf("invalid compression specified (%d)", codec)}
	}

	if c.Size, err = pd.GetUint32(); err != nil {
		return err
	}
	if err := checkChunkSize(pd, c.Size); err != nil {
		return err
	}

	c.Payload, err = pd.GetBytes()
	return err
}

// records inflates the payload to exactly Size bytes.
func (c *Chunk) records() ([]byte, error) {
	out, err := decompress(c.Codec, c.Payload, int(c.Size))
	if err != nil {
		var decErr PacketDecodingError
		if errors.As(err, &decErr) {
			return nil, err
		}
		return nil, PacketDecodingError{fmt.Sprintf("decompressing %s chunk: %v", c.Codec, err)}
	}
	return out, nil
}

// ChunkBuilder queues encoded records until Flush packs them into a Chunk.
type ChunkBuilder struct {
	codec   *Codec
	pending *queue.Queue
	size    int
}

// NewChunkBuilder returns a builder that encodes with c and compresses with
// c.Config().Chunk settings.
func (c *Codec) NewChunkBuilder() *ChunkBuilder {
	return &ChunkBuilder{codec: c, pending: queue.New()}
}

// Add encodes e and queues it for the next chunk. Records that encode to zero
// bytes are rejected: a ChunkReader could never yield them back.
func (b *ChunkBuilder) Add(e Encoder) error {
	buf, err := b.codec.Encode(e)
	if err != nil {
		return err
	}
	if len(buf) == 0 {
		return errZeroLengthRecord
	}
	b.pending.Add(buf)
	b.size += len(buf)
	return nil
}

// Len returns the number of queued records.
func (b *ChunkBuilder) Len() int {
	return b.pending.Length()
}

// Ready reports whether Chunk.MaxRecords records are queued.
func (b *ChunkBuilder) Ready() bool {
	max := b.codec.conf.Chunk.MaxRecords
	return max > 0 && b.pending.Length() >= max
}

// Flush drains the queue into a new Chunk. It returns nil, nil if nothing is
// queued. On error the queued records are dropped.
func (b *ChunkBuilder) Flush() (*Chunk, error) {
	if b.pending.Length() == 0 {
		return nil, nil
	}

	records := make([]byte, 0, b.size)
	for b.pending.Length() > 0 {
		records = append(records, b.pending.Remove().([]byte)...)
	}
	b.size = 0

	conf := b.codec.conf.Chunk
	return NewChunk(conf.Compression, conf.CompressionLevel, records)
}

// ChunkReader yields the records of a Chunk one at a time.
type ChunkReader struct {
	codec *Codec
	raw   []byte
	off   int
}

// NewChunkReader inflates chunk and returns a reader over its records. It fails
// if the chunk declares more than the codec's chunk limit or if the payload does
// not inflate to exactly the declared size.
func (c *Codec) NewChunkReader(chunk *Chunk) (*ChunkReader, error) {
	if uint64(chunk.Size) > uint64(c.conf.maxChunkSize()) {
		return nil, errInvalidChunkSize
	}
	raw, err := chunk.records()
	if err != nil {
		return nil, err
	}
	return &ChunkReader{codec: c, raw: raw}, nil
}

// Next decodes the next record into d. It returns io.EOF once every record has
// been read.
func (r *ChunkReader) Next(d Decoder) error {
	if r.off == len(r.raw) {
		return io.EOF
	}
	n, err := r.codec.DecodePrefix(r.raw[r.off:], d)
	if err != nil {
		return err
	}
	if n == 0 {
		return errZeroLengthRecord
	}
	r.off += n
	return nil
}
