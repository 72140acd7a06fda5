package rosmsg

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	snappy "github.com/eapache/go-xerial-snappy"
	master "github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

var (
	lz4ReaderPool = sync.Pool{
		New: func() interface{} {
			return lz4.NewReader(nil)
		},
	}

	gzipReaderPool sync.Pool
)

// xerialHeader opens the framed snappy format some writers produce instead of a
// raw snappy block.
var xerialHeader = []byte{130, 83, 78, 65, 80, 80, 89, 0}

const xerialBlocksOffset = 16

// decompress inflates a chunk payload that must expand to exactly size bytes.
// No codec is allowed to produce more than size bytes, whatever the payload holds.
func decompress(cc CompressionCodec, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch cc {
	case CompressionNone:
		out = data
	case CompressionGZIP:
		out, err = gzipDecompress(data, size)
	case CompressionSnappy:
		out, err = snappyDecompress(data, size)
	case CompressionLZ4:
		out, err = lz4Decompress(data, size)
	case CompressionZSTD:
		out, err = zstdDecompress(data, size)
	default:
		return nil, PacketDecodingError{fmt.Sprintf("invalid compression specified (%d)", cc)}
	}
	if err != nil {
		return nil, err
	}

	switch {
	case len(out) > size:
		return nil, PacketDecodingError{fmt.Sprintf("chunk inflates past its declared %d bytes", size)}
	case len(out) < size:
		return nil, PacketDecodingError{fmt.Sprintf("chunk decompressed to %d bytes, header says %d", len(out), size)}
	}
	return out, nil
}

// readBounded reads r to the end, stopping one byte past size so an oversized
// stream is detected without inflating all of it.
func readBounded(r io.Reader, size int) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, int64(size)+1))
}

func gzipDecompress(data []byte, size int) ([]byte, error) {
	var err error
	reader, ok := gzipReaderPool.Get().(*gzip.Reader)
	if ok {
		err = reader.Reset(bytes.NewReader(data))
	} else {
		reader, err = gzip.NewReader(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	defer gzipReaderPool.Put(reader)

	return readBounded(reader, size)
}

func lz4Decompress(data []byte, size int) ([]byte, error) {
	reader := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(reader)

	reader.Reset(bytes.NewReader(data))
	return readBounded(reader, size)
}

// snappyDecompress checks the lengths recorded in the snappy data before decoding
// anything, so the output buffer is allocated once at its final size.
func snappyDecompress(data []byte, size int) ([]byte, error) {
	n, err := snappyDecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > size {
		return nil, PacketDecodingError{fmt.Sprintf("chunk inflates past its declared %d bytes", size)}
	}
	return snappy.DecodeInto(make([]byte, 0, n), data)
}

// snappyDecodedLen sums the decoded lengths of a raw snappy block or of every
// block in the xerial framing.
func snappyDecodedLen(data []byte) (int, error) {
	if !bytes.HasPrefix(data, xerialHeader) {
		return master.DecodedLen(data)
	}
	if len(data) < xerialBlocksOffset {
		return 0, snappy.ErrMalformed
	}

	total := 0
	for pos := xerialBlocksOffset; pos+4 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[pos:]))
		pos += 4
		if n < 0 || n > len(data)-pos {
			return 0, snappy.ErrMalformed
		}
		blockLen, err := master.DecodedLen(data[pos : pos+n])
		if err != nil {
			return 0, err
		}
		total += blockLen
		pos += n
	}
	return total, nil
}
