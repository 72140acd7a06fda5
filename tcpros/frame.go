package tcpros

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rostygo/rosmsg"
)

// MaxFrameSize is the largest frame ReadMessage and ReadHeader accept, in bytes,
// not counting the length prefix.
var MaxFrameSize = 100 * 1024 * 1024

// ErrFrameTooLarge is returned when a frame's length prefix exceeds MaxFrameSize.
var ErrFrameTooLarge = errors.New("tcpros: frame larger than MaxFrameSize")

// frame wraps a record in a length field.
type frame struct {
	body rosmsg.Encoder
}

func (f frame) Encode(pe rosmsg.PacketEncoder) error {
	pe.Push(&rosmsg.LengthField{})
	if err := f.body.Encode(pe); err != nil {
		return err
	}
	return pe.Pop()
}

// unframe checks that the body consumes exactly the framed length.
type unframe struct {
	body rosmsg.Decoder
}

func (f unframe) Decode(pd rosmsg.PacketDecoder) error {
	if err := pd.Push(&rosmsg.LengthField{}); err != nil {
		return err
	}
	if err := f.body.Decode(pd); err != nil {
		return err
	}
	return pd.Pop()
}

// EncodeFrame returns e prefixed with its uint32 length.
func EncodeFrame(e rosmsg.Encoder) ([]byte, error) {
	return rosmsg.Encode(frame{body: e})
}

// DecodeFrame decodes a frame produced by EncodeFrame. The record must fill the
// frame exactly.
func DecodeFrame(buf []byte, d rosmsg.Decoder) error {
	return rosmsg.DecodeExact(buf, unframe{body: d})
}

// WriteMessage writes e to w as one frame.
func WriteMessage(w io.Writer, e rosmsg.Encoder) error {
	buf, err := EncodeFrame(e)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadMessage reads one frame from r and decodes it into d.
func ReadMessage(r io.Reader, d rosmsg.Decoder) error {
	buf, err := readFrame(r)
	if err != nil {
		return err
	}
	return DecodeFrame(buf, d)
}

// WriteHeader writes a connection header to w.
func WriteHeader(w io.Writer, h Header) error {
	buf, err := rosmsg.Encode(h)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadHeader reads a connection header from r.
func ReadHeader(r io.Reader) (Header, error) {
	buf, err := readFrame(r)
	if err != nil {
		return nil, err
	}
	var h Header
	if err := rosmsg.DecodeExact(buf, &h); err != nil {
		return nil, err
	}
	return h, nil
}

// readFrame reads a uint32 length and that many bytes, returning both.
func readFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, frameReadError(err)
	}

	n := binary.LittleEndian.Uint32(prefix[:])
	if uint64(n) > uint64(MaxFrameSize) {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, n)
	}

	buf := make([]byte, 4+int(n))
	copy(buf, prefix[:])
	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		// the prefix promised a body, so even a clean EOF cuts the frame short
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, frameReadError(err)
	}
	return buf, nil
}

// frameReadError keeps a clean io.EOF between frames and reports a frame cut
// short as insufficient data.
func frameReadError(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return rosmsg.Wrap(rosmsg.ErrInsufficientData, err)
	}
	return err
}
