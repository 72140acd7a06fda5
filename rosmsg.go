/*
Package rosmsg implements the ROS1 message wire format: a compact, length-prefixed,
byte-exact binary serialization for typed records built from primitives, strings
and variable-length arrays.

The format is not self-describing. Both sides must agree on the exact field order
and field types of a record; that agreement is versioned by the record's MD5 sum
(see Descriptor). The wire rules are:

	bool            1 byte, 0 = false, anything else = true
	intN / uintN    N/8 bytes, little-endian, two's complement for signed
	float32/64      4/8 bytes, little-endian raw IEEE-754 bits
	string          uint32 byte length + UTF-8 bytes
	T[]             uint32 element count + elements
	record          its fields in declared order, no framing, no padding

A record type implements Encoder and Decoder by calling the typed Put and Get
methods of PacketEncoder and PacketDecoder in one fixed order:

	func (l *Log) Encode(pe rosmsg.PacketEncoder) error {
		if err := pe.PutString(l.Name); err != nil {
			return err
		}
		pe.PutUint8(l.Level)
		return pe.PutStringArray(l.Topics)
	}

	func (l *Log) Decode(pd rosmsg.PacketDecoder) (err error) {
		if l.Name, err = pd.GetString(); err != nil {
			return err
		}
		if l.Level, err = pd.GetUint8(); err != nil {
			return err
		}
		l.Topics, err = pd.GetStringArray()
		return err
	}

Encode, Decode, DecodeExact and Unmarshal turn such records into bytes and back.
Decoding never panics on malformed input: truncated buffers fail with
ErrInsufficientData and bad string payloads with ErrInvalidUTF8.

Sub-packages provide the standard message types (msgs), the TCPROS connection
header and message framing (tcpros), and the cross-implementation acceptance
harness (interop).
*/
package rosmsg

import (
	"io"
	"log"
)

// Logger is the instance of a StdLogger interface that rosmsg writes diagnostic
// events to. By default it is set to discard all log messages via io.Discard,
// but you can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[rosmsg] ", log.LstdFlags)

// StdLogger is used to log error messages.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// MaxStringLength is the default upper bound on the byte length of a decoded string.
// A length prefix above it is treated as corrupt input rather than a request to
// allocate that much memory. Config.Decoder.MaxStringLength overrides it per Codec.
var MaxStringLength = 100 * 1024 * 1024

// MaxArrayLength is the default upper bound on the element count of a decoded array.
var MaxArrayLength = 100 * 1024 * 1024

// MaxEmptyArrayLength is the default upper bound on the element count of an array
// whose elements encode to zero bytes, such as std_msgs/Empty[]. Those elements cost
// no input, so the count is all that limits the allocation.
var MaxEmptyArrayLength = 64 * 1024

// MaxChunkSize is the default upper bound on the uncompressed size a Chunk may
// declare. It is checked before anything is decompressed.
var MaxChunkSize = 100 * 1024 * 1024
