package tcpros

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rostygo/rosmsg"
)

// Well-known connection header fields.
const (
	FieldType              = "type"
	FieldMD5Sum            = "md5sum"
	FieldMessageDefinition = "message_definition"
	FieldCallerID          = "callerid"
	FieldTopic             = "topic"
	FieldService           = "service"
	FieldLatching          = "latching"
	FieldTCPNoDelay        = "tcp_nodelay"
	FieldError             = "error"
)

// AnyMD5Sum in the md5sum field accepts any message type.
const AnyMD5Sum = "*"

// Header is a TCPROS connection header. On the wire it is a uint32 total length
// followed by one uint32-prefixed "key=value" entry per field. Entries are
// written in key order so equal headers encode to equal bytes.
type Header map[string]string

// NewHeader returns the header a peer sends for messages described by d, with
// extra fields (callerid, topic, ...) merged in.
func NewHeader(d *rosmsg.Descriptor, extra Header) Header {
	h := Header{
		FieldType:              d.Type,
		FieldMD5Sum:            d.MD5Sum(),
		FieldMessageDefinition: d.Definition(),
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

func (h Header) Encode(pe rosmsg.PacketEncoder) error {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pe.Push(&rosmsg.LengthField{})
	for _, k := range keys {
		if err := pe.PutBytes([]byte(k + "=" + h[k])); err != nil {
			return err
		}
	}
	return pe.Pop()
}

func (h *Header) Decode(pd rosmsg.PacketDecoder) error {
	n, err := pd.GetUint32()
	if err != nil {
		return err
	}
	if uint64(n) > uint64(pd.Remaining()) {
		return rosmsg.ErrInsufficientData
	}
	fields, err := pd.GetSubset(int(n))
	if err != nil {
		return err
	}

	decoded := make(Header)
	for fields.Remaining() > 0 {
		entry, err := fields.GetBytes()
		if err != nil {
			return err
		}
		key, value, ok := bytes.Cut(entry, []byte("="))
		if !ok {
			return rosmsg.PacketDecodingError{Info: fmt.Sprintf("connection header entry %q has no '='", entry)}
		}
		decoded[string(key)] = string(value)
	}
	*h = decoded
	return nil
}

// MatchField checks that the header carries field with the expected value.
func MatchField(h Header, field, expected string) error {
	actual, ok := h[field]
	if !ok {
		return fmt.Errorf("tcpros: missing field %s", field)
	}
	if actual != expected {
		rosmsg.Logger.Printf("tcpros/header %s mismatch: expected %q, got %q\n", field, expected, actual)
		return fmt.Errorf("tcpros: header mismatch expected '%s', got '%s'", expected, actual)
	}
	return nil
}

// MatchMessage checks that a peer's header describes the same message type as d.
// An md5sum of "*" matches any type.
func MatchMessage(h Header, d *rosmsg.Descriptor) error {
	if h[FieldMD5Sum] == AnyMD5Sum {
		return nil
	}
	if err := MatchField(h, FieldType, d.Type); err != nil {
		return err
	}
	return MatchField(h, FieldMD5Sum, d.MD5Sum())
}

// ResolveHeader finds the registered descriptor for the type a peer announced and
// checks its MD5 sum.
func ResolveHeader(h Header) (*rosmsg.Descriptor, error) {
	msgType, ok := h[FieldType]
	if !ok {
		return nil, fmt.Errorf("tcpros: missing field %s", FieldType)
	}
	d, ok := rosmsg.LookupDescriptor(msgType)
	if !ok {
		return nil, fmt.Errorf("tcpros: unknown message type %s", msgType)
	}
	if err := MatchMessage(h, d); err != nil {
		return nil, err
	}
	return d, nil
}
