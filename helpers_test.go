package rosmsg

import (
	"bytes"
	"testing"
)

// logRecord is the literal cross-implementation scenario.
type logRecord struct {
	Name   string
	Level  uint8
	Msg    string
	Topics []string
}

var logRecordDescriptor = &Descriptor{
	Type: "test_msgs/Log",
	Fields: []Field{
		{Name: "name", Type: TypeString},
		{Name: "level", Type: TypeUint8},
		{Name: "msg", Type: TypeString},
		{Name: "topics", Type: ArrayOf(TypeString)},
	},
}

func (l *logRecord) Descriptor() *Descriptor { return logRecordDescriptor }

func (l *logRecord) Encode(pe PacketEncoder) error {
	if err := pe.PutString(l.Name); err != nil {
		return err
	}
	pe.PutUint8(l.Level)
	if err := pe.PutString(l.Msg); err != nil {
		return err
	}
	return pe.PutStringArray(l.Topics)
}

func (l *logRecord) Decode(pd PacketDecoder) (err error) {
	if l.Name, err = pd.GetString(); err != nil {
		return err
	}
	if l.Level, err = pd.GetUint8(); err != nil {
		return err
	}
	if l.Msg, err = pd.GetString(); err != nil {
		return err
	}
	l.Topics, err = pd.GetStringArray()
	return err
}

var (
	logRecordValue = logRecord{
		Name:   "Test",
		Level:  1,
		Msg:    "This is a test",
		Topics: []string{"Topic1", "Topic2"},
	}

	logRecordBytes = []byte{
		0x04, 0x00, 0x00, 0x00, 'T', 'e', 's', 't',
		0x01,
		0x0E, 0x00, 0x00, 0x00, 'T', 'h', 'i', 's', ' ', 'i', 's', ' ', 'a', ' ', 't', 'e', 's', 't',
		0x02, 0x00, 0x00, 0x00,
		0x06, 0x00, 0x00, 0x00, 'T', 'o', 'p', 'i', 'c', '1',
		0x06, 0x00, 0x00, 0x00, 'T', 'o', 'p', 'i', 'c', '2',
	}
)

type point struct {
	X, Y float64
}

var pointDescriptor = &Descriptor{
	Type: "test_msgs/Point",
	Fields: []Field{
		{Name: "x", Type: TypeFloat64},
		{Name: "y", Type: TypeFloat64},
	},
}

func (p *point) Descriptor() *Descriptor { return pointDescriptor }

func (p *point) Encode(pe PacketEncoder) error {
	pe.PutFloat64(p.X)
	pe.PutFloat64(p.Y)
	return nil
}

func (p *point) Decode(pd PacketDecoder) (err error) {
	if p.X, err = pd.GetFloat64(); err != nil {
		return err
	}
	p.Y, err = pd.GetFloat64()
	return err
}

// kitchenSink holds one field of every kind.
type kitchenSink struct {
	Flag    bool
	I8      int8
	I16     int16
	I32     int32
	I64     int64
	U8      uint8
	U16     uint16
	U32     uint32
	U64     uint64
	F32     float32
	F64     float64
	Text    string
	Stamp   Time
	Elapsed Duration
	Data    []byte
	Samples []int32
	Names   []string
	Path    []point
	Grid    [][]int16
}

var kitchenSinkDescriptor = &Descriptor{
	Type: "test_msgs/KitchenSink",
	Fields: []Field{
		{Name: "flag", Type: TypeBool},
		{Name: "i8", Type: TypeInt8},
		{Name: "i16", Type: TypeInt16},
		{Name: "i32", Type: TypeInt32},
		{Name: "i64", Type: TypeInt64},
		{Name: "u8", Type: TypeUint8},
		{Name: "u16", Type: TypeUint16},
		{Name: "u32", Type: TypeUint32},
		{Name: "u64", Type: TypeUint64},
		{Name: "f32", Type: TypeFloat32},
		{Name: "f64", Type: TypeFloat64},
		{Name: "text", Type: TypeString},
		{Name: "stamp", Type: TypeTime},
		{Name: "elapsed", Type: TypeDuration},
		{Name: "data", Type: ArrayOf(TypeUint8)},
		{Name: "samples", Type: ArrayOf(TypeInt32)},
		{Name: "names", Type: ArrayOf(TypeString)},
		{Name: "path", Type: ArrayOf(RecordOf(pointDescriptor))},
		{Name: "grid", Type: ArrayOf(ArrayOf(TypeInt16))},
	},
}

func (k *kitchenSink) Descriptor() *Descriptor { return kitchenSinkDescriptor }

func (k *kitchenSink) Encode(pe PacketEncoder) error {
	pe.PutBool(k.Flag)
	pe.PutInt8(k.I8)
	pe.PutInt16(k.I16)
	pe.PutInt32(k.I32)
	pe.PutInt64(k.I64)
	pe.PutUint8(k.U8)
	pe.PutUint16(k.U16)
	pe.PutUint32(k.U32)
	pe.PutUint64(k.U64)
	pe.PutFloat32(k.F32)
	pe.PutFloat64(k.F64)
	if err := pe.PutString(k.Text); err != nil {
		return err
	}
	if err := k.Stamp.Encode(pe); err != nil {
		return err
	}
	if err := k.Elapsed.Encode(pe); err != nil {
		return err
	}
	if err := pe.PutBytes(k.Data); err != nil {
		return err
	}
	if err := pe.PutInt32Array(k.Samples); err != nil {
		return err
	}
	if err := pe.PutStringArray(k.Names); err != nil {
		return err
	}
	path := make([]*point, len(k.Path))
	for i := range k.Path {
		path[i] = &k.Path[i]
	}
	if err := PutRecordArray(pe, path); err != nil {
		return err
	}
	return PutArray(pe, k.Grid, func(pe PacketEncoder, row []int16) error {
		return PutArray(pe, row, PutInt16Elem)
	})
}

func (k *kitchenSink) Decode(pd PacketDecoder) (err error) {
	if k.Flag, err = pd.GetBool(); err != nil {
		return err
	}
	if k.I8, err = pd.GetInt8(); err != nil {
		return err
	}
	if k.I16, err = pd.GetInt16(); err != nil {
		return err
	}
	if k.I32, err = pd.GetInt32(); err != nil {
		return err
	}
	if k.I64, err = pd.GetInt64(); err != nil {
		return err
	}
	if k.U8, err = pd.GetUint8(); err != nil {
		return err
	}
	if k.U16, err = pd.GetUint16(); err != nil {
		return err
	}
	if k.U32, err = pd.GetUint32(); err != nil {
		return err
	}
	if k.U64, err = pd.GetUint64(); err != nil {
		return err
	}
	if k.F32, err = pd.GetFloat32(); err != nil {
		return err
	}
	if k.F64, err = pd.GetFloat64(); err != nil {
		return err
	}
	if k.Text, err = pd.GetString(); err != nil {
		return err
	}
	if err = k.Stamp.Decode(pd); err != nil {
		return err
	}
	if err = k.Elapsed.Decode(pd); err != nil {
		return err
	}
	if k.Data, err = pd.GetBytes(); err != nil {
		return err
	}
	if k.Samples, err = pd.GetInt32Array(); err != nil {
		return err
	}
	if k.Names, err = pd.GetStringArray(); err != nil {
		return err
	}
	if k.Path, err = GetRecordArray[point](pd); err != nil {
		return err
	}
	k.Grid, err = GetArray(pd, func(pd PacketDecoder) ([]int16, error) {
		return GetArray(pd, GetInt16Elem)
	})
	return err
}

func newKitchenSink() *kitchenSink {
	return &kitchenSink{
		Flag:    true,
		I8:      -2,
		I16:     -300,
		I32:     -70000,
		I64:     -1 << 40,
		U8:      0xFE,
		U16:     0xBEEF,
		U32:     0xDEADBEEF,
		U64:     1<<63 + 1,
		F32:     1.5,
		F64:     -0.25,
		Text:    "héllo",
		Stamp:   Time{Sec: 1700000000, Nsec: 123},
		Elapsed: Duration{Sec: -1, Nsec: 500000000},
		Data:    []byte{0x00, 0xFF},
		Samples: []int32{1, -1},
		Names:   []string{"", "a"},
		Path:    []point{{X: 1, Y: 2}, {X: -3, Y: 0.5}},
		Grid:    [][]int16{{1, 2}, {}, {-1}},
	}
}

func testEncodable(t *testing.T, name string, in Encoder, expect []byte) {
	t.Helper()
	packet, err := Encode(in)
	if err != nil {
		t.Error(err)
	} else if !bytes.Equal(packet, expect) {
		t.Error("Encoding", name, "failed\ngot ", packet, "\nwant", expect)
	}
}

func testDecodable(t *testing.T, name string, out Decoder, in []byte) {
	t.Helper()
	err := DecodeExact(in, out)
	if err != nil {
		t.Error("Decoding", name, "failed:", err)
	}
}
