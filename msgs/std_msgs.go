package msgs

import "github.com/rostygo/rosmsg"

// HeaderDescriptor describes std_msgs/Header.
var HeaderDescriptor = &rosmsg.Descriptor{
	Type: "std_msgs/Header",
	Fields: []rosmsg.Field{
		{Name: "seq", Type: rosmsg.TypeUint32},
		{Name: "stamp", Type: rosmsg.TypeTime},
		{Name: "frame_id", Type: rosmsg.TypeString},
	},
}

// Header is std_msgs/Header: standard metadata for higher-level stamped data types.
type Header struct {
	// sequence ID: consecutively increasing ID
	Seq     uint32
	Stamp   rosmsg.Time
	FrameID string
}

func (h *Header) Descriptor() *rosmsg.Descriptor {
	return HeaderDescriptor
}

func (h *Header) Encode(pe rosmsg.PacketEncoder) error {
	pe.PutUint32(h.Seq)
	if err := h.Stamp.Encode(pe); err != nil {
		return err
	}
	return pe.PutString(h.FrameID)
}

func (h *Header) Decode(pd rosmsg.PacketDecoder) (err error) {
	if h.Seq, err = pd.GetUint32(); err != nil {
		return err
	}
	if err = h.Stamp.Decode(pd); err != nil {
		return err
	}
	h.FrameID, err = pd.GetString()
	return err
}

func (h *Header) FieldValues() []any {
	return []any{h.Seq, h.Stamp, h.FrameID}
}

// StringDescriptor describes std_msgs/String.
var StringDescriptor = &rosmsg.Descriptor{
	Type: "std_msgs/String",
	Fields: []rosmsg.Field{
		{Name: "data", Type: rosmsg.TypeString},
	},
}

// String is std_msgs/String.
type String struct {
	Data string
}

func (s *String) Descriptor() *rosmsg.Descriptor {
	return StringDescriptor
}

func (s *String) Encode(pe rosmsg.PacketEncoder) error {
	return pe.PutString(s.Data)
}

func (s *String) Decode(pd rosmsg.PacketDecoder) (err error) {
	s.Data, err = pd.GetString()
	return err
}

func (s *String) FieldValues() []any {
	return []any{s.Data}
}

// EmptyDescriptor describes std_msgs/Empty.
var EmptyDescriptor = &rosmsg.Descriptor{Type: "std_msgs/Empty"}

// Empty is std_msgs/Empty. It encodes to zero bytes.
type Empty struct{}

func (e *Empty) Descriptor() *rosmsg.Descriptor {
	return EmptyDescriptor
}

func (e *Empty) Encode(pe rosmsg.PacketEncoder) error {
	return nil
}

func (e *Empty) Decode(pd rosmsg.PacketDecoder) error {
	return nil
}

func (e *Empty) FieldValues() []any {
	return []any{}
}
