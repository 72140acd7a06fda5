package rosmsg

import "time"

const nsecPerSec = int64(time.Second)

// TimeDescriptor describes the ROS builtin time: unsigned seconds and
// nanoseconds since the epoch.
var TimeDescriptor = &Descriptor{
	Type:    "time",
	Builtin: true,
	Fields: []Field{
		{Name: "secs", Type: TypeUint32},
		{Name: "nsecs", Type: TypeUint32},
	},
}

// DurationDescriptor describes the ROS builtin duration: signed seconds and
// nanoseconds.
var DurationDescriptor = &Descriptor{
	Type:    "duration",
	Builtin: true,
	Fields: []Field{
		{Name: "secs", Type: TypeInt32},
		{Name: "nsecs", Type: TypeInt32},
	},
}

// Field types for the builtins.
var (
	TypeTime     = RecordOf(TimeDescriptor)
	TypeDuration = RecordOf(DurationDescriptor)
)

// Time is the ROS builtin time.
type Time struct {
	Sec  uint32
	Nsec uint32
}

// NewTime converts t. Instants before the epoch or after 2106 do not fit and are
// truncated to the low 32 bits of their seconds.
func NewTime(t time.Time) Time {
	ns := t.UnixNano()
	return Time{Sec: uint32(ns / nsecPerSec), Nsec: uint32(ns % nsecPerSec)}
}

// Time converts t back to a time.Time in UTC.
func (t Time) Time() time.Time {
	return time.Unix(int64(t.Sec), int64(t.Nsec)).UTC()
}

// IsZero reports whether t is the zero time, which ROS uses for "unset".
func (t Time) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}

func (t Time) Encode(pe PacketEncoder) error {
	pe.PutUint32(t.Sec)
	pe.PutUint32(t.Nsec)
	return nil
}

func (t *Time) Decode(pd PacketDecoder) (err error) {
	if t.Sec, err = pd.GetUint32(); err != nil {
		return err
	}
	t.Nsec, err = pd.GetUint32()
	return err
}

func (t *Time) Descriptor() *Descriptor {
	return TimeDescriptor
}

// Duration is the ROS builtin duration.
type Duration struct {
	Sec  int32
	Nsec int32
}

// NewDuration converts d, normalising so that 0 <= Nsec < 1e9 as ROS does.
func NewDuration(d time.Duration) Duration {
	sec := int64(d) / nsecPerSec
	nsec := int64(d) % nsecPerSec
	if nsec < 0 {
		sec--
		nsec += nsecPerSec
	}
	return Duration{Sec: int32(sec), Nsec: int32(nsec)}
}

// Duration converts d back to a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(int64(d.Sec)*nsecPerSec + int64(d.Nsec))
}

func (d Duration) Encode(pe PacketEncoder) error {
	pe.PutInt32(d.Sec)
	pe.PutInt32(d.Nsec)
	return nil
}

func (d *Duration) Decode(pd PacketDecoder) (err error) {
	if d.Sec, err = pd.GetInt32(); err != nil {
		return err
	}
	d.Nsec, err = pd.GetInt32()
	return err
}

func (d *Duration) Descriptor() *Descriptor {
	return DurationDescriptor
}
