package msgs

import "github.com/rostygo/rosmsg"

// Log severity levels.
const (
	LogDebug int8 = 1
	LogInfo  int8 = 2
	LogWarn  int8 = 4
	LogError int8 = 8
	LogFatal int8 = 16
)

// LogDescriptor describes rosgraph_msgs/Log.
var LogDescriptor = &rosmsg.Descriptor{
	Type: "rosgraph_msgs/Log",
	Constants: []rosmsg.Constant{
		{Name: "DEBUG", Type: rosmsg.TypeByte, Value: "1"},
		{Name: "INFO", Type: rosmsg.TypeByte, Value: "2"},
		{Name: "WARN", Type: rosmsg.TypeByte, Value: "4"},
		{Name: "ERROR", Type: rosmsg.TypeByte, Value: "8"},
		{Name: "FATAL", Type: rosmsg.TypeByte, Value: "16"},
	},
	Fields: []rosmsg.Field{
		{Name: "header", Type: rosmsg.RecordOf(HeaderDescriptor)},
		{Name: "level", Type: rosmsg.TypeByte},
		{Name: "name", Type: rosmsg.TypeString},
		{Name: "msg", Type: rosmsg.TypeString},
		{Name: "file", Type: rosmsg.TypeString},
		{Name: "function", Type: rosmsg.TypeString},
		{Name: "line", Type: rosmsg.TypeUint32},
		{Name: "topics", Type: rosmsg.ArrayOf(rosmsg.TypeString)},
	},
}

// Log is rosgraph_msgs/Log, the message nodes publish on /rosout.
type Log struct {
	Header   Header
	Level    int8
	Name     string
	Msg      string
	File     string
	Function string
	Line     uint32
	Topics   []string
}

func (l *Log) Descriptor() *rosmsg.Descriptor {
	return LogDescriptor
}

func (l *Log) Encode(pe rosmsg.PacketEncoder) error {
	if err := l.Header.Encode(pe); err != nil {
		return err
	}
	pe.PutInt8(l.Level)
	for _, s := range []string{l.Name, l.Msg, l.File, l.Function} {
		if err := pe.PutString(s); err != nil {
			return err
		}
	}
	pe.PutUint32(l.Line)
	return pe.PutStringArray(l.Topics)
}

func (l *Log) Decode(pd rosmsg.PacketDecoder) (err error) {
	if err = l.Header.Decode(pd); err != nil {
		return err
	}
	if l.Level, err = pd.GetInt8(); err != nil {
		return err
	}
	for _, s := range []*string{&l.Name, &l.Msg, &l.File, &l.Function} {
		if *s, err = pd.GetString(); err != nil {
			return err
		}
	}
	if l.Line, err = pd.GetUint32(); err != nil {
		return err
	}
	l.Topics, err = pd.GetStringArray()
	return err
}

func (l *Log) FieldValues() []any {
	return []any{&l.Header, l.Level, l.Name, l.Msg, l.File, l.Function, l.Line, l.Topics}
}

// ClockDescriptor describes rosgraph_msgs/Clock.
var ClockDescriptor = &rosmsg.Descriptor{
	Type: "rosgraph_msgs/Clock",
	Fields: []rosmsg.Field{
		{Name: "clock", Type: rosmsg.TypeTime},
	},
}

// Clock is rosgraph_msgs/Clock, published on /clock when simulated time is in use.
type Clock struct {
	Clock rosmsg.Time
}

func (c *Clock) Descriptor() *rosmsg.Descriptor {
	return ClockDescriptor
}

func (c *Clock) Encode(pe rosmsg.PacketEncoder) error {
	return c.Clock.Encode(pe)
}

func (c *Clock) Decode(pd rosmsg.PacketDecoder) error {
	return c.Clock.Decode(pd)
}

func (c *Clock) FieldValues() []any {
	return []any{c.Clock}
}
