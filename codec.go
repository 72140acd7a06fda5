package rosmsg

import "github.com/rcrowley/go-metrics"

// Codec encodes and decodes records with the limits and metrics of one Config.
// A Codec holds no per-call state and is safe for concurrent use.
type Codec struct {
	conf *Config
}

// defaultCodec backs the package-level helpers: package limits, no metrics.
var defaultCodec = &Codec{conf: &Config{}}

// NewCodec creates a Codec from conf. A nil conf means NewConfig().
func NewCodec(conf *Config) (*Codec, error) {
	if conf == nil {
		conf = NewConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Codec{conf: conf}, nil
}

// Config returns the configuration the codec was built with.
func (c *Codec) Config() *Config {
	return c.conf
}

func (c *Codec) registry() metrics.Registry {
	return c.conf.MetricRegistry
}

// Encode turns e into a newly allocated byte slice.
func (c *Codec) Encode(e Encoder) ([]byte, error) {
	return c.AppendEncode(nil, e)
}

// AppendEncode appends the encoding of e to dst, growing it as needed. On error
// dst is returned unchanged.
func (c *Codec) AppendEncode(dst []byte, e Encoder) ([]byte, error) {
	start := len(dst)
	out, err := encode(e, dst, c.registry())
	if err != nil {
		return dst, err
	}
	size := int64(len(out) - start)
	markMeter(c.registry(), metricEncodedBytes, e, size)
	updateHistogram(c.registry(), metricRecordSize, e, size)
	return out, nil
}

// Decode fills d from the start of buf, ignoring trailing bytes.
func (c *Codec) Decode(buf []byte, d Decoder) error {
	_, err := c.DecodePrefix(buf, d)
	return err
}

// DecodeExact fills d from buf and fails with ErrTrailingData unless d consumed
// every byte.
func (c *Codec) DecodeExact(buf []byte, d Decoder) error {
	n, err := c.DecodePrefix(buf, d)
	if err != nil {
		return err
	}
	if n != len(buf) {
		markMeter(c.registry(), metricDecodeErrors, d, 1)
		return ErrTrailingData
	}
	return nil
}

// DecodePrefix fills d from the start of buf and returns the number of bytes
// consumed.
func (c *Codec) DecodePrefix(buf []byte, d Decoder) (int, error) {
	n, err := decode(buf, d, c.conf)
	if err != nil {
		markMeter(c.registry(), metricDecodeErrors, d, 1)
		return n, err
	}
	markMeter(c.registry(), metricDecodedBytes, d, int64(n))
	return n, nil
}
