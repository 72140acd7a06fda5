package rosmsg

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

// Config is used to pass multiple configuration options to NewCodec.
type Config struct {
	// Decoder holds the limits applied to untrusted input.
	Decoder struct {
		// The largest string, in bytes, a decode accepts. Zero means the
		// package-level MaxStringLength.
		MaxStringLength int
		// The largest array, in elements, a decode accepts. Zero means the
		// package-level MaxArrayLength.
		MaxArrayLength int
		// The largest array of zero-size elements a decode accepts. Zero means
		// the package-level MaxEmptyArrayLength.
		MaxEmptyArrayLength int
		// The largest uncompressed size a Chunk may declare. Zero means the
		// package-level MaxChunkSize.
		MaxChunkSize int
	}

	// Chunk is the configuration for ChunkBuilder.
	Chunk struct {
		// The type of compression to use on chunks (defaults to no compression).
		// Similar to `compression.codec` setting of the JVM producer.
		Compression CompressionCodec
		// The level of compression to use on chunks. The meaning depends
		// on the actual compression type used and defaults to default compression
		// level for the codec.
		CompressionLevel int
		// The number of queued records after which ChunkBuilder.Ready reports
		// true (default 100). Zero means no limit.
		MaxRecords int
	}

	// MetricRegistry is the registry to use for metrics. Defaults to a local
	// registry. If you want to disable metrics gathering, set
	// "metrics.UseNilMetrics" to "true" prior to starting the codec. See
	// Examples on how to use the metrics registry.
	MetricRegistry metrics.Registry
}

// NewConfig returns a new configuration instance with sane defaults.
func NewConfig() *Config {
	c := &Config{}

	c.Decoder.MaxStringLength = MaxStringLength
	c.Decoder.MaxArrayLength = MaxArrayLength
	c.Decoder.MaxEmptyArrayLength = MaxEmptyArrayLength
	c.Decoder.MaxChunkSize = MaxChunkSize

	c.Chunk.Compression = CompressionNone
	c.Chunk.CompressionLevel = CompressionLevelDefault
	c.Chunk.MaxRecords = 100

	c.MetricRegistry = metrics.NewRegistry()

	return c
}

// Validate checks a Config instance. It will return a
// ConfigurationError if the specified values don't make sense.
func (c *Config) Validate() error {
	// some configuration values should be warned on but not fail completely, do those first
	if c.Chunk.CompressionLevel != CompressionLevelDefault {
		switch c.Chunk.Compression {
		case CompressionNone, CompressionSnappy, CompressionLZ4:
			Logger.Println("Chunk.CompressionLevel is ignored by the", c.Chunk.Compression, "codec.")
		}
	}

	// validate the Decoder values
	switch {
	case c.Decoder.MaxStringLength < 0:
		return ConfigurationError("Decoder.MaxStringLength must be >= 0")
	case c.Decoder.MaxArrayLength < 0:
		return ConfigurationError("Decoder.MaxArrayLength must be >= 0")
	case c.Decoder.MaxEmptyArrayLength < 0:
		return ConfigurationError("Decoder.MaxEmptyArrayLength must be >= 0")
	case c.Decoder.MaxChunkSize < 0:
		return ConfigurationError("Decoder.MaxChunkSize must be >= 0")
	}

	// validate the Chunk values
	switch {
	case c.Chunk.MaxRecords < 0:
		return ConfigurationError("Chunk.MaxRecords must be >= 0")
	case !c.Chunk.Compression.valid():
		return ConfigurationError(fmt.Sprintf("Chunk.Compression is not a known codec (%d)", c.Chunk.Compression))
	case c.Chunk.Compression == CompressionGZIP &&
		c.Chunk.CompressionLevel != CompressionLevelDefault &&
		(c.Chunk.CompressionLevel < -2 || c.Chunk.CompressionLevel > 9):
		return ConfigurationError(fmt.Sprintf("Chunk.CompressionLevel %d is not valid for gzip", c.Chunk.CompressionLevel))
	}

	return nil
}

func (c *Config) maxStringLength() int {
	if c.Decoder.MaxStringLength > 0 {
		return c.Decoder.MaxStringLength
	}
	return MaxStringLength
}

func (c *Config) maxArrayLength() int {
	if c.Decoder.MaxArrayLength > 0 {
		return c.Decoder.MaxArrayLength
	}
	return MaxArrayLength
}

func (c *Config) maxEmptyArrayLength() int {
	if c.Decoder.MaxEmptyArrayLength > 0 {
		return c.Decoder.MaxEmptyArrayLength
	}
	return MaxEmptyArrayLength
}

func (c *Config) maxChunkSize() int {
	if c.Decoder.MaxChunkSize > 0 {
		return c.Decoder.MaxChunkSize
	}
	return MaxChunkSize
}
