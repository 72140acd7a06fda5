package rosmsg

import (
	"fmt"
	"strings"

	"github.com/rcrowley/go-metrics"
)

// Metric names recorded by a Codec. Each is also recorded per message type with a
// "-for-type-<type>" suffix when the record implements Message.
const (
	metricEncodedBytes     = "encoded-bytes"
	metricDecodedBytes     = "decoded-bytes"
	metricDecodeErrors     = "decode-errors"
	metricRecordSize       = "record-size"
	metricCompressionRatio = "compression-ratio"
)

func getOrRegisterHistogram(name string, r metrics.Registry) metrics.Histogram {
	return r.GetOrRegister(name, func() metrics.Histogram {
		return metrics.NewHistogram(metrics.NewExpDecaySample(1028, 0.015))
	}).(metrics.Histogram)
}

func getMetricNameForType(name string, msgType string) string {
	// Convert dot and slash to underscore since reporters commonly split on them
	return fmt.Sprintf(name+"-for-type-%s", strings.NewReplacer(".", "_", "/", "_").Replace(msgType))
}

func getOrRegisterTypeMeter(name string, msgType string, r metrics.Registry) metrics.Meter {
	return metrics.GetOrRegisterMeter(getMetricNameForType(name, msgType), r)
}

func getOrRegisterTypeHistogram(name string, msgType string, r metrics.Registry) metrics.Histogram {
	return getOrRegisterHistogram(getMetricNameForType(name, msgType), r)
}

// markMeter marks the global meter and, for messages, the per-type one.
func markMeter(r metrics.Registry, name string, v any, n int64) {
	if r == nil {
		return
	}
	metrics.GetOrRegisterMeter(name, r).Mark(n)
	if msg, ok := v.(Message); ok {
		getOrRegisterTypeMeter(name, msg.Descriptor().Type, r).Mark(n)
	}
}

func updateHistogram(r metrics.Registry, name string, v any, n int64) {
	if r == nil {
		return
	}
	getOrRegisterHistogram(name, r).Update(n)
	if msg, ok := v.(Message); ok {
		getOrRegisterTypeHistogram(name, msg.Descriptor().Type, r).Update(n)
	}
}
