package rosmsg

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInsufficientData is returned when decoding and the input is truncated: fewer
// bytes remain than a fixed-size primitive, a declared string length or a declared
// array element requires. In a streaming context it means "wait for more data".
var ErrInsufficientData = errors.New("rosmsg: insufficient data to decode message, more bytes expected")

// ErrInvalidUTF8 is returned when a string payload of correct declared length is not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("rosmsg: string payload is not valid UTF-8")

// ErrTrailingData is returned by DecodeExact when bytes remain after the record.
var ErrTrailingData = errors.New("rosmsg: unread bytes remain after decoding")

// PacketEncodingError is returned from a failure while encoding a record. This can
// only happen for in-memory values the wire format cannot represent, for example a
// string that is not valid UTF-8 or longer than 2^32-1 bytes.
type PacketEncodingError struct {
	Info string
}

func (err PacketEncodingError) Error() string {
	return fmt.Sprintf("rosmsg: error encoding message (%s)", err.Info)
}

// PacketDecodingError is returned when there was an error (other than truncated data)
// decoding a buffer. This can be a length above the configured limits, a bad frame
// length or an unknown compression codec.
type PacketDecodingError struct {
	Info string
}

func (err PacketDecodingError) Error() string {
	return fmt.Sprintf("rosmsg: error decoding message (%s)", err.Info)
}

var (
	errInvalidStringLength = PacketDecodingError{"invalid string length"}
	errInvalidArrayLength  = PacketDecodingError{"invalid array length"}
	errInvalidChunkSize    = PacketDecodingError{"invalid chunk size"}
	errZeroLengthRecord    = PacketDecodingError{"zero-length record in chunk"}
)

// ConfigurationError is the type of error returned from a constructor (e.g. NewCodec)
// when the specified configuration is invalid.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "rosmsg: invalid configuration (" + string(err) + ")"
}

type sentinelError struct {
	sentinel error
	wrapped  error
}

func (err sentinelError) Error() string {
	if err.wrapped != nil {
		return fmt.Sprintf("%s: %v", err.sentinel, err.wrapped)
	}
	return err.sentinel.Error()
}

func (err sentinelError) Is(target error) bool {
	return errors.Is(err.sentinel, target) || errors.Is(err.wrapped, target)
}

func (err sentinelError) Unwrap() error {
	return err.wrapped
}

// Wrap attaches one or more causes to a sentinel error so that errors.Is matches
// both the sentinel and every cause.
func Wrap(sentinel error, wrapped ...error) error {
	return sentinelError{sentinel: sentinel, wrapped: multiError(wrapped...)}
}

// multiError folds errs into one error. A single cause is returned as is so it
// prints without the multierror list formatting.
func multiError(errs ...error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil && len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result.ErrorOrNil()
}
