package interop

import (
	"fmt"
	"io"

	"github.com/rostygo/rosmsg"
)

// Verify decodes buf as a T, requiring every byte to be consumed, and compares
// the result with expected field by field.
func Verify[T any, PT interface {
	*T
	Fielder
}](buf []byte, expected PT) error {
	var actual T
	if err := rosmsg.DecodeExact(buf, PT(&actual)); err != nil {
		return fmt.Errorf("interop: decoding %s: %w", expected.Descriptor().Type, err)
	}
	if err := CompareFields(expected, PT(&actual)); err != nil {
		rosmsg.Logger.Printf("interop/verify %s mismatch: %v\n", expected.Descriptor().Type, err)
		return err
	}
	return nil
}

// WriteReference writes the encoding of ReferenceLog to w.
func WriteReference(w io.Writer) error {
	buf, err := rosmsg.Encode(ReferenceLog())
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// VerifyReference reads everything from r and checks that it is the encoding of
// ReferenceLog.
func VerifyReference(r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return Verify(buf, ReferenceLog())
}
