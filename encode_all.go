package rosmsg

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodeAll encodes independent records in parallel and returns their encodings in
// input order. It stops at the first failure or when ctx is done.
func (c *Codec) EncodeAll(ctx context.Context, records []Encoder) ([][]byte, error) {
	out := make([][]byte, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range records {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := c.Encode(records[i])
			if err != nil {
				return err
			}
			out[i] = buf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeAll encodes records in parallel with the default codec.
func EncodeAll(ctx context.Context, records []Encoder) ([][]byte, error) {
	return defaultCodec.EncodeAll(ctx, records)
}
