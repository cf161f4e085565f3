package wifiimport

import (
	"errors"
	"io"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
)

// Batcher groups an already-validated record stream into fixed-size chunks
// for bulk writes, bounding peak memory and transaction size. Pure
// grouping: no I/O, no validation, single pass in input order.
type Batcher struct {
	next func() (wifi.WifiPoint, error)
	size int
}

// NewBatcher wraps next, which must return io.EOF once the stream is
// drained. size must be positive.
func NewBatcher(next func() (wifi.WifiPoint, error), size int) (*Batcher, error) {
	if size < 1 {
		return nil, errors.New("batch size must be positive")
	}
	return &Batcher{next: next, size: size}, nil
}

// NextChunk returns the next chunk. The final chunk may be shorter than the
// configured size but is always emitted. Returns io.EOF once the source is
// exhausted; any other source error passes through as-is.
func (b *Batcher) NextChunk() ([]wifi.WifiPoint, error) {
	chunk := make([]wifi.WifiPoint, 0, b.size)
	for len(chunk) < b.size {
		rec, err := b.next()
		if err == io.EOF {
			if len(chunk) == 0 {
				return nil, io.EOF
			}
			return chunk, nil
		}
		if err != nil {
			return nil, err
		}
		chunk = append(chunk, rec)
	}
	return chunk, nil
}
