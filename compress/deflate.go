package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// DeflateCompressor provides zlib deflate compression at best-compression
// level.
//
// This is the codec the management server expects on the push path: encoded
// record containers are small (bounded by wire.MaxEncodedSize) and highly
// repetitive, so ratio matters far more than speed here.
type DeflateCompressor struct{}

var _ Codec = (*DeflateCompressor)(nil)

// deflateWriterPool pools zlib writers for reuse. The writer's Reset rebinds
// it to a new destination without reallocating its internal state.
var deflateWriterPool = sync.Pool{
	New: func() any {
		w, err := zlib.NewWriterLevel(io.Discard, zlib.BestCompression)
		if err != nil {
			// BestCompression is a valid level; this cannot happen.
			panic(fmt.Sprintf("failed to create zlib writer for pool: %v", err))
		}
		return w
	},
}

// NewDeflateCompressor creates a new deflate codec.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{}
}

// Compress compresses the input data into a zlib stream.
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w, _ := deflateWriterPool.Get().(*zlib.Writer)
	defer deflateWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream produced by Compress.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}

	return decompressed, nil
}
