package compress

// ZstdCompressor provides Zstandard compression for encoded record containers.
//
// Useful when the transport negotiates its own content encoding or when
// encoded records are persisted locally between push cycles. Compared to the
// default deflate codec it trades a slightly lower ratio on tiny payloads for
// much faster compression.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
