package compress

// NoOpCompressor passes data through without compression.
//
// Useful for tests, benchmark baselines, and transports that compress at a
// lower layer.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice unchanged, without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they keep the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged, without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they keep the result.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
