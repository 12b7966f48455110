// Package compress provides the compression codecs applied to encoded record
// containers before they are handed to the transport.
//
// The default push path uses Deflate at best compression, which is what the
// remote management server expects. The remaining codecs (Zstd, S2, LZ4,
// NoOp) are available for transports that negotiate their own content
// encoding or for local persistence of encoded records.
//
// All codecs are safe for concurrent use; implementations that keep internal
// state pool it per operation.
package compress
