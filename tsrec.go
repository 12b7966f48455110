// Package tsrec accumulates time-stamped telemetry samples under named
// resource paths and serializes them into a compact, delta-compressed CBOR
// container bounded by a fixed buffer size, ready for compressed delivery to
// a remote management server.
//
// # Core Features
//
//   - Typed samples (int32, float64, bool, string) keyed by resource path
//   - Shared index of unique, ascending timestamps across all resources
//   - Delta encoding of timestamps and numeric values with per-resource
//     scaling factors
//   - Bounded encode buffer with transactional rollback: a record never
//     holds samples it cannot encode
//   - Deflate/Zstd/S2/LZ4 compression of the encoded container on push
//
// # Basic Usage
//
//	rec, _ := tsrec.New()
//
//	_ = rec.AddInt("machine/engine/rpm", 2400, 1000)
//	_ = rec.AddFloat("machine/engine/temp", 88.5, 1000)
//	_ = rec.AddInt("machine/engine/rpm", 2410, 2000)
//
//	pusher, _ := tsrec.NewPusher(sender)
//	err := pusher.Push(ctx, rec, func(err error) {
//	    // delivery outcome, exactly once per Push
//	})
//
// Samples that would overflow the encode buffer are rejected with
// errs.ErrRecordFull and rolled back; the caller should push the record and
// retry, or drop the sample.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the record
// package. For fine-grained control (buffer size, factors, compression,
// logging), use the record package directly.
package tsrec

import (
	"github.com/arloliu/tsrec/internal/hash"
	"github.com/arloliu/tsrec/record"
)

// New creates an empty telemetry record with default settings: a
// wire.MaxEncodedSize encode buffer and a timestamp factor of 1.
//
// Available options:
//   - record.WithBufferSize(bytes)
//   - record.WithTimestampFactor(factor)
func New(opts ...record.Option) (*record.Record, error) {
	return record.New(opts...)
}

// NewPusher creates a pusher that compresses encoded records with deflate
// (the management server default) and delivers them through sender.
//
// Available options:
//   - record.WithCompression(format.CompressionDeflate|Zstd|S2|LZ4|None)
//   - record.WithLogger(zerolog.Logger)
func NewPusher(sender record.Sender, opts ...record.PusherOption) (*record.Pusher, error) {
	return record.NewPusher(sender, opts...)
}

// ResourceID converts a resource path to its 64-bit xxHash64 identifier,
// the key records use internally for column lookup. Applications that index
// resources by ID can use it to stay consistent with tsrec.
func ResourceID(path string) uint64 {
	return hash.ID(path)
}
