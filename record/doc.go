// Package record implements the telemetry accumulation and delta-encoding
// core of tsrec.
//
// A Record accumulates typed samples (int32, float64, bool, string) under
// named resource paths, keyed by a shared sequence of unique ascending
// timestamps. Every mutation re-encodes the record into the bounded CBOR
// container described in the wire package; a sample that would not fit is
// rolled back and reported as errs.ErrRecordFull, so a record is always
// encodable in its committed state.
//
// # Accumulation Workflow
//
//	rec, _ := record.New()
//	_ = rec.AddInt("machine/engine/rpm", 2400, 1000)
//	_ = rec.AddFloat("machine/engine/temp", 88.5, 1000)
//	_ = rec.AddInt("machine/engine/rpm", 2410, 2000)
//
//	pusher, _ := record.NewPusher(sender)
//	_ = pusher.Push(ctx, rec, func(err error) {
//	    // delivery outcome, reported exactly once per Push
//	})
//
// A successful push resets the record so the next accumulation cycle starts
// empty; a failed push leaves it untouched for an identical retry.
//
// Note: a Record is NOT thread-safe. It is owned by a single accumulation
// session, and the caller is responsible for serializing mutations and
// pushes on the same record.
package record
