package record

import (
	"fmt"

	"github.com/arloliu/tsrec/errs"
	"github.com/arloliu/tsrec/format"
	"github.com/arloliu/tsrec/internal/pool"
	"github.com/arloliu/tsrec/wire"
)

// encode refreshes the cached container bytes if the record changed since
// the last encode. Encoding never mutates the sample store, so a failed
// attempt leaves the record intact.
//
// Returns errs.ErrRecordFull when the container exceeds the buffer bound and
// errs.ErrEncodingFault on any other serialization failure.
func (r *Record) encode() error {
	if r.encodedValid {
		return nil
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	if err := wire.MarshalTo(buf, r.buildContainer()); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrEncodingFault, err)
	}

	if buf.Len() > r.limit {
		return fmt.Errorf("%w: encoded size %d exceeds %d bytes", errs.ErrRecordFull, buf.Len(), r.limit)
	}

	r.encoded = append(r.encoded[:0], buf.Bytes()...)
	r.encodedValid = true

	return nil
}

// buildContainer assembles the wire container for the current state.
//
// The sample array is row-major: each unique timestamp contributes one
// encoded timestamp followed by one entry per column. Timestamps are delta
// encoded against the previous row; numeric values are delta encoded against
// the same column's value at the previous row, substituting 0 when that row
// had no value for the column. A column with no value at the current row
// emits its type default instead, without consulting history.
func (r *Record) buildContainer() *wire.Container {
	colCount := len(r.columns)

	header := make([]string, colCount)
	factors := make([]float64, colCount+1)
	factors[0] = r.tsFactor
	for i, col := range r.columns {
		header[i] = col.name
		factors[i+1] = col.factor
	}

	samples := make([]any, 0, r.timestamps.count()*(colCount+1))

	var prevTS uint64
	firstRow := true
	for _, ts := range r.timestamps.entries {
		samples = append(samples, r.encodeTimestamp(ts, prevTS, firstRow))
		for _, col := range r.columns {
			samples = append(samples, encodeValue(col, ts, prevTS, firstRow))
		}
		prevTS = ts
		firstRow = false
	}

	return &wire.Container{H: header, F: factors, S: samples}
}

// encodeTimestamp emits the scaled timestamp for a row: the full value for
// the first row, the delta from the previous row afterwards.
func (r *Record) encodeTimestamp(ts, prevTS uint64, firstRow bool) uint64 {
	if firstRow {
		return uint64(float64(ts) * r.tsFactor)
	}

	return uint64(float64(ts-prevTS) * r.tsFactor)
}

// encodeValue emits the sample array entry for one column at one row.
//
// Deltas reference the row immediately above in timestamp order, not the
// column's own previous sample: a value following a gap is encoded against
// the 0 stand-in, and the gap row itself carried the type default. This
// asymmetry is part of the server contract.
func encodeValue(col *column, ts, prevTS uint64, firstRow bool) any {
	v, ok := col.at(ts)
	if !ok {
		return defaultValue(col.kind)
	}

	switch col.kind {
	case format.TypeInt:
		if firstRow {
			return int64(float64(v.intVal) * col.factor)
		}
		var prev int32
		if pv, ok := col.at(prevTS); ok {
			prev = pv.intVal
		}

		return int64(float64(v.intVal-prev) * col.factor)

	case format.TypeFloat:
		if firstRow {
			return v.floatVal * col.factor
		}
		var prev float64
		if pv, ok := col.at(prevTS); ok {
			prev = pv.floatVal
		}

		return (v.floatVal - prev) * col.factor

	case format.TypeBool:
		return v.boolVal

	case format.TypeString:
		return v.strVal

	default:
		// Unreachable: column kinds are fixed at creation.
		return nil
	}
}

// defaultValue is the placeholder emitted for a row where the column has no
// sample: 0 / 0.0 / false / "".
func defaultValue(kind format.ValueType) any {
	switch kind {
	case format.TypeInt:
		return int64(0)
	case format.TypeFloat:
		return float64(0)
	case format.TypeBool:
		return false
	case format.TypeString:
		return ""
	default:
		return nil
	}
}
