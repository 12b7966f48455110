package record

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/tsrec/errs"
	"github.com/arloliu/tsrec/format"
	"github.com/arloliu/tsrec/internal/hash"
	"github.com/arloliu/tsrec/internal/options"
	"github.com/arloliu/tsrec/wire"
)

const (
	// MaxPathLen is the maximum length of a resource path in bytes.
	MaxPathLen = 511

	// MaxStringLen is the maximum length of a string sample in bytes.
	MaxStringLen = 255
)

// Record is one telemetry accumulation unit: the samples gathered between
// two pushes, plus the cached encoding of that state.
//
// Columns are kept in creation order (the encoded header order) with an
// xxHash64 lookup table by path; the hash is verified against the path on
// lookup, so a collision degrades to a linear scan instead of mixing
// resources.
//
// Note: a Record is NOT thread-safe; see the package documentation.
type Record struct {
	timestamps tsIndex
	columns    []*column
	colIndex   map[uint64]int // hash.ID(path) -> index into columns

	tsFactor float64
	limit    int

	encoded      []byte
	encodedValid bool
}

// Option configures a Record at construction time.
type Option = options.Option[*Record]

// WithBufferSize bounds the encoded container size in bytes. The default is
// wire.MaxEncodedSize.
func WithBufferSize(size int) Option {
	return options.New(func(r *Record) error {
		if size <= 0 {
			return fmt.Errorf("invalid buffer size: %d", size)
		}
		r.limit = size

		return nil
	})
}

// WithTimestampFactor sets the scaling factor applied to encoded timestamp
// deltas. The default is 1.
func WithTimestampFactor(factor float64) Option {
	return options.New(func(r *Record) error {
		if !validFactor(factor) {
			return fmt.Errorf("%w: timestamp factor %v", errs.ErrInvalidFactor, factor)
		}
		r.tsFactor = factor

		return nil
	})
}

// New creates an empty Record ready for sample accumulation.
func New(opts ...Option) (*Record, error) {
	r := &Record{
		colIndex: make(map[uint64]int),
		tsFactor: 1,
		limit:    wire.MaxEncodedSize,
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// AddInt accumulates an integer sample for the given resource path.
//
// Returns:
//   - errs.ErrTypeMismatch if the path exists with a different value type
//   - errs.ErrRecordFull if the sample does not fit in the encode buffer;
//     the record is rolled back to its previous state
func (r *Record) AddInt(path string, val int32, timestamp uint64) error {
	return r.addSample(path, format.TypeInt, value{intVal: val}, timestamp)
}

// AddFloat accumulates a floating point sample for the given resource path.
// Error conditions match AddInt.
func (r *Record) AddFloat(path string, val float64, timestamp uint64) error {
	return r.addSample(path, format.TypeFloat, value{floatVal: val}, timestamp)
}

// AddBool accumulates a boolean sample for the given resource path.
// Error conditions match AddInt.
func (r *Record) AddBool(path string, val bool, timestamp uint64) error {
	return r.addSample(path, format.TypeBool, value{boolVal: val}, timestamp)
}

// AddString accumulates a string sample for the given resource path.
//
// In addition to the AddInt error conditions, values longer than
// MaxStringLen are rejected with errs.ErrValueTooLong.
func (r *Record) AddString(path string, val string, timestamp uint64) error {
	if len(val) > MaxStringLen {
		return fmt.Errorf("%w: %d bytes (max %d)", errs.ErrValueTooLong, len(val), MaxStringLen)
	}

	return r.addSample(path, format.TypeString, value{strVal: val}, timestamp)
}

// addSample runs the accumulation transaction: resolve the column, register
// the timestamp, upsert the value, then re-encode. If the encoded container
// would exceed the buffer bound, the sample is removed again (and the
// timestamp, if nothing else references it) so the record stays encodable.
func (r *Record) addSample(path string, kind format.ValueType, v value, ts uint64) error {
	col, err := r.getOrCreateColumn(path, kind)
	if err != nil {
		// Nothing was mutated; permanent caller error.
		return err
	}

	r.timestamps.insert(ts)
	col.put(ts, v)
	r.encodedValid = false

	err = r.encode()
	if errors.Is(err, errs.ErrRecordFull) {
		r.deleteSample(col, ts)
		r.encodedValid = false
		// Restore the cache for the rolled-back state; the committed state is
		// always encodable, so this cannot overflow again.
		_ = r.encode()

		return fmt.Errorf("%w: sample for %q at %d rolled back", errs.ErrRecordFull, path, ts)
	}

	return err
}

// deleteSample removes the value of col at ts, pruning the timestamp entry
// when no column references it anymore. Columns themselves are never pruned.
func (r *Record) deleteSample(col *column, ts uint64) {
	col.delete(ts)

	for _, c := range r.columns {
		if _, ok := c.at(ts); ok {
			return
		}
	}
	r.timestamps.remove(ts)
}

// getOrCreateColumn returns the column for path, creating it at the end of
// the column order if absent. A path that exists with a different value type
// is a contract violation and is rejected without mutating the record.
func (r *Record) getOrCreateColumn(path string, kind format.ValueType) (*column, error) {
	if path == "" {
		return nil, errs.ErrInvalidPath
	}
	if len(path) > MaxPathLen {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", errs.ErrPathTooLong, len(path), MaxPathLen)
	}

	if col := r.lookupColumn(path); col != nil {
		if col.kind != kind {
			return nil, fmt.Errorf("%w: resource %q is %s, got %s",
				errs.ErrTypeMismatch, path, col.kind, kind)
		}

		return col, nil
	}

	col := newColumn(path, kind)
	r.columns = append(r.columns, col)

	id := hash.ID(path)
	if _, taken := r.colIndex[id]; !taken {
		r.colIndex[id] = len(r.columns) - 1
	}

	return col, nil
}

// lookupColumn resolves a path to its column, or nil if absent.
func (r *Record) lookupColumn(path string) *column {
	if idx, ok := r.colIndex[hash.ID(path)]; ok {
		if col := r.columns[idx]; col.name == path {
			return col
		}
		// Hash collision: a different path owns this slot.
		for _, col := range r.columns {
			if col.name == path {
				return col
			}
		}
	}

	return nil
}

// SetFactor reconfigures the scaling factor of a numeric column.
//
// Returns errs.ErrColumnNotFound if the path does not exist,
// errs.ErrInvalidFactor if the factor is zero/NaN/Inf or the column is not
// numeric. The cached encoding is invalidated; if the new factor grows the
// encoding past the bound, the next Encode reports errs.ErrRecordFull.
func (r *Record) SetFactor(path string, factor float64) error {
	if !validFactor(factor) {
		return fmt.Errorf("%w: factor %v", errs.ErrInvalidFactor, factor)
	}

	col := r.lookupColumn(path)
	if col == nil {
		return fmt.Errorf("%w: %q", errs.ErrColumnNotFound, path)
	}
	if !col.kind.Numeric() {
		return fmt.Errorf("%w: resource %q is %s", errs.ErrInvalidFactor, path, col.kind)
	}

	col.factor = factor
	r.encodedValid = false

	return nil
}

// Encode returns the CBOR container for the record's current state,
// recomputing it only when the record changed since the last encode.
//
// The returned slice is owned by the record and valid until the next
// mutation, Reset or Encode call.
func (r *Record) Encode() ([]byte, error) {
	if err := r.encode(); err != nil {
		return nil, err
	}

	return r.encoded, nil
}

// EncodedSize returns the size in bytes of the cached encoding, or 0 when
// the record has been mutated since the last successful encode.
func (r *Record) EncodedSize() int {
	if !r.encodedValid {
		return 0
	}

	return len(r.encoded)
}

// TimestampCount returns the number of unique timestamps accumulated.
func (r *Record) TimestampCount() int {
	return r.timestamps.count()
}

// ColumnCount returns the number of resource columns created.
func (r *Record) ColumnCount() int {
	return len(r.columns)
}

// Reset drops all accumulated samples, columns and timestamps, returns the
// timestamp factor to 1 and invalidates the cached encoding. The record is
// ready for the next accumulation cycle.
func (r *Record) Reset() {
	r.timestamps.clear()
	r.columns = r.columns[:0]
	clear(r.colIndex)
	r.tsFactor = 1
	r.encodedValid = false
}

func validFactor(factor float64) bool {
	return factor != 0 && !math.IsNaN(factor) && !math.IsInf(factor, 0)
}
