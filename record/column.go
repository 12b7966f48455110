package record

import "github.com/arloliu/tsrec/format"

// value is the typed scalar stored for one column at one timestamp.
// The column's kind determines which field is meaningful.
type value struct {
	intVal   int32
	floatVal float64
	boolVal  bool
	strVal   string
}

// column is one named, single-typed sparse series within a record.
//
// The value type is fixed at creation and immutable afterwards. Columns keep
// their position in the record's creation order for the lifetime of the
// record, since the encoded header and factor arrays are laid out by that
// order; a column whose values have all been rolled back still occupies its
// slot.
type column struct {
	name   string
	kind   format.ValueType
	factor float64
	values map[uint64]value
}

func newColumn(name string, kind format.ValueType) *column {
	factor := 1.0
	if !kind.Numeric() {
		// Factor is meaningless for bool/string columns; the encoded factor
		// array carries 0 for them, matching the server contract.
		factor = 0
	}

	return &column{
		name:   name,
		kind:   kind,
		factor: factor,
		values: make(map[uint64]value),
	}
}

// put upserts the value keyed by timestamp.
func (c *column) put(ts uint64, v value) {
	c.values[ts] = v
}

// at returns the value at ts, if any.
func (c *column) at(ts uint64) (value, bool) {
	v, ok := c.values[ts]
	return v, ok
}

// delete removes the value at ts, or does nothing if absent.
func (c *column) delete(ts uint64) {
	delete(c.values, ts)
}
