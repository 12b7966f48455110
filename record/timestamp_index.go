package record

import "sort"

// tsIndex is a sorted, duplicate-free sequence of sample timestamps.
//
// All columns of a record share one index; an entry exists only while at
// least one column holds a value for it. Expected cardinality is small (a
// record is bounded by its encode buffer), so a sorted slice with binary
// search beats any tree here.
type tsIndex struct {
	entries []uint64
}

// insert adds ts preserving ascending order. It reports whether the entry
// was actually inserted; inserting an existing timestamp is a no-op.
func (x *tsIndex) insert(ts uint64) bool {
	i := sort.Search(len(x.entries), func(i int) bool { return x.entries[i] >= ts })
	if i < len(x.entries) && x.entries[i] == ts {
		return false
	}

	x.entries = append(x.entries, 0)
	copy(x.entries[i+1:], x.entries[i:])
	x.entries[i] = ts

	return true
}

// remove deletes the matching entry, or does nothing if ts is absent.
func (x *tsIndex) remove(ts uint64) {
	i := sort.Search(len(x.entries), func(i int) bool { return x.entries[i] >= ts })
	if i >= len(x.entries) || x.entries[i] != ts {
		return
	}

	x.entries = append(x.entries[:i], x.entries[i+1:]...)
}

// contains reports whether ts is present in the index.
func (x *tsIndex) contains(ts uint64) bool {
	i := sort.Search(len(x.entries), func(i int) bool { return x.entries[i] >= ts })

	return i < len(x.entries) && x.entries[i] == ts
}

// count returns the number of unique timestamps.
func (x *tsIndex) count() int {
	return len(x.entries)
}

// clear drops all entries while retaining the allocated memory.
func (x *tsIndex) clear() {
	x.entries = x.entries[:0]
}
