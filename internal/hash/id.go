package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a resource path.
//
// Records key their column lookup table by this hash instead of the path
// string itself; the path is verified on lookup so a hash collision degrades
// to a linear scan rather than a wrong column.
func ID(path string) uint64 {
	return xxhash.Sum64String(path)
}
