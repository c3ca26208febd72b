package swisstable

import "hash/maphash"

// hashFunc computes a 64-bit hash of a key. The core consumes this as an
// opaque value and never inspects K directly outside of equality
// comparisons, so callers may substitute any hash that is consistent for
// equal keys.
type hashFunc[K comparable] func(k K) uint64

// defaultHashSeed is drawn once per process. Using maphash.Comparable means
// the default hash works for any comparable K (structs, arrays, strings,
// ints, pointers, interfaces) without requiring K to implement an
// interface, at the cost of going through the runtime's generic equality
// hashing rather than a type-specialized one.
var defaultHashSeed = maphash.MakeSeed()

func defaultHash[K comparable](k K) uint64 {
	return maphash.Comparable(defaultHashSeed, k)
}
