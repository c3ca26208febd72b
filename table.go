package swisstable

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// entry is a stored (key, value) record. It is only meaningful when the
// corresponding metadata byte is occupied.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Table is a fixed-capacity, open-addressed map from K to V. See the
// package doc comment for the placement and lookup policy. A Table must not
// be used concurrently from multiple goroutines without external
// synchronization — see DESIGN.md.
type Table[K comparable, V any] struct {
	meta    []byte
	entries []entry[K, V]

	capacity      int
	delta         float64
	maxInserts    int
	maxProbeLimit int
	totalGroups   int

	size         int
	maxGroupUsed int
	salt         uint64
	hash         hashFunc[K]

	lastInsertFailure InsertFailure

	statGets               int64
	statFingerprintMisses  int64
	statExtraGroupsScanned int64
}

// New constructs a Table with the given fixed capacity. Capacity must be at
// least 1. With no options, delta defaults to 0.1 and the hash function
// defaults to a generic hash over K via hash/maphash.
func New[K comparable, V any](capacity int, opts ...Option[K]) (*Table[K, V], error) {
	if capacity < 1 {
		return nil, ErrZeroCapacity
	}

	cfg := config[K]{
		delta: defaultDelta,
		hash:  defaultHash[K],
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.delta <= 0 || cfg.delta >= 1 {
		return nil, ErrInvalidDelta
	}

	maxInserts := capacity - int(math.Floor(cfg.delta*float64(capacity)))
	maxProbeLimit := maxProbeLimitFor(cfg.delta, capacity)

	t := &Table[K, V]{
		meta:          make([]byte, capacity),
		entries:       make([]entry[K, V], capacity),
		capacity:      capacity,
		delta:         cfg.delta,
		maxInserts:    maxInserts,
		maxProbeLimit: maxProbeLimit,
		totalGroups:   totalGroups(maxProbeLimit, capacity),
		salt:          randomSalt(),
		hash:          cfg.hash,
	}
	return t, nil
}

// maxProbeLimitFor computes max(16, min(C, ceil(4*log2(1/delta)))).
func maxProbeLimitFor(delta float64, capacity int) int {
	bound := int(math.Ceil(4 * math.Log2(1/delta)))
	if bound > capacity {
		bound = capacity
	}
	if bound < 16 {
		bound = 16
	}
	return bound
}

// randomSalt draws a 64-bit value from a nondeterministic source. crypto/rand
// failing is effectively unreachable on supported platforms; if it ever
// does, the all-zero salt is a safe (if not adversary-resistant) fallback.
func randomSalt() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// saltedHash returns the hash used for indexing: the user hash XORed with
// the per-container salt.
func (t *Table[K, V]) saltedHash(k K) uint64 {
	return t.hash(k) ^ t.salt
}

// Len returns the number of entries currently stored.
func (t *Table[K, V]) Len() int { return t.size }

// Cap returns the fixed capacity C.
func (t *Table[K, V]) Cap() int { return t.capacity }

// LoadFactor returns size/capacity.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

// MaxGroupUsed returns the high-water-mark group index reached by any
// successful insertion so far.
func (t *Table[K, V]) MaxGroupUsed() int { return t.maxGroupUsed }

// MaxProbeLimit returns the elastic-hashing probe-length bound in slots,
// derived from delta at construction.
func (t *Table[K, V]) MaxProbeLimit() int { return t.maxProbeLimit }

// MaxProbeUsed returns the worst-case probe offset reached so far, in
// slots: maxGroupUsed*groupSize + (groupSize-1). An empty table has probed
// nothing yet, so it reports 0 rather than the group-0 baseline.
func (t *Table[K, V]) MaxProbeUsed() int {
	if t.size == 0 {
		return 0
	}
	return t.maxGroupUsed*groupSize + (groupSize - 1)
}

// LastInsertFailure reports why the most recent Insert returned false. It
// is meaningless (InsertOK) if the most recent Insert succeeded or no
// Insert has run yet.
func (t *Table[K, V]) LastInsertFailure() InsertFailure { return t.lastInsertFailure }
