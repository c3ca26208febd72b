package swisstable

// Stats is a snapshot of probe-behavior counters, useful for benchmarking
// and for understanding how close a workload is running to the
// elastic-hashing probe bound. It is not part of the core contract; it
// costs a few counter increments per Get and nothing else.
type Stats struct {
	// Gets is the number of Get calls observed.
	Gets int64
	// FingerprintMisses is the number of times a fingerprint matched but
	// the stored key did not — the statistically rare case the 7-bit
	// fingerprint is meant to make infrequent.
	FingerprintMisses int64
	// ExtraGroupsScanned is the number of groups beyond group 0 that a Get
	// had to scan across all calls.
	ExtraGroupsScanned int64
}

// Stats returns a snapshot of the table's probe-behavior counters.
func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Gets:               t.statGets,
		FingerprintMisses:  t.statFingerprintMisses,
		ExtraGroupsScanned: t.statExtraGroupsScanned,
	}
}
