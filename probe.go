package swisstable

// groupSize is G in the design: the number of metadata bytes scanned
// together, chosen to match a 128-bit SIMD register of bytes.
const groupSize = 16

// groupBase returns base(h, j) = (h + G*j) mod C: the linear probe schedule.
//
// The accompanying analysis for this scheme also describes a quadratic
// group-jump variant to reduce clustering at high load; this implementation
// uses the linear schedule the way the reference implementation does; the
// quadratic variant is not implemented and there is no option to select it
// (see DESIGN.md, "Linear vs. quadratic group jumps").
func groupBase(h uint64, j, capacity int) int {
	return int((h + uint64(groupSize*j)) % uint64(capacity))
}

// groupIsContiguous reports whether the 16 slots starting at base lie
// entirely within [0, capacity), i.e. don't wrap around the end of the
// array.
func groupIsContiguous(base, capacity int) bool {
	return base+groupSize <= capacity
}

// totalGroups is the number of groups the insert fallback and lookup must
// ever consider: min(ceil(maxProbeLimit/G), ceil(C/G)).
func totalGroups(maxProbeLimit, capacity int) int {
	byProbeLimit := ceilDiv(maxProbeLimit, groupSize)
	byCapacity := ceilDiv(capacity, groupSize)
	if byProbeLimit < byCapacity {
		return byProbeLimit
	}
	return byCapacity
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
