package swisstable

import "github.com/Cranot/grouped-simd-hashtable/internal/groupscan"

// scanGroup scans group j of the probe sequence for hash h, returning the
// bitmask of slots whose metadata equals target and the bitmask of empty
// slots, along with the group's base index. It dispatches to the
// contiguous (word-parallel/scalar) scanner or the wrapping scalar scanner
// depending on whether the group straddles the end of the metadata array.
func (t *Table[K, V]) scanGroup(j int, h uint64, target byte) (matchMask, emptyMask uint16, base int) {
	base = groupBase(h, j, t.capacity)
	if groupIsContiguous(base, t.capacity) {
		matchMask, emptyMask, _ = groupscan.Contiguous(t.meta[base:base+groupSize], target)
		return matchMask, emptyMask, base
	}
	matchMask, emptyMask = groupscan.Wrapping(t.meta, base, t.capacity, target)
	return matchMask, emptyMask, base
}

// slotAt returns the absolute slot index for offset k within a group based
// at base, accounting for wraparound. capacity can be smaller than
// groupSize, so the offset can wrap around more than once; true modular
// reduction is required, not a single conditional subtraction.
func (t *Table[K, V]) slotAt(base, k int) int {
	return (base + k) % t.capacity
}
