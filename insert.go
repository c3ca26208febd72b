package swisstable

import "math/bits"

// candidate is an empty slot found during the non-greedy collection window,
// recorded in the order scanned: ascending group index, then ascending
// offset within the group. That scan order already matches the
// lexicographic (group, offset) ordering the placement policy wants, so the
// first-collected candidate is always the best one — see placeCandidate.
type candidate struct {
	group int
	slot  int
}

// maxCandidates bounds the non-greedy collection window: a cache-footprint
// choice, not load-bearing for correctness, since the fallback scan covers
// every slot the window would have covered. Must stay >= the largest
// maxGroupsToCheck * groupSize (8*16 here) so the cap never stops
// collection early — stopping early would skip the match_mask scan of the
// window's remaining groups, which could miss an existing key placed in one
// of them.
const maxCandidates = 128

// Insert stores value under key, or updates the existing entry for key if
// one is already present. It returns false without mutating the table if
// size has already reached the capacity cap, or if the probe sequence is
// exhausted without finding a placement — see LastInsertFailure for which.
func (t *Table[K, V]) Insert(key K, value V) bool {
	if t.size >= t.maxInserts {
		t.lastInsertFailure = InsertSizeCapReached
		return false
	}

	h := t.saltedHash(key)
	target := encodeMeta(h)

	// Step 1: group 0, greedy.
	matchMask, emptyMask, base0 := t.scanGroup(0, h, target)
	if t.updateIfPresent(matchMask, base0, key, value) {
		return true
	}
	if emptyMask != 0 {
		bit := bits.TrailingZeros16(emptyMask)
		idx := t.slotAt(base0, bit)
		t.placeNew(idx, key, value, target)
		// max_group_used is not raised for a placement in group 0.
		return true
	}

	// Step 2: non-greedy candidate collection across a load-dependent window.
	maxGroupsToCheck := 4
	if t.LoadFactor() > 0.8 {
		maxGroupsToCheck = 8
	}
	if maxGroupsToCheck > t.totalGroups {
		maxGroupsToCheck = t.totalGroups
	}

	candidates := make([]candidate, 0, maxCandidates)
collect:
	for j := 1; j < maxGroupsToCheck; j++ {
		m, e, base := t.scanGroup(j, h, target)
		if t.updateIfPresent(m, base, key, value) {
			return true
		}
		for e != 0 {
			bit := bits.TrailingZeros16(e)
			candidates = append(candidates, candidate{group: j, slot: t.slotAt(base, bit)})
			if len(candidates) >= maxCandidates {
				break collect
			}
			e &^= 1 << bit
		}
	}

	if len(candidates) > 0 {
		t.placeCandidate(candidates[0], key, value, target)
		return true
	}

	// Step 3: fallback scan of every remaining group, slot by slot.
	for j := maxGroupsToCheck; j < t.totalGroups; j++ {
		m, e, base := t.scanGroup(j, h, target)
		if t.updateIfPresent(m, base, key, value) {
			return true
		}
		if e != 0 {
			bit := bits.TrailingZeros16(e)
			idx := t.slotAt(base, bit)
			t.entries[idx] = entry[K, V]{key: key, value: value}
			t.meta[idx] = target
			t.size++
			if j > t.maxGroupUsed {
				t.maxGroupUsed = j
			}
			t.lastInsertFailure = InsertOK
			return true
		}
	}

	t.lastInsertFailure = InsertProbeExhausted
	return false
}

// updateIfPresent scans matchMask (relative to group base) for an entry
// whose key equals key, and overwrites its value in place. Shared by all
// three insert phases, which differ only in how they handle a miss.
func (t *Table[K, V]) updateIfPresent(matchMask uint16, base int, key K, value V) bool {
	for matchMask != 0 {
		bit := bits.TrailingZeros16(matchMask)
		idx := t.slotAt(base, bit)
		if t.entries[idx].key == key {
			t.entries[idx].value = value
			t.lastInsertFailure = InsertOK
			return true
		}
		matchMask &^= 1 << bit
	}
	return false
}

func (t *Table[K, V]) placeNew(idx int, key K, value V, target byte) {
	t.entries[idx] = entry[K, V]{key: key, value: value}
	t.meta[idx] = target
	t.size++
	t.lastInsertFailure = InsertOK
}

func (t *Table[K, V]) placeCandidate(c candidate, key K, value V, target byte) {
	t.entries[c.slot] = entry[K, V]{key: key, value: value}
	t.meta[c.slot] = target
	t.size++
	if c.group > t.maxGroupUsed {
		t.maxGroupUsed = c.group
	}
	t.lastInsertFailure = InsertOK
}
