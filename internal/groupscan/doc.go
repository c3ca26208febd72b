// Package groupscan implements the 16-wide metadata group scanner: given a
// target metadata byte and a group of 16 bytes, produce the bitmask of
// matching slots and the bitmask of empty slots.
//
// Two backends share the same contract and are exercised against each
// other in groupscan_test.go: a word-parallel (SWAR) matcher used for
// contiguous groups on validated hosts, and a plain byte-by-byte scalar
// matcher used everywhere else and for groups that wrap around the end of
// the table.
package groupscan
