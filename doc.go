// Package swisstable implements a fixed-capacity, open-addressed
// associative container over an arbitrary comparable key type.
//
// The table is a Swiss-Tables-style hybrid: one byte of metadata per slot
// (an occupied bit plus a 7-bit fingerprint), scanned sixteen slots
// ("a group") at a time, combined with an elastic-hashing placement policy
// that bounds worst-case probe length at high load factors by collecting
// placement candidates across several groups instead of greedily taking
// the first empty slot.
//
// There is no delete, no resize, and no iteration order — see the package
// README-equivalent design notes in DESIGN.md for the reasoning.
package swisstable
