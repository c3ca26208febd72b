package groupscan

import "github.com/sanity-io/litter"

type slotDump struct {
	Index       int
	Meta        byte
	Empty       bool
	Fingerprint byte
}

// DumpGroup renders a metadata group as a human-readable structure dump,
// for use from ad hoc debugging sessions and the diagnostic test in
// groupscan_test.go. Not on any hot path.
func DumpGroup(group []byte) string {
	slots := make([]slotDump, len(group))
	for i, b := range group {
		slots[i] = slotDump{
			Index:       i,
			Meta:        b,
			Empty:       b == emptyMeta,
			Fingerprint: b &^ occupiedBitForDump,
		}
	}
	return litter.Sdump(slots)
}

const occupiedBitForDump = 0x80
