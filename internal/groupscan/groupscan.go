package groupscan

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// GroupSize is G, the number of metadata bytes scanned together — chosen to
// match a 128-bit SIMD register of bytes.
const GroupSize = 16

const emptyMeta = 0x00

// useWide selects the word-parallel (SWAR) matcher for contiguous groups.
// The word-parallel path has only been validated on amd64/SSE2 hosts; other
// architectures take the always-correct scalar loop until it has been.
var useWide = runtime.GOARCH == "amd64" && cpu.X86.HasSSE2

// Contiguous scans a 16-byte contiguous metadata group, returning the
// bitmask of slots equal to target and the bitmask of empty slots. group
// must hold at least GroupSize bytes; ok is false otherwise and both masks
// are zero.
func Contiguous(group []byte, target byte) (matchMask, emptyMask uint16, ok bool) {
	if len(group) < GroupSize {
		return 0, 0, false
	}
	g := group[:GroupSize]
	if useWide {
		return wideMatch(g, target), wideMatch(g, emptyMeta), true
	}
	return scalarMatch(g, target), scalarMatch(g, emptyMeta), true
}

// Backend names the matcher Contiguous currently dispatches to, for
// diagnostics and benchmark labeling.
func Backend() string {
	if useWide {
		return "word-parallel"
	}
	return "scalar"
}
