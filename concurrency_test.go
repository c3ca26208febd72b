package swisstable

import (
	"os"
	"sync"
	"testing"
)

// TestSingleGoroutineDiscipline exercises a Table exclusively from one
// goroutine under `go test -race`, documenting the supported usage pattern
// rather than contradicting the no-concurrency contract.
func TestSingleGoroutineDiscipline(t *testing.T) {
	tbl, err := New[int, int](512, WithDelta[int](0.15))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 400; i++ {
		tbl.Insert(i, i)
		tbl.Get(i)
	}
}

// TestConcurrentMisuseDetectable demonstrates that calling Insert from two
// goroutines without external synchronization is a real data race, caught by
// the race detector. This is not a supported usage pattern (see §5); the
// test only runs when SWISSTABLE_RACE_DEMO is set, since intentionally racy
// code has no place in the default suite.
func TestConcurrentMisuseDetectable(t *testing.T) {
	if os.Getenv("SWISSTABLE_RACE_DEMO") == "" {
		t.Skip("set SWISSTABLE_RACE_DEMO=1 to run the intentional-race demonstration under -race")
	}
	tbl, err := New[int, int](1024, WithDelta[int](0.2))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				tbl.Insert(base+i, i)
			}
		}(g * 100)
	}
	wg.Wait()
}
