package main

import (
	"fmt"
	"math/rand"

	swisstable "github.com/Cranot/grouped-simd-hashtable"
	"github.com/Cranot/grouped-simd-hashtable/internal/groupscan"
)

func main() {
	const capacity = 10_000
	tbl, err := swisstable.New[int64, int64](capacity, swisstable.WithDelta[int64](0.1))
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(1))
	inserted := 0
	for inserted < tbl.Cap() {
		k := rng.Int63()
		if tbl.Insert(k, k*2) {
			inserted++
		} else if tbl.LastInsertFailure() == swisstable.InsertSizeCapReached {
			break
		}
	}

	for i := 0; i < 1000; i++ {
		tbl.Get(rng.Int63())
	}

	fmt.Println("backend:", groupscan.Backend())
	fmt.Println("capacity:", tbl.Cap())
	fmt.Println("len:", tbl.Len())
	fmt.Println("load factor:", tbl.LoadFactor())
	fmt.Println("max probe limit:", tbl.MaxProbeLimit())
	fmt.Println("max group used:", tbl.MaxGroupUsed())
	fmt.Println("max probe used:", tbl.MaxProbeUsed())

	stats := tbl.Stats()
	fmt.Printf("stats: gets=%d fingerprintMisses=%d extraGroupsScanned=%d\n",
		stats.Gets, stats.FingerprintMisses, stats.ExtraGroupsScanned)
}
