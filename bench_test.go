package swisstable

import (
	"flag"
	"runtime"
	"testing"
)

var longBenchFlag = flag.Bool("long", false, "run long benchmarks")

type benchSize struct {
	name     string
	capacity int
}

var newBenchSizes = []benchSize{
	{"capacity 1000", 1_000},
	{"capacity 100000", 100_000},
	{"capacity 1000000", 1_000_000},
}

func sweepCapacities() []benchSize {
	sizes := []int{100, 1_000, 10_000, 100_000, 1_000_000}
	bms := make([]benchSize, len(sizes))
	for i, n := range sizes {
		bms[i] = benchSize{name: "sweep", capacity: n}
	}
	return bms
}

var sinkTable *Table[int64, int64]
var sinkMap map[int64]int64

func BenchmarkNew_Int64_Std(b *testing.B) {
	bms := newBenchSizes
	if !*longBenchFlag {
		bms = []benchSize{{"capacity 1000000", 1_000_000}}
	}
	for _, bm := range bms {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkMap = make(map[int64]int64, bm.capacity)
			}
			b.StopTimer()
			runtime.GC()
			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)
			b.ReportMetric(float64(memStats.HeapAlloc)/float64(16*bm.capacity), "overhead")
		})
	}
}

func BenchmarkNew_Int64_Swisstable(b *testing.B) {
	bms := newBenchSizes
	if !*longBenchFlag {
		bms = []benchSize{{"capacity 1000000", 1_000_000}}
	}
	for _, bm := range bms {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkTable, _ = New[int64, int64](bm.capacity, WithDelta[int64](0.1))
			}
			b.StopTimer()
			runtime.GC()
			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)
			b.ReportMetric(float64(memStats.HeapAlloc)/float64(16*bm.capacity), "overhead")
		})
	}
}

func BenchmarkNewSweep_Int64_Swisstable(b *testing.B) {
	if !*longBenchFlag {
		b.Skip()
	}
	bms := sweepCapacities()
	for _, bm := range bms {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkTable, _ = New[int64, int64](bm.capacity, WithDelta[int64](0.1))
			}
		})
	}
}

func BenchmarkInsert1M_Int64_Std(b *testing.B) {
	const n = 1_000_000
	m := make(map[int64]int64, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for k := 0; k < n; k++ {
			m[int64(k)] = int64(k)
		}
	}
}

func BenchmarkInsert1M_Int64_Swisstable(b *testing.B) {
	const n = 1_000_000
	tbl, err := New[int64, int64](int(float64(n)*1.2), WithDelta[int64](0.1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for k := 0; k < n; k++ {
			tbl.Insert(int64(k), int64(k))
		}
	}
}

func BenchmarkGet_Swisstable(b *testing.B) {
	const n = 100_000
	tbl, err := New[int64, int64](int(float64(n)*1.2), WithDelta[int64](0.1))
	if err != nil {
		b.Fatal(err)
	}
	for k := 0; k < n; k++ {
		tbl.Insert(int64(k), int64(k))
	}
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = tbl.Get(int64(i % n))
	}
	_ = ok
}

func BenchmarkGroupScan_Contiguous(b *testing.B) {
	tbl, err := New[int64, int64](1024, WithDelta[int64](0.1))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		tbl.Insert(int64(i), int64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl.Get(int64(i % 500))
	}
}
