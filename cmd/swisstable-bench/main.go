// Command swisstable-bench compares github.com/homier/swisstable's Map
// against the Go builtin map for insert and lookup throughput, and reports
// memory usage after each run. Modeled on nikgalushko/swisstable-bench.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"testing"

	"pgregory.net/rand"

	"github.com/homier/swisstable"
)

type benchMap[K comparable, V any] interface {
	Get(K) (V, bool)
	Set(K, V)
}

type builtinMap[K comparable, V any] struct {
	data map[K]V
}

func newBuiltinMap[K comparable, V any]() benchMap[K, V] {
	return &builtinMap[K, V]{data: make(map[K]V)}
}

func (m *builtinMap[K, V]) Get(key K) (V, bool) { v, ok := m.data[key]; return v, ok }
func (m *builtinMap[K, V]) Set(key K, value V)  { m.data[key] = value }

type swissMap[K comparable, V any] struct {
	data *swisstable.Map[K, V]
}

func newSwissMap[K comparable, V any]() benchMap[K, V] {
	return &swissMap[K, V]{data: swisstable.New[K, V]()}
}

func (m *swissMap[K, V]) Get(key K) (V, bool) { return m.data.Get(key) }
func (m *swissMap[K, V]) Set(key K, value V)  { m.data.Insert(key, value) }

type bench[K comparable, V any] struct {
	build  func() benchMap[K, V]
	keys   []K
	values []V
}

func newBench[K comparable, V any](size, seed uint64, build func() benchMap[K, V]) bench[K, V] {
	b := bench[K, V]{build: build, keys: make([]K, size), values: make([]V, size)}
	r := rand.New(seed)
	for i := range size {
		b.keys[i] = randInt[K](r)
		b.values[i] = randInt[V](r)
	}
	return b
}

// randInt only needs to support the key/value types this CLI exercises
// (int), unlike the corpus's reflect-driven randT, which also covers
// strings and empty structs.
func randInt[T any](r *rand.Rand) T {
	var zero T
	switch any(zero).(type) {
	case int:
		return any(r.Int()).(T)
	default:
		panic("swisstable-bench: unsupported type")
	}
}

func (b *bench[K, V]) benchmarkInsert(t *testing.B) {
	for t.Loop() {
		m := b.build()
		for i, key := range b.keys {
			m.Set(key, b.values[i])
		}
	}
}

func (b *bench[K, V]) benchmarkLookup(t *testing.B) {
	m := b.build()
	for i, key := range b.keys {
		m.Set(key, b.values[i])
	}
	t.ResetTimer()
	for i := 0; t.Loop(); i++ {
		_, _ = m.Get(b.keys[i%len(b.keys)])
	}
}

func (b *bench[K, V]) run(label string) {
	r := testing.Benchmark(b.benchmarkInsert)
	fmt.Printf("%s Insert: %v\n", label, r)

	r = testing.Benchmark(b.benchmarkLookup)
	fmt.Printf("%s Lookup: %v\n", label, r)
}

func measureMemoryUsage() {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("Memory Usage: Alloc = %v KB, Sys = %v KB, NumGC = %v\n", m.Alloc/1024, m.Sys/1024, m.NumGC)
}

func main() {
	var seed, size uint64
	var mapType string
	flag.Uint64Var(&seed, "seed", 1234, "Seed value for random generator")
	flag.Uint64Var(&size, "dataset-size", 1_000_000, "Number of elements in the dataset")
	flag.StringVar(&mapType, "map-type", "both", "swiss/builtin/both")
	flag.Parse()

	b := newBench[int, int](size, seed, newSwissMap[int, int])

	fmt.Println("Running Map Benchmarks")

	if mapType == "swiss" || mapType == "both" {
		b.build = newSwissMap[int, int]
		b.run("swisstable")
		measureMemoryUsage()
	}
	if mapType == "builtin" || mapType == "both" {
		b.build = newBuiltinMap[int, int]
		b.run("builtin")
		measureMemoryUsage()
	}
}
