/*
Package bucketmap provides an in-memory hash map and hash set keyed by strings,
built on an explicit bucket array rather than Go's built-in map.

Basic usage:

	import "github.com/theflywheel/bucketmap"

	m, err := bucketmap.New[int](bucketmap.WithInitialCapacity(4), bucketmap.WithLoadFactor(0.75))
	if err != nil {
		log.Fatal(err)
	}

	m.Set("a", 1)
	m.Set("a", 2) // overwrites, Len stays 1

	if v, ok := m.Get("a"); ok {
		fmt.Println("Value:", v)
	}

	s := bucketmap.MustNewSet()
	s.Add("x")
	s.Add("x")
	fmt.Println(s.Size()) // 1

Features:

  - Separate chaining: each bucket is an ordered slice of entries
  - Automatic doubling when size/capacity exceeds the load factor (default 0.75)
  - Capacity never shrinks; Clear keeps the current capacity
  - Get returns an explicit found flag, so zero values can be stored safely
  - Pluggable bucket hash: PolynomialHash (default), FNVHash or XXHash

Implementation Details:

The default hash folds each UTF-16 code unit c of the key into
h = (31*h + c) mod capacity, reducing after every unit. The accumulator stays
below capacity, so long keys never overflow and the bucket a key lands in
matches other implementations of the same per-unit scheme exactly.

Keys, Values, Entries and Range walk buckets in index order and each bucket
in insertion order. A resize rehashes entries bucket by bucket, so the global
order can change whenever the map grows. No insertion order is guaranteed.

Neither HashMap nor HashSet is safe for concurrent use; guard them with a
mutex if they are shared between goroutines.
*/
package bucketmap
