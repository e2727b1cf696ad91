package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/theflywheel/bucketmap"
)

func main() {
	capacity := flag.Int("capacity", bucketmap.DefaultInitialCapacity, "initial number of buckets")
	loadFactor := flag.Float64("load-factor", bucketmap.DefaultLoadFactor, "size/capacity ratio that triggers a resize")
	numKeys := flag.Int("keys", 10, "number of keys to insert in the bulk phase")
	hasherName := flag.String("hasher", "polynomial", "bucket hash: polynomial, fnv or xxhash")
	verbose := flag.BoolP("verbose", "v", false, "log resizes")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	hasher, ok := map[string]bucketmap.Hasher{
		"polynomial": bucketmap.PolynomialHash,
		"fnv":        bucketmap.FNVHash,
		"xxhash":     bucketmap.XXHash,
	}[*hasherName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown hasher %q\n", *hasherName)
		os.Exit(2)
	}

	m, err := bucketmap.New[int](
		bucketmap.WithInitialCapacity(*capacity),
		bucketmap.WithLoadFactor(*loadFactor),
		bucketmap.WithHasher(hasher),
	)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	for i := 0; i < *numKeys; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i*100)
	}
	fmt.Printf("Inserted %d keys, capacity is now %d\n", m.Len(), m.Capacity())

	// Retrieve and display some values
	for i := 0; i < *numKeys+5; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if value, found := m.Get(key); found {
			fmt.Printf("%s => %d\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	m.Set("key-2", 999)
	if value, found := m.Get("key-2"); found {
		fmt.Printf("Updated key-2 => %d (length still %d)\n", value, m.Len())
	}

	if m.Remove("key-0") {
		fmt.Printf("Removed key-0, length %d, capacity %d\n", m.Len(), m.Capacity())
	}

	s := bucketmap.MustNewSet(bucketmap.WithHasher(hasher))
	for _, k := range []string{"x", "x", "y"} {
		s.Add(k)
	}
	fmt.Printf("Set members: %v (size %d)\n", s.Keys(), s.Size())

	fmt.Println("Example completed successfully")
}
