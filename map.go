package bucketmap

import (
	"github.com/sirupsen/logrus"
)

// Entry is a key/value pair stored in a bucket.
type Entry[V any] struct {
	Key   string
	Value V
}

// HashMap is a hash table with separate chaining. Each bucket is an ordered
// slice of entries, and the bucket array doubles whenever size/capacity
// exceeds the load factor. Capacity never shrinks.
//
// A HashMap is not safe for concurrent use.
type HashMap[V any] struct {
	buckets    [][]Entry[V]
	capacity   int
	size       int
	loadFactor float64
	hasher     Hasher
	logger     logrus.FieldLogger
}

// New creates an empty HashMap. Without options it starts with
// DefaultInitialCapacity buckets and a DefaultLoadFactor threshold.
func New[V any](opts ...Option) (*HashMap[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newFromConfig[V](cfg), nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew[V any](opts ...Option) *HashMap[V] {
	m, err := New[V](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func newFromConfig[V any](cfg config) *HashMap[V] {
	return &HashMap[V]{
		buckets:    makeBuckets[V](cfg.initialCapacity),
		capacity:   cfg.initialCapacity,
		loadFactor: cfg.loadFactor,
		hasher:     cfg.hasher,
		logger:     cfg.logger,
	}
}

func makeBuckets[V any](n int) [][]Entry[V] {
	return make([][]Entry[V], n)
}

func (m *HashMap[V]) index(key string) int {
	return m.hasher(key, m.capacity)
}

// Set stores value under key, replacing any previous value. Adding a new key
// may double the bucket array, at most once per call. With load factors well
// below 1, size/capacity can therefore remain above the threshold after Set
// returns; later inserts keep doubling until it catches up.
func (m *HashMap[V]) Set(key string, value V) {
	if !m.insert(key, value) {
		return
	}
	if float64(m.size)/float64(m.capacity) > m.loadFactor {
		m.resize()
	}
}

// insert places key in its bucket without checking the load factor and
// reports whether a new entry was added.
func (m *HashMap[V]) insert(key string, value V) bool {
	idx := m.index(key)
	bucket := m.buckets[idx]
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Value = value
			return false
		}
	}
	m.buckets[idx] = append(bucket, Entry[V]{Key: key, Value: value})
	m.size++
	return true
}

// Get returns the value stored under key and whether it was present.
func (m *HashMap[V]) Get(key string) (V, bool) {
	for _, e := range m.buckets[m.index(key)] {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *HashMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key and reports whether it was present. The remaining
// entries of the bucket keep their relative order.
func (m *HashMap[V]) Remove(key string) bool {
	idx := m.index(key)
	bucket := m.buckets[idx]
	for i := range bucket {
		if bucket[i].Key != key {
			continue
		}
		copy(bucket[i:], bucket[i+1:])
		var zero Entry[V]
		bucket[len(bucket)-1] = zero
		m.buckets[idx] = bucket[:len(bucket)-1]
		m.size--
		return true
	}
	return false
}

// Len returns the number of stored entries.
func (m *HashMap[V]) Len() int {
	return m.size
}

// Capacity returns the current number of buckets.
func (m *HashMap[V]) Capacity() int {
	return m.capacity
}

// LoadFactor returns the configured resize threshold.
func (m *HashMap[V]) LoadFactor() float64 {
	return m.loadFactor
}

// Clear removes every entry. The bucket array is reallocated at the current
// capacity, not the initial one.
func (m *HashMap[V]) Clear() {
	m.buckets = makeBuckets[V](m.capacity)
	m.size = 0
}

// Range calls fn for each entry in bucket order until fn returns false.
// fn must not modify the map.
func (m *HashMap[V]) Range(fn func(key string, value V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !fn(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in bucket order.
func (m *HashMap[V]) Keys() []string {
	keys := make([]string, 0, m.size)
	m.Range(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns the values in the same order as Keys.
func (m *HashMap[V]) Values() []V {
	values := make([]V, 0, m.size)
	m.Range(func(_ string, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Entries returns copies of the stored pairs in bucket order.
func (m *HashMap[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.size)
	m.Range(func(key string, value V) bool {
		entries = append(entries, Entry[V]{Key: key, Value: value})
		return true
	})
	return entries
}

// resize doubles the bucket array and rehashes every entry, walking the old
// buckets in order. Re-insertion goes through insert, which never resizes.
func (m *HashMap[V]) resize() {
	old := m.buckets
	oldCapacity := m.capacity

	// makeBuckets runs out of memory long before capacity*2 could overflow int.
	m.capacity = oldCapacity * 2
	m.buckets = makeBuckets[V](m.capacity)
	m.size = 0

	for _, bucket := range old {
		for _, e := range bucket {
			m.insert(e.Key, e.Value)
		}
	}

	m.logger.WithFields(logrus.Fields{
		"old_capacity": oldCapacity,
		"new_capacity": m.capacity,
		"entries":      m.size,
	}).Debug("bucketmap: resized")
}
