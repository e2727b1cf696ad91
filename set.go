package bucketmap

// HashSet is a set of strings backed by a HashMap whose values are all the
// empty struct. It shares the map's hashing, resizing and ordering behavior.
type HashSet struct {
	m *HashMap[struct{}]
}

// NewSet creates an empty HashSet. Options are forwarded to the backing map.
func NewSet(opts ...Option) (*HashSet, error) {
	m, err := New[struct{}](opts...)
	if err != nil {
		return nil, err
	}
	return &HashSet{m: m}, nil
}

// MustNewSet is like NewSet but panics on an invalid configuration.
func MustNewSet(opts ...Option) *HashSet {
	return &HashSet{m: MustNew[struct{}](opts...)}
}

// Add inserts key. Adding a present key leaves the set unchanged.
func (s *HashSet) Add(key string) {
	s.m.Set(key, struct{}{})
}

// Has reports whether key is a member.
func (s *HashSet) Has(key string) bool {
	return s.m.Has(key)
}

// Remove deletes key and reports whether it was a member.
func (s *HashSet) Remove(key string) bool {
	return s.m.Remove(key)
}

// Size returns the number of members.
func (s *HashSet) Size() int {
	return s.m.Len()
}

// Clear removes every member, keeping the current capacity.
func (s *HashSet) Clear() {
	s.m.Clear()
}

// Keys returns the members in bucket order.
func (s *HashSet) Keys() []string {
	return s.m.Keys()
}

// Range calls fn for each member until fn returns false.
func (s *HashSet) Range(fn func(key string) bool) {
	s.m.Range(func(key string, _ struct{}) bool {
		return fn(key)
	})
}
