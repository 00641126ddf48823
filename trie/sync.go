package trie

import (
	"iter"
	"sync"
)

// SyncTrieST guards a TrieST with a sync.RWMutex so it can be shared
// between goroutines. Queries take the read lock, mutations the write lock.
type SyncTrieST[V any] struct {
	mu sync.RWMutex
	st *TrieST[V]
}

// NewSync creates an empty SyncTrieST configured by opts.
func NewSync[V any](opts ...Option) *SyncTrieST[V] {
	return &SyncTrieST[V]{st: New[V](opts...)}
}

// Get returns the value associated with key.
func (s *SyncTrieST[V]) Get(key string) (V, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.Get(key)
}

// Contains reports whether key is in the table.
func (s *SyncTrieST[V]) Contains(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.Contains(key)
}

// Put inserts or overwrites key.
func (s *SyncTrieST[V]) Put(key string, val V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.st.Put(key, val)
}

// PutOrDelete stores *val under key, or deletes key when val is nil.
func (s *SyncTrieST[V]) PutOrDelete(key string, val *V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.st.PutOrDelete(key, val)
}

// Delete removes key if present.
func (s *SyncTrieST[V]) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.st.Delete(key)
}

// Size returns the number of keys.
func (s *SyncTrieST[V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.Size()
}

// IsEmpty reports whether the table holds no keys.
func (s *SyncTrieST[V]) IsEmpty() bool {
	return s.Size() == 0
}

// LongestPrefixOf returns the longest stored key that is a prefix of query.
func (s *SyncTrieST[V]) LongestPrefixOf(query string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.LongestPrefixOf(query)
}

// Keys returns every key in code-point order.
func (s *SyncTrieST[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.Keys()
}

// KeysWithPrefix returns every key starting with prefix.
func (s *SyncTrieST[V]) KeysWithPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.KeysWithPrefix(prefix)
}

// KeysThatMatch returns every key matching pattern.
func (s *SyncTrieST[V]) KeysThatMatch(pattern string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.KeysThatMatch(pattern)
}

// All iterates over a snapshot of the key-value pairs taken under the read
// lock, so the consumer may mutate s while ranging.
func (s *SyncTrieST[V]) All() iter.Seq2[string, V] {
	type pair struct {
		key string
		val V
	}

	return func(yield func(string, V) bool) {
		s.mu.RLock()
		snapshot := make([]pair, 0, s.st.Size())
		for k, v := range s.st.All() {
			snapshot = append(snapshot, pair{key: k, val: v})
		}
		s.mu.RUnlock()

		for _, p := range snapshot {
			if !yield(p.key, p.val) {
				return
			}
		}
	}
}

// CheckInvariants verifies the underlying table under the read lock.
func (s *SyncTrieST[V]) CheckInvariants() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.CheckInvariants()
}
