// Package trie_test verifies thread-safety of trie.SyncTrieST under concurrent operations.
package trie_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/AlexKokoz/Algs4/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSync_ConcurrentPut ensures that concurrent Put calls all land.
func TestSync_ConcurrentPut(t *testing.T) {
	st := trie.NewSync[int]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- st.Put(fmt.Sprintf("key%03d", id), id)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, num, st.Size())
	assert.Len(t, st.KeysWithPrefix("key"), num)
	require.NoError(t, st.CheckInvariants())
}

// TestSync_ConcurrentPutDeleteRead mixes writers and readers to verify no
// races or panics and that the invariants hold afterwards.
func TestSync_ConcurrentPutDeleteRead(t *testing.T) {
	st := trie.NewSync[int](trie.WithWildcard('?'))
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		key := fmt.Sprintf("k%02d", i%10)
		go func(id int) {
			defer wg.Done()
			_ = st.Put(key, id)
		}(i)
		go func() {
			defer wg.Done()
			_ = st.Delete(key)
		}()
		go func() {
			defer wg.Done()
			_, _, _ = st.Get(key)
			_, _ = st.Contains(key)
			_, _, _ = st.LongestPrefixOf(key + "zz")
			_ = st.KeysThatMatch("k??")
			_ = st.Keys()
			_ = st.IsEmpty()
		}()
	}
	wg.Wait()

	require.NoError(t, st.CheckInvariants())
	assert.Equal(t, len(st.Keys()), st.Size())
}

// TestSync_API covers the wrapper's pass-through semantics on one goroutine.
func TestSync_API(t *testing.T) {
	st := trie.NewSync[string]()
	assert.True(t, st.IsEmpty())

	require.NoError(t, st.Put("she", "a"))
	require.NoError(t, st.Put("shells", "b"))
	v, ok, err := st.Get("she")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	p, ok, err := st.LongestPrefixOf("shellsort")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "shells", p)

	assert.Equal(t, []string{"she", "shells"}, st.KeysWithPrefix("sh"))
	assert.Equal(t, []string{"she"}, st.KeysThatMatch("s.e"))

	require.NoError(t, st.PutOrDelete("she", nil))
	found, err := st.Contains("she")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 1, st.Size())

	_, _, err = st.Get(invalidUTF8)
	assert.ErrorIs(t, err, trie.ErrInvalidArgument)
}

// TestSync_AllSnapshot lets the consumer mutate the table while ranging.
func TestSync_AllSnapshot(t *testing.T) {
	st := trie.NewSync[int]()
	for i, k := range []string{"a", "b", "c"} {
		require.NoError(t, st.Put(k, i))
	}

	var seen []string
	for k := range st.All() {
		seen = append(seen, k)
		require.NoError(t, st.Delete(k))
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.True(t, st.IsEmpty())
}
