// Package trie_test contains shared fixtures for the trie tests.
package trie_test

import (
	"testing"

	"github.com/AlexKokoz/Algs4/trie"
	"github.com/stretchr/testify/require"
)

// shellsText is the algs4 "shellsST" sample; value = position in the stream.
var shellsText = []string{"she", "sells", "sea", "shells", "by", "the", "sea", "shore"}

// Common keys used across trie tests.
const (
	KeyEmpty = ""
	KeyCat   = "cat"
	KeyCar   = "car"
	KeyCart  = "cart"
	KeyDog   = "dog"
	KeyCot   = "cot"
	KeyCut   = "cut"
)

// invalidUTF8 is a byte sequence that is not a character sequence.
const invalidUTF8 = "ab\xffcd"

// newShells builds a TrieST[int] from shellsText, mapping each word to its
// last position, exactly as the algs4 test client does.
func newShells(t testing.TB) *trie.TrieST[int] {
	t.Helper()
	st := trie.New[int]()
	for i, w := range shellsText {
		require.NoError(t, st.Put(w, i))
	}

	return st
}

// newFromMap builds a TrieST[int] holding every pair of m.
func newFromMap(t testing.TB, m map[string]int) *trie.TrieST[int] {
	t.Helper()
	st := trie.New[int]()
	for k, v := range m {
		require.NoError(t, st.Put(k, v))
	}

	return st
}

// mustContain fails the test unless st.Contains(key) == want.
func mustContain(t testing.TB, st *trie.TrieST[int], key string, want bool) {
	t.Helper()
	got, err := st.Contains(key)
	require.NoError(t, err)
	require.Equalf(t, want, got, "Contains(%q)", key)
}
