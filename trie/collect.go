package trie

import (
	"iter"
	"maps"
	"slices"
	"unicode/utf8"
)

// Keys returns every key in the table in code-point order.
// Equivalent to KeysWithPrefix("").
func (t *TrieST[V]) Keys() []string {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns every key in the table that starts with prefix,
// in code-point order. A prefix that is not valid UTF-8 matches nothing.
// The result is a fresh slice reflecting the table at call time.
// Complexity: O(L + size of the subtree under prefix)
func (t *TrieST[V]) KeysWithPrefix(prefix string) []string {
	if t == nil || !utf8.ValidString(prefix) {
		return nil
	}
	var results []string
	t.find(prefix).walk([]byte(prefix), func(key []byte, _ V) bool {
		results = append(results, string(key))
		return true
	})

	return results
}

// KeysThatMatch returns every key in the table matching pattern, where the
// table's wildcard character matches any single character and every other
// character matches itself. Matched keys have exactly as many characters as
// pattern. A pattern that is not valid UTF-8 matches nothing.
func (t *TrieST[V]) KeysThatMatch(pattern string) []string {
	if t == nil || !utf8.ValidString(pattern) {
		return nil
	}
	wc := t.wildcard
	if wc == 0 {
		wc = DefaultWildcard
	}
	var results []string
	t.root.match(make([]byte, 0, len(pattern)), []rune(pattern), wc, &results)

	return results
}

// All returns an iterator over every key-value pair in code-point key order.
// The table must not be modified while the iterator is running.
func (t *TrieST[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if t == nil {
			return
		}
		t.root.walk(nil, func(key []byte, val V) bool {
			return yield(string(key), val)
		})
	}
}

// walk performs a pre-order traversal of the subtree at x, calling yield for
// every value-bearing node with its full key. buf holds the key of x.
// Returns false as soon as yield does.
func (x *node[V]) walk(buf []byte, yield func(key []byte, val V) bool) bool {
	if x == nil {
		return true
	}
	if x.val != nil && !yield(buf, *x.val) {
		return false
	}
	for _, c := range x.children() {
		if !x.next[c].walk(utf8.AppendRune(buf, c), yield) {
			return false
		}
	}

	return true
}

// match collects keys under x matching the remaining pattern pat.
// buf holds the key of x.
func (x *node[V]) match(buf []byte, pat []rune, wildcard rune, results *[]string) {
	if x == nil {
		return
	}
	if len(pat) == 0 {
		if x.val != nil {
			*results = append(*results, string(buf))
		}
		return
	}
	c := pat[0]
	if c == wildcard {
		for _, r := range x.children() {
			x.next[r].match(utf8.AppendRune(buf, r), pat[1:], wildcard, results)
		}
		return
	}
	// indexing a missing child yields nil and leaves x.next untouched
	x.next[c].match(utf8.AppendRune(buf, c), pat[1:], wildcard, results)
}

// children returns the runes of x's children in ascending order.
func (x *node[V]) children() []rune {
	if len(x.next) == 0 {
		return nil
	}

	return slices.Sorted(maps.Keys(x.next))
}
