// Package trie defines options, sentinel errors and node layout
// for the string symbol table.
package trie

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// DefaultWildcard is the pattern character KeysThatMatch treats as
// "any single character" unless WithWildcard overrides it.
const DefaultWildcard = '.'

// Sentinel errors for trie operations.
var (
	// ErrInvalidArgument is returned when a key or query is not a valid
	// character sequence (invalid UTF-8), or when the receiver is nil.
	ErrInvalidArgument = errors.New("trie: invalid argument")

	// ErrInvariantViolation is returned by CheckInvariants when the stored
	// count or the pruning invariant does not hold.
	ErrInvariantViolation = errors.New("trie: invariant violation")
)

// Option configures a TrieST at construction time.
type Option func(*TrieOptions)

// TrieOptions holds construction parameters for a TrieST.
type TrieOptions struct {
	// Wildcard is the pattern character matching any single character
	// in KeysThatMatch.
	Wildcard rune
}

// DefaultOptions returns TrieOptions with Wildcard set to DefaultWildcard.
func DefaultOptions() TrieOptions {
	return TrieOptions{Wildcard: DefaultWildcard}
}

// WithWildcard sets the wildcard character used by KeysThatMatch.
// Panics if r is not a valid Unicode scalar value or is NUL.
func WithWildcard(r rune) Option {
	if r == 0 || !utf8.ValidRune(r) {
		panic(fmt.Sprintf("trie: WithWildcard(%U): invalid wildcard rune", r))
	}

	return func(o *TrieOptions) {
		o.Wildcard = r
	}
}

// node is one character position on the path from the root.
// val == nil means the node does not terminate a stored key.
// next is allocated on first insertion below the node.
type node[V any] struct {
	val  *V
	next map[rune]*node[V]
}

// isEmpty reports whether x holds no value and has no children,
// i.e. it must be pruned.
func (x *node[V]) isEmpty() bool {
	return x.val == nil && len(x.next) == 0
}
