package trie

import (
	"fmt"
	"unicode/utf8"
)

// TrieST is a symbol table of string keys and values of type V,
// implemented as a rune-keyed prefix tree.
//
// The zero value is an empty table using DefaultWildcard; New applies options.
type TrieST[V any] struct {
	root     *node[V] // nil for an empty table
	n        int      // number of value-bearing nodes
	wildcard rune     // 0 means DefaultWildcard
}

// New creates an empty TrieST configured by opts.
// Complexity: O(1)
func New[V any](opts ...Option) *TrieST[V] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &TrieST[V]{wildcard: o.Wildcard}
}

// validate rejects a nil receiver and keys that are not valid UTF-8.
// It runs before any operation touches the tree.
func (t *TrieST[V]) validate(op, key string) error {
	if t == nil {
		return fmt.Errorf("%w: %s called on nil trie", ErrInvalidArgument, op)
	}
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: %s: key %q is not valid UTF-8", ErrInvalidArgument, op, key)
	}

	return nil
}

// Get returns the value associated with key.
// ok is false if key is not in the table; that is not an error.
// Complexity: O(L)
func (t *TrieST[V]) Get(key string) (val V, ok bool, err error) {
	if err = t.validate("Get", key); err != nil {
		return val, false, err
	}
	x := t.find(key)
	if x == nil || x.val == nil {
		return val, false, nil
	}

	return *x.val, true, nil
}

// Contains reports whether key is in the table.
// Complexity: O(L)
func (t *TrieST[V]) Contains(key string) (bool, error) {
	if err := t.validate("Contains", key); err != nil {
		return false, err
	}
	x := t.find(key)

	return x != nil && x.val != nil, nil
}

// find follows key from the root and returns the node it ends at, or nil.
// Lookups on a missing child do not modify the child maps.
func (t *TrieST[V]) find(key string) *node[V] {
	x := t.root
	for _, c := range key {
		if x == nil {
			return nil
		}
		x = x.next[c]
	}

	return x
}

// Put inserts the key-value pair, overwriting the old value if key is
// already present. The empty key is valid and is stored at the root.
// Complexity: O(L)
func (t *TrieST[V]) Put(key string, val V) error {
	if err := t.validate("Put", key); err != nil {
		return err
	}
	t.root = t.put(t.root, key, &val, 0)

	return nil
}

// PutOrDelete stores *val under key, or deletes key when val is nil.
// A nil value is never stored: "no value" means "not in the table".
// Complexity: O(L)
func (t *TrieST[V]) PutOrDelete(key string, val *V) error {
	if val == nil {
		return t.Delete(key)
	}

	return t.Put(key, *val)
}

// put creates x if needed, descends along key from byte offset d,
// and sets the value at the terminal node.
func (t *TrieST[V]) put(x *node[V], key string, val *V, d int) *node[V] {
	if x == nil {
		x = &node[V]{}
	}
	if d == len(key) {
		if x.val == nil {
			t.n++
		}
		x.val = val
		return x
	}
	c, size := utf8.DecodeRuneInString(key[d:])
	if x.next == nil {
		x.next = make(map[rune]*node[V], 1)
	}
	x.next[c] = t.put(x.next[c], key, val, d+size)

	return x
}

// Delete removes key and its value from the table, pruning nodes that are
// left without a value and without children. Deleting a key that is not
// present is a no-op.
// Complexity: O(L)
func (t *TrieST[V]) Delete(key string) error {
	if err := t.validate("Delete", key); err != nil {
		return err
	}
	t.root = t.delete(t.root, key, 0)

	return nil
}

// delete clears the value at the end of key and returns x, or nil when x
// became empty and must be dropped by its parent. Pruning therefore climbs
// only while each ancestor is left empty.
func (t *TrieST[V]) delete(x *node[V], key string, d int) *node[V] {
	if x == nil {
		return nil
	}
	if d == len(key) {
		if x.val != nil {
			t.n--
			x.val = nil
		}
	} else {
		c, size := utf8.DecodeRuneInString(key[d:])
		child, ok := x.next[c]
		if !ok {
			// path ends early: nothing stored under key
			return x
		}
		if t.delete(child, key, d+size) == nil {
			delete(x.next, c)
			if len(x.next) == 0 {
				x.next = nil
			}
		}
	}
	if x.isEmpty() {
		return nil
	}

	return x
}

// Size returns the number of key-value pairs in the table.
// Complexity: O(1)
func (t *TrieST[V]) Size() int {
	if t == nil {
		return 0
	}

	return t.n
}

// IsEmpty reports whether the table holds no keys.
// Complexity: O(1)
func (t *TrieST[V]) IsEmpty() bool {
	return t.Size() == 0
}

// LongestPrefixOf returns the longest key in the table that is a prefix of
// query. ok is false if no stored key (including "") is a prefix of query.
// Complexity: O(L)
func (t *TrieST[V]) LongestPrefixOf(query string) (prefix string, ok bool, err error) {
	if err = t.validate("LongestPrefixOf", query); err != nil {
		return "", false, err
	}

	// length is a byte offset into query; -1 while no match is known.
	length := -1
	x, d := t.root, 0
	for x != nil {
		if x.val != nil {
			length = d
		}
		if d == len(query) {
			break
		}
		c, size := utf8.DecodeRuneInString(query[d:])
		x = x.next[c]
		d += size
	}
	if length < 0 {
		return "", false, nil
	}

	return query[:length], true, nil
}
