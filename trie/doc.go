// Package trie provides TrieST, a string symbol table backed by a
// character-keyed prefix tree, with generic values.
//
// What
//
//   - Associates string keys with values of a single type V (compile-time parameter).
//   - Exact lookup: Get, Contains.
//   - Mutation: Put (insert or overwrite), Delete, PutOrDelete (nil value deletes).
//   - Ordered queries: Keys and KeysWithPrefix list every stored key under a
//     prefix; KeysThatMatch lists keys matching a pattern in which the wildcard
//     ('.' by default) stands for exactly one character; LongestPrefixOf finds
//     the longest stored key that is a prefix of a query.
//   - All: lazy iterator over key/value pairs.
//   - CheckInvariants: full-tree walk verifying the count and pruning invariants.
//
// Why
//
//   - Prefix and wildcard queries run in time proportional to the key length plus
//     the size of the answer, independent of how many keys are stored.
//   - Children are looked up by rune, so the alphabet is unbounded (full Unicode)
//     without allocating a fixed-radix array per node.
//
// Structure
//
//	Each node owns a lazily allocated map rune → child. A node carries a value
//	only if it terminates a stored key. Delete prunes bottom-up: a node left with
//	no value and no children is removed from its parent, and the removal cascades
//	upward until an ancestor still holds a value or another child. Read-only
//	traversals never create map entries.
//
//	          (root)
//	          /    \
//	        c        d
//	        |        |
//	        a        o
//	       / \       |
//	     r=2  t=1   g=4
//	     |
//	    t=3
//
// Determinism
//
//	Enumeration visits children in ascending code-point order, so Keys,
//	KeysWithPrefix, KeysThatMatch and All return keys in lexicographic
//	(code-point) order.
//
// Complexity (L = key length in characters, K = number of keys reported)
//
//   - Get, Contains, Put, Delete, LongestPrefixOf: O(L) map lookups.
//   - Size, IsEmpty: O(1), the count is maintained incrementally.
//   - KeysWithPrefix: O(L + size of the subtree under the prefix).
//   - KeysThatMatch: O(nodes matching the pattern's literal positions).
//   - Recursion depth is bounded by L.
//
// Usage
//
//	st := trie.New[int]()
//	_ = st.Put("she", 0)
//	_ = st.Put("shell", 3)
//	v, ok, err := st.Get("she")          // 0, true, nil
//	p, ok, err := st.LongestPrefixOf("shellsort") // "shell", true, nil
//	keys := st.KeysWithPrefix("sh")      // [she shell]
//	keys = st.KeysThatMatch("sh.")       // [she]
//
// Errors
//
//   - ErrInvalidArgument    key or query is not valid UTF-8, or the receiver is nil.
//     Validation happens before the tree is touched.
//   - ErrInvariantViolation returned by CheckInvariants only.
//
// A missing key is not an error: Get reports ok == false and Delete is a no-op.
//
// Concurrency
//
//	TrieST is not safe for concurrent use. SyncTrieST wraps one behind a
//	sync.RWMutex for callers that share a table across goroutines.
package trie
