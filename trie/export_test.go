package trie

// White-box bridge for trie_test: lets tests inspect node layout and
// break invariants on purpose to exercise CheckInvariants.

// NodeCountForTest returns the number of nodes reachable from the root.
func (t *TrieST[V]) NodeCountForTest() int {
	var count func(x *node[V]) int
	count = func(x *node[V]) int {
		if x == nil {
			return 0
		}
		n := 1
		for _, child := range x.next {
			n += count(child)
		}
		return n
	}

	return count(t.root)
}

// HasNodeForTest reports whether a node exists at the end of key,
// whether or not it holds a value.
func (t *TrieST[V]) HasNodeForTest(key string) bool {
	return t.find(key) != nil
}

// SkewCountForTest shifts the maintained count by delta without touching nodes.
func (t *TrieST[V]) SkewCountForTest(delta int) {
	t.n += delta
}

// GraftEmptyNodeForTest hangs a value-less, childless node under key,
// creating intermediate nodes as needed.
func (t *TrieST[V]) GraftEmptyNodeForTest(key string, c rune) {
	if t.root == nil {
		t.root = &node[V]{}
	}
	x := t.root
	for _, r := range key {
		if x.next == nil {
			x.next = make(map[rune]*node[V])
		}
		if x.next[r] == nil {
			x.next[r] = &node[V]{}
		}
		x = x.next[r]
	}
	if x.next == nil {
		x.next = make(map[rune]*node[V])
	}
	x.next[c] = &node[V]{}
}

// GraftNilChildForTest stores a nil child pointer under the root.
func (t *TrieST[V]) GraftNilChildForTest(c rune) {
	if t.root == nil {
		t.root = &node[V]{}
	}
	if t.root.next == nil {
		t.root.next = make(map[rune]*node[V])
	}
	t.root.next[c] = nil
}
