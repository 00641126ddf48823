package trie

import "fmt"

// CheckInvariants walks the whole tree and verifies that:
//   - no node without a value and without children is reachable (pruning);
//   - no child map holds a nil entry;
//   - the maintained count equals the number of value-bearing nodes.
//
// Returns an error wrapping ErrInvariantViolation on the first breach.
// Complexity: O(number of nodes)
func (t *TrieST[V]) CheckInvariants() error {
	if t == nil {
		return fmt.Errorf("%w: CheckInvariants called on nil trie", ErrInvalidArgument)
	}
	counted, err := t.root.check(nil)
	if err != nil {
		return err
	}
	if counted != t.n {
		return fmt.Errorf("%w: size is %d but %d nodes hold a value", ErrInvariantViolation, t.n, counted)
	}

	return nil
}

// check returns the number of value-bearing nodes in the subtree at x.
func (x *node[V]) check(path []rune) (int, error) {
	if x == nil {
		return 0, nil
	}
	if x.isEmpty() {
		return 0, fmt.Errorf("%w: empty node reachable at %q", ErrInvariantViolation, string(path))
	}
	count := 0
	if x.val != nil {
		count++
	}
	for _, c := range x.children() {
		child := x.next[c]
		if child == nil {
			return 0, fmt.Errorf("%w: nil child %q under %q", ErrInvariantViolation, c, string(path))
		}
		n, err := child.check(append(path, c))
		if err != nil {
			return 0, err
		}
		count += n
	}

	return count, nil
}
