// Package algs4 is a collection of classroom-style reference implementations
// of classic algorithms and data structures, written as small, independent,
// well-tested Go packages.
//
// What is in the module?
//
//	trie/          — TrieST: a string symbol table on a rune-keyed prefix tree
//	                 (exact lookup, prefix enumeration, wildcard match,
//	                 longest-prefix query, eager pruning on delete)
//	cmd/triectl/   — command-line front end that loads a word list and queries it
//	internal/      — configuration, logging and dictionary loading for triectl
//
// Quick ASCII example: the keys {cat, car, cart, dog}
//
//	      (root)
//	      /    \
//	     c      d
//	     |      |
//	     a      o
//	    / \     |
//	   r   t    g
//	   |
//	   t
//
// Every package documents its complexity, error sentinels and determinism
// guarantees in its doc.go, and ships runnable examples.
//
//	go get github.com/AlexKokoz/Algs4/trie
package algs4
