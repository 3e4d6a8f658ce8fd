// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package compact provides the stripped-down letter trie node model. Nodes
// are owned exclusively through their parent's child map and keep no upward
// references, so no upward navigation exists.
package compact

import (
	"fmt"

	"github.com/David-Thureson/letter-trie/go/lettertrie"
)

// Trie is the no-parent implementation of lettertrie.Trie. It is not safe
// for concurrent use.
type Trie struct {
	root *node
}

// node is one letter position of the compact trie.
type node struct {
	char     rune
	isWord   bool
	children map[rune]*node
}

func newNode(char rune) *node {
	return &node{
		char:     char,
		children: make(map[rune]*node),
	}
}

// New creates an empty trie. The root holds the sentinel character, which no
// normalized word can contain.
func New() *Trie {
	return &Trie{root: newNode(lettertrie.RootChar)}
}

// Factory adapts New to the lettertrie.Factory signature.
func Factory() lettertrie.Trie {
	return New()
}

// Insert adds one normalized word to the trie. Existing letters along the
// path are reused; inserting the same word twice changes nothing.
func (t *Trie) Insert(word string) {
	current := t.root
	for _, char := range word {
		next, ok := current.getChild(char)
		if !ok {
			next = newNode(char)
			current.children[char] = next
		}
		current = next
	}
	current.isWord = true
}

// Find walks the prefix from the root and returns a snapshot of the subtree
// rooted at the matching node, or false if some letter along the path is
// absent. An empty prefix yields a snapshot of the whole trie.
func (t *Trie) Find(prefix string) (lettertrie.FixedNode, bool) {
	current := t.root
	for _, char := range prefix {
		next, ok := current.getChild(char)
		if !ok {
			return lettertrie.FixedNode{}, false
		}
		current = next
	}
	return current.toFixedNode(prefix, len([]rune(prefix))), true
}

// Snapshot projects the whole trie into an immutable snapshot.
func (t *Trie) Snapshot() lettertrie.FixedNode {
	return t.root.toFixedNode("", 0)
}

// Merge folds the top-level children of the given trie into this one. The
// other trie must also use the compact node model.
func (t *Trie) Merge(other lettertrie.Trie) error {
	o, ok := other.(*Trie)
	if !ok {
		return fmt.Errorf("cannot merge %T into a compact trie", other)
	}
	t.root.absorb(o.root)
	return nil
}

// getChild looks up the child for the given letter, recording the lookup in
// the process-wide counter.
func (n *node) getChild(char rune) (*node, bool) {
	child, ok := n.children[char]
	lettertrie.Counter().Record(ok)
	return child, ok
}

// absorb folds the subtree below other into the subtree below n. Children
// missing on this side are adopted wholesale; children present on both sides
// are merged recursively. Lookups performed here are structural and bypass
// the counter.
func (n *node) absorb(other *node) {
	if other.isWord {
		n.isWord = true
	}
	for char, theirs := range other.children {
		if mine, ok := n.children[char]; ok {
			mine.absorb(theirs)
		} else {
			n.children[char] = theirs
		}
	}
}

// toFixedNode projects the subtree below n bottom-up into an immutable
// snapshot. The prefix and depth describe n's position relative to the
// trie's root.
func (n *node) toFixedNode(prefix string, depth int) lettertrie.FixedNode {
	children := make([]lettertrie.FixedNode, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child.toFixedNode(prefix+string(child.char), depth+1))
	}
	return lettertrie.NewFixedNode(n.char, prefix, depth, n.isWord, children)
}
