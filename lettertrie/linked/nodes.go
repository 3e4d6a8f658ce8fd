// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package linked

import (
	"github.com/David-Thureson/letter-trie/go/lettertrie"
)

// ---- Nodes ----

// node is one letter position of the linked trie. Every non-root node holds
// a back-link to its parent in addition to the child map.
//
// The back-link is strictly non-owning: it enables upward navigation, but it
// must never be used to extend the lifetime of a node beyond its place in
// the tree. A node detached from its parent would leave the back-link
// meaningless. This trie never removes nodes, so the back-link stays valid
// for as long as the owning trie itself, which is the only reason the field
// is safe to expose for traversal.
type node struct {
	char     rune
	isWord   bool
	parent   *node // < nil for the root only
	children map[rune]*node
}

func newNode(char rune, parent *node) *node {
	return &node{
		char:     char,
		parent:   parent,
		children: make(map[rune]*node),
	}
}

// getChild looks up the child for the given letter, recording the lookup in
// the process-wide counter.
func (n *node) getChild(char rune) (*node, bool) {
	child, ok := n.children[char]
	lettertrie.Counter().Record(ok)
	return child, ok
}

// absorb folds the subtree below other into the subtree below n. Children
// missing on this side are adopted wholesale, with their back-link rewired;
// children present on both sides are merged recursively. Lookups performed
// here are structural and bypass the counter.
func (n *node) absorb(other *node) {
	if other.isWord {
		n.isWord = true
	}
	for char, theirs := range other.children {
		if mine, ok := n.children[char]; ok {
			mine.absorb(theirs)
		} else {
			theirs.parent = n
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
