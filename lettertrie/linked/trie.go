// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package linked provides the baseline letter trie node model. Every node
// keeps a non-owning back-link to its parent, allowing upward navigation at
// the price of one extra pointer per node.
package linked

import (
	"fmt"
	"strings"

	"github.com/David-Thureson/letter-trie/go/lettertrie"
)

// Trie is the parent-tracking implementation of lettertrie.Trie. It is not
// safe for concurrent use.
type Trie struct {
	root *node
}

// New creates an empty trie. The root holds the sentinel character, which no
// normalized word can contain.
func New() *Trie {
	return &Trie{root: newNode(lettertrie.RootChar, nil)}
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
			next = newNode(char, current)
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
// other trie must also use the linked node model.
func (t *Trie) Merge(other lettertrie.Trie) error {
	o, ok := other.(*Trie)
	if !ok {
		return fmt.Errorf("cannot merge %T into a linked trie", other)
	}
	t.root.absorb(o.root)
	return nil
}

// ParentPath walks down to the node matching the given prefix and then
// reconstructs the prefix by following parent back-links up to the root. It
// exists for traversal and debugging only; see the back-link lifetime note
// on the node type. The second return value is false if the prefix is not
// present.
func (t *Trie) ParentPath(prefix string) (string, bool) {
	current := t.root
	for _, char := range prefix {
		next, ok := current.getChild(char)
		if !ok {
			return "", false
		}
		current = next
	}
	var sb strings.Builder
	for n := current; n.parent != nil; n = n.parent {
		sb.WriteRune(n.char)
	}
	runes := []rune(sb.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), true
}
