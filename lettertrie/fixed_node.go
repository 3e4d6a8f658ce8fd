// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package lettertrie

import (
	"fmt"
	"slices"
	"strings"
)

// FixedNode is an immutable snapshot of a subtree, independent of the node
// model that produced it. Snapshots are computed bottom-up in a single pass
// over a live trie and are used for equality testing, printing, and
// structural statistics; they are never mutated or re-attached to a trie.
//
// Children are stored in canonical order, sorted by Char. Since no two
// children of a node may share a letter, equality of two snapshots is plain
// recursive comparison regardless of the order words were inserted.
type FixedNode struct {
	// Char is the letter this node represents; the root holds RootChar.
	Char rune
	// Prefix is the full letter sequence from the root to this node.
	Prefix string
	// Depth is the distance from the root.
	Depth int
	// IsWord is true if some inserted word terminates exactly here.
	IsWord bool
	// ChildCount is the number of direct children.
	ChildCount int
	// NodeCount is the total number of nodes in this subtree, including
	// this one.
	NodeCount int
	// WordCount is the number of word-terminating nodes in this subtree,
	// including this one.
	WordCount int
	// Height is the length of the longest chain of descendants below this
	// node; 0 for a leaf.
	Height int
	// Children are the snapshots of the direct children, sorted by Char.
	Children []FixedNode
}

// NewFixedNode assembles a snapshot node from already-projected children,
// computing the aggregate counts bottom-up. The children slice is sorted in
// place into canonical order.
func NewFixedNode(char rune, prefix string, depth int, isWord bool, children []FixedNode) FixedNode {
	slices.SortFunc(children, func(a, b FixedNode) int {
		return int(a.Char) - int(b.Char)
	})
	res := FixedNode{
		Char:       char,
		Prefix:     prefix,
		Depth:      depth,
		IsWord:     isWord,
		ChildCount: len(children),
		NodeCount:  1,
		WordCount:  0,
		Height:     0,
		Children:   children,
	}
	if isWord {
		res.WordCount = 1
	}
	for _, child := range children {
		res.NodeCount += child.NodeCount
		res.WordCount += child.WordCount
		if child.Height+1 > res.Height {
			res.Height = child.Height + 1
		}
	}
	return res
}

// Equal reports whether two snapshots are structurally identical: every
// field must match at every corresponding node. Children are held in
// canonical order, so the comparison does not depend on insertion order.
func (n FixedNode) Equal(other FixedNode) bool {
	if n.Char != other.Char ||
		n.Prefix != other.Prefix ||
		n.Depth != other.Depth ||
		n.IsWord != other.IsWord ||
		n.ChildCount != other.ChildCount ||
		n.NodeCount != other.NodeCount ||
		n.WordCount != other.WordCount ||
		n.Height != other.Height ||
		len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders a single-line summary of this node, without its children.
func (n FixedNode) String() string {
	return fmt.Sprintf("FixedNode{char: %q, prefix: %q, depth: %d, is_word: %t, child_count: %d, node_count: %d, word_count: %d, height: %d}",
		n.Char, n.Prefix, n.Depth, n.IsWord, n.ChildCount, n.NodeCount, n.WordCount, n.Height)
}

// TreeString renders the subtree as an indented multi-line listing, one node
// per line. It is used for the highest display detail level.
func (n FixedNode) TreeString() string {
	var sb strings.Builder
	n.writeTree(&sb)
	return sb.String()
}

func (n FixedNode) writeTree(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("  ", n.Depth))
	sb.WriteString(n.String())
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.writeTree(sb)
	}
}
