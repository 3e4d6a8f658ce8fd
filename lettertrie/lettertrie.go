// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package lettertrie defines the behavioral contract shared by the letter
// trie implementations in this module. A letter trie is a prefix tree keyed
// by lowercase letters, built from large word lists. Two node models
// implement the contract: the linked model, which keeps a back-link from
// every node to its parent, and the compact model, which keeps none. Both
// models must be observationally identical; the FixedNode snapshot is the
// sole mechanism used to verify this.
package lettertrie

// RootChar is the sentinel character held by the root node of every trie.
// Words are trimmed before insertion, so no real word can ever contain it.
const RootChar = ' '

// Trie is the capability interface implemented by all node models. A trie is
// created empty, populated by exactly one load strategy, and treated as
// read-only afterwards. None of the methods are safe for concurrent use;
// the parallel load strategy serializes all access on its collector.
type Trie interface {
	// Insert adds a single word to the trie. The word must be non-empty and
	// already normalized (trimmed and lowercased); normalization is the
	// responsibility of the word source. Inserting the same word twice is a
	// no-op.
	Insert(word string)

	// Find walks the given prefix from the root and returns a snapshot of
	// the subtree rooted at the matching node. The second return value is
	// false if some letter of the prefix is absent. An empty prefix returns
	// a snapshot of the whole trie.
	Find(prefix string) (FixedNode, bool)

	// Snapshot returns an immutable projection of the whole trie, equivalent
	// to Find("").
	Snapshot() FixedNode

	// Merge folds the top-level children of the given trie into this one.
	// Both tries must use the same node model; merging across models returns
	// an error. Merge is used by the parallel load strategy to attach
	// per-letter subtries to the shared root.
	Merge(other Trie) error
}

// Factory creates a new empty trie of a particular node model. Load
// strategies are written against Factory so that a single implementation
// serves all models.
type Factory func() Trie

// Variant identifies one of the available node models.
type Variant int

const (
	// Linked is the baseline node model with parent back-links.
	Linked Variant = iota
	// Compact is the stripped-down node model without parent links.
	Compact
)

func (v Variant) String() string {
	switch v {
	case Linked:
		return "Linked"
	case Compact:
		return "Compact"
	}
	return "unknown"
}

// Variants lists all node models, in the order tests and tools iterate them.
func Variants() []Variant {
	return []Variant{Linked, Compact}
}

// LoadMethod selects the strategy used to turn a word source into a
// populated trie. All methods produce snapshot-identical tries; they differ
// only in staging and parallelism.
type LoadMethod int

const (
	// ReadVecFill reads the whole word list into memory, converts it into a
	// vector of letter sequences, sorts that vector unconditionally, then
	// fills the trie.
	ReadVecFill LoadMethod = iota
	// VecFill builds the vector of letter sequences directly while reading,
	// sorts it only if the source is not declared pre-sorted, then fills the
	// trie.
	VecFill
	// Continuous inserts each word as it is read, with no intermediate
	// vector.
	Continuous
	// ContinuousParallel groups consecutively read words by first letter,
	// builds one subtrie per completed letter buffer on its own goroutine,
	// and merges finished subtries into the shared root as they arrive.
	ContinuousParallel
)

func (m LoadMethod) String() string {
	switch m {
	case ReadVecFill:
		return "ReadVecFill"
	case VecFill:
		return "VecFill"
	case Continuous:
		return "Continuous"
	case ContinuousParallel:
		return "ContinuousParallel"
	}
	return "unknown"
}

// LoadMethods lists all load strategies, in the order tests and tools
// iterate them.
func LoadMethods() []LoadMethod {
	return []LoadMethod{ReadVecFill, VecFill, Continuous, ContinuousParallel}
}
