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
	"testing"

	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/stretchr/testify/require"
)

func TestTrie_EmptyTrieHasOnlyTheRoot(t *testing.T) {
	require := require.New(t)

	trie := New()
	root := trie.Snapshot()
	require.Equal(1, root.NodeCount)
	require.Equal(0, root.WordCount)
	require.Equal(0, root.Height)
	require.Equal(0, root.ChildCount)
	require.Equal(lettertrie.RootChar, root.Char)
}

func TestTrie_InsertedWordsShareTheirCommonPrefix(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")
	trie.Insert("car")
	trie.Insert("dog")

	root := trie.Snapshot()
	require.Equal(8, root.NodeCount) // root + c,a,t,r + d,o,g
	require.Equal(3, root.WordCount)
	require.Equal(3, root.Height)
	require.Equal(2, root.ChildCount) // c and d
}

func TestTrie_DuplicateInsertIsIdempotent(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")
	before := trie.Snapshot()

	trie.Insert("cat")
	after := trie.Snapshot()
	require.True(before.Equal(after))
	require.Equal(before.NodeCount, after.NodeCount)
	require.Equal(before.WordCount, after.WordCount)
}

func TestTrie_FindReturnsTheSubtreeOfThePrefix(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")
	trie.Insert("car")
	trie.Insert("dog")

	node, found := trie.Find("ca")
	require.True(found)
	require.Equal(3, node.NodeCount) // a itself plus t and r
	require.Equal(2, node.WordCount)
	require.Equal("ca", node.Prefix)
	require.Equal(2, node.Depth)
	require.False(node.IsWord)
}

func TestTrie_FindWithEmptyPrefixCoversTheWholeTrie(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")
	trie.Insert("dog")

	node, found := trie.Find("")
	require.True(found)
	require.True(node.Equal(trie.Snapshot()))
}

func TestTrie_FindOnAbsentPrefixReturnsNothing(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")

	for _, prefix := range []string{"x", "cab", "cats", "catt"} {
		_, found := trie.Find(prefix)
		require.False(found, "prefix %q should be absent", prefix)
	}
}

func TestTrie_WordNodesAreMarked(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")
	trie.Insert("ca")

	node, found := trie.Find("ca")
	require.True(found)
	require.True(node.IsWord)

	node, found = trie.Find("c")
	require.True(found)
	require.False(node.IsWord)
}

func TestTrie_MergeAttachesMissingLettersAndFoldsExistingOnes(t *testing.T) {
	require := require.New(t)

	main := New()
	main.Insert("cat")

	sub := New()
	sub.Insert("car")
	sub.Insert("dog")

	require.NoError(main.Merge(sub))

	want := New()
	want.Insert("cat")
	want.Insert("car")
	want.Insert("dog")
	require.True(main.Snapshot().Equal(want.Snapshot()))
}

func TestTrie_MergePreservesWordMarkers(t *testing.T) {
	require := require.New(t)

	main := New()
	main.Insert("cat")

	sub := New()
	sub.Insert("ca")

	require.NoError(main.Merge(sub))
	node, found := main.Find("ca")
	require.True(found)
	require.True(node.IsWord)
}

func TestTrie_MergeRejectsOtherNodeModels(t *testing.T) {
	require := require.New(t)

	var other fakeTrie
	trie := New()
	require.Error(trie.Merge(other))
}

func TestTrie_ParentPathReconstructsThePrefix(t *testing.T) {
	require := require.New(t)

	trie := New()
	trie.Insert("cat")
	trie.Insert("car")

	for _, prefix := range []string{"", "c", "ca", "cat", "car"} {
		path, found := trie.ParentPath(prefix)
		require.True(found, "prefix %q should be present", prefix)
		require.Equal(prefix, path)
	}

	_, found := trie.ParentPath("dog")
	require.False(found)
}

func TestTrie_MergedSubtreesGetTheirBackLinksRewired(t *testing.T) {
	require := require.New(t)

	main := New()
	main.Insert("apple")

	sub := New()
	sub.Insert("banana")

	require.NoError(main.Merge(sub))
	path, found := main.ParentPath("banana")
	require.True(found)
	require.Equal("banana", path)
}

// fakeTrie stands in for a foreign node model in merge rejection tests.
type fakeTrie struct{}

func (fakeTrie) Insert(string) {}
func (fakeTrie) Find(string) (lettertrie.FixedNode, bool) {
	return lettertrie.FixedNode{}, false
}
func (fakeTrie) Snapshot() lettertrie.FixedNode { return lettertrie.FixedNode{} }
func (fakeTrie) Merge(lettertrie.Trie) error    { return nil }
