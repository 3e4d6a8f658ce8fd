// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package load

import (
	"fmt"
	"testing"
	"time"

	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/stretchr/testify/require"
)

func TestContinuousParallel_MatchesSequentialConstruction(t *testing.T) {
	require := require.New(t)

	// Letter-clustered input, the layout the strategy is optimized for.
	var words []string
	for _, letter := range "abcdefghijklmnopqrstuvwxyz" {
		for i := 0; i < 20; i++ {
			words = append(words, fmt.Sprintf("%c%s%d", letter, "word", i))
		}
	}

	for _, variant := range lettertrie.Variants() {
		factory := mustFactory(t, variant)

		sequential, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.Continuous})
		require.NoError(err)
		parallel, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.ContinuousParallel})
		require.NoError(err)

		require.True(parallel.Snapshot().Equal(sequential.Snapshot()), "variant %v", variant)
	}
}

func TestContinuousParallel_RepeatedLettersAcrossBuffersAreFoldedNotOverwritten(t *testing.T) {
	require := require.New(t)

	// The letter a appears in two non-consecutive buffers; the second
	// subtrie must be merged into the first, not replace it.
	words := []string{"apple", "apricot", "banana", "avocado", "almond", "blueberry", "ant"}
	factory := mustFactory(t, lettertrie.Compact)

	sequential, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.Continuous})
	require.NoError(err)
	parallel, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.ContinuousParallel})
	require.NoError(err)

	require.True(parallel.Snapshot().Equal(sequential.Snapshot()))
	require.Equal(len(words), parallel.Snapshot().WordCount) // no words lost
}

func TestContinuousParallel_ReversedCompletionOrderStillMergesCorrectly(t *testing.T) {
	require := require.New(t)

	// Builders for earlier letters are slowed down so that completion order
	// is the reverse of submission order: c finishes first, then b, then a.
	words := []string{"ant", "ape", "axe", "bat", "bee", "cat", "cow"}
	delays := map[rune]time.Duration{'a': 40 * time.Millisecond, 'b': 20 * time.Millisecond, 'c': 0}
	factory := func() lettertrie.Trie {
		return &slowTrie{inner: mustNew(t, lettertrie.Compact), delays: delays}
	}

	parallel, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.ContinuousParallel})
	require.NoError(err)

	sequential, err := FromSource(lettertrie.NewSliceSource(words), mustFactory(t, lettertrie.Compact), Options{Method: lettertrie.Continuous})
	require.NoError(err)

	require.True(unwrap(parallel).Snapshot().Equal(sequential.Snapshot()))
}

func TestContinuousParallel_WorkerFailureIsSurfacedWithTheLetter(t *testing.T) {
	require := require.New(t)

	words := []string{"ant", "bat", "bee", "cat"}
	factory := func() lettertrie.Trie {
		return &slowTrie{inner: mustNew(t, lettertrie.Compact), panicOn: 'b'}
	}

	_, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.ContinuousParallel})
	require.Error(err)
	require.Contains(err.Error(), "'b'")
	require.Contains(err.Error(), "boom")
}

func TestContinuousParallel_AllWorkerFailuresAreCollected(t *testing.T) {
	require := require.New(t)

	words := []string{"ant", "bat", "cat"}
	factory := func() lettertrie.Trie {
		return &slowTrie{inner: mustNew(t, lettertrie.Compact), panicOn: 'a', alsoPanicOn: 'c'}
	}

	_, err := FromSource(lettertrie.NewSliceSource(words), factory, Options{Method: lettertrie.ContinuousParallel})
	require.Error(err)
	require.Contains(err.Error(), "'a'")
	require.Contains(err.Error(), "'c'")
	require.NotContains(err.Error(), "'b'")
}

func TestContinuousParallel_SingleLetterInputUsesOneBuffer(t *testing.T) {
	require := require.New(t)

	words := []string{"ant", "ape", "axe"}
	parallel, err := FromSource(lettertrie.NewSliceSource(words), mustFactory(t, lettertrie.Linked), Options{Method: lettertrie.ContinuousParallel})
	require.NoError(err)

	root := parallel.Snapshot()
	require.Equal(1, root.ChildCount)
	require.Equal(3, root.WordCount)
}

// slowTrie wraps a real trie to slow down or fail inserts depending on the
// first letter, to steer builder completion order in tests.
type slowTrie struct {
	inner       lettertrie.Trie
	delays      map[rune]time.Duration
	panicOn     rune
	alsoPanicOn rune
}

func (s *slowTrie) Insert(word string) {
	first := []rune(word)[0]
	if first == s.panicOn || (s.alsoPanicOn != 0 && first == s.alsoPanicOn) {
		panic("boom")
	}
	if delay, ok := s.delays[first]; ok {
		time.Sleep(delay)
	}
	s.inner.Insert(word)
}

func (s *slowTrie) Find(prefix string) (lettertrie.FixedNode, bool) {
	return s.inner.Find(prefix)
}

func (s *slowTrie) Snapshot() lettertrie.FixedNode {
	return s.inner.Snapshot()
}

func (s *slowTrie) Merge(other lettertrie.Trie) error {
	return s.inner.Merge(unwrap(other))
}

// unwrap peels the test wrapper off a trie so real tries can merge it.
func unwrap(trie lettertrie.Trie) lettertrie.Trie {
	if s, ok := trie.(*slowTrie); ok {
		return s.inner
	}
	return trie
}

func mustNew(t *testing.T, variant lettertrie.Variant) lettertrie.Trie {
	t.Helper()
	return mustFactory(t, variant)()
}
