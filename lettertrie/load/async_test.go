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
	"testing"

	"github.com/David-Thureson/letter-trie/go/common/future"
	"github.com/David-Thureson/letter-trie/go/common/result"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/stretchr/testify/require"
)

func TestFromSourceAsync_DeliversTheFinishedTrie(t *testing.T) {
	require := require.New(t)

	fut := FromSourceAsync(lettertrie.NewSliceSource(wordSets["classic"]), mustFactory(t, lettertrie.Compact), Options{
		Method: lettertrie.Continuous,
	})
	trie, err := fut.Await().Get()
	require.NoError(err)
	require.Equal(3, trie.Snapshot().WordCount)
}

func TestFromSourceAsync_ConcurrentBuildsAreIndependent(t *testing.T) {
	require := require.New(t)

	var futures []future.Future[result.Result[lettertrie.Trie]]
	for _, method := range lettertrie.LoadMethods() {
		for _, variant := range lettertrie.Variants() {
			futures = append(futures, FromSourceAsync(
				lettertrie.NewSliceSource(wordSets["many letters"]),
				mustFactory(t, variant),
				Options{Method: method},
			))
		}
	}

	var reference lettertrie.FixedNode
	for i, fut := range futures {
		trie, err := fut.Await().Get()
		require.NoError(err)
		if i == 0 {
			reference = trie.Snapshot()
			continue
		}
		require.True(trie.Snapshot().Equal(reference), "build %d diverged", i)
	}
}

func TestFromSourceAsync_PropagatesBuildFailures(t *testing.T) {
	require := require.New(t)

	fut := FromSourceAsync(lettertrie.NewSliceSource([]string{"ant"}), func() lettertrie.Trie {
		return &slowTrie{inner: mustNew(t, lettertrie.Compact), panicOn: 'a'}
	}, Options{Method: lettertrie.ContinuousParallel})

	_, err := fut.Await().Get()
	require.Error(err)
	require.Contains(err.Error(), "'a'")
}
