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
	"errors"
	"fmt"
	"sync"

	"github.com/David-Thureson/letter-trie/go/common/result"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
)

// subtrieResult is the hand-off payload between a builder goroutine and the
// collector. The subtrie is exclusively owned by its builder until it is
// delivered here.
type subtrieResult struct {
	letter rune
	trie   result.Result[lettertrie.Trie]
}

// continuousParallel reads words on the calling goroutine, groups
// consecutively read words by their first letter, and dispatches each
// completed letter buffer to its own builder goroutine. A collector
// goroutine merges finished subtries into the shared root in arrival order,
// overlapping with the ongoing reading.
//
// Workers may finish in any order. The collector is the only goroutine
// touching the main trie, and each merge additionally holds the merge lock,
// so no two merges can ever interleave. If the input repeats a first letter
// non-consecutively, the second buffer's subtrie is folded into the already
// merged one rather than replacing it.
//
// A builder that panics is reported as a build failure naming the affected
// letter; the build never silently drops a letter's words. The number of
// collected subtries is reconciled against the number of dispatched buffers
// before the build is declared complete.
func continuousParallel(src lettertrie.Source, factory lettertrie.Factory) (lettertrie.Trie, error) {
	main := factory()

	results := make(chan subtrieResult, 16)
	var builders sync.WaitGroup
	var mergeLock sync.Mutex

	dispatched := 0
	dispatch := func(letter rune, words []string) {
		dispatched++
		builders.Add(1)
		go buildSubtrie(letter, words, factory, results, &builders)
	}

	// The collector merges subtries as builders finish.
	collected := 0
	var failures []error
	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for res := range results {
			collected++
			sub, err := res.trie.Get()
			if err != nil {
				failures = append(failures, err)
				continue
			}
			mergeLock.Lock()
			err = main.Merge(sub)
			mergeLock.Unlock()
			if err != nil {
				failures = append(failures, fmt.Errorf("merging subtrie for letter %q: %w", res.letter, err))
			}
		}
	}()

	var buffer []string
	var letter rune
	var readErr error
	for {
		word, ok, err := src.Next()
		if err != nil {
			readErr = err
			break
		}
		if !ok {
			break
		}
		first := []rune(word)[0]
		if len(buffer) > 0 && first != letter {
			dispatch(letter, buffer)
			buffer = nil
		}
		letter = first
		buffer = append(buffer, word)
	}
	if len(buffer) > 0 && readErr == nil {
		dispatch(letter, buffer)
	}

	// Fan back in: wait for all dispatched builders, then for the collector.
	builders.Wait()
	close(results)
	<-collectorDone

	if readErr != nil {
		return nil, readErr
	}
	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}
	if collected != dispatched {
		return nil, fmt.Errorf("parallel build incomplete: %d of %d subtries delivered", collected, dispatched)
	}
	return main, nil
}

// buildSubtrie builds a standalone trie from one letter's words. A panic
// during the build is delivered to the collector as a failure for that
// letter instead of being lost.
func buildSubtrie(letter rune, words []string, factory lettertrie.Factory, results chan<- subtrieResult, builders *sync.WaitGroup) {
	defer builders.Done()
	defer func() {
		if r := recover(); r != nil {
			results <- subtrieResult{
				letter: letter,
				trie:   result.Err[lettertrie.Trie](fmt.Errorf("building subtrie for letter %q: %v", letter, r)),
			}
		}
	}()
	sub := factory()
	for _, word := range words {
		sub.Insert(word)
	}
	results <- subtrieResult{letter: letter, trie: result.Ok(sub)}
}
