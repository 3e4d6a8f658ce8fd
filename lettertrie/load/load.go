// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package load implements the strategies that turn a word source into a
// populated letter trie. All strategies produce snapshot-identical tries for
// the same word set; they differ only in how reading and inserting are
// staged and whether subtries are built in parallel.
package load

import (
	"fmt"
	"slices"
	"time"

	"github.com/David-Thureson/letter-trie/go/common"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/David-Thureson/letter-trie/go/lettertrie/compact"
	"github.com/David-Thureson/letter-trie/go/lettertrie/linked"
)

// Options selects the load strategy and its observability behavior.
type Options struct {
	// Method is the load strategy to apply.
	Method lettertrie.LoadMethod
	// IsSorted declares the source pre-sorted. This is a pure performance
	// hint: VecFill skips its sort step on it, and no strategy depends on it
	// for correctness, since insertion order does not affect the resulting
	// tree shape.
	IsSorted bool
	// Display controls how much the build reports through the sink.
	Display lettertrie.DisplayOptions
	// Sink receives build reports. Nil defaults to a no-op sink.
	Sink lettertrie.Sink
	// Progress, if set, is stepped once per word read from the source. It is
	// used by the toolbox to report reading rates on large word lists.
	Progress *common.ProgressLogger
}

// progressSource decorates a word source to step a progress tracker on every
// yielded word.
type progressSource struct {
	lettertrie.Source
	progress *common.ProgressLogger
}

func (s progressSource) Next() (string, bool, error) {
	word, ok, err := s.Source.Next()
	if ok {
		s.progress.Step()
	}
	return word, ok, err
}

// FactoryFor resolves a node-model variant to its trie factory.
func FactoryFor(variant lettertrie.Variant) (lettertrie.Factory, error) {
	switch variant {
	case lettertrie.Linked:
		return linked.Factory, nil
	case lettertrie.Compact:
		return compact.Factory, nil
	}
	return nil, fmt.Errorf("unknown trie variant %d", variant)
}

// FromSource builds a trie from the given word source using the configured
// strategy. The source is consumed exactly once and closed before returning.
// A failing source aborts the build; individual lines that cannot be
// normalized have already been skipped by the source itself.
func FromSource(src lettertrie.Source, factory lettertrie.Factory, opts Options) (lettertrie.Trie, error) {
	sink := opts.Sink
	if sink == nil {
		sink = lettertrie.NopSink{}
	}
	if opts.Progress != nil {
		src = progressSource{Source: src, progress: opts.Progress}
	}

	start := time.Now()
	var trie lettertrie.Trie
	var err error
	switch opts.Method {
	case lettertrie.ReadVecFill:
		trie, err = readVecFill(src, factory, opts, sink)
	case lettertrie.VecFill:
		trie, err = vecFill(src, factory, opts, sink)
	case lettertrie.Continuous:
		trie, err = continuous(src, factory)
	case lettertrie.ContinuousParallel:
		trie, err = continuousParallel(src, factory)
	default:
		err = fmt.Errorf("unknown load method %d", opts.Method)
	}
	closeErr := src.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close word source: %w", closeErr)
	}

	if opts.Display.PrintOverallTime {
		sink.Step(opts.Display.Label, lettertrie.StepOverall, time.Since(start))
	}
	if opts.Display.TreeDetailLevel > 0 {
		sink.Tree(opts.Display.Label, opts.Display.TreeDetailLevel, trie.Snapshot())
	}
	return trie, nil
}

// FromFile builds a trie from a word-list file with one word per line.
func FromFile(path string, factory lettertrie.Factory, opts Options) (lettertrie.Trie, error) {
	src, err := lettertrie.OpenFileSource(path)
	if err != nil {
		return nil, err
	}
	return FromSource(src, factory, opts)
}

// FromDataset builds a trie of the given variant from one of the bundled
// datasets, taking the pre-sorted hint from the dataset itself.
func FromDataset(dataset lettertrie.Dataset, method lettertrie.LoadMethod, variant lettertrie.Variant, display lettertrie.DisplayOptions, sink lettertrie.Sink) (lettertrie.Trie, error) {
	factory, err := FactoryFor(variant)
	if err != nil {
		return nil, err
	}
	return FromFile(dataset.Filename(), factory, Options{
		Method:   method,
		IsSorted: dataset.IsSorted(),
		Display:  display,
		Sink:     sink,
	})
}

// readVecFill materializes the whole word list first, converts it into a
// vector of letter sequences, sorts that vector unconditionally, and only
// then fills the trie.
func readVecFill(src lettertrie.Source, factory lettertrie.Factory, opts Options, sink lettertrie.Sink) (lettertrie.Trie, error) {
	stepStart := time.Now()
	words, err := lettertrie.ReadAll(src)
	if err != nil {
		return nil, err
	}
	stepDone(opts, sink, lettertrie.StepReadFile, stepStart)

	stepStart = time.Now()
	vec := make([][]rune, len(words))
	for i, word := range words {
		vec[i] = []rune(word)
	}
	stepDone(opts, sink, lettertrie.StepMakeVector, stepStart)
	reportWords(opts, sink, len(vec))

	stepStart = time.Now()
	slices.SortFunc(vec, slices.Compare)
	stepDone(opts, sink, lettertrie.StepSortVector, stepStart)

	return fill(vec, factory, opts, sink), nil
}

// vecFill builds the vector of letter sequences directly while reading and
// skips the sort step when the source is declared pre-sorted.
func vecFill(src lettertrie.Source, factory lettertrie.Factory, opts Options, sink lettertrie.Sink) (lettertrie.Trie, error) {
	stepStart := time.Now()
	var vec [][]rune
	for {
		word, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		vec = append(vec, []rune(word))
	}
	stepDone(opts, sink, lettertrie.StepReadAndVector, stepStart)
	reportWords(opts, sink, len(vec))

	if !opts.IsSorted {
		stepStart = time.Now()
		slices.SortFunc(vec, slices.Compare)
		stepDone(opts, sink, lettertrie.StepSortVector, stepStart)
	}

	return fill(vec, factory, opts, sink), nil
}

// continuous inserts every word into the trie as it is read, with no
// intermediate vector.
func continuous(src lettertrie.Source, factory lettertrie.Factory) (lettertrie.Trie, error) {
	trie := factory()
	for {
		word, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return trie, nil
		}
		trie.Insert(word)
	}
}

func fill(vec [][]rune, factory lettertrie.Factory, opts Options, sink lettertrie.Sink) lettertrie.Trie {
	stepStart := time.Now()
	trie := factory()
	for _, word := range vec {
		trie.Insert(string(word))
	}
	stepDone(opts, sink, lettertrie.StepLoadFromVec, stepStart)
	return trie
}

func stepDone(opts Options, sink lettertrie.Sink, step string, start time.Time) {
	if opts.Display.PrintStepTime {
		sink.Step(opts.Display.Label, step, time.Since(start))
	}
}

func reportWords(opts Options, sink lettertrie.Sink, count int) {
	if opts.Display.TreeDetailLevel >= 1 {
		sink.Words(count)
	}
}
