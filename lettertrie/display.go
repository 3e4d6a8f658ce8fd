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
	"time"

	"github.com/David-Thureson/letter-trie/go/common"
)

// Step labels reported by the load strategies.
const (
	StepOverall       = "overall load"
	StepReadFile      = "read file"
	StepMakeVector    = "make vector"
	StepSortVector    = "sort vector"
	StepReadAndVector = "make vector from file"
	StepLoadFromVec   = "load from vector"
)

// Sink receives observability events emitted while building a trie. Calls
// are purely side effects; they have no influence on the resulting trie.
type Sink interface {
	// Step reports the elapsed time of one named build step.
	Step(label, step string, elapsed time.Duration)

	// Tree reports a snapshot of the finished trie. The detail level is 0
	// for nothing, 1 for a single summary line, and 2 for the full tree.
	Tree(label string, level int, root FixedNode)

	// Words reports the number of words gathered before the fill phase.
	Words(count int)
}

// DisplayOptions controls how much information a build reports through its
// sink.
type DisplayOptions struct {
	// PrintOverallTime reports the elapsed time of the whole build,
	// including reading the word list.
	PrintOverallTime bool
	// PrintStepTime reports the elapsed time of each build step. The steps
	// depend on the chosen load method.
	PrintStepTime bool
	// TreeDetailLevel selects how the finished trie is reported: 0 prints
	// nothing, 1 a single summary line, 2 the full tree.
	TreeDetailLevel int
	// Label is prepended to every report, typically composed with TestLabel.
	Label string
}

// NoDisplay returns options that suppress all reporting.
func NoDisplay() DisplayOptions {
	return DisplayOptions{}
}

// OverallTime returns options reporting only the total build time.
func OverallTime(dataset Dataset, method LoadMethod, variant Variant) DisplayOptions {
	return DisplayOptions{
		PrintOverallTime: true,
		Label:            TestLabel(dataset, method, variant),
	}
}

// Moderate returns options reporting overall and per-step times plus a trie
// summary. Small datasets get the full tree, larger ones a single line.
func Moderate(dataset Dataset, method LoadMethod, variant Variant) DisplayOptions {
	level := 1
	if dataset == SmallSorted || dataset == SmallUnsorted {
		level = 2
	}
	return DisplayOptions{
		PrintOverallTime: true,
		PrintStepTime:    true,
		TreeDetailLevel:  level,
		Label:            TestLabel(dataset, method, variant),
	}
}

// TestLabel composes the conventional label identifying one build
// configuration.
func TestLabel(dataset Dataset, method LoadMethod, variant Variant) string {
	return fmt.Sprintf("%v; %v; %v", dataset, method, variant)
}

// LogSink renders build events through a common.Log.
type LogSink struct {
	Log *common.Log
}

func (s LogSink) Step(label, step string, elapsed time.Duration) {
	s.Log.Printf("%s: %s: %v", label, step, elapsed)
}

func (s LogSink) Tree(label string, level int, root FixedNode) {
	switch {
	case level <= 0:
		return
	case level == 1:
		s.Log.Printf("%s: %v", label, root)
	default:
		s.Log.Printf("%s:\n%s", label, root.TreeString())
	}
}

func (s LogSink) Words(count int) {
	s.Log.Printf("Word count = %s", common.FormatCount(count))
}

// NopSink discards all build events.
type NopSink struct{}

func (NopSink) Step(string, string, time.Duration) {}
func (NopSink) Tree(string, int, FixedNode)        {}
func (NopSink) Words(int)                          {}
