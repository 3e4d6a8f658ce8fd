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

// Dataset selects one of the bundled word-list files. Whether a dataset is
// already sorted may affect the speed of some load methods, but the
// resulting trie is identical either way.
type Dataset int

const (
	// SmallSorted is a small file with nine sorted English words.
	SmallSorted Dataset = iota
	// SmallUnsorted is a small file with nine unsorted English words.
	SmallUnsorted
	// MediumSorted is a medium file with 10,000 sorted non-English words.
	MediumSorted
	// MediumUnsorted is a medium file with 10,000 unsorted non-English words.
	MediumUnsorted
	// LargeSorted is a large file with 584,983 sorted non-English words.
	LargeSorted
	// LargeUnsorted is a large file with 584,983 unsorted non-English words.
	LargeUnsorted
)

// Filename returns the path of the word-list file backing this dataset.
func (d Dataset) Filename() string {
	switch d {
	case SmallSorted:
		return "words_9_sorted.txt"
	case SmallUnsorted:
		return "words_9_unsorted.txt"
	case MediumSorted:
		return "words_10_000_sorted.txt"
	case MediumUnsorted:
		return "words_10_000_unsorted.txt"
	case LargeSorted:
		return "words_584_983_sorted.txt"
	case LargeUnsorted:
		return "words_584_983_unsorted.txt"
	}
	return ""
}

// IsSorted reports whether the dataset is already in alphabetical order.
func (d Dataset) IsSorted() bool {
	switch d {
	case SmallSorted, MediumSorted, LargeSorted:
		return true
	}
	return false
}

func (d Dataset) String() string {
	switch d {
	case SmallSorted:
		return "SmallSorted"
	case SmallUnsorted:
		return "SmallUnsorted"
	case MediumSorted:
		return "MediumSorted"
	case MediumUnsorted:
		return "MediumUnsorted"
	case LargeSorted:
		return "LargeSorted"
	case LargeUnsorted:
		return "LargeUnsorted"
	}
	return "unknown"
}

// Datasets lists all bundled datasets.
func Datasets() []Dataset {
	return []Dataset{
		SmallSorted, SmallUnsorted,
		MediumSorted, MediumUnsorted,
		LargeSorted, LargeUnsorted,
	}
}
