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
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

//go:generate mockgen -source source.go -destination source_mocks.go -package lettertrie

// Source produces a lazy, finite, single-pass sequence of normalized words:
// trimmed, lowercased, with blank lines omitted. A load strategy consumes a
// source exactly once and never rewinds it.
type Source interface {
	// Next returns the next word of the sequence. The second return value is
	// false once the sequence is exhausted. A non-nil error aborts the build;
	// it is only reported for failures of the underlying medium, never for
	// individual lines that merely fail to normalize.
	Next() (string, bool, error)

	// Close releases the underlying medium. It is safe to call after
	// exhaustion and at most once.
	Close() error
}

// fileSource reads words from a text file containing one word per line.
type fileSource struct {
	file    *os.File
	scanner *bufio.Scanner
}

// OpenFileSource opens a word-list file with one word per line. Lines are
// trimmed and lowercased, blank lines are skipped, and lines that are not
// valid UTF-8 are dropped rather than failing the build.
func OpenFileSource(path string) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	return &fileSource{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

func (s *fileSource) Next() (string, bool, error) {
	for s.scanner.Scan() {
		word, ok := Normalize(s.scanner.Text())
		if !ok {
			continue // skip malformed or blank lines
		}
		return word, true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", false, fmt.Errorf("failed to read word list %s: %w", s.file.Name(), err)
	}
	return "", false, nil
}

func (s *fileSource) Close() error {
	return s.file.Close()
}

// sliceSource yields an in-memory list of words, normalizing them the same
// way a file source does. It is used by tests and the toolbox.
type sliceSource struct {
	words []string
	next  int
}

// NewSliceSource creates a source over the given words.
func NewSliceSource(words []string) Source {
	return &sliceSource{words: words}
}

func (s *sliceSource) Next() (string, bool, error) {
	for s.next < len(s.words) {
		word, ok := Normalize(s.words[s.next])
		s.next++
		if ok {
			return word, true, nil
		}
	}
	return "", false, nil
}

func (s *sliceSource) Close() error {
	return nil
}

// Normalize trims and lowercases one raw line. The second return value is
// false if the line has no usable content: blank lines and lines that are
// not valid UTF-8 are skipped by all sources.
func Normalize(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !utf8.ValidString(line) {
		return "", false
	}
	return strings.ToLower(line), true
}

// ReadAll drains the given source into a slice. Closing the source remains
// the caller's responsibility.
func ReadAll(src Source) ([]string, error) {
	var words []string
	for {
		word, ok, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("reading words: %w", err)
		}
		if !ok {
			return words, nil
		}
		words = append(words, word)
	}
}
