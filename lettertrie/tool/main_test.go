// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"testing"

	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/stretchr/testify/require"
)

func TestParseDataset_AcceptsAllNamesCaseInsensitively(t *testing.T) {
	require := require.New(t)

	for _, dataset := range lettertrie.Datasets() {
		parsed, err := parseDataset(dataset.String())
		require.NoError(err)
		require.Equal(dataset, parsed)
	}

	parsed, err := parseDataset("smallsorted")
	require.NoError(err)
	require.Equal(lettertrie.SmallSorted, parsed)

	_, err = parseDataset("huge")
	require.ErrorContains(err, "unknown dataset")
}

func TestParseMethod_AcceptsAllNamesCaseInsensitively(t *testing.T) {
	require := require.New(t)

	for _, method := range lettertrie.LoadMethods() {
		parsed, err := parseMethod(method.String())
		require.NoError(err)
		require.Equal(method, parsed)
	}

	parsed, err := parseMethod("continuousparallel")
	require.NoError(err)
	require.Equal(lettertrie.ContinuousParallel, parsed)

	_, err = parseMethod("bulk")
	require.ErrorContains(err, "unknown load method")
}

func TestParseVariant_AcceptsAllNamesCaseInsensitively(t *testing.T) {
	require := require.New(t)

	for _, variant := range lettertrie.Variants() {
		parsed, err := parseVariant(variant.String())
		require.NoError(err)
		require.Equal(variant, parsed)
	}

	parsed, err := parseVariant("LINKED")
	require.NoError(err)
	require.Equal(lettertrie.Linked, parsed)

	_, err = parseVariant("boxed")
	require.ErrorContains(err, "unknown trie variant")
}
