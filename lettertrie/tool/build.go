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
	"github.com/David-Thureson/letter-trie/go/common"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/David-Thureson/letter-trie/go/lettertrie/load"
	"github.com/urfave/cli/v2"
)

var Build = cli.Command{
	Action: addDiagnostics(doBuild),
	Name:   "build",
	Usage:  "build a trie from a dataset and report its structure and timings",
	Flags: []cli.Flag{
		&datasetFlag,
		&methodFlag,
		&variantFlag,
		&detailFlag,
	},
}

func doBuild(context *cli.Context) error {
	dataset, err := parseDataset(context.String(datasetFlag.Name))
	if err != nil {
		return err
	}
	method, err := parseMethod(context.String(methodFlag.Name))
	if err != nil {
		return err
	}
	variant, err := parseVariant(context.String(variantFlag.Name))
	if err != nil {
		return err
	}

	log := common.NewLog()
	display := lettertrie.Moderate(dataset, method, variant)
	display.TreeDetailLevel = context.Int(detailFlag.Name)

	factory, err := load.FactoryFor(variant)
	if err != nil {
		return err
	}

	lettertrie.Counter().Reset()
	trie, err := load.FromFile(dataset.Filename(), factory, load.Options{
		Method:   method,
		IsSorted: dataset.IsSorted(),
		Display:  display,
		Sink:     lettertrie.LogSink{Log: log},
		Progress: log.NewProgressTracker("read %d words, %.0f words/s", 100_000),
	})
	if err != nil {
		return err
	}

	root := trie.Snapshot()
	log.Printf("node count = %s, word count = %s, height = %d",
		common.FormatCount(root.NodeCount), common.FormatCount(root.WordCount), root.Height)
	lettertrie.Counter().PrintOptional(log)
	return nil
}
