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
	"os"
	"time"

	"github.com/David-Thureson/letter-trie/go/common"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/David-Thureson/letter-trie/go/lettertrie/load"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

var Benchmark = cli.Command{
	Action: addDiagnostics(doBenchmark),
	Name:   "benchmark",
	Usage:  "time every load method and node model combination on a dataset",
	Flags: []cli.Flag{
		&datasetFlag,
	},
}

func doBenchmark(context *cli.Context) error {
	dataset, err := parseDataset(context.String(datasetFlag.Name))
	if err != nil {
		return err
	}

	log := common.NewLog()

	// The whole word list and every trie built from it live in memory, so
	// give the operator a sense of the available headroom up front.
	log.Printf("total system memory: %s MB", common.FormatCount(memory.TotalMemory()/(1<<20)))
	log.Printf("dataset: %v (%s)", dataset, dataset.Filename())

	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.AppendHeader(table.Row{"Method", "Variant", "Elapsed", "Lookup hits", "Lookup misses"})
	for _, method := range lettertrie.LoadMethods() {
		for _, variant := range lettertrie.Variants() {
			lettertrie.Counter().Reset()
			start := time.Now()
			if _, err := load.FromDataset(dataset, method, variant, lettertrie.NoDisplay(), nil); err != nil {
				return err
			}
			elapsed := time.Since(start)
			writer.AppendRow(table.Row{
				method.String(), variant.String(), elapsed.Round(time.Microsecond),
				common.FormatCount(lettertrie.Counter().HitCount()),
				common.FormatCount(lettertrie.Counter().MissCount()),
			})
		}
	}
	writer.Render()
	return nil
}
