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
	"fmt"
	"os"

	"github.com/David-Thureson/letter-trie/go/common/future"
	"github.com/David-Thureson/letter-trie/go/common/result"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/David-Thureson/letter-trie/go/lettertrie/load"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var Compare = cli.Command{
	Action: addDiagnostics(doCompare),
	Name:   "compare",
	Usage:  "build one dataset with every load method and node model and verify all results are identical",
	Flags: []cli.Flag{
		&datasetFlag,
	},
}

func doCompare(context *cli.Context) error {
	dataset, err := parseDataset(context.String(datasetFlag.Name))
	if err != nil {
		return err
	}

	type build struct {
		method  lettertrie.LoadMethod
		variant lettertrie.Variant
		fut     future.Future[result.Result[lettertrie.Trie]]
	}

	// Every build reads its own source; kicking them all off concurrently
	// keeps the comparison honest across thread interleavings.
	var builds []build
	for _, method := range lettertrie.LoadMethods() {
		for _, variant := range lettertrie.Variants() {
			factory, err := load.FactoryFor(variant)
			if err != nil {
				return err
			}
			src, err := lettertrie.OpenFileSource(dataset.Filename())
			if err != nil {
				return err
			}
			fut := load.FromSourceAsync(src, factory, load.Options{
				Method:   method,
				IsSorted: dataset.IsSorted(),
			})
			builds = append(builds, build{method: method, variant: variant, fut: fut})
		}
	}

	var reference lettertrie.FixedNode
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.AppendHeader(table.Row{"Method", "Variant", "Nodes", "Words", "Height", "Identical"})
	for i, b := range builds {
		trie, err := b.fut.Await().Get()
		if err != nil {
			return fmt.Errorf("build %v failed: %w", lettertrie.TestLabel(dataset, b.method, b.variant), err)
		}
		root := trie.Snapshot()
		identical := true
		if i == 0 {
			reference = root
		} else {
			identical = root.Equal(reference)
		}
		writer.AppendRow(table.Row{
			b.method.String(), b.variant.String(),
			root.NodeCount, root.WordCount, root.Height, identical,
		})
		if !identical {
			writer.Render()
			return fmt.Errorf("%v produced a different trie than %v",
				lettertrie.TestLabel(dataset, b.method, b.variant),
				lettertrie.TestLabel(dataset, builds[0].method, builds[0].variant))
		}
	}
	writer.Render()
	return nil
}
