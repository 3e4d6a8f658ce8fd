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
	"strings"

	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./lettertrie/tool <command> <flags>

var (
	datasetFlag = cli.StringFlag{
		Name:  "dataset",
		Usage: "word list to load (SmallSorted, SmallUnsorted, MediumSorted, MediumUnsorted, LargeSorted, LargeUnsorted)",
		Value: "MediumUnsorted",
	}
	methodFlag = cli.StringFlag{
		Name:  "method",
		Usage: "load method (ReadVecFill, VecFill, Continuous, ContinuousParallel)",
		Value: "Continuous",
	}
	variantFlag = cli.StringFlag{
		Name:  "variant",
		Usage: "node model (Linked, Compact)",
		Value: "Compact",
	}
	detailFlag = cli.IntFlag{
		Name:  "detail",
		Usage: "trie report detail: 0 nothing, 1 summary line, 2 full tree",
		Value: 0,
	}
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	traceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
)

func main() {
	app := &cli.App{
		Name:  "tool",
		Usage: "letter trie toolbox",
		Flags: []cli.Flag{
			&cpuProfileFlag,
			&traceFlag,
		},
		Commands: []*cli.Command{
			&Build,
			&Compare,
			&Benchmark,
			&Find,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseDataset(name string) (lettertrie.Dataset, error) {
	for _, dataset := range lettertrie.Datasets() {
		if strings.EqualFold(name, dataset.String()) {
			return dataset, nil
		}
	}
	return 0, fmt.Errorf("unknown dataset %q", name)
}

func parseMethod(name string) (lettertrie.LoadMethod, error) {
	for _, method := range lettertrie.LoadMethods() {
		if strings.EqualFold(name, method.String()) {
			return method, nil
		}
	}
	return 0, fmt.Errorf("unknown load method %q", name)
}

func parseVariant(name string) (lettertrie.Variant, error) {
	for _, variant := range lettertrie.Variants() {
		if strings.EqualFold(name, variant.String()) {
			return variant, nil
		}
	}
	return 0, fmt.Errorf("unknown trie variant %q", name)
}
