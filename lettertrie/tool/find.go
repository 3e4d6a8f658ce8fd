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

	"github.com/David-Thureson/letter-trie/go/common"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
	"github.com/David-Thureson/letter-trie/go/lettertrie/load"
	"github.com/urfave/cli/v2"
)

var Find = cli.Command{
	Action:    addDiagnostics(doFind),
	Name:      "find",
	Usage:     "build a trie from a dataset and look up a prefix",
	ArgsUsage: "<prefix>",
	Flags: []cli.Flag{
		&datasetFlag,
		&variantFlag,
		&detailFlag,
	},
}

func doFind(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing prefix argument")
	}
	prefix, ok := lettertrie.Normalize(context.Args().Get(0))
	if !ok {
		return fmt.Errorf("prefix is empty after normalization")
	}

	dataset, err := parseDataset(context.String(datasetFlag.Name))
	if err != nil {
		return err
	}
	variant, err := parseVariant(context.String(variantFlag.Name))
	if err != nil {
		return err
	}

	trie, err := load.FromDataset(dataset, lettertrie.Continuous, variant, lettertrie.NoDisplay(), nil)
	if err != nil {
		return err
	}

	log := common.NewLog()
	node, found := trie.Find(prefix)
	if !found {
		log.Printf("prefix %q not found", prefix)
		return nil
	}
	if context.Int(detailFlag.Name) >= 2 {
		log.Printf("%s", node.TreeString())
	} else {
		log.Printf("%v", node)
	}
	return nil
}
