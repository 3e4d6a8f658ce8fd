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
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// addDiagnostics wraps a command action to honor the global cpuprofile and
// tracefile flags around its execution.
func addDiagnostics(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) error {
		cpuProfileFile := context.String(cpuProfileFlag.Name)
		if strings.TrimSpace(cpuProfileFile) != "" {
			f, err := os.Create(cpuProfileFile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		traceFile := context.String(traceFlag.Name)
		if strings.TrimSpace(traceFile) != "" {
			f, err := os.Create(traceFile)
			if err != nil {
				return fmt.Errorf("failed to create trace file: %w", err)
			}
			if err := trace.Start(f); err != nil {
				return fmt.Errorf("failed to start trace: %w", err)
			}
			defer trace.Stop()
		}

		return action(context)
	}
}
