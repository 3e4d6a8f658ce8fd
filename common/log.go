// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Log is a minimal Printf-style logger used for operator-facing output of
// the load strategies and the command line toolbox. It exists so that tests
// can capture output instead of writing to stdout.
type Log struct {
	out io.Writer
}

// NewLog creates a log writing to stdout.
func NewLog() *Log {
	return &Log{out: os.Stdout}
}

// NewLogTo creates a log writing to the given writer.
func NewLogTo(out io.Writer) *Log {
	return &Log{out: out}
}

// Printf writes one formatted line to the log.
func (l *Log) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// NewProgressTracker creates a tracker reporting through this log every
// `interval` steps. The format string receives the number of steps so far
// and the current rate in steps per second.
func (l *Log) NewProgressTracker(format string, interval uint64) *ProgressLogger {
	return &ProgressLogger{
		log:      l,
		format:   format,
		interval: interval,
		start:    time.Now(),
	}
}

// ProgressLogger reports the progress of a long-running operation at fixed
// step intervals. It is not safe for concurrent use; each goroutine needing
// progress reporting should own its own tracker.
type ProgressLogger struct {
	log      *Log
	format   string
	interval uint64
	steps    uint64
	start    time.Time
}

// Step advances the tracker by one and emits a report whenever the step
// count reaches a multiple of the configured interval.
func (p *ProgressLogger) Step() {
	p.steps++
	if p.steps%p.interval != 0 {
		return
	}
	elapsed := time.Since(p.start)
	rate := float64(p.steps) / elapsed.Seconds()
	p.log.Printf(p.format, p.steps, rate)
}

// Steps returns the number of steps recorded so far.
func (p *ProgressLogger) Steps() uint64 {
	return p.steps
}
