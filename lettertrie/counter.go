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
	"fmt"
	"sync/atomic"

	"github.com/David-Thureson/letter-trie/go/common"
)

// CharGetCounter holds process-wide counters for child-by-letter lookups
// performed during insertion and prefix search, across all tries and both
// node models. The counters are informational only and never affect trie
// structure or query results. Increments are atomic so that the parallel
// load strategy can record from multiple builder goroutines.
//
// The lifecycle is explicit: reset, accumulate over one or more builds, then
// read or print. Tests asserting on the counters must reset them first.
type CharGetCounter struct {
	hitCount  atomic.Uint64
	missCount atomic.Uint64
}

// charGetCounter is the single process-wide instance.
var charGetCounter CharGetCounter

// Counter returns the process-wide lookup counter.
func Counter() *CharGetCounter {
	return &charGetCounter
}

// Reset sets both counters back to zero.
func (c *CharGetCounter) Reset() {
	c.hitCount.Store(0)
	c.missCount.Store(0)
}

// Record registers one child lookup: a hit if the child existed, a miss if
// it did not.
func (c *CharGetCounter) Record(hit bool) {
	if hit {
		c.hitCount.Add(1)
	} else {
		c.missCount.Add(1)
	}
}

// HitCount returns the number of lookups that found an existing child.
func (c *CharGetCounter) HitCount() uint64 {
	return c.hitCount.Load()
}

// MissCount returns the number of lookups for an absent child.
func (c *CharGetCounter) MissCount() uint64 {
	return c.missCount.Load()
}

func (c *CharGetCounter) String() string {
	hits := c.hitCount.Load()
	misses := c.missCount.Load()
	total := hits + misses
	if total == 0 {
		return "CharGetCounter: nothing recorded"
	}
	hitPct := float64(hits) / float64(total)
	return fmt.Sprintf("CharGetCounter: hit count = %s; miss count = %s, hit pct = %v",
		common.FormatCount(hits), common.FormatCount(misses), hitPct)
}

// Print writes the counter summary to the given log.
func (c *CharGetCounter) Print(log *common.Log) {
	log.Printf("%s", c.String())
}

// PrintOptional writes the counter summary only if any lookup has been
// recorded since the last reset. Calling it on an idle counter is a no-op,
// which keeps repeated reporting idempotent.
func (c *CharGetCounter) PrintOptional(log *common.Log) {
	if c.hitCount.Load()+c.missCount.Load() > 0 {
		c.Print(log)
	}
}
