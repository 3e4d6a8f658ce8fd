// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package load

import (
	"github.com/David-Thureson/letter-trie/go/common/future"
	"github.com/David-Thureson/letter-trie/go/common/result"
	"github.com/David-Thureson/letter-trie/go/lettertrie"
)

// FromSourceAsync runs FromSource on its own goroutine and returns a future
// for the outcome. It allows callers, such as the compare command of the
// toolbox, to build several tries concurrently and await them all.
func FromSourceAsync(src lettertrie.Source, factory lettertrie.Factory, opts Options) future.Future[result.Result[lettertrie.Trie]] {
	promise, fut := future.Create[result.Result[lettertrie.Trie]]()
	go func() {
		trie, err := FromSource(src, factory, opts)
		if err != nil {
			promise.Fulfill(result.Err[lettertrie.Trie](err))
			return
		}
		promise.Fulfill(result.Ok(trie))
	}()
	return fut
}
