// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package future

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuture_DeliversValueFulfilledOnAnotherGoroutine(t *testing.T) {
	require := require.New(t)

	promise, fut := Create[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		promise.Fulfill(42)
	}()

	require.Equal(42, fut.Await())
}

func TestFuture_ImmediateIsAlreadyFulfilled(t *testing.T) {
	require := require.New(t)

	fut := Immediate("done")
	require.Equal("done", fut.Await())
}

func TestFuture_ThenTransformsTheValue(t *testing.T) {
	require := require.New(t)

	promise, fut := Create[int]()
	doubled := Then(fut, func(v int) int { return 2 * v })
	promise.Fulfill(21)

	require.Equal(42, doubled.Await())
}

func TestFuture_AwaitBlocksUntilFulfilled(t *testing.T) {
	require := require.New(t)

	promise, fut := Create[string]()
	done := make(chan string)
	go func() {
		done <- fut.Await()
	}()

	select {
	case <-done:
		t.Fatal("future resolved before the promise was fulfilled")
	case <-time.After(10 * time.Millisecond):
	}

	promise.Fulfill("value")
	require.Equal("value", <-done)
}
