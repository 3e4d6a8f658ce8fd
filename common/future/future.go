// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package future provides a small Promise/Future pair built on channels. A
// Future stands in for a value still being computed on another goroutine; a
// Promise is the producer-side handle used to deliver it.
//
// The typical producer looks like this:
//
//	promise, fut := future.Create[T]()
//	go func() {
//	    promise.Fulfill(build())
//	}()
//	return fut
//
// A Future may be awaited exactly once.
package future

// Promise is the handle used to fulfill a Future.
type Promise[T any] struct {
	c chan<- T
}

// Future is a placeholder for a value delivered by a Promise.
type Future[T any] struct {
	c <-chan T
}

// Create initializes a connected Promise and Future pair.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan T, 1)
	return Promise[T]{c: ch}, Future[T]{c: ch}
}

// Immediate creates an already-fulfilled Future holding the given value.
func Immediate[T any](value T) Future[T] {
	ch := make(chan T, 1)
	ch <- value
	close(ch)
	return Future[T]{c: ch}
}

// Fulfill delivers the value to the awaiting Future. A Promise may be
// fulfilled at most once.
func (p Promise[T]) Fulfill(value T) {
	p.c <- value
	close(p.c)
}

// Await blocks until the value has been delivered and returns it. A Future
// may only be consumed once.
func (f Future[T]) Await() T {
	return <-f.c
}

// Then derives a new Future by applying the transformation to the value of
// the original Future once it arrives.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	promise, fut := Create[B]()
	go func() {
		promise.Fulfill(transform(f.Await()))
	}()
	return fut
}
