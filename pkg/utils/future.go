// Copyright 2024 Nokia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"context"
	"sync"
)

// Future holds the result of an asynchronous operation. It is completed
// exactly once, later completions are ignored.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewFuture returns a pending Future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// CompletedFuture returns a Future that is already completed with v and err.
func CompletedFuture[T any](v T, err error) *Future[T] {
	f := NewFuture[T]()
	f.Complete(v, err)
	return f
}

// Complete sets the result of the future. It reports whether this call completed the future.
func (f *Future[T]) Complete(v T, err error) bool {
	completed := false
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
		completed = true
	})
	return completed
}

// Done is closed once the future is completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get blocks until the future is completed or ctx is done.
// The context error is returned if ctx ends first.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then returns a Future completed with the result of fn applied to the result of f.
// fn runs on its own goroutine, the caller never blocks.
func Then[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	result := NewFuture[U]()
	go func() {
		<-f.done
		result.Complete(fn(f.val, f.err))
	}()
	return result
}
