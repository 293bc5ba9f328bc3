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

package pool

import (
	"errors"
	"sync"
	"sync/atomic"
)

var ErrClosed = errors.New("queue closed")

type node[T any] struct {
	val  T
	next *node[T]
}

// Queue is an unbounded FIFO queue guarded by a single mutex.
// Items are handed out in exactly the order they were put.
// After Close, Put fails while Get keeps draining the remaining items.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	head   *node[T] // sentinel
	tail   *node[T]
	closed bool
	size   atomic.Int64
}

func NewQueue[T any]() *Queue[T] {
	s := &node[T]{}
	q := &Queue[T]{head: s, tail: s}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Put appends v to the queue.
func (q *Queue[T]) Put(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	n := &node[T]{val: v}
	q.tail.next = n
	q.tail = n
	q.size.Add(1)
	q.cond.Signal()
	return nil
}

// Get blocks until an item is available. ok is false once the queue
// is closed and drained.
func (q *Queue[T]) Get() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head.next == nil && !q.closed {
		q.cond.Wait()
	}
	if q.head.next == nil {
		return v, false
	}
	return q.pop(), true
}

// pop requires q.mu to be held and the queue to be non-empty.
func (q *Queue[T]) pop() T {
	n := q.head.next
	q.head.next = n.next
	if q.head.next == nil {
		q.tail = q.head
	}
	q.size.Add(-1)
	return n.val
}

func (q *Queue[T]) Len() int {
	return int(q.size.Load())
}

// Close rejects further Puts and wakes up all blocked Gets.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}
