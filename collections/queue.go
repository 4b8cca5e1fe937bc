/*
 *  Copyright (c) 2018 Samsung Electronics Co., Ltd All Rights Reserved
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License
 */

// File collections/queue.go contains implementation of FIFO queue. It's done
// as a linked list of elements where the front of the list is the oldest
// element.

package collections

import (
	"container/list"
)

// Queue is a first-in-first-out queue. Enqueue, Dequeue and Peek run in
// constant time.
type Queue[T any] struct {
	elements *list.List
}

// NewQueue returns pointer to newly created and initialized empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		elements: list.New(),
	}
}

// IsEmpty returns true if there are no elements in the queue.
func (q *Queue[T]) IsEmpty() bool {
	return q.elements.Len() == 0
}

// Len returns number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.elements.Len()
}

// Enqueue adds element at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.elements.PushBack(v)
}

// Dequeue removes and returns element from the front of the queue.
// ErrEmptyCollection is returned if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	front := q.elements.Front()
	if front == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return q.elements.Remove(front).(T), nil
}

// Peek returns element from the front of the queue without removing it.
// ErrEmptyCollection is returned if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	front := q.elements.Front()
	if front == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return front.Value.(T), nil
}
