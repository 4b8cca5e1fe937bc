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

// File collections/priorityqueue.go provides priority queue of elements that
// is backed by BinaryHeap. Element with the lowest value has the highest
// priority.

package collections

// PriorityQueue yields elements in ascending order. It owns exactly one
// BinaryHeap and keeps no other state.
type PriorityQueue[T Lesser[T]] struct {
	minheap *BinaryHeap[T]
}

// NewPriorityQueue returns empty priority queue. Initial capacity of the heap
// is small, as it grows automatically.
func NewPriorityQueue[T Lesser[T]]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		minheap: NewBinaryHeap[T](initialCapacity),
	}
}

// IsEmpty returns true if there are no elements in the queue.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.minheap.ElementCount() == 0
}

// Len returns number of elements in the queue.
func (pq *PriorityQueue[T]) Len() int {
	return pq.minheap.ElementCount()
}

// Enqueue inserts element into the queue.
func (pq *PriorityQueue[T]) Enqueue(v T) {
	pq.minheap.Insert(v)
}

// Dequeue removes and returns the element with the highest priority.
// ErrEmptyCollection is returned if the queue is empty.
func (pq *PriorityQueue[T]) Dequeue() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	return pq.minheap.Remove()
}

// Peek returns the element with the highest priority without removing it.
// ErrEmptyCollection is returned if the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	return pq.minheap.Retrieve()
}
