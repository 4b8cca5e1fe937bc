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

// Package collections provides generic containers used by the simulation:
// a minimum binary heap, a priority queue built on top of it and a FIFO queue.
//
// None of the containers is safe for concurrent use.
package collections

import (
	"container/heap"
)

// Lesser is implemented by types that define strict weak ordering of their
// values. a.Less(b) reports whether a must be placed before b.
type Lesser[T any] interface {
	Less(other T) bool
}

// BinaryHeap implements minimum heap over an array that doubles its capacity
// when full. Element at index 0 is never greater than any other element.
type BinaryHeap[T Lesser[T]] struct {
	con *heapContainer[T]
}

// NewBinaryHeap creates new BinaryHeap object and initializes it as an empty
// heap with given initial capacity.
func NewBinaryHeap[T Lesser[T]](capacity int) *BinaryHeap[T] {
	h := &BinaryHeap[T]{
		con: newHeapContainer[T](capacity),
	}
	heap.Init(h.con)
	return h
}

// ElementCount returns number of elements stored in the heap.
func (h *BinaryHeap[T]) ElementCount() int {
	return h.con.Len()
}

// Capacity returns number of elements the heap can hold before it grows.
func (h *BinaryHeap[T]) Capacity() int {
	return h.con.capacity()
}

// Insert adds the element to the heap, keeping its minimum value property.
// The element is appended at the next free slot and moved up as long as its
// parent is greater. Heap's size is increased by one.
func (h *BinaryHeap[T]) Insert(v T) {
	heap.Push(h.con, v)
}

// Retrieve returns the minimum heap element. The returned element is not
// removed from the heap. ErrEmptyCollection is returned if the heap is empty.
func (h *BinaryHeap[T]) Retrieve() (T, error) {
	if h.con.Len() == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return h.con.elements[0], nil
}

// Remove removes and returns the minimum heap element. The last element
// replaces the root and is moved down, swapping with the smaller child (left
// one when both are equal). ErrEmptyCollection is returned if the heap is
// empty.
func (h *BinaryHeap[T]) Remove() (T, error) {
	if h.con.Len() == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return heap.Pop(h.con).(T), nil
}
