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

// File collections/heapcontainer.go provides implementation of heap.Interface
// on a slice with explicitly managed capacity. It is used by BinaryHeap which
// builds minimum heap API on top of it.

package collections

// initialCapacity is the capacity of a heap container created with
// non-positive capacity.
const initialCapacity = 2

// heapContainer wraps slice of elements for implementation of heap.Interface.
// Backing array grows by doubling its capacity when it is full.
type heapContainer[T Lesser[T]] struct {
	elements []T
}

// newHeapContainer returns empty container with backing array of given capacity.
func newHeapContainer[T Lesser[T]](capacity int) *heapContainer[T] {
	if capacity <= 0 {
		capacity = initialCapacity
	}
	return &heapContainer[T]{
		elements: make([]T, 0, capacity),
	}
}

// Len returns current heap size. It is a part of container.heap.Interface
// implementation by heapContainer.
func (h *heapContainer[T]) Len() int {
	return len(h.elements)
}

// Less compares 2 elements of the heap using their Less method.
// It is a part of container.heap.Interface implementation by heapContainer.
func (h *heapContainer[T]) Less(i, j int) bool {
	return h.elements[i].Less(h.elements[j])
}

// Swap exchanges 2 heap elements one with other.
// It is a part of container.heap.Interface implementation by heapContainer.
func (h *heapContainer[T]) Swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
}

// Push adds an element at the end of the container. When the container is
// full, capacity is doubled and existing elements are copied in place.
// It is a part of container.heap.Interface implementation by heapContainer.
func (h *heapContainer[T]) Push(x any) {
	if len(h.elements) == cap(h.elements) {
		h.grow()
	}
	h.elements = append(h.elements, x.(T))
}

// Pop removes and returns last element of the container.
// It is a part of container.heap.Interface implementation by heapContainer.
func (h *heapContainer[T]) Pop() any {
	n := len(h.elements)
	if n == 0 {
		panic("cannot Pop from empty heap")
	}

	var zero T
	x := h.elements[n-1]
	// Release reference held by the backing array.
	h.elements[n-1] = zero
	h.elements = h.elements[:n-1]

	return x
}

// grow doubles capacity of the backing array keeping the prefix of elements.
func (h *heapContainer[T]) grow() {
	newCap := 2 * cap(h.elements)
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]T, len(h.elements), newCap)
	copy(grown, h.elements)
	h.elements = grown
}

// capacity returns current size of the backing array.
func (h *heapContainer[T]) capacity() int {
	return cap(h.elements)
}
