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

package collections

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("PriorityQueue", func() {
	var pq *PriorityQueue[item]

	BeforeEach(func() {
		pq = NewPriorityQueue[item]()
	})

	It("should be created empty", func() {
		Expect(pq.IsEmpty()).To(BeTrue())
		Expect(pq.Len()).To(BeZero())
		Expect(pq.minheap.Capacity()).To(Equal(initialCapacity))
	})

	It("should be empty exactly when underlying heap is empty", func() {
		pq.Enqueue(item{key: 3})
		Expect(pq.IsEmpty()).To(BeFalse())
		Expect(pq.minheap.ElementCount()).To(Equal(1))
		_, err := pq.Dequeue()
		Expect(err).NotTo(HaveOccurred())
		Expect(pq.IsEmpty()).To(BeTrue())
		Expect(pq.minheap.ElementCount()).To(BeZero())
	})

	It("should dequeue elements in ascending order", func() {
		for i, k := range []int{7, 3, 9, 1, 4, 4, 0, 8} {
			pq.Enqueue(item{key: k, id: i})
		}
		expected := []int{0, 1, 3, 4, 4, 7, 8, 9}
		for _, k := range expected {
			x, err := pq.Dequeue()
			Expect(err).NotTo(HaveOccurred())
			Expect(x.key).To(Equal(k))
		}
		Expect(pq.IsEmpty()).To(BeTrue())
	})

	Describe("Peek", func() {
		It("should return the same element when called twice", func() {
			pq.Enqueue(item{key: 2, id: 1})
			pq.Enqueue(item{key: 1, id: 2})
			first, err := pq.Peek()
			Expect(err).NotTo(HaveOccurred())
			second, err := pq.Peek()
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(item{key: 1, id: 2}))
			Expect(second).To(Equal(first))
			Expect(pq.Len()).To(Equal(2))
		})
		It("should return error in case of empty queue", func() {
			_, err := pq.Peek()
			Expect(err).To(Equal(ErrEmptyCollection))
			Expect(pq.IsEmpty()).To(BeTrue())
		})
	})

	Describe("Dequeue", func() {
		It("should return error in case of empty queue", func() {
			_, err := pq.Dequeue()
			Expect(err).To(Equal(ErrEmptyCollection))
			Expect(pq.IsEmpty()).To(BeTrue())
		})
		It("should return error after the queue was drained", func() {
			pq.Enqueue(item{key: 1})
			_, err := pq.Dequeue()
			Expect(err).NotTo(HaveOccurred())
			_, err = pq.Dequeue()
			Expect(err).To(Equal(ErrEmptyCollection))
		})
	})
})
