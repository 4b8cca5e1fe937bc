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

var _ = Describe("Queue", func() {
	var q *Queue[item]

	BeforeEach(func() {
		q = NewQueue[item]()
	})

	It("should be created empty", func() {
		Expect(q.IsEmpty()).To(BeTrue())
		Expect(q.Len()).To(BeZero())
		Expect(q.elements.Front()).To(BeNil())
		Expect(q.elements.Back()).To(BeNil())
	})

	It("should dequeue elements in order of enqueueing", func() {
		// Keys are deliberately unordered; Queue ignores them.
		in := []item{{key: 3, id: 1}, {key: 1, id: 2}, {key: 2, id: 3}, {key: 1, id: 4}}
		for i, e := range in {
			q.Enqueue(e)
			Expect(q.Len()).To(Equal(i + 1))
		}
		for i, e := range in {
			x, err := q.Dequeue()
			Expect(err).NotTo(HaveOccurred())
			Expect(x).To(Equal(e))
			Expect(q.Len()).To(Equal(len(in) - i - 1))
		}
		Expect(q.IsEmpty()).To(BeTrue())
	})

	It("should keep FIFO order when operations interleave", func() {
		q.Enqueue(item{id: 1})
		q.Enqueue(item{id: 2})
		Expect(q.Dequeue()).To(Equal(item{id: 1}))
		q.Enqueue(item{id: 3})
		Expect(q.Dequeue()).To(Equal(item{id: 2}))
		Expect(q.Dequeue()).To(Equal(item{id: 3}))
		q.Enqueue(item{id: 4})
		Expect(q.Peek()).To(Equal(item{id: 4}))
		Expect(q.Len()).To(Equal(1))
	})

	It("should clear both ends when last element is removed", func() {
		q.Enqueue(item{id: 1})
		_, err := q.Dequeue()
		Expect(err).NotTo(HaveOccurred())
		Expect(q.elements.Front()).To(BeNil())
		Expect(q.elements.Back()).To(BeNil())
	})

	Describe("Peek", func() {
		It("should return front element without removing it", func() {
			q.Enqueue(item{id: 1})
			q.Enqueue(item{id: 2})
			Expect(q.Peek()).To(Equal(item{id: 1}))
			Expect(q.Peek()).To(Equal(item{id: 1}))
			Expect(q.Len()).To(Equal(2))
		})
		It("should return error in case of empty queue", func() {
			_, err := q.Peek()
			Expect(err).To(Equal(ErrEmptyCollection))
		})
	})

	Describe("Dequeue", func() {
		It("should return error in case of empty queue", func() {
			_, err := q.Dequeue()
			Expect(err).To(Equal(ErrEmptyCollection))
			Expect(q.Len()).To(BeZero())
		})
	})
})
