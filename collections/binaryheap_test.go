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
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// expectHeapProperty verifies that every parent in h is not greater than its
// children.
func expectHeapProperty(h *BinaryHeap[item]) {
	e := h.con.elements
	for i := 1; i < len(e); i++ {
		p := (i - 1) / 2
		Expect(e[i].Less(e[p])).To(BeFalse(), "parent %d=%v child %d=%v", p, e[p], i, e[i])
	}
}

var _ = Describe("BinaryHeap", func() {
	var h *BinaryHeap[item]
	var r []item

	BeforeEach(func() {
		r = []item{
			{key: 0, id: 0},
			{key: 1, id: 1},
			{key: 2, id: 2},
			{key: 3, id: 3},
			{key: 3, id: 4},
			{key: 1, id: 5},
		}
		h = NewBinaryHeap[item](2)
	})

	Describe("NewBinaryHeap", func() {
		It("should create an empty heap", func() {
			Expect(h).NotTo(BeNil())
			Expect(h.ElementCount()).To(BeZero())
			Expect(h.Capacity()).To(Equal(2))
		})
		It("should use default capacity when non-positive is given", func() {
			Expect(NewBinaryHeap[item](0).Capacity()).To(Equal(initialCapacity))
			Expect(NewBinaryHeap[item](-3).Capacity()).To(Equal(initialCapacity))
		})
		It("should create a new heap every time called", func() {
			h2 := NewBinaryHeap[item](2)

			h.Insert(r[1])
			h2.Insert(r[2])

			Expect(h.ElementCount()).To(Equal(1))
			Expect(h2.ElementCount()).To(Equal(1))
			Expect(h.Retrieve()).To(Equal(r[1]))
			Expect(h2.Retrieve()).To(Equal(r[2]))
		})
	})

	Describe("Insert", func() {
		It("should add elements to the heap keeping minimum property", func() {
			toInsert := []int{4, 5, 1, 3, 0}
			insertMin := []int{4, 5, 5, 5, 0}
			for i, e := range toInsert {
				h.Insert(r[e])
				Expect(h.ElementCount()).To(Equal(i + 1))
				min, err := h.Retrieve()
				Expect(err).NotTo(HaveOccurred())
				Expect(min.key).To(Equal(r[insertMin[i]].key))
				expectHeapProperty(h)
			}
		})
		It("should double capacity when full", func() {
			caps := []int{2, 2, 4, 4, 8, 8}
			for i, e := range r {
				h.Insert(e)
				Expect(h.Capacity()).To(Equal(caps[i]), "i=%v", i)
			}
		})
		It("should keep all elements retrievable after growth", func() {
			keys := rand.New(rand.NewSource(7)).Perm(100)
			for i, k := range keys {
				h.Insert(item{key: k, id: i})
			}
			Expect(h.ElementCount()).To(Equal(100))
			Expect(h.Capacity()).To(Equal(128))
			for i := 0; i < 100; i++ {
				x, err := h.Remove()
				Expect(err).NotTo(HaveOccurred())
				Expect(x.key).To(Equal(i))
			}
			Expect(h.ElementCount()).To(BeZero())
		})
	})

	Describe("Retrieve", func() {
		It("should return error in case of empty heap", func() {
			_, err := h.Retrieve()
			Expect(err).To(Equal(ErrEmptyCollection))
			Expect(h.ElementCount()).To(BeZero())
		})
		It("should not change the heap", func() {
			h.Insert(r[3])
			h.Insert(r[0])
			first, err := h.Retrieve()
			Expect(err).NotTo(HaveOccurred())
			second, err := h.Retrieve()
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(h.ElementCount()).To(Equal(2))
		})
	})

	Describe("Remove", func() {
		It("should remove minimal element", func() {
			toInsert := []int{5, 3, 1, 0}
			for _, e := range toInsert {
				h.Insert(r[e])
			}

			removeKeys := []int{0, 1, 1, 3}
			for i, k := range removeKeys {
				Expect(h.ElementCount()).To(Equal(len(removeKeys) - i))
				x, err := h.Remove()
				Expect(err).NotTo(HaveOccurred())
				Expect(x.key).To(Equal(k))
				expectHeapProperty(h)
			}
			Expect(h.ElementCount()).To(BeZero())
		})
		It("should leave empty heap after removing single element", func() {
			h.Insert(r[2])
			x, err := h.Remove()
			Expect(err).NotTo(HaveOccurred())
			Expect(x).To(Equal(r[2]))
			Expect(h.ElementCount()).To(BeZero())
			_, err = h.Retrieve()
			Expect(err).To(Equal(ErrEmptyCollection))
		})
		It("should return error in case of empty heap", func() {
			_, err := h.Remove()
			Expect(err).To(Equal(ErrEmptyCollection))
			Expect(h.ElementCount()).To(BeZero())
			Expect(h.Capacity()).To(Equal(2))
		})
		It("should prefer left child when children are equal", func() {
			h.Insert(item{key: 0, id: 0})
			h.Insert(item{key: 5, id: 1})
			h.Insert(item{key: 5, id: 2})
			h.Insert(item{key: 9, id: 3})
			_, err := h.Remove()
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Retrieve()).To(Equal(item{key: 5, id: 1}))
			expectHeapProperty(h)
		})
	})

	It("should keep heap property for random interleavings of Insert and Remove", func() {
		rnd := rand.New(rand.NewSource(42))
		shadow := []int{}
		for i := 0; i < 2000; i++ {
			if rnd.Intn(3) > 0 || len(shadow) == 0 {
				k := rnd.Intn(50)
				h.Insert(item{key: k, id: i})
				shadow = append(shadow, k)
			} else {
				x, err := h.Remove()
				Expect(err).NotTo(HaveOccurred())
				sort.Ints(shadow)
				Expect(x.key).To(Equal(shadow[0]))
				shadow = shadow[1:]
			}
			Expect(h.ElementCount()).To(Equal(len(shadow)))
			expectHeapProperty(h)
		}
	})
})
