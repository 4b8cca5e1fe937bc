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

package simulation

import (
	"errors"
	"math"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/SamsungSLAV/banksim"
	"github.com/SamsungSLAV/banksim/collections"
	"github.com/SamsungSLAV/banksim/mocks"
)

var _ = Describe("Engine", func() {
	var r *recorder

	BeforeEach(func() {
		r = new(recorder)
	})

	run := func(customers ...banksim.Customer) banksim.Stats {
		stats, err := Simulate(customers, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.started).To(Equal(1))
		Expect(r.finished).To(Equal(1))
		Expect(r.stats).To(Equal(stats))
		return stats
	}

	Describe("NewEngine", func() {
		It("should start with idle teller and all arrivals scheduled", func() {
			e, err := NewEngine([]banksim.Customer{{0, 1}, {3, 2}}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.State()).To(Equal(TellerIdle))
			Expect(e.Now()).To(BeZero())
			Expect(e.Waiting()).To(BeZero())
			Expect(e.Drained()).To(BeFalse())
			Expect(e.events.Len()).To(Equal(2))
		})
		It("should reject negative arrival time", func() {
			_, err := NewEngine([]banksim.Customer{{0, 1}, {-1, 2}}, nil)
			Expect(errors.Is(err, banksim.ErrNegativeTime)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("customer 2"))
		})
		It("should reject negative service length", func() {
			_, err := NewEngine([]banksim.Customer{{0, -1}}, nil)
			Expect(errors.Is(err, banksim.ErrNegativeLength)).To(BeTrue())
		})
	})

	It("should serve single customer immediately", func() {
		stats := run(banksim.Customer{Arrival: 0, Service: 5})

		Expect(r.trace()).To(Equal([]banksim.TraceEntry{arr(0), dep(5)}))
		Expect(stats.Customers).To(Equal(1))
		Expect(stats.AverageWait).To(BeZero())
		Expect(stats.TotalWait).To(BeZero())
		Expect(stats.Waited).To(BeZero())
		Expect(stats.Events).To(Equal(2))
		Expect(stats.FinishTime).To(Equal(5))
	})

	It("should make customer wait while teller is busy", func() {
		stats := run(banksim.Customer{0, 10}, banksim.Customer{2, 3})

		Expect(r.trace()).To(Equal([]banksim.TraceEntry{arr(0), arr(2), dep(10), dep(13)}))
		Expect(stats.Customers).To(Equal(2))
		Expect(stats.TotalWait).To(Equal(8))
		Expect(stats.AverageWait).To(Equal(4.0))
		Expect(stats.Waited).To(Equal(1))
		Expect(stats.MaxWait).To(Equal(8))
		Expect(stats.WaitStdDev).To(BeNumerically("~", 5.657, 0.001))
		Expect(stats.FinishTime).To(Equal(13))
	})

	It("should serve simultaneous arrivals in FIFO order regardless of service length", func() {
		stats := run(banksim.Customer{0, 3}, banksim.Customer{0, 2}, banksim.Customer{0, 1})

		// First customer leaves at 3, second waits 3 and leaves at 5,
		// third waits 5 and leaves at 6.
		Expect(r.trace()).To(Equal([]banksim.TraceEntry{
			arr(0), arr(0), arr(0), dep(3), dep(5), dep(6),
		}))
		Expect(r.events[0].Length()).To(Equal(3))
		Expect(r.events[1].Length()).To(Equal(2))
		Expect(r.events[2].Length()).To(Equal(1))
		Expect(stats.TotalWait).To(Equal(8))
		Expect(stats.AverageWait).To(BeNumerically("~", 8.0/3.0, 1e-9))
		Expect(stats.Waited).To(Equal(2))
	})

	It("should handle arrival before departure happening at the same time", func() {
		stats := run(banksim.Customer{0, 5}, banksim.Customer{5, 2})

		Expect(r.trace()).To(Equal([]banksim.TraceEntry{arr(0), arr(5), dep(5), dep(7)}))
		Expect(stats.TotalWait).To(BeZero())
		Expect(stats.Waited).To(BeZero())
	})

	It("should make teller idle between customers", func() {
		e, err := NewEngine([]banksim.Customer{{0, 2}, {5, 1}}, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(e.Step()).To(Succeed())
		Expect(e.State()).To(Equal(TellerBusy))
		Expect(e.Step()).To(Succeed())
		Expect(e.Now()).To(Equal(2))
		Expect(e.State()).To(Equal(TellerIdle))
		Expect(e.Step()).To(Succeed())
		Expect(e.Now()).To(Equal(5))
		Expect(e.State()).To(Equal(TellerBusy))
		Expect(e.Step()).To(Succeed())
		Expect(e.State()).To(Equal(TellerIdle))
		Expect(e.Drained()).To(BeTrue())
		Expect(e.Stats().AverageWait).To(BeZero())
	})

	It("should keep customers in line until teller is free", func() {
		e, err := NewEngine([]banksim.Customer{{0, 10}, {1, 1}, {2, 1}}, nil)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 3; i++ {
			Expect(e.Step()).To(Succeed())
		}
		Expect(e.Now()).To(Equal(2))
		Expect(e.Waiting()).To(Equal(2))
		Expect(e.State()).To(Equal(TellerBusy))

		Expect(e.Step()).To(Succeed())
		Expect(e.Now()).To(Equal(10))
		Expect(e.Waiting()).To(Equal(1))
		Expect(e.Stats().TotalWait).To(Equal(9))
	})

	It("should process customers given in any order", func() {
		stats := run(banksim.Customer{2, 3}, banksim.Customer{0, 10})

		Expect(r.trace()).To(Equal([]banksim.TraceEntry{arr(0), arr(2), dep(10), dep(13)}))
		Expect(stats.AverageWait).To(Equal(4.0))
	})

	It("should report zero average for run without customers", func() {
		stats := run()

		Expect(r.events).To(BeEmpty())
		Expect(stats).To(Equal(banksim.Stats{}))
	})

	It("should compute wait time distribution", func() {
		customers := make([]banksim.Customer, 101)
		for i := range customers {
			customers[i] = banksim.Customer{Arrival: 0, Service: 1}
		}
		stats := run(customers...)

		Expect(stats.Customers).To(Equal(101))
		Expect(stats.TotalWait).To(Equal(5050))
		Expect(stats.AverageWait).To(Equal(50.0))
		Expect(stats.MaxWait).To(Equal(100))
		Expect(stats.Waited).To(Equal(100))
		Expect(stats.WaitStdDev).To(BeNumerically("~", 29.30, 0.01))
		Expect(stats.WaitP50).To(BeNumerically("~", 50, 1.5))
		Expect(stats.WaitP90).To(BeNumerically("~", 90, 1.5))
		Expect(stats.WaitP99).To(BeNumerically("~", 99, 1.5))
		Expect(stats.FinishTime).To(Equal(101))
		Expect(stats.Events).To(Equal(202))
	})

	It("should drain event queue for random input", func() {
		customers := make([]banksim.Customer, 0, 500)
		for i := 0; i < 500; i++ {
			customers = append(customers, banksim.Customer{Arrival: (i * 7) % 113, Service: i % 5})
		}
		e, err := NewEngine(customers, r)
		Expect(err).NotTo(HaveOccurred())
		stats, err := e.Run()
		Expect(err).NotTo(HaveOccurred())

		Expect(e.Drained()).To(BeTrue())
		Expect(e.Waiting()).To(BeZero())
		Expect(e.State()).To(Equal(TellerIdle))
		Expect(stats.Events).To(Equal(1000))
		for i := 1; i < len(r.events); i++ {
			Expect(r.events[i].Less(r.events[i-1])).To(BeFalse(), "i=%d", i)
		}
	})

	Describe("Step", func() {
		It("should report internal logic error on empty event queue", func() {
			e, err := NewEngine(nil, nil)
			Expect(err).NotTo(HaveOccurred())

			err = e.Step()
			Expect(errors.Is(err, banksim.ErrInternalLogicError)).To(BeTrue())
			Expect(errors.Is(err, collections.ErrEmptyCollection)).To(BeTrue())
		})
		It("should report time reversal", func() {
			e, err := NewEngine([]banksim.Customer{{5, 1}}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Step()).To(Succeed())
			e.schedule(banksim.NewDeparture(4))

			err = e.Step()
			Expect(errors.Is(err, banksim.ErrInternalLogicError)).To(BeTrue())
			Expect(errors.Is(err, ErrTimeReversal)).To(BeTrue())
		})
	})

	Describe("time overflow", func() {
		It("should reject departure past maximal time", func() {
			_, err := Simulate([]banksim.Customer{{Arrival: math.MaxInt - 1, Service: 5}}, nil)
			Expect(errors.Is(err, banksim.ErrTimeOverflow)).To(BeTrue())
			Expect(errors.Is(err, banksim.ErrInternalLogicError)).To(BeFalse())
		})
		It("should reject cumulative wait past maximal value", func() {
			half := math.MaxInt / 2
			_, err := Simulate([]banksim.Customer{
				{Arrival: 0, Service: half},
				{Arrival: 0, Service: half},
				{Arrival: 0, Service: 0},
			}, nil)
			Expect(errors.Is(err, banksim.ErrTimeOverflow)).To(BeTrue())
			Expect(errors.Is(err, banksim.ErrInternalLogicError)).To(BeFalse())
		})
		It("should accept departure exactly at maximal time", func() {
			stats := run(banksim.Customer{Arrival: math.MaxInt - 5, Service: 5})
			Expect(stats.FinishTime).To(Equal(math.MaxInt))
			Expect(stats.TotalWait).To(BeZero())
		})
	})

	Describe("Observer", func() {
		var ctrl *gomock.Controller
		var o *mocks.MockObserver

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			o = mocks.NewMockObserver(ctrl)
		})
		AfterEach(func() {
			ctrl.Finish()
		})

		It("should be notified about every event in order", func() {
			gomock.InOrder(
				o.EXPECT().SimulationStarted(),
				o.EXPECT().EventProcessed(banksim.NewArrival(0, 10)),
				o.EXPECT().EventProcessed(banksim.NewArrival(2, 3)),
				o.EXPECT().EventProcessed(banksim.NewDeparture(10)),
				o.EXPECT().EventProcessed(banksim.NewDeparture(13)),
				o.EXPECT().SimulationFinished(gomock.Any()),
			)

			_, err := Simulate([]banksim.Customer{{0, 10}, {2, 3}}, o)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("scheduled", func() {
	It("should order equivalent events by sequence", func() {
		a := scheduled{ev: banksim.NewArrival(0, 3), seq: 1}
		b := scheduled{ev: banksim.NewArrival(0, 1), seq: 2}
		Expect(a.Less(b)).To(BeTrue())
		Expect(b.Less(a)).To(BeFalse())
	})
	It("should order by event before sequence", func() {
		a := scheduled{ev: banksim.NewDeparture(0), seq: 1}
		b := scheduled{ev: banksim.NewArrival(0, 1), seq: 2}
		Expect(b.Less(a)).To(BeTrue())
		Expect(a.Less(b)).To(BeFalse())
	})
})
