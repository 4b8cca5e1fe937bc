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

// Package simulation provides the discrete event engine of a single teller
// bank. Engine replays arrival and departure events in time order, keeps the
// waiting line and collects wait time statistics.
package simulation

import (
	"errors"
	"fmt"
	"math"

	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim"
	"github.com/SamsungSLAV/banksim/collections"
)

// TellerState denotes state of the teller.
type TellerState string

const (
	// TellerIdle - teller waits for a customer.
	TellerIdle TellerState = "IDLE"
	// TellerBusy - teller serves a customer.
	TellerBusy TellerState = "BUSY"
)

// ErrTimeReversal means that event older than current simulation time was
// taken from the event queue.
var ErrTimeReversal = errors.New("time reversal")

// scheduled couples event with the sequence number of its scheduling. Events
// equivalent by their own ordering are processed in scheduling order.
type scheduled struct {
	ev  banksim.Event
	seq uint64
}

// Less is a part of collections.Lesser implementation by scheduled.
func (s scheduled) Less(other scheduled) bool {
	if s.ev.Less(other.ev) {
		return true
	}
	if other.ev.Less(s.ev) {
		return false
	}
	return s.seq < other.seq
}

// Engine runs simulation of a single teller bank. It is not safe for
// concurrent use and runs at most once.
type Engine struct {
	events   *collections.PriorityQueue[scheduled]
	line     *collections.Queue[banksim.Event]
	observer banksim.Observer
	seq      uint64

	now            int
	state          TellerState
	cumulativeWait int
	customers      int
	processed      int
	waits          *waitSample
}

// NewEngine creates engine with arrival events of all customers scheduled.
// observer may be nil. Error is returned if any customer has negative time
// or service length.
func NewEngine(customers []banksim.Customer, observer banksim.Observer) (*Engine, error) {
	e := &Engine{
		events:   collections.NewPriorityQueue[scheduled](),
		line:     collections.NewQueue[banksim.Event](),
		observer: observer,
		state:    TellerIdle,
		waits:    newWaitSample(),
	}
	for i, c := range customers {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("customer %d: %w", i+1, err)
		}
		e.schedule(banksim.NewArrival(c.Arrival, c.Service))
	}
	e.customers = len(customers)
	return e, nil
}

// Simulate runs simulation of given customers and returns its statistics.
func Simulate(customers []banksim.Customer, observer banksim.Observer) (banksim.Stats, error) {
	e, err := NewEngine(customers, observer)
	if err != nil {
		return banksim.Stats{}, err
	}
	return e.Run()
}

// Now returns current simulation time.
func (e *Engine) Now() int {
	return e.now
}

// State returns current state of the teller.
func (e *Engine) State() TellerState {
	return e.state
}

// Waiting returns number of customers in the waiting line.
func (e *Engine) Waiting() int {
	return e.line.Len()
}

// Drained returns true if there are no more events to process.
func (e *Engine) Drained() bool {
	return e.events.IsEmpty()
}

// Run processes events until the event queue is empty and returns statistics
// of the run. Failure of any collection operation is reported as
// banksim.ErrInternalLogicError. Customers whose departure time or wait time
// doesn't fit in int fail the run with banksim.ErrTimeOverflow.
func (e *Engine) Run() (banksim.Stats, error) {
	if e.observer != nil {
		e.observer.SimulationStarted()
	}
	for !e.Drained() {
		if err := e.Step(); err != nil {
			return banksim.Stats{}, err
		}
	}
	stats := e.Stats()
	logger.WithFields(logger.Fields{
		"customers":   stats.Customers,
		"averageWait": stats.AverageWait,
	}).Debug("Simulation finished.")
	if e.observer != nil {
		e.observer.SimulationFinished(stats)
	}
	return stats, nil
}

// Step takes the earliest event from the queue, advances simulation time to
// it and handles it.
func (e *Engine) Step() error {
	s, err := e.events.Dequeue()
	if err != nil {
		return fmt.Errorf("%w: event queue: %w", banksim.ErrInternalLogicError, err)
	}
	ev := s.ev
	if ev.Time() < e.now {
		return fmt.Errorf("%w: %w: event at %d, now %d", banksim.ErrInternalLogicError,
			ErrTimeReversal, ev.Time(), e.now)
	}
	e.now = ev.Time()
	e.processed++
	if e.observer != nil {
		e.observer.EventProcessed(ev)
	}

	if ev.IsArrival() {
		return e.processArrival(ev)
	}
	return e.processDeparture()
}

// processArrival serves arriving customer immediately when teller is idle
// and nobody waits. Otherwise the customer joins the waiting line.
func (e *Engine) processArrival(ev banksim.Event) error {
	if e.state == TellerIdle && e.line.IsEmpty() {
		logger.WithField("time", e.now).Debug("Customer served on arrival.")
		if _, err := e.serve(ev); err != nil {
			return err
		}
		e.state = TellerBusy
		return nil
	}
	e.line.Enqueue(ev)
	logger.WithFields(logger.Fields{
		"time":    e.now,
		"waiting": e.line.Len(),
	}).Debug("Customer joined waiting line.")
	return nil
}

// processDeparture moves next customer from the waiting line to the teller
// or makes the teller idle when the line is empty.
func (e *Engine) processDeparture() error {
	if e.line.IsEmpty() {
		e.state = TellerIdle
		logger.WithField("time", e.now).Debug("Teller idle.")
		return nil
	}
	customer, err := e.line.Dequeue()
	if err != nil {
		return fmt.Errorf("%w: waiting line: %w", banksim.ErrInternalLogicError, err)
	}
	wait, err := e.serve(customer)
	if err != nil {
		return err
	}
	logger.WithFields(logger.Fields{
		"time": e.now,
		"wait": wait,
	}).Debug("Customer taken from waiting line.")
	return nil
}

// serve records wait time of the customer and schedules its departure.
// banksim.ErrTimeOverflow is returned when departure time or cumulative wait
// would exceed math.MaxInt.
func (e *Engine) serve(customer banksim.Event) (int, error) {
	wait := e.now - customer.Time()
	if customer.Length() > math.MaxInt-e.now {
		return 0, fmt.Errorf("%w: departure of customer arriving at %d after %d",
			banksim.ErrTimeOverflow, customer.Time(), e.now)
	}
	if wait > math.MaxInt-e.cumulativeWait {
		return 0, fmt.Errorf("%w: cumulative wait of customer arriving at %d",
			banksim.ErrTimeOverflow, customer.Time())
	}
	e.cumulativeWait += wait
	e.waits.add(wait)
	e.schedule(banksim.NewDeparture(e.now + customer.Length()))
	return wait, nil
}

// schedule adds event to the event queue.
func (e *Engine) schedule(ev banksim.Event) {
	e.events.Enqueue(scheduled{ev: ev, seq: e.seq})
	e.seq++
}

// Stats returns statistics collected so far. Average wait of a run without
// customers is 0.
func (e *Engine) Stats() banksim.Stats {
	stats := banksim.Stats{
		Customers:  e.customers,
		TotalWait:  e.cumulativeWait,
		Events:     e.processed,
		FinishTime: e.now,
	}
	if e.customers > 0 {
		stats.AverageWait = float64(e.cumulativeWait) / float64(e.customers)
	}
	e.waits.fill(&stats)
	return stats
}
