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

// Package banksim contains definitions of all interfaces and structs used
// between the main modules of the bank queue simulator.
// Customer - a person arriving at the bank at known time with known service length.
// Teller - the single server; at most one customer is in service at a time.
// Run - a single replay of the arrival and departure events of a customer list.
package banksim

//go:generate mockgen -destination=mocks/mock_simulations.go -package=mocks github.com/SamsungSLAV/banksim Simulations
//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/SamsungSLAV/banksim Observer

import (
	"time"
)

const Version string = "0.1.0"

// Customer is a single input pair: the time at which the customer arrives and
// the time the teller needs to serve the customer.
type Customer struct {
	Arrival int
	Service int
}

// Validate checks that both values of the pair are non-negative.
func (c Customer) Validate() error {
	if c.Arrival < 0 {
		return ErrNegativeTime
	}
	if c.Service < 0 {
		return ErrNegativeLength
	}
	return nil
}

// Stats contains aggregate results of a run.
type Stats struct {
	// Customers is the number of customers given to the run.
	Customers int
	// Waited is the number of customers that were not served on arrival.
	Waited int
	// TotalWait is the sum of wait times of all customers.
	TotalWait int
	// AverageWait is TotalWait divided by Customers. It is 0 for a run
	// without customers.
	AverageWait float64
	MaxWait     int
	// WaitStdDev is the sample standard deviation of wait times.
	WaitStdDev float64
	// WaitP50, WaitP90 and WaitP99 are approximate quantiles of wait times.
	WaitP50 float64
	WaitP90 float64
	WaitP99 float64
	// Events is the number of processed arrival and departure events.
	Events int
	// FinishTime is the simulation time of the last processed event.
	FinishTime int
}

// TraceEntry records a single processed event.
type TraceEntry struct {
	Kind EventKind
	Time int
}

// RunID identifies a run. It is a textual UUID.
type RunID string

// RunInfo describes finished run.
type RunInfo struct {
	ID RunID
	// Created is the wall clock time at which the run was requested.
	Created   time.Time
	Customers []Customer
	Stats     Stats
	// Trace lists events in the order they were processed.
	Trace []TraceEntry
}

// Observer is notified about progress of a run. Methods are called
// synchronously from the simulation loop.
type Observer interface {
	// SimulationStarted is called once before the first event is processed.
	SimulationStarted()
	// EventProcessed is called for every event taken from the event queue,
	// before its handling.
	EventProcessed(ev Event)
	// SimulationFinished is called once when all events are processed.
	SimulationFinished(stats Stats)
}

// Simulations defines an interaction of a user with the simulation service.
type Simulations interface {
	// NewRun runs simulation for given customers and stores the result.
	NewRun(customers []Customer) (RunInfo, error)
	// GetRunInfo returns RunInfo associated with RunID.
	GetRunInfo(id RunID) (RunInfo, error)
	// ListRuns returns stored runs sorted according to si. Default order
	// (si == nil) is by creation time, ascending.
	ListRuns(si *SortInfo) ([]RunInfo, error)
}
