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

// File event.go provides Event type modeling arrivals and departures of
// customers.

package banksim

import (
	"strconv"
)

// EventKind denotes whether Event is an arrival or a departure.
type EventKind string

const (
	// Arrival - customer enters the bank.
	Arrival EventKind = "ARRIVAL"
	// Departure - customer finishes service and leaves.
	Departure EventKind = "DEPARTURE"
)

// String returns human readable name of the kind ("Arrival" or "Departure").
func (k EventKind) String() string {
	if k == Departure {
		return "Departure"
	}
	return "Arrival"
}

// Event is arrival or departure happening at given time. Length is the
// service length of arriving customer. It is always 0 for departures.
// Zero value is an arrival at time 0 with length 0.
type Event struct {
	kind   EventKind
	time   int
	length int
}

// NewEvent creates event of given kind. length is ignored unless kind is
// Arrival.
func NewEvent(kind EventKind, time, length int) Event {
	ev := Event{time: time}
	ev.SetKind(kind)
	ev.SetLength(length)
	return ev
}

// NewArrival creates arrival of a customer needing length units of service.
func NewArrival(time, length int) Event {
	return NewEvent(Arrival, time, length)
}

// NewDeparture creates departure happening at time.
func NewDeparture(time int) Event {
	return NewEvent(Departure, time, 0)
}

// Kind returns kind of the event.
func (ev Event) Kind() EventKind {
	if ev.kind == "" {
		return Arrival
	}
	return ev.kind
}

// Time returns point in time at which the event happens.
func (ev Event) Time() int {
	return ev.time
}

// Length returns service length of arrival. It is 0 for departures.
func (ev Event) Length() int {
	return ev.length
}

// IsArrival returns true if the event is an arrival.
func (ev Event) IsArrival() bool {
	return ev.Kind() == Arrival
}

// SetKind changes kind of the event. Any kind other than Departure is stored
// as Arrival. Length is reset when the event becomes a departure.
func (ev *Event) SetKind(kind EventKind) {
	if kind != Departure {
		kind = Arrival
	}
	ev.kind = kind
	if !ev.IsArrival() {
		ev.length = 0
	}
}

// SetTime changes point in time of the event.
func (ev *Event) SetTime(time int) {
	ev.time = time
}

// SetLength sets service length. It is silently set to 0 for departures.
func (ev *Event) SetLength(length int) {
	if !ev.IsArrival() {
		length = 0
	}
	ev.length = length
}

// Less orders events by time. An arrival is placed before a departure
// happening at the same time. Events of the same kind and time are equivalent.
func (ev Event) Less(other Event) bool {
	if ev.time == other.time {
		return ev.IsArrival() && !other.IsArrival()
	}
	return ev.time < other.time
}

// String returns textual representation of the event. This is implementation
// of fmt.Stringer interface.
func (ev Event) String() string {
	s := "Event - Type: " + ev.Kind().String() + ", Time: " + strconv.Itoa(ev.time)
	if ev.IsArrival() {
		s += ", Length: " + strconv.Itoa(ev.length)
	}
	return s
}
