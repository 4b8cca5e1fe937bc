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

package runs

import "github.com/SamsungSLAV/banksim"

// tracer implements banksim.Observer. It records kind and time of every
// processed event.
type tracer struct {
	trace []banksim.TraceEntry
}

// newTracer returns tracer with room for the events of given number of customers.
func newTracer(customers int) *tracer {
	return &tracer{
		trace: make([]banksim.TraceEntry, 0, 2*customers),
	}
}

func (t *tracer) SimulationStarted() {}

func (t *tracer) EventProcessed(ev banksim.Event) {
	t.trace = append(t.trace, banksim.TraceEntry{Kind: ev.Kind(), Time: ev.Time()})
}

func (t *tracer) SimulationFinished(banksim.Stats) {}
