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

// Package report presents progress and results of simulation runs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/SamsungSLAV/banksim"
)

// Format denotes how Printer presents a run.
type Format string

const (
	// FormatText prints every processed event followed by final statistics.
	FormatText Format = "text"
	// FormatJSON prints a single JSON document with event trace and statistics.
	FormatJSON Format = "json"
)

// ParseFormat converts name of the format to Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text or json)", name)
	}
}

// Run is the JSON document printed in FormatJSON.
type Run struct {
	Trace []banksim.TraceEntry
	Stats banksim.Stats
}

// Printer implements banksim.Observer. It writes to w and remembers the first
// write error, which is returned by Err.
type Printer struct {
	w      io.Writer
	format Format
	pretty bool
	trace  []banksim.TraceEntry
	err    error
}

// NewPrinter returns Printer writing to w in given format. pretty enables
// indentation of JSON output.
func NewPrinter(w io.Writer, format Format, pretty bool) *Printer {
	return &Printer{
		w:      w,
		format: format,
		pretty: pretty,
	}
}

// Err returns the first error that occurred while writing.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, a ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

// SimulationStarted is part of implementation of banksim.Observer interface.
func (p *Printer) SimulationStarted() {
	p.trace = nil
	if p.format == FormatText {
		p.printf("Simulation Begins\n")
	}
}

// EventProcessed is part of implementation of banksim.Observer interface.
func (p *Printer) EventProcessed(ev banksim.Event) {
	if p.format != FormatText {
		p.trace = append(p.trace, banksim.TraceEntry{Kind: ev.Kind(), Time: ev.Time()})
		return
	}
	if ev.IsArrival() {
		p.printf("Processing an arrival event at time:%5d\n", ev.Time())
		return
	}
	p.printf("Processing a departure event at time:%4d\n", ev.Time())
}

// SimulationFinished is part of implementation of banksim.Observer interface.
func (p *Printer) SimulationFinished(stats banksim.Stats) {
	if p.format != FormatText {
		p.writeJSON(Run{Trace: p.trace, Stats: stats})
		return
	}
	p.printf("Simulation Ends\n")
	p.printf("\nFinal Statistics:\n\n")
	p.printf("    Total number of people processed: %d\n", stats.Customers)
	p.printf("    Average amount of time spent waiting: %s\n", FormatAverage(stats.AverageWait))
}

// WriteJSON writes v as a JSON document.
func (p *Printer) WriteJSON(v interface{}) error {
	p.writeJSON(v)
	return p.err
}

func (p *Printer) writeJSON(v interface{}) {
	if p.err != nil {
		return
	}
	enc := json.NewEncoder(p.w)
	if p.pretty {
		enc.SetIndent("", "  ")
	}
	p.err = enc.Encode(v)
}

// FormatAverage formats average with at most 6 significant digits and without
// trailing zeros, e.g. 4 or 1.33333.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'g', 6, 64)
}

// Replay notifies o about events recorded in info as if the run was executed
// again.
func Replay(info banksim.RunInfo, o banksim.Observer) {
	o.SimulationStarted()
	for _, entry := range info.Trace {
		var ev banksim.Event
		if entry.Kind == banksim.Departure {
			ev = banksim.NewDeparture(entry.Time)
		} else {
			ev = banksim.NewArrival(entry.Time, 0)
		}
		o.EventProcessed(ev)
	}
	o.SimulationFinished(info.Stats)
}
