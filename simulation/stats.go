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

// File simulation/stats.go collects wait times of served customers.

package simulation

import (
	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"
	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim"
)

// quantileAccuracy is the relative accuracy of wait time quantiles.
const quantileAccuracy = 0.01

// waitSample keeps wait times of all served customers.
type waitSample struct {
	waits  stats.Sample
	sketch *ddsketch.DDSketch
	waited int
	max    int
}

func newWaitSample() *waitSample {
	sketch, err := ddsketch.NewDefaultDDSketch(quantileAccuracy)
	if err != nil {
		// Accuracy is a valid constant.
		panic(err)
	}
	return &waitSample{sketch: sketch}
}

func (w *waitSample) add(wait int) {
	w.waits.Xs = append(w.waits.Xs, float64(wait))
	if err := w.sketch.Add(float64(wait)); err != nil {
		logger.WithError(err).WithField("wait", wait).Warn("Wait time not added to sketch.")
	}
	if wait > 0 {
		w.waited++
	}
	if wait > w.max {
		w.max = wait
	}
}

// fill sets wait time distribution fields of s.
func (w *waitSample) fill(s *banksim.Stats) {
	s.Waited = w.waited
	s.MaxWait = w.max
	if len(w.waits.Xs) > 1 {
		s.WaitStdDev = w.waits.StdDev()
	}
	if len(w.waits.Xs) == 0 {
		return
	}
	qs, err := w.sketch.GetValuesAtQuantiles([]float64{0.5, 0.9, 0.99})
	if err != nil {
		logger.WithError(err).Warn("Failed to compute wait time quantiles.")
		return
	}
	s.WaitP50, s.WaitP90, s.WaitP99 = qs[0], qs[1], qs[2]
}
