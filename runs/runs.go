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

// Package runs provides the registry of simulation runs. Registry executes
// simulations and keeps the most recent results in a bounded cache.
package runs

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim"
	"github.com/SamsungSLAV/banksim/simulation"
)

// DefaultCacheSize is the number of runs kept by the registry when no size
// is given.
const DefaultCacheSize = 256

// ErrCacheSize is returned when registry is created with negative cache size.
var ErrCacheSize = errors.New("run cache size must not be negative")

// Registry implements banksim.Simulations. Runs are executed synchronously in
// NewRun and only the least recently used runs are evicted. It is safe for
// concurrent use.
type Registry struct {
	cache *lru.Cache[banksim.RunID, banksim.RunInfo]
	// now and newID are replaced in tests.
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// NewRegistry returns Registry keeping at most size runs. Zero size means
// DefaultCacheSize.
func NewRegistry(size int) (*Registry, error) {
	if size < 0 {
		return nil, ErrCacheSize
	}
	if size == 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.NewWithEvict(size, func(id banksim.RunID, _ banksim.RunInfo) {
		logger.WithField("run", id).Debug("Run evicted from cache.")
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		cache: cache,
		now:   time.Now,
		newID: uuid.NewV4,
	}, nil
}

// NewRun is part of implementation of banksim.Simulations interface. It
// validates customers, runs simulation and stores its result.
func (r *Registry) NewRun(customers []banksim.Customer) (banksim.RunInfo, error) {
	id, err := r.newID()
	if err != nil {
		return banksim.RunInfo{}, fmt.Errorf("%w: run ID: %w", banksim.ErrInternalLogicError, err)
	}
	info := banksim.RunInfo{
		ID:        banksim.RunID(id.String()),
		Created:   r.now().UTC(),
		Customers: make([]banksim.Customer, len(customers)),
	}
	copy(info.Customers, customers)

	t := newTracer(len(customers))
	info.Stats, err = simulation.Simulate(info.Customers, t)
	if err != nil {
		logger.WithError(err).WithField("run", info.ID).Warn("Run failed.")
		return banksim.RunInfo{}, err
	}
	info.Trace = t.trace

	r.cache.Add(info.ID, info)
	logger.WithFields(logger.Fields{
		"run":         info.ID,
		"customers":   info.Stats.Customers,
		"averageWait": info.Stats.AverageWait,
	}).Info("Run finished.")
	return info, nil
}

// GetRunInfo is part of implementation of banksim.Simulations interface. It
// returns NotFoundError when the run is unknown or was already evicted.
func (r *Registry) GetRunInfo(id banksim.RunID) (banksim.RunInfo, error) {
	info, ok := r.cache.Get(id)
	if !ok {
		return banksim.RunInfo{}, banksim.NotFoundError("Run")
	}
	return info, nil
}

// ListRuns is part of implementation of banksim.Simulations interface. It
// returns all cached runs sorted according to si.
func (r *Registry) ListRuns(si *banksim.SortInfo) ([]banksim.RunInfo, error) {
	sorter, err := newSorter(si)
	if err != nil {
		return nil, err
	}
	sorter.runs = r.cache.Values()
	sort.Sort(sorter)
	return sorter.runs, nil
}

// Len returns number of cached runs.
func (r *Registry) Len() int {
	return r.cache.Len()
}
