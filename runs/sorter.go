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

// File runs/sorter.go provides implementation of sorter. It is used by ListRuns().

package runs

import (
	"strings"

	"github.com/SamsungSLAV/banksim"
)

// sorter implements sort.Interface. It allows to sort by creation time (default), number of
// customers or average wait time. Runs equal by the item are ordered by creation time and then
// by ID. It also contains order information (ascending or descending).
type sorter struct {
	runs  []banksim.RunInfo
	item  string
	order banksim.SortOrder
}

// newSorter returns sorter initialized with SortInfo data. It returns an error when info
// contains unknown item. Nil info means default sorting.
func newSorter(info *banksim.SortInfo) (*sorter, error) {
	if info == nil {
		info = new(banksim.SortInfo)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &sorter{
		order: info.Order,
		item:  strings.ToLower(info.Item),
	}, nil
}

// Len returns length of underlying RunInfo slice. It is part of sort.Interface.
func (sorter *sorter) Len() int {
	return len(sorter.runs)
}

// Swap swaps the elements of underlying RunInfo slice. It is part of sort.Interface.
func (sorter *sorter) Swap(i, j int) {
	sorter.runs[i], sorter.runs[j] = sorter.runs[j], sorter.runs[i]
}

// Less reports if element with index i in underlying RunInfo slice should be before the element
// with index j. It panics when item was set to wrong value. It is part of sort.Interface.
func (sorter *sorter) Less(i, j int) bool {
	a, b := &sorter.runs[i], &sorter.runs[j]
	if sorter.order == banksim.SortOrderDesc {
		a, b = b, a
	}
	lessCreated := func() bool {
		if a.Created.Equal(b.Created) {
			return a.ID < b.ID
		}
		return a.Created.Before(b.Created)
	}
	switch sorter.item {
	case "", banksim.SortByCreated:
		return lessCreated()
	case banksim.SortByCustomers:
		if a.Stats.Customers == b.Stats.Customers {
			return lessCreated()
		}
		return a.Stats.Customers < b.Stats.Customers
	case banksim.SortByAverageWait:
		if a.Stats.AverageWait == b.Stats.AverageWait {
			return lessCreated()
		}
		return a.Stats.AverageWait < b.Stats.AverageWait
	default:
		panic(sorter.item + ": " + banksim.ErrWrongSortItem.Error())
	}
}
