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

// File http/list.go provides parsing of parameters used when listing runs.

package http

import (
	"net/url"

	"github.com/SamsungSLAV/banksim"
)

// Names of query parameters accepted by the list handler.
const (
	// SortParam names item by which runs are sorted.
	SortParam = "sort"
	// OrderParam names order (ascending or descending) of sorting.
	OrderParam = "order"
)

// RunsListSpec is the body of POST request listing runs.
type RunsListSpec struct {
	Sorter *banksim.SortInfo
}

// NewSortInfo returns SortInfo for given item and order names. It returns nil
// when both are empty.
func NewSortInfo(item, order string) (*banksim.SortInfo, error) {
	if item == "" && order == "" {
		return nil, nil
	}
	si := &banksim.SortInfo{Item: item}
	if err := si.Order.UnmarshalText([]byte(order)); err != nil {
		return nil, err
	}
	if err := si.Validate(); err != nil {
		return nil, err
	}
	return si, nil
}

// SortInfoFromQuery reads SortInfo from query parameters.
func SortInfoFromQuery(q url.Values) (*banksim.SortInfo, error) {
	return NewSortInfo(q.Get(SortParam), q.Get(OrderParam))
}

// SortInfoQuery encodes si as query parameters. Nil si gives empty values.
func SortInfoQuery(si *banksim.SortInfo) url.Values {
	q := make(url.Values)
	if si == nil {
		return q
	}
	if si.Item != "" {
		q.Set(SortParam, si.Item)
	}
	if si.Order != banksim.SortOrderAsc {
		q.Set(OrderParam, si.Order.String())
	}
	return q
}
