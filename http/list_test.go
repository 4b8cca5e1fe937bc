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

// File http/list_test.go provides test of parsing list parameters.

package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamsungSLAV/banksim"
)

func TestNewSortInfo(t *testing.T) {
	assert := assert.New(t)

	testCases := [...]struct {
		name        string
		item, order string
		si          *banksim.SortInfo
		err         error
	}{
		{name: "empty", si: nil},
		{
			name: "item only",
			item: "customers",
			si:   &banksim.SortInfo{Item: "customers", Order: banksim.SortOrderAsc},
		},
		{
			name:  "order only",
			order: "descending",
			si:    &banksim.SortInfo{Order: banksim.SortOrderDesc},
		},
		{
			name:  "both",
			item:  "AverageWait",
			order: "Ascending",
			si:    &banksim.SortInfo{Item: "AverageWait", Order: banksim.SortOrderAsc},
		},
		{name: "bad item", item: "foo", err: banksim.ErrWrongSortItem},
		{name: "bad order", item: "created", order: "up", err: banksim.ErrWrongSortOrder},
	}

	for _, test := range testCases {
		si, err := NewSortInfo(test.item, test.order)
		assert.Equal(test.err, err, test.name)
		assert.Equal(test.si, si, test.name)
	}
}

func TestSortInfoQuery(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(SortInfoQuery(nil))
	assert.Empty(SortInfoQuery(new(banksim.SortInfo)))

	si := &banksim.SortInfo{Item: banksim.SortByAverageWait, Order: banksim.SortOrderDesc}
	q := SortInfoQuery(si)
	assert.Equal(url.Values{
		SortParam:  []string{"averagewait"},
		OrderParam: []string{"descending"},
	}, q)

	back, err := SortInfoFromQuery(q)
	assert.NoError(err)
	assert.Equal(si, back)
}
