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

// Package client provides methods for interaction with the simulation REST
// API server.
//
// Provided BanksimClient type besides implementing banksim.Simulations
// interface provides few convenient methods that allow to quickly check
// run details without downloading the whole event trace.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/SamsungSLAV/banksim"
	util "github.com/SamsungSLAV/banksim/http"
)

// BanksimClient handles interaction with specified simulation server.
type BanksimClient struct {
	url string
}

// apiPrefix is part of URL that is common in all uses and contains API
// version.
const apiPrefix = "/api/v1/"

// contentType is the type of data sent to the server.
const contentType = "application/json"

// NewBanksimClient provides BanksimClient ready to communicate with specified
// server.
//
//	cl := NewBanksimClient("http://127.0.0.1:8487")
func NewBanksimClient(url string) *BanksimClient {
	return &BanksimClient{
		url: strings.TrimSuffix(url, "/") + apiPrefix,
	}
}

// readBody is simple wrapper function that reads body of http request into byte
// slice and closes the body.
func readBody(body io.ReadCloser) ([]byte, error) {
	defer body.Close()
	content, err := io.ReadAll(body)
	if err != nil {
		err = errors.New("unable to read server response: " + err.Error())
	}
	return content, err
}

// bodyJSONUnmarshal is a wrapper that unmarshals server response into an
// appropriate structure.
func bodyJSONUnmarshal(body io.ReadCloser, val interface{}) error {
	content, err := readBody(body)
	if err != nil {
		return err
	}
	err = json.Unmarshal(content, val)
	if err != nil {
		return errors.New("unmarshalling JSON response failed: " + err.Error())
	}
	return nil
}

// getServerError parses server response and returns *util.ServerError when
// response status indicates failure. Otherwise nil is returned.
func getServerError(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	srvErr := new(util.ServerError)
	switch resp.Header.Get("Content-Type") {
	case contentType:
		if err := bodyJSONUnmarshal(resp.Body, srvErr); err != nil {
			return err
		}
	default:
		msg, err := readBody(resp.Body)
		if err != nil {
			return err
		}
		srvErr.Err = string(msg)
	}
	srvErr.Status = resp.StatusCode
	return srvErr
}

// processResponse is helper function which parses server response. It checks
// if the server returned an error and sets val to value decoded from response
// body. When there's no content, value pointed by val is zeroed. It panics
// when val isn't a pointer.
func processResponse(resp *http.Response, val interface{}) error {
	var v reflect.Value
	if val != nil {
		v = reflect.ValueOf(val)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			panic("can't set val, please pass appropriate pointer")
		}
	}
	if resp.StatusCode == http.StatusNoContent {
		if resp.Body != nil {
			resp.Body.Close()
		}
		if val != nil {
			v.Elem().Set(reflect.Zero(v.Elem().Type()))
		}
		return nil
	}
	if err := getServerError(resp); err != nil {
		return err
	}
	if val == nil {
		resp.Body.Close()
		return nil
	}
	return bodyJSONUnmarshal(resp.Body, val)
}

// NewRun is part of implementation of banksim.Simulations interface. It
// sends customers to the server which runs the simulation and returns its
// result.
func (client *BanksimClient) NewRun(customers []banksim.Customer) (banksim.RunInfo, error) {
	var info *banksim.RunInfo
	if customers == nil {
		customers = []banksim.Customer{}
	}
	req, err := json.Marshal(&util.RunRequest{Customers: customers})
	if err != nil {
		return banksim.RunInfo{}, err
	}
	resp, err := http.Post(client.url+"runs/", contentType, bytes.NewReader(req))
	if err != nil {
		return banksim.RunInfo{}, err
	}
	if err = processResponse(resp, &info); err != nil || info == nil {
		return banksim.RunInfo{}, err
	}
	return *info, nil
}

// GetRunInfo is part of implementation of banksim.Simulations interface. It
// queries the server for details of the run with given ID.
func (client *BanksimClient) GetRunInfo(id banksim.RunID) (banksim.RunInfo, error) {
	var info *banksim.RunInfo
	resp, err := http.Get(client.url + "runs/" + string(id))
	if err != nil {
		return banksim.RunInfo{}, err
	}
	if err = processResponse(resp, &info); err != nil || info == nil {
		return banksim.RunInfo{}, err
	}
	return *info, nil
}

// ListRuns is part of implementation of banksim.Simulations interface. It
// queries the server for list of runs sorted according to si. si may be nil
// to use default sorting.
func (client *BanksimClient) ListRuns(si *banksim.SortInfo) ([]banksim.RunInfo, error) {
	var list []banksim.RunInfo
	req, err := json.Marshal(&util.RunsListSpec{Sorter: si})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(client.url+"runs/list", contentType, bytes.NewReader(req))
	if err != nil {
		return nil, err
	}
	if err = processResponse(resp, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// head sends HEAD request to the path and returns response headers.
func (client *BanksimClient) head(path string) (http.Header, error) {
	resp, err := http.Head(client.url + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, util.NewServerError(errors.New(http.StatusText(resp.StatusCode)))
	}
	return resp.Header, nil
}

// GetRunCustomers queries the server for number of customers of the run with
// given ID. HEAD method is used so the run isn't transferred.
func (client *BanksimClient) GetRunCustomers(id banksim.RunID) (int, error) {
	headers, err := client.head("runs/" + string(id))
	if err != nil {
		return 0, err
	}
	customers, err := strconv.Atoi(headers.Get(util.RunCustomersHdr))
	if err != nil {
		return 0, fmt.Errorf("bad %s header: %w", util.RunCustomersHdr, err)
	}
	return customers, nil
}

// GetRunCreated queries the server for creation time of the run with given
// ID. HEAD method is used so the run isn't transferred.
func (client *BanksimClient) GetRunCreated(id banksim.RunID) (time.Time, error) {
	headers, err := client.head("runs/" + string(id))
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(util.DateFormat, headers.Get(util.RunCreatedHdr))
}

// Version queries the server for its version and version of the API.
func (client *BanksimClient) Version() (*util.BanksimVersion, error) {
	var version *util.BanksimVersion
	resp, err := http.Get(client.url + "version")
	if err != nil {
		return nil, err
	}
	if err = processResponse(resp, &version); err != nil {
		return nil, err
	}
	return version, nil
}
