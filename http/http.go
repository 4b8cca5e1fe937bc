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

// Package http provides datatypes that are shared between server and client.
package http

import (
	"net/http"
	"time"

	"github.com/SamsungSLAV/banksim"
)

// DateFormat denotes layout of timestamps used by the HTTP API.
const DateFormat = time.RFC3339

// Names of custom headers set by the server.
const (
	// RunCountHdr contains number of runs returned by the list handler.
	RunCountHdr = "Banksim-Run-Count"
	// RunCustomersHdr contains number of customers of the returned run.
	RunCustomersHdr = "Banksim-Run-Customers"
	// RunCreatedHdr contains creation time of the returned run.
	RunCreatedHdr = "Banksim-Run-Created"
	// ServerVersionHdr contains version of the server.
	ServerVersionHdr = "Banksim-Server-Version"
	// APIVersionHdr contains version of the API.
	APIVersionHdr = "Banksim-API-Version"
	// APIStateHdr contains state of the API (devel, stable or deprecated).
	APIStateHdr = "Banksim-API-State"
)

// States of the API.
const (
	// Devel means that the API may change without notice.
	Devel = "devel"
	// Stable means that the API won't change in incompatible way.
	Stable = "stable"
	// Deprecated means that the API will be removed.
	Deprecated = "deprecated"
)

// RunRequest is the body of request creating new run.
type RunRequest struct {
	Customers []banksim.Customer
}

// BanksimVersion contains version of the server and the API it serves.
type BanksimVersion struct {
	Server string
	API    string
	State  string
}

// Response is returned by handlers. It contains data to be marshalled to JSON
// and additional headers.
type Response struct {
	Data    interface{}
	Headers http.Header
}

// NewResponse returns Response with data and headers. Errors other than
// ServerError are converted to *ServerError.
func NewResponse(data interface{}, headers http.Header) *Response {
	switch d := data.(type) {
	case *ServerError, ServerError:
	case error:
		data = NewServerError(d)
	}
	return &Response{
		Data:    data,
		Headers: headers,
	}
}
