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

// File http/server/api/v1/handlers.go contain all handlers that are used in v1 API.

package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/SamsungSLAV/banksim"
	util "github.com/SamsungSLAV/banksim/http"
)

// newRunHandler parses HTTP request for running new simulation and calls
// NewRun().
func (api *API) newRunHandler(r *http.Request, ps map[string]string) *util.Response {
	var runReq util.RunRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&runReq); err != nil {
		return util.NewResponse(err, nil)
	}

	info, err := api.sims.NewRun(runReq.Customers)
	if err != nil {
		return util.NewResponse(err, nil)
	}

	return util.NewResponse(info, nil)
}

// getRunInfoHandler parses HTTP request for getting information about a run
// and calls GetRunInfo().
func (api *API) getRunInfoHandler(r *http.Request, ps map[string]string) *util.Response {
	defer r.Body.Close()

	id, err := parseRunID(ps["id"])
	if err != nil {
		return util.NewResponse(err, nil)
	}

	info, err := api.sims.GetRunInfo(id)
	if err != nil {
		return util.NewResponse(err, nil)
	}

	return util.NewResponse(info, nil)
}

// listRunsHandler parses HTTP request for listing runs and calls ListRuns().
// Sorting is read from JSON body of POST requests or from query parameters
// otherwise.
func (api *API) listRunsHandler(r *http.Request, ps map[string]string) *util.Response {
	defer r.Body.Close()

	listSpec := &util.RunsListSpec{}

	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(listSpec); err != nil {
			if !errors.Is(err, io.EOF) {
				return util.NewResponse(err, nil)
			}
			listSpec.Sorter = nil
		}
	} else {
		si, err := util.SortInfoFromQuery(r.URL.Query())
		if err != nil {
			return util.NewResponse(err, nil)
		}
		listSpec.Sorter = si
	}

	runs, err := api.sims.ListRuns(listSpec.Sorter)
	if err != nil {
		return util.NewResponse(err, nil)
	}

	return util.NewResponse(runs, nil)
}

func (api *API) versionHandler(r *http.Request, ps map[string]string) *util.Response {
	return util.NewResponse(&util.BanksimVersion{
		Server: banksim.Version,
		API:    Version,
		State:  State,
	}, nil)
}
