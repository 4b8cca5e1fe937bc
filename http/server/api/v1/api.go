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

// Package v1 provides HTTP API version 1 of the simulation server. Through
// this API clients may:
// * run simulation of given customers;
// * list and get details of finished runs.
package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dimfeld/httptreemux/v5"
	"github.com/gofrs/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim"
	util "github.com/SamsungSLAV/banksim/http"
)

// reqHandler denotes function that parses HTTP request and returns pointer to util.Response.
type reqHandler func(*http.Request, map[string]string) *util.Response

// Version contains version string of the API.
const Version = "v1"

// State contains information about state of the API (devel, stable or deprecated).
const State = util.Devel

// API provides HTTP API handlers.
type API struct {
	r    *httptreemux.Group
	sims banksim.Simulations
}

// jsonMustMarshal tries to marshal passed data to JSON. Panics if error occurs.
func jsonMustMarshal(data interface{}) []byte {
	res, err := json.Marshal(data)
	if err != nil {
		msg := "unable to marshal JSON:" + err.Error()
		panic(util.NewServerError(util.ErrInternalServerError, msg))
	}
	return res
}

// routerSetHandler wraps fn by adding HTTP headers, handling error and
// marshalling. Such wrapped function is then registered in the API router as a
// handler for given path, provided methods and HTTP success status that should
// be used when function succeeds.
func routerSetHandler(grp *httptreemux.Group, path string, fn reqHandler,
	status int, methods ...string) {
	newHandler := func(handle reqHandler) httptreemux.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request,
			ps map[string]string) {
			status := status
			response := handle(r, ps)
			switch data := response.Data.(type) {
			case *util.ServerError:
				if data != nil {
					status = data.Status
					logger.WithFields(logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"status": status,
					}).Info(data.Err)
				}
			case banksim.RunInfo:
				w.Header().Add(util.RunCustomersHdr, strconv.Itoa(data.Stats.Customers))
				w.Header().Add(util.RunCreatedHdr, data.Created.Format(util.DateFormat))
			case []banksim.RunInfo:
				w.Header().Add(util.RunCountHdr, strconv.Itoa(len(data)))
			case *util.BanksimVersion:
				w.Header().Add(util.ServerVersionHdr, data.Server)
				w.Header().Add(util.APIVersionHdr, data.API)
				w.Header().Add(util.APIStateHdr, data.State)
			}
			if status != http.StatusNoContent {
				w.Header().Set("Content-Type", "application/json")
			}
			for k, v := range response.Headers {
				for _, s := range v {
					w.Header().Add(k, s)
				}
			}
			w.WriteHeader(status)
			if status != http.StatusNoContent {
				if _, err := w.Write(jsonMustMarshal(response.Data)); err != nil {
					logger.WithError(err).Warn("Failed to write response.")
				}
			}
		}
	}
	for _, method := range methods {
		grp.Handle(method, path, newHandler(fn))
	}
}

// NewAPI takes router and registers HTTP API in it. htttreemux.PanicHandler
// function is set. Also other setting of the router may be modified.
func NewAPI(router *httptreemux.Group, sims banksim.Simulations) (api *API) {
	api = new(API)

	api.sims = sims

	api.r = router

	main := api.r.NewGroup("/")
	runs := api.r.NewGroup("/runs")

	// Runs API
	routerSetHandler(runs, "/", api.newRunHandler, http.StatusCreated,
		http.MethodPost)
	routerSetHandler(runs, "/", api.listRunsHandler, http.StatusOK,
		http.MethodGet, http.MethodHead)
	routerSetHandler(runs, "/list", api.listRunsHandler, http.StatusOK,
		http.MethodPost)
	routerSetHandler(runs, "/:id", api.getRunInfoHandler, http.StatusOK,
		http.MethodGet, http.MethodHead)

	// other functions
	routerSetHandler(main, "/version", api.versionHandler, http.StatusOK, http.MethodGet,
		http.MethodHead)

	return
}

// parseRunID checks if given string is properly formatted UUID and returns
// it in canonical form.
func parseRunID(id string) (banksim.RunID, error) {
	u, err := uuid.FromString(id)
	if err != nil {
		return "", util.ErrBadUUID
	}
	return banksim.RunID(u.String()), nil
}
