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

// Package api aggregates all available HTTP API versions of the simulation
// server.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dimfeld/httptreemux/v5"
	"github.com/rs/cors"
	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim"
	util "github.com/SamsungSLAV/banksim/http"
	v1 "github.com/SamsungSLAV/banksim/http/server/api/v1"
)

// defaultAPI contains information which version of the API is treated as default.
// It should always be latest stable version.
const defaultAPI = v1.Version

// API provides HTTP API handlers.
type API struct {
	// Router is the root handler of the server. It applies CORS policy to
	// all registered APIs.
	Router http.Handler
	r      *httptreemux.TreeMux
	sims   banksim.Simulations
}

// panicHandler is desired as httptreemux PanicHandler function. It sends
// InternalServerError with details to client whose request caused panic.
func panicHandler(w http.ResponseWriter, r *http.Request, err interface{}) {
	var reason interface{}
	var status = http.StatusInternalServerError
	switch srvErr := err.(type) {
	case *util.ServerError:
		reason = srvErr.Err
		status = srvErr.Status
	default:
		reason = srvErr
	}
	logger.WithFields(logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"reason": reason,
	}).Error("Handler panicked.")
	// Because marshalling JSON may fail, data is sent in plaintext.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, "Internal Server Error:\n%s", reason)
}

// notFoundHandler sends NotFoundError for paths that aren't handled by any API.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	srvErr := util.NewServerError(banksim.NotFoundError(r.URL.Path))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(srvErr.Status)
	if err := json.NewEncoder(w).Encode(srvErr); err != nil {
		logger.WithError(err).Warn("Failed to write response.")
	}
}

// redirectToDefault redirects requests which lack API version information to
// default API. For example, if "v1" is the default API version, then request
// with path "/api/runs/" will be redirected to "/api/v1/runs/".
func redirectToDefault(w http.ResponseWriter, r *http.Request,
	p map[string]string) {
	u := *r.URL
	u.Path = "/api/" + defaultAPI + "/" + strings.TrimPrefix(p["path"], "/")
	if strings.HasSuffix(r.URL.Path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
}

// setDefaultAPIRedirect register handler for API calls that lack API version in path.
func setDefaultAPIRedirect(prefix *httptreemux.Group) {
	for _, method := range [...]string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodConnect,
		http.MethodOptions,
		http.MethodTrace,
	} {
		prefix.Handle(method, "/*path", redirectToDefault)
	}
}

// NewAPI registers all available HTTP APIs on a new router. It also sets
// panicHandler for all panics that may occur in any API. Finally it sets
// default API version to which requests that miss API version are redirected.
// Router is wrapped with CORS handler allowing given origins and caching
// preflight results for maxAge seconds.
func NewAPI(sims banksim.Simulations, origins []string, maxAge int) (api *API) {
	api = new(API)

	api.sims = sims

	api.r = httptreemux.New()
	api.r.PanicHandler = panicHandler
	api.r.NotFoundHandler = notFoundHandler
	api.r.RedirectBehavior = httptreemux.Redirect308

	all := api.r.NewGroup("/api")
	v1group := all.NewGroup("/" + v1.Version)

	_ = v1.NewAPI(v1group, api.sims)
	setDefaultAPIRedirect(all)

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
		ExposedHeaders: []string{
			util.RunCountHdr,
			util.RunCustomersHdr,
			util.RunCreatedHdr,
			util.ServerVersionHdr,
			util.APIVersionHdr,
			util.APIStateHdr,
		},
		MaxAge: maxAge,
	})
	api.Router = c.Handler(api.r)

	return
}
