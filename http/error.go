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

// File http/error.go provides errors that may occur when interacting with
// the simulation HTTP API.

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/SamsungSLAV/banksim"
)

// ServerError represents error that occurred while creating response.
type ServerError struct {
	// Err contains general error string.
	Err string `json:"error"`
	// Status contains HTTP error code that should be returned with the error.
	Status int `json:"-"`
}

var (
	// ErrNotImplemented is returned when requested functionality isn't
	// implemented yet.
	ErrNotImplemented = errors.New("not implemented yet")
	// ErrInternalServerError is returned when serious error in the server
	// occurs which isn't users' fault.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadRequest is returned when User request is invalid.
	ErrBadRequest = errors.New("invalid request")
	// ErrBadUUID is returned when User provided ID which isn't valid UUID.
	ErrBadUUID = errors.New("ID provided in URL isn't valid UUID")
)

// isNotFoundError returns true if passed error is of type NotFoundError.
func isNotFoundError(err error) bool {
	var nf banksim.NotFoundError
	return errors.As(err, &nf)
}

// NewServerError provides pointer to initialized ServerError.
func NewServerError(err error, details ...string) (ret *ServerError) {
	if err == nil {
		return nil
	}

	ret = new(ServerError)

	ret.Err = err.Error()
	if len(details) > 0 {
		ret.Err += ": " + details[0]
	}
	if isNotFoundError(err) {
		ret.Status = http.StatusNotFound
		return
	}

	switch {
	case errors.Is(err, banksim.ErrTimeOverflow):
		ret.Err = ErrBadRequest.Error() + ": " + ret.Err
		ret.Status = http.StatusBadRequest
	case errors.Is(err, ErrNotImplemented):
		ret.Status = http.StatusNotImplemented
	case errors.Is(err, ErrInternalServerError), errors.Is(err, banksim.ErrInternalLogicError):
		ret.Status = http.StatusInternalServerError
	case errors.Is(err, ErrBadRequest):
		ret.Status = http.StatusBadRequest
	case errors.Is(err, io.EOF):
		ret.Err = "no body provided in HTTP request"
		ret.Status = http.StatusBadRequest
	default:
		ret.Err = ErrBadRequest.Error() + ": " + ret.Err
		ret.Status = http.StatusBadRequest
	}

	return
}

// Error is part of implementation of error interface.
func (err *ServerError) Error() string {
	return err.Err
}
