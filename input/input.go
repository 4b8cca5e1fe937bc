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

// Package input reads customers of a simulation from a text stream.
//
// Stream consists of whitespace separated pairs of integers: arrival time and
// service length. Pairs may span lines. Empty lines are ignored and '#'
// starts a comment which lasts until the end of the line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SamsungSLAV/banksim"
)

var (
	// ErrMalformedPair is returned when a token isn't an integer or the
	// stream ends in the middle of a pair.
	ErrMalformedPair = errors.New("malformed arrival and service pair")
	// ErrNegativeValue is returned when arrival time or service length is
	// negative.
	ErrNegativeValue = errors.New("value must not be negative")
)

// commentSign starts a comment.
const commentSign = "#"

// ParseError describes problem found in the given line of input.
type ParseError struct {
	// Line is the number of line (counting from 1) in which the problem was found.
	Line int
	// Err is ErrMalformedPair or ErrNegativeValue.
	Err error
	// Token is the offending text. It is empty when the input ends too early.
	Token string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Token)
}

// Unwrap returns the sentinel error describing the problem.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses all pairs from r. Returned error is a *ParseError or an error of
// reading r.
func Read(r io.Reader) ([]banksim.Customer, error) {
	var (
		customers []banksim.Customer
		pending   []int
		// pendingLine is a line in which currently incomplete pair starts.
		pendingLine int
		line        int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, commentSign); i >= 0 {
			text = text[:i]
		}
		for _, token := range strings.Fields(text) {
			v, err := strconv.Atoi(token)
			if err != nil {
				return nil, &ParseError{Line: line, Err: ErrMalformedPair, Token: token}
			}
			if v < 0 {
				return nil, &ParseError{Line: line, Err: ErrNegativeValue, Token: token}
			}
			if len(pending) == 0 {
				pendingLine = line
			}
			pending = append(pending, v)
			if len(pending) == 2 {
				customers = append(customers, banksim.Customer{
					Arrival: pending[0],
					Service: pending[1],
				})
				pending = pending[:0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(pending) != 0 {
		return nil, &ParseError{Line: pendingLine, Err: ErrMalformedPair}
	}
	return customers, nil
}

// ReadFile parses all pairs from the file at path.
func ReadFile(path string) ([]banksim.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	customers, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return customers, nil
}
