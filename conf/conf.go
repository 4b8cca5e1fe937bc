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

// Package conf manages configuration of the simulation server.
package conf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim/runs"
)

// DefaultAPIPort is a port on which REST API is served by default.
const DefaultAPIPort = 8487

// day is 24 hours in seconds.
const day = 86400

// ErrNegativeMaxAge is returned when CORS max age is negative.
var ErrNegativeMaxAge = errors.New("CORS max age must not be negative")

// NewConf returns a new instance of General configuration with default values set.
func NewConf() *General {
	return &General{
		Address:   fmt.Sprintf(":%d", DefaultAPIPort),
		Origins:   []string{"*"},
		MaxAge:    day,
		CacheSize: runs.DefaultCacheSize,
		LogLevel:  logger.InfoLevel.String(),
	}
}

// General is a base struct of configuration.
type General struct {
	// Address is used to listen for HTTP API connections.
	Address string `toml:"listen_address"`
	// Origins contains Origins that should be allowed by CORS.
	Origins []string `toml:"cors_origins"`
	// MaxAge contains value in seconds that will be used as
	// 'Access-Control-Max-Age' header value.
	MaxAge int `toml:"cors_max_age"`
	// CacheSize is the number of runs kept by the server.
	CacheSize int `toml:"cache_size"`
	// LogLevel is the name of the lowest logged level (e.g. "debug").
	LogLevel string `toml:"log_level"`
}

// Marshal writes TOML representation of g to w.
func (g *General) Marshal(w io.Writer) error {
	return toml.NewEncoder(w).Encode(g)
}

// Unmarshal reads TOML representation from r and parses it into g. Function may panic (e.g. when reader is nil).
func (g *General) Unmarshal(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, g)
}

// Level returns parsed LogLevel.
func (g *General) Level() (logger.Level, error) {
	return logger.ParseLevel(g.LogLevel)
}

// Validate checks if values of g can be used by the server.
func (g *General) Validate() error {
	if _, err := g.Level(); err != nil {
		return err
	}
	if g.MaxAge < 0 {
		return ErrNegativeMaxAge
	}
	if g.CacheSize < 0 {
		return runs.ErrCacheSize
	}
	return nil
}

// ReadFile returns configuration with default values overridden by the
// contents of the TOML file at path.
func ReadFile(path string) (*General, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g := NewConf()
	if err = g.Unmarshal(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
