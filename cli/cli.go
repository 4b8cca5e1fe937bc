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

// Package cli contains definitions of all banksim commands.
package cli

// cli.go - common part for cli package.

import (
	"io"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SamsungSLAV/banksim"
	"github.com/SamsungSLAV/banksim/cli/config"
	"github.com/SamsungSLAV/banksim/http/client"
	"github.com/SamsungSLAV/banksim/input"
	"github.com/SamsungSLAV/banksim/report"
)

const (
	// TimeFormat used in banksim cli.
	TimeFormat = time.RFC3339
)

// CommandsCommon is shared by all commands. It is filled by the root command
// before any subcommand runs.
type CommandsCommon struct {
	// Sims is used by commands working with the server. When nil, Client is used.
	Sims banksim.Simulations
	// Client is created from configured server address when nil.
	Client *client.BanksimClient
	config.Config
}

// setup fills missing parts of c using configuration cfg.
func (c *CommandsCommon) setup(cfg config.Config) error {
	c.Config = cfg
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if c.Client == nil {
		c.Client = client.NewBanksimClient(cfg.Server)
	}
	if c.Sims == nil {
		c.Sims = c.Client
	}
	return nil
}

// readCustomers reads customers from the file at path or from r when path is
// empty or "-".
func readCustomers(r io.Reader, path string) ([]banksim.Customer, error) {
	if path == "" || path == "-" {
		return input.Read(r)
	}
	return input.ReadFile(path)
}

// printJSON writes v to w as JSON, indented when pretty is set.
func printJSON(w io.Writer, v interface{}, pretty bool) error {
	return report.NewPrinter(w, report.FormatJSON, pretty).WriteJSON(v)
}

// usage is used by commands that only group other commands.
func usage(cmd *cobra.Command, args []string) {
	if err := cmd.Usage(); err != nil {
		logger.WithError(err).Errorf("Failed to print %s command usage.", cmd.Name())
	}
}
