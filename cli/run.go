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

package cli

import (
	"bytes"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SamsungSLAV/banksim"
	"github.com/SamsungSLAV/banksim/report"
	"github.com/SamsungSLAV/banksim/simulation"
)

// defaultJobs is the default number of input files simulated at once.
const defaultJobs = 4

// RunCmd contains data of the run command.
type RunCmd struct {
	Command *cobra.Command
	common  *CommandsCommon
	remote  bool
	jobs    int
}

// NewRunCmd returns command that simulates customers read from files given as
// arguments or from standard input when there are none.
func NewRunCmd(common *CommandsCommon) *RunCmd {
	rc := &RunCmd{common: common}
	rc.Command = &cobra.Command{
		Use:   "run [file...]",
		Short: "simulate customers from files or standard input",
		Long: "Read pairs of arrival time and service length, replay the bank queue and print\n" +
			"processed events with final statistics. Several files are simulated in parallel\n" +
			"and their outputs are printed in order of arguments.",
		RunE: rc.run,
	}
	rc.addFlags()
	return rc
}

func (rc *RunCmd) addFlags() {
	flagset := rc.Command.Flags()
	flagset.BoolVarP(&rc.remote, "remote", "r", false, "run simulations on the server")
	flagset.IntVarP(&rc.jobs, "jobs", "j", defaultJobs, "number of files simulated at once")
}

// simulate runs a single simulation of customers and writes its report to w.
func (rc *RunCmd) simulate(w io.Writer, customers []banksim.Customer, format report.Format) error {
	printer := report.NewPrinter(w, format, rc.common.Pretty)
	if rc.remote {
		info, err := rc.common.Sims.NewRun(customers)
		if err != nil {
			return err
		}
		logger.WithField("id", info.ID).Info("Run created on the server.")
		report.Replay(info, printer)
		return printer.Err()
	}
	if _, err := simulation.Simulate(customers, printer); err != nil {
		return err
	}
	return printer.Err()
}

func (rc *RunCmd) run(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(rc.common.Format)
	if err != nil {
		return err
	}
	if rc.jobs < 1 {
		return fmt.Errorf("invalid number of jobs: %d", rc.jobs)
	}
	if len(args) == 0 {
		customers, err := readCustomers(cmd.InOrStdin(), "")
		if err != nil {
			return err
		}
		return rc.simulate(cmd.OutOrStdout(), customers, format)
	}

	outputs := make([]bytes.Buffer, len(args))
	var g errgroup.Group
	g.SetLimit(rc.jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			customers, err := readCustomers(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			if err = rc.simulate(&outputs[i], customers, format); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, path := range args {
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", path)
		}
		if _, err := outputs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}
