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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SamsungSLAV/banksim"
	util "github.com/SamsungSLAV/banksim/http"
	"github.com/SamsungSLAV/banksim/report"
)

// NewRunsCmd returns command grouping commands that work with runs stored on
// the server.
func NewRunsCmd(common *CommandsCommon) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "manage runs stored on the server",
		Run:   usage,
	}
	cmd.AddCommand(
		NewRunsNewCmd(common).Command,
		NewRunsGetCmd(common).Command,
		NewRunsListCmd(common).Command,
	)
	return cmd
}

// RunsNewCmd contains data of the runs new command.
type RunsNewCmd struct {
	Command *cobra.Command
	common  *CommandsCommon
}

// NewRunsNewCmd returns command that submits customers to the server and
// prints the stored run.
func NewRunsNewCmd(common *CommandsCommon) *RunsNewCmd {
	rnc := &RunsNewCmd{common: common}
	rnc.Command = &cobra.Command{
		Use:   "new [file]",
		Short: "submit customers to the server",
		Long:  "Read customers from file or standard input, run the simulation on the server\nand print the stored run.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  rnc.run,
	}
	return rnc
}

func (rnc *RunsNewCmd) run(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	customers, err := readCustomers(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	info, err := rnc.common.Sims.NewRun(customers)
	if err != nil {
		return err
	}
	return printRun(cmd.OutOrStdout(), info, rnc.common)
}

// RunsGetCmd contains data of the runs get command.
type RunsGetCmd struct {
	Command *cobra.Command
	common  *CommandsCommon
}

// NewRunsGetCmd returns command printing a run stored on the server.
func NewRunsGetCmd(common *CommandsCommon) *RunsGetCmd {
	rgc := &RunsGetCmd{common: common}
	rgc.Command = &cobra.Command{
		Use:   "get ID",
		Short: "print stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  rgc.run,
	}
	return rgc
}

func (rgc *RunsGetCmd) run(cmd *cobra.Command, args []string) error {
	info, err := rgc.common.Sims.GetRunInfo(banksim.RunID(args[0]))
	if err != nil {
		return err
	}
	return printRun(cmd.OutOrStdout(), info, rgc.common)
}

// printRun writes the whole RunInfo as JSON or replays it in text format.
func printRun(w io.Writer, info banksim.RunInfo, common *CommandsCommon) error {
	format, err := report.ParseFormat(common.Format)
	if err != nil {
		return err
	}
	if format == report.FormatJSON {
		return printJSON(w, info, common.Pretty)
	}
	if _, err = fmt.Fprintf(w, "Run %s created %s\n", info.ID, info.Created.Format(TimeFormat)); err != nil {
		return err
	}
	printer := report.NewPrinter(w, report.FormatText, common.Pretty)
	report.Replay(info, printer)
	return printer.Err()
}

// RunsListCmd contains data of the runs list command.
type RunsListCmd struct {
	Command *cobra.Command
	common  *CommandsCommon
	item    string
	order   string
}

// NewRunsListCmd returns command listing runs stored on the server.
func NewRunsListCmd(common *CommandsCommon) *RunsListCmd {
	rlc := &RunsListCmd{common: common}
	rlc.Command = &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  rlc.run,
	}
	rlc.addFlags()
	return rlc
}

func (rlc *RunsListCmd) addFlags() {
	flagset := rlc.Command.Flags()
	flagset.StringVar(&rlc.item, util.SortParam, "",
		"sort by: "+banksim.SortByCreated+", "+banksim.SortByCustomers+" or "+banksim.SortByAverageWait)
	flagset.StringVar(&rlc.order, util.OrderParam, "", "sort order: ascending or descending")
}

func (rlc *RunsListCmd) run(cmd *cobra.Command, args []string) error {
	si, err := util.NewSortInfo(rlc.item, rlc.order)
	if err != nil {
		return err
	}
	list, err := rlc.common.Sims.ListRuns(si)
	if err != nil {
		return err
	}
	if rlc.common.Format == string(report.FormatJSON) {
		return printJSON(cmd.OutOrStdout(), list, rlc.common.Pretty)
	}
	return printRunsTable(cmd.OutOrStdout(), list)
}

func printRunsTable(w io.Writer, list []banksim.RunInfo) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tCUSTOMERS\tAVERAGE WAIT\tMAX WAIT")
	for _, info := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", info.ID, info.Created.Format(TimeFormat),
			info.Stats.Customers, report.FormatAverage(info.Stats.AverageWait), info.Stats.MaxWait)
	}
	return tw.Flush()
}
