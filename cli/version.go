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
	"github.com/spf13/cobra"

	"github.com/SamsungSLAV/banksim"
	util "github.com/SamsungSLAV/banksim/http"
)

// VersionCmd contains data of the version command.
type VersionCmd struct {
	Command *cobra.Command
	common  *CommandsCommon
	remote  bool
}

// NewVersionCmd returns command printing version of the client and, on
// request, of the server.
func NewVersionCmd(common *CommandsCommon) *VersionCmd {
	vc := &VersionCmd{common: common}
	vc.Command = &cobra.Command{
		Use:   "version",
		Short: "print version",
		Args:  cobra.NoArgs,
		RunE:  vc.run,
	}
	vc.Command.Flags().BoolVarP(&vc.remote, "remote", "r", false, "also ask the server for its version")
	return vc
}

// versions is printed by the version command.
type versions struct {
	Client string
	Server *util.BanksimVersion `json:",omitempty"`
}

func (vc *VersionCmd) run(cmd *cobra.Command, args []string) error {
	v := versions{Client: banksim.Version}
	if vc.remote {
		var err error
		if v.Server, err = vc.common.Client.Version(); err != nil {
			return err
		}
	}
	return printJSON(cmd.OutOrStdout(), v, vc.common.Pretty)
}
