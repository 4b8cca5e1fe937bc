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
	"github.com/spf13/viper"

	"github.com/SamsungSLAV/banksim/cli/config"
)

// BanksimCmd is the root command of the command line interface.
type BanksimCmd struct {
	Command    *cobra.Command
	common     *CommandsCommon
	viper      *viper.Viper
	configPath string
}

// NewBanksimCmd returns root command. Its persistent flags are bound to
// configuration keys, so flags override configuration file and environment.
func NewBanksimCmd(common *CommandsCommon) *BanksimCmd {
	bc := &BanksimCmd{
		common: common,
		viper:  config.New(),
	}
	bc.Command = &cobra.Command{
		Use:   "banksim",
		Short: "Single teller bank queue simulator",
		Long: "banksim replays arrivals and departures of customers of a single teller bank\n" +
			"and reports how long they waited. Customers are given as pairs of arrival time\n" +
			"and service length, one pair per line.",
		Run:               usage,
		PersistentPreRunE: bc.setup,
		SilenceUsage:      true,
	}
	bc.addFlags()
	bc.Command.AddCommand(
		NewRunCmd(common).Command,
		NewRunsCmd(common),
		NewVersionCmd(common).Command,
	)
	return bc
}

func (bc *BanksimCmd) addFlags() {
	flagset := bc.Command.PersistentFlags()
	flagset.StringVar(&bc.configPath, "config", "", "path to the configuration file")
	flagset.StringP(config.ServerKey, "s", "", "URL of the simulation server")
	flagset.Bool(config.PrettyKey, true, "control prettifying JSON output")
	flagset.StringP(config.FormatKey, "f", "", "output format of simulations: text or json")
	flagset.String(config.LogLevelKey, "", "lowest level of logged messages")
	for _, key := range []string{config.ServerKey, config.PrettyKey, config.FormatKey, config.LogLevelKey} {
		_ = bc.viper.BindPFlag(key, flagset.Lookup(key))
	}
}

func (bc *BanksimCmd) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(bc.viper, bc.configPath)
	if err != nil {
		return err
	}
	return bc.common.setup(cfg)
}
