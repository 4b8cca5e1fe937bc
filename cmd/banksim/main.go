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

package main

import (
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim/cli"
)

func main() {
	banksimCmd := cli.NewBanksimCmd(new(cli.CommandsCommon))
	if err := banksimCmd.Command.Execute(); err != nil {
		logger.WithError(err).Debug("Command failed.")
		os.Exit(1)
	}
}
