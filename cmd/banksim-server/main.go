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
	"flag"
	"fmt"
	"net/http"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/SamsungSLAV/banksim"
	"github.com/SamsungSLAV/banksim/conf"
	"github.com/SamsungSLAV/banksim/http/server/api"
	"github.com/SamsungSLAV/banksim/runs"
)

var (
	confPath = flag.String("conf", "", "path to the TOML configuration file.")
	apiAddr  = flag.String("api-addr", "", "ip:port address of REST API server, overrides configuration.")
	version  = flag.Bool("version", false, "print banksim server version and exit.")
)

func exitOnErr(ctx string, err error) {
	logger.WithError(err).Fatal(ctx)
}

func main() {
	flag.Parse()
	if *version {
		fmt.Println("banksim-server version", banksim.Version)
		os.Exit(0)
	}

	cfg := conf.NewConf()
	if *confPath != "" {
		var err error
		if cfg, err = conf.ReadFile(*confPath); err != nil {
			exitOnErr("Failed to read configuration.", err)
		}
	}
	if *apiAddr != "" {
		cfg.Address = *apiAddr
	}
	level, err := cfg.Level()
	if err != nil {
		exitOnErr("Invalid log level.", err)
	}
	logger.SetLevel(level)

	reg, err := runs.NewRegistry(cfg.CacheSize)
	if err != nil {
		exitOnErr("Failed to create run registry.", err)
	}
	a := api.NewAPI(reg, cfg.Origins, cfg.MaxAge)
	logger.WithField("address", cfg.Address).Info("Starting HTTP server.")
	exitOnErr("HTTP server failed.", http.ListenAndServe(cfg.Address, a.Router))
}
