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

// Package config provides functions for handling cli config file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Names of configuration keys. They are also names of the flags bound to them.
const (
	ServerKey   = "server"
	PrettyKey   = "pretty"
	FormatKey   = "format"
	LogLevelKey = "log-level"
)

// EnvPrefix is the prefix of environment variables overriding configuration,
// e.g. BANKSIM_SERVER.
const EnvPrefix = "BANKSIM"

// envReplacer maps configuration keys to names of environment variables.
var envReplacer = strings.NewReplacer("-", "_")

// configName is the name of configuration file without extension.
const configName = "cli"

// Config contains settings of the command line interface.
type Config struct {
	// Server is the URL of the simulation server used by remote commands.
	Server string `mapstructure:"server"`
	// Pretty enables indentation of printed JSON.
	Pretty bool `mapstructure:"pretty"`
	// Format is the default output format of simulation commands (text or json).
	Format string `mapstructure:"format"`
	// LogLevel is the lowest level of logged messages.
	LogLevel string `mapstructure:"log-level"`
}

var configFileLocations []string

func init() {
	defaultLocations()
}

func defaultLocations() {
	configFileLocations = []string{
		"/etc/banksim",
		"/usr/share/config/banksim",
		"/usr/local/share/config/banksim",
	}
	if home, err := os.UserHomeDir(); err == nil {
		configFileLocations = append(configFileLocations, filepath.Join(home, ".config", "banksim"))
	}
}

// New returns Viper instance with default values of all keys set.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(ServerKey, "http://localhost:8487")
	v.SetDefault(PrettyKey, true)
	v.SetDefault(FormatKey, "text")
	v.SetDefault(LogLevelKey, "warning")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	return v
}

// Load reads configuration into v and returns it. Configuration file is read
// from path or, when path is empty, from cli.yml found in one of the default
// locations. Missing file in default locations isn't an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		for _, loc := range configFileLocations {
			v.AddConfigPath(loc)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write saves configuration to the file at path.
func Write(cfg Config, path string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set(ServerKey, cfg.Server)
	v.Set(PrettyKey, cfg.Pretty)
	v.Set(FormatKey, cfg.Format)
	v.Set(LogLevelKey, cfg.LogLevel)
	return v.WriteConfigAs(path)
}
