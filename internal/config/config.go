// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional YAML configuration file with defaults
// for the CLI flags.
package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// Config holds the file-provided defaults; flags override every field.
type Config struct {
	Home            string
	FirstLineAsData bool
	WriterMode      bool
	OutputFormat    string
	LogLevel        string
}

// Path returns the config file location under the XDG config dir.
func Path() (string, error) {
	return xdg.ConfigFile("csvsql/config.yaml")
}

// Load reads the config file if present. Values are coerced loosely, so
// `writer_mode: 1` and `writer_mode: true` both work.
func Load() (Config, error) {
	var cfg Config
	path, err := Path()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}
	cfg.Home = cast.ToString(raw["home"])
	cfg.FirstLineAsData = cast.ToBool(raw["first_line_as_data"])
	cfg.WriterMode = cast.ToBool(raw["writer_mode"])
	cfg.OutputFormat = cast.ToString(raw["output_format"])
	cfg.LogLevel = cast.ToString(raw["log_level"])
	return cfg, nil
}
