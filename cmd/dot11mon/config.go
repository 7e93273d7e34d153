// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the CLI's optional defaults, loaded from a YAML file so a
// monitoring box can pin its usual device/options without repeating
// flags on every invocation.
type config struct {
	Device string `yaml:"device"`
	Strict bool   `yaml:"strict"`
	Debug  bool   `yaml:"debug"`
}

func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}
