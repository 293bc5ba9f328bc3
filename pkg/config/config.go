// Copyright 2024 Nokia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// DeviceID names the device in transaction ids, logs and errors
	DeviceID string `yaml:"device-id,omitempty" json:"device-id,omitempty"`
	SBI      *SBI   `yaml:"sbi,omitempty" json:"sbi,omitempty"`
}

// New reads the yaml config file, if any, and applies the defaults.
func New(file string) (*Config, error) {
	c := new(Config)
	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(b, c)
		if err != nil {
			return nil, fmt.Errorf("failed parsing config file %s: %w", path, err)
		}
	}
	err := c.validateSetDefaults()
	return c, err
}

func (c *Config) validateSetDefaults() error {
	if c.SBI == nil {
		return errors.New("missing sbi definition")
	}
	if err := c.SBI.validateSetDefaults(); err != nil {
		return err
	}
	if c.DeviceID == "" {
		c.DeviceID = c.SBI.Address
	}
	return nil
}
