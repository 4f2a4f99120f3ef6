// Copyright 2025 walteh LLC
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

package config

import (
	"github.com/caarlos0/env/v11"
	"gitlab.com/tozd/go/errors"
)

// 🌍 Env holds overrides read from the process environment.
// Command line flags take precedence over these.
type Env struct {
	ConfigFile string `env:"LAYOUTRC_CONFIG"`
	Root       string `env:"LAYOUTRC_ROOT"`
	Debug      bool   `env:"LAYOUTRC_DEBUG" envDefault:"false"`
}

// 🎯 LoadEnv parses the LAYOUTRC_* environment variables
func LoadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, errors.Errorf("parsing environment: %w", err)
	}
	return e, nil
}
