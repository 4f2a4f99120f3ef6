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

package opts

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Root       string
	Debug      bool

	Stdout io.Writer
	Stderr io.Writer
}

// 🏭 New returns options writing to the process streams
func New() *RootOpts {
	return &RootOpts{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ApplyEnv fills options the flags left empty from LAYOUTRC_* variables
func (o *RootOpts) ApplyEnv() error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if o.ConfigFile == "" {
		o.ConfigFile = e.ConfigFile
	}
	if o.Root == "" {
		o.Root = e.Root
	}
	o.Debug = o.Debug || e.Debug
	return nil
}

// 🎯 Logger builds the structured logger for this invocation. Warnings reach
// stderr by default; --debug adds the per-file records.
func (o *RootOpts) Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: o.Stderr}).Level(level).With().Timestamp().Logger()
}

// 🎯 Console builds the console reporter, mirroring to the context logger
func (o *RootOpts) Console(ctx context.Context) *log.Logger {
	return log.New(o.Stdout, *zerolog.Ctx(ctx))
}

// 🎯 LoadConfig returns the built-in configuration, or the configured file,
// with the root override applied.
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigFile != "" {
		loaded, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if o.Root != "" {
		cfg.Root = o.Root
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("configuration ready")
	return cfg, nil
}
