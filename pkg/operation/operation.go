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

package operation

import (
	"context"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/log"
	"github.com/walteh/layoutrc/pkg/status"
	"github.com/walteh/layoutrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by a Runner
type Operation interface {
	Name() string
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Config lists the files and rules
	Config *config.Config
	// Files reads and writes listed paths; defaults to a status.Manager on Config.Root
	Files status.FileManager
	// Logger prints the console report
	Logger *log.Logger
}

// 🧱 BaseOperation holds what the rewrite and plan operations share
type BaseOperation struct {
	Options
	replacer *text.Replacer
}

// 🏭 NewBaseOperation validates options and compiles the rules
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return BaseOperation{}, errors.Errorf("logger is required")
	}
	if opts.Files == nil {
		opts.Files = status.New(opts.Config.Root)
	}

	replacer, err := text.NewReplacer(opts.Config.Rules)
	if err != nil {
		return BaseOperation{}, errors.Errorf("compiling rules: %w", err)
	}

	return BaseOperation{Options: opts, replacer: replacer}, nil
}

// 📄 process classifies one listed path, writing the new content only when write is set.
// Failures are folded into the returned result and never returned as errors.
func (op *BaseOperation) process(ctx context.Context, path string, write bool) status.Result {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	result := status.Result{
		Path:     path,
		Location: op.Files.Location(path),
	}

	exists, err := op.Files.FileExists(ctx, path)
	if err != nil {
		result.Outcome = status.OutcomeError
		result.Err = err
		return result
	}
	if !exists {
		result.Outcome = status.OutcomeNotFound
		return result
	}

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		result.Outcome = status.OutcomeError
		result.Err = err
		return result
	}

	if !utf8.Valid(content) {
		result.Outcome = status.OutcomeError
		result.Err = errors.Errorf("decoding file: invalid UTF-8")
		return result
	}

	replaced := op.replacer.Apply(path, string(content))
	result.Replacements = replaced.ReplacementCount

	if !replaced.WasModified {
		logger.Debug().Msg("content unchanged")
		result.Outcome = status.OutcomeUnchanged
		return result
	}

	logger.Debug().Str("rules", replaced.String()).Msg("content changed")

	if write {
		if err := op.Files.WriteFile(ctx, path, []byte(replaced.ModifiedContent)); err != nil {
			result.Outcome = status.OutcomeError
			result.Err = err
			return result
		}
	}

	result.Outcome = status.OutcomeUpdated
	return result
}

// 🔍 warnUnmatchedRules flags rules whose file glob selects none of the listed paths
func (op *BaseOperation) warnUnmatchedRules() {
	for _, r := range op.Config.Rules {
		if r.Files == "" {
			continue
		}
		matched := false
		for _, f := range op.Config.Files {
			if ok, _ := doublestar.Match(r.Files, f); ok {
				matched = true
				break
			}
		}
		if !matched {
			name := r.Name
			if name == "" {
				name = r.Files
			}
			op.Logger.Warningf("rule %q matches none of the %d listed files", name, len(op.Config.Files))
		}
	}
}
