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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/layoutrc/cmd/layoutrc/opts"
	"github.com/walteh/layoutrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Rewrite the listed templates in place",
		Long: `Run rewrites every listed template, in order:
1. Layout decorations on material-layout or main-layout move to modern-layout
2. <html lang="en" becomes <html lang="vi"
3. Files are written only when their content changed

Missing or unreadable files are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, o)
		},
	}
}

// Run executes the rewrite; the root command uses it when no subcommand is given
func Run(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx).With().Str("command", "run").Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return err
	}

	op, err := operation.NewRewriteOperation(operation.Options{
		Config: cfg,
		Logger: o.Console(ctx),
	})
	if err != nil {
		return errors.Errorf("creating rewrite: %w", err)
	}

	return operation.NewRunner(&logger).Run(ctx, op)
}
