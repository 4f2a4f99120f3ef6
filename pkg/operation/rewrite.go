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

	"github.com/rs/zerolog"
	"github.com/walteh/layoutrc/pkg/status"
)

// 📦 RewriteOperation rewrites every listed file in place, in list order
type RewriteOperation struct {
	BaseOperation
	summary *status.Summary
}

// 📦 NewRewriteOperation creates a new rewrite operation
func NewRewriteOperation(opts Options) (*RewriteOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &RewriteOperation{BaseOperation: base}, nil
}

func (op *RewriteOperation) Name() string {
	return "rewrite"
}

// 🏃 Execute runs the rewrite. Per-file failures are reported, not returned.
func (op *RewriteOperation) Execute(ctx context.Context) error {
	op.Run(ctx)
	return nil
}

// 🏃 Run processes each listed file and returns the aggregated outcomes
func (op *RewriteOperation) Run(ctx context.Context) *status.Summary {
	logger := zerolog.Ctx(ctx)
	summary := &status.Summary{}

	op.Logger.Header(op.Config.Title)
	op.warnUnmatchedRules()

	for _, path := range op.Config.Files {
		result := op.UpdateFile(ctx, path)
		op.Logger.Result(result)
		summary.Record(result)
	}

	op.Logger.Summary(summary)
	logger.Debug().Int("updated", summary.Updated).Msg("rewrite finished")

	op.summary = summary
	return summary
}

// 📄 UpdateFile reads one listed file, applies the rules and writes it back only if it changed
func (op *RewriteOperation) UpdateFile(ctx context.Context, path string) status.Result {
	return op.process(ctx, path, true)
}

// Summary returns the outcomes of the last Run, or nil before the first one
func (op *RewriteOperation) Summary() *status.Summary {
	return op.summary
}
