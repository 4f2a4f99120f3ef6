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

	"github.com/walteh/layoutrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔍 PlanOperation reports what a rewrite would do without touching any file
type PlanOperation struct {
	BaseOperation
	summary *status.Summary
}

// 🔍 NewPlanOperation creates a new dry-run operation
func NewPlanOperation(opts Options) (*PlanOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &PlanOperation{BaseOperation: base}, nil
}

func (op *PlanOperation) Name() string {
	return "plan"
}

// 🏃 Execute evaluates every listed file and prints the plan table
func (op *PlanOperation) Execute(ctx context.Context) error {
	op.warnUnmatchedRules()

	summary := &status.Summary{}
	for _, path := range op.Config.Files {
		summary.Record(op.process(ctx, path, false))
	}
	op.summary = summary

	if err := op.Logger.PlanTable(summary); err != nil {
		return errors.Errorf("rendering plan: %w", err)
	}
	return nil
}

// Summary returns the outcomes of the last Execute, or nil before the first one
func (op *PlanOperation) Summary() *status.Summary {
	return op.summary
}
