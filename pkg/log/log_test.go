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

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/layoutrc/pkg/status"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	banner := strings.Repeat("=", 60)

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("Updating HTML templates to use modern-layout")
			},
			wantLogs: []string{
				banner,
				"Updating HTML templates to use modern-layout",
				banner,
			},
		},
		{
			name: "results",
			op: func(t *testing.T, logger *Logger) {
				logger.Result(status.Result{Path: "a.html", Location: "/t/a.html", Outcome: status.OutcomeUpdated, Replacements: 2})
				logger.Result(status.Result{Path: "b.html", Location: "/t/b.html", Outcome: status.OutcomeUnchanged})
				logger.Result(status.Result{Path: "c.html", Location: "/t/c.html", Outcome: status.OutcomeNotFound})
				logger.Result(status.Result{Path: "d.html", Location: "/t/d.html", Outcome: status.OutcomeError, Err: errors.New("reading file: permission denied")})
			},
			wantLogs: []string{
				"[OK] Updated: /t/a.html",
				"[SKIP] No change: /t/b.html",
				"! File not found: /t/c.html",
				"[ERROR] Error updating /t/d.html: reading file: permission denied",
			},
		},
		{
			name: "summary",
			op: func(t *testing.T, logger *Logger) {
				logger.Summary(&status.Summary{Updated: 4, Errors: 1, NotFound: 2})
			},
			wantLogs: []string{
				banner,
				"Summary: 4 files updated",
				banner,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.Nop())

			tt.op(t, logger)

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			assert.Equal(t, tt.wantLogs, lines)
		})
	}
}

func TestLogger_StructuredMirror(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var console, structured bytes.Buffer
	logger := New(&console, zerolog.New(&structured).Level(zerolog.DebugLevel))

	logger.Result(status.Result{Path: "a.html", Location: "/t/a.html", Outcome: status.OutcomeError, Err: errors.New("boom")})

	out := structured.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"path":"a.html"`)
	assert.Contains(t, out, `"outcome":"error"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestLogger_PlanTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	logger := New(&buf, zerolog.Nop())

	s := &status.Summary{}
	s.Record(status.Result{Path: "admin/users/list.html", Outcome: status.OutcomeUpdated, Replacements: 2})
	s.Record(status.Result{Path: "error/404.html", Outcome: status.OutcomeUnchanged})
	s.Record(status.Result{Path: "profile/view.html", Outcome: status.OutcomeNotFound})

	require.NoError(t, logger.PlanTable(s))

	out := buf.String()
	assert.Contains(t, out, "admin/users/list.html")
	assert.Contains(t, out, "would update")
	assert.Contains(t, out, "not_found")
	assert.Contains(t, out, "1 of 3 files would be updated")
}

func TestLogger_WarningStaysOffConsole(t *testing.T) {
	var console, structured bytes.Buffer
	logger := New(&console, zerolog.New(&structured))

	logger.Warningf("rule %q matches none of the %d listed files", "lang", 3)

	assert.Empty(t, console.String(), "warnings should not interleave with report lines")
	out := structured.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `rule \"lang\" matches none of the 3 listed files`)
}
