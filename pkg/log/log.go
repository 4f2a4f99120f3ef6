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
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/layoutrc/pkg/status"
)

// 🎯 Logger prints the rewrite report to the console and mirrors every
// event to a structured zerolog logger.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

func tagColor(o status.Outcome) *color.Color {
	switch o {
	case status.OutcomeUpdated:
		return color.New(color.FgGreen)
	case status.OutcomeUnchanged:
		return color.New(color.Faint)
	case status.OutcomeNotFound:
		return color.New(color.FgYellow)
	case status.OutcomeError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Reset)
	}
}

// 📝 Header prints the opening banner around title
func (l *Logger) Header(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.Banner())
	fmt.Fprintln(l.console, title)
	fmt.Fprintln(l.console, status.Banner())

	l.zlog.Info().Str("title", title).Msg("rewrite started")
}

// 📝 Result prints the line for one file
func (l *Logger) Result(r status.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n", tagColor(r.Outcome).Sprint(r.Outcome.Tag()), status.FormatResult(r))

	// the console line already carries the outcome, so the mirror stays at debug
	l.zlog.Debug().
		Err(r.Err).
		Str("path", r.Path).
		Str("location", r.Location).
		Stringer("outcome", r.Outcome).
		Int("replacements", r.Replacements).
		Msg("file processed")
}

// 📝 Summary prints the closing banner and the updated count
func (l *Logger) Summary(s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.Banner())
	fmt.Fprintln(l.console, status.FormatSummary(s))
	fmt.Fprintln(l.console, status.Banner())

	l.zlog.Info().
		Int("total", s.Total()).
		Int("updated", s.Updated).
		Int("unchanged", s.Unchanged).
		Int("not_found", s.NotFound).
		Int("errors", s.Errors).
		Msg("rewrite complete")
}

// 📋 PlanTable prints what a run would do, one row per listed file
func (l *Logger) PlanTable(s *status.Summary) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{{"Path", "Outcome", "Replacements"}}
	for _, r := range s.Results {
		outcome := r.Outcome.String()
		if r.Outcome == status.OutcomeUpdated {
			outcome = "would update"
		}
		if r.Err != nil {
			outcome += ": " + r.Err.Error()
		}
		data = append(data, []string{r.Path, outcome, fmt.Sprintf("%d", r.Replacements)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(l.console, table)
	fmt.Fprintf(l.console, "%d of %d files would be updated\n", s.Updated, s.Total())

	l.zlog.Info().Int("total", s.Total()).Int("would_update", s.Updated).Msg("plan complete")
	return nil
}

// 📝 Warning logs a warning to the structured log only; the console carries
// nothing but the report lines.
func (l *Logger) Warning(msg string) {
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
