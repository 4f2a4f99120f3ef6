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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/log"
	"github.com/walteh/layoutrc/pkg/operation"
	"github.com/walteh/layoutrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const (
	materialPage = "<!DOCTYPE html>\n<html lang=\"en\" xmlns:layout=\"http://www.ultraq.net.nz/thymeleaf/layout\"\n      layout:decorate=\"~{layout/material-layout}\">\n<body><div layout:fragment=\"content\">Lớp học</div></body>\n</html>\n"
	mainPage     = "<!DOCTYPE html>\n<html lang=\"en\" layout:decorate=\"~{layout/main-layout}\">\n</html>\n"
	modernPage   = "<!DOCTYPE html>\n<html lang=\"vi\" layout:decorate=\"~{layout/modern-layout}\">\n</html>\n"
)

// 🧪 countingFiles wraps a status.Manager to count writes and inject write failures
type countingFiles struct {
	*status.Manager
	writes    map[string]int
	failWrite map[string]error
}

func newCountingFiles(root string) *countingFiles {
	return &countingFiles{
		Manager:   status.New(root),
		writes:    map[string]int{},
		failWrite: map[string]error{},
	}
}

func (c *countingFiles) WriteFile(ctx context.Context, path string, content []byte) error {
	c.writes[path]++
	if err := c.failWrite[path]; err != nil {
		return err
	}
	return c.Manager.WriteFile(ctx, path, content)
}

func (c *countingFiles) totalWrites() int {
	n := 0
	for _, w := range c.writes {
		n += w
	}
	return n
}

// 🧪 testEnv is a temp template root plus a console buffer
type testEnv struct {
	ctx     context.Context
	root    string
	console *bytes.Buffer
	files   *countingFiles
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	logger := zerolog.New(zerolog.NewTestWriter(t))
	root := t.TempDir()

	return &testEnv{
		ctx:     logger.WithContext(context.Background()),
		root:    root,
		console: &bytes.Buffer{},
		files:   newCountingFiles(root),
	}
}

func (e *testEnv) write(t *testing.T, path, content string) {
	t.Helper()
	abs := filepath.Join(e.root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
}

func (e *testEnv) read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(e.root, filepath.FromSlash(path)))
	require.NoError(t, err)
	return string(b)
}

func (e *testEnv) rewrite(t *testing.T, files ...string) *status.Summary {
	t.Helper()
	op, err := operation.NewRewriteOperation(operation.Options{
		Config: &config.Config{
			Root:  e.root,
			Title: config.DefaultTitle,
			Files: files,
			Rules: config.DefaultRules(),
		},
		Files:  e.files,
		Logger: log.New(e.console, *zerolog.Ctx(e.ctx)),
	})
	require.NoError(t, err)
	return op.Run(e.ctx)
}

func (e *testEnv) location(path string) string {
	return filepath.Join(e.root, filepath.FromSlash(path))
}

func TestRewrite_UpdatesFile(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "admin/classes/list.html", materialPage)

	summary := env.rewrite(t, "admin/classes/list.html")

	want := strings.ReplaceAll(materialPage, `<html lang="en"`, `<html lang="vi"`)
	want = strings.ReplaceAll(want, "~{layout/material-layout}", "~{layout/modern-layout}")
	assert.Equal(t, want, env.read(t, "admin/classes/list.html"), "only the two attributes should change")

	require.Len(t, summary.Results, 1)
	assert.Equal(t, status.OutcomeUpdated, summary.Results[0].Outcome)
	assert.Equal(t, 2, summary.Results[0].Replacements)
	assert.Equal(t, 1, summary.Updated)

	banner := strings.Repeat("=", 60)
	wantConsole := strings.Join([]string{
		banner,
		"Updating HTML templates to use modern-layout",
		banner,
		"[OK] Updated: " + env.location("admin/classes/list.html"),
		banner,
		"Summary: 1 files updated",
		banner,
	}, "\n") + "\n"
	assert.Equal(t, wantConsole, env.console.String())
}

func TestRewrite_KeepsSymlinkedTemplate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	env := newTestEnv(t)
	env.write(t, "shared/base.html", materialPage)
	require.NoError(t, os.Symlink(env.location("shared/base.html"), env.location("page.html")))

	summary := env.rewrite(t, "page.html")
	assert.Equal(t, 1, summary.Updated)

	info, err := os.Lstat(env.location("page.html"))
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0, "listed path should still be a symlink")
	assert.Contains(t, env.read(t, "shared/base.html"), "~{layout/modern-layout}", "link target should be migrated")
}

func TestRewrite_NoChangeDoesNotWrite(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "error/404.html", modernPage)

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(env.location("error/404.html"), past, past))

	summary := env.rewrite(t, "error/404.html")

	assert.Equal(t, status.OutcomeUnchanged, summary.Results[0].Outcome)
	assert.Equal(t, 0, summary.Updated)
	assert.Zero(t, env.files.totalWrites(), "unchanged files must not be written")
	assert.Equal(t, modernPage, env.read(t, "error/404.html"))

	info, err := os.Stat(env.location("error/404.html"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "modification time should be stable")

	assert.Contains(t, env.console.String(), "[SKIP] No change: "+env.location("error/404.html")+"\n")
	assert.Contains(t, env.console.String(), "Summary: 0 files updated\n")
}

func TestRewrite_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "a.html", materialPage)
	env.write(t, "b.html", mainPage)
	env.write(t, "c.html", modernPage)
	files := []string{"a.html", "b.html", "c.html"}

	first := env.rewrite(t, files...)
	assert.Equal(t, 2, first.Updated)

	writesAfterFirst := env.files.totalWrites()
	second := env.rewrite(t, files...)

	assert.Equal(t, 0, second.Updated)
	for _, r := range second.Results {
		assert.Equal(t, status.OutcomeUnchanged, r.Outcome, "second run should not change %s", r.Path)
	}
	assert.Equal(t, writesAfterFirst, env.files.totalWrites())
}

func TestRewrite_SelectiveMatching(t *testing.T) {
	env := newTestEnv(t)
	content := "<!-- migrated from layout/material-layout -->\n<html lang=\"vi\">\n<p>layout/main-layout</p>\n"
	env.write(t, "page.html", content)

	summary := env.rewrite(t, "page.html")

	assert.Equal(t, status.OutcomeUnchanged, summary.Results[0].Outcome)
	assert.Equal(t, content, env.read(t, "page.html"))
}

func TestRewrite_LangOnly(t *testing.T) {
	env := newTestEnv(t)
	content := "<html lang=\"en\">\n<head th:replace=\"~{fragments/head :: head}\"></head>\n</html>\n"
	env.write(t, "auth/standalone.html", content)

	summary := env.rewrite(t, "auth/standalone.html")

	assert.Equal(t, status.OutcomeUpdated, summary.Results[0].Outcome)
	assert.Equal(t, 1, summary.Results[0].Replacements)
	assert.Equal(t, strings.Replace(content, `lang="en"`, `lang="vi"`, 1), env.read(t, "auth/standalone.html"))
}

func TestRewrite_FailuresDoNotPropagate(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "a.html", materialPage)
	// b.html is a directory and c.html is not UTF-8
	require.NoError(t, os.MkdirAll(env.location("b.html"), 0755))
	env.write(t, "c.html", "<html lang=\"en\">\xff\xfe</html>")
	env.write(t, "d.html", mainPage)
	env.write(t, "e.html", mainPage)
	env.write(t, "g.html", modernPage)

	env.files.failWrite["d.html"] = errors.New("disk quota exceeded")

	summary := env.rewrite(t, "a.html", "b.html", "c.html", "d.html", "e.html", "f.html", "g.html")

	outcomes := make([]status.Outcome, 0, len(summary.Results))
	for _, r := range summary.Results {
		outcomes = append(outcomes, r.Outcome)
	}
	assert.Equal(t, []status.Outcome{
		status.OutcomeUpdated,
		status.OutcomeError,
		status.OutcomeError,
		status.OutcomeError,
		status.OutcomeUpdated,
		status.OutcomeNotFound,
		status.OutcomeUnchanged,
	}, outcomes)

	assert.Equal(t, 2, summary.Updated, "only updated files count")
	assert.Equal(t, 3, summary.Errors)
	assert.Equal(t, 1, summary.NotFound)

	assert.Equal(t, modernPage, env.read(t, "e.html"), "files after a failure are still processed")
	assert.Equal(t, mainPage, env.read(t, "d.html"), "failed write leaves the original in place")

	out := env.console.String()
	assert.Contains(t, out, "[ERROR] Error updating "+env.location("b.html")+": reading file: ")
	assert.Contains(t, out, "[ERROR] Error updating "+env.location("c.html")+": decoding file: invalid UTF-8\n")
	assert.Contains(t, out, "[ERROR] Error updating "+env.location("d.html")+": disk quota exceeded\n")
	assert.Contains(t, out, "! File not found: "+env.location("f.html")+"\n")
	assert.Contains(t, out, "Summary: 2 files updated\n")
}

func TestRewrite_WarnsOnUnmatchedRuleGlob(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "error/403.html", modernPage)
	var structured bytes.Buffer

	op, err := operation.NewRewriteOperation(operation.Options{
		Config: &config.Config{
			Root:  env.root,
			Title: config.DefaultTitle,
			Files: []string{"error/403.html"},
			Rules: []config.Rule{{Name: "admin-only", Old: "x", New: "y", Files: "admin/**"}},
		},
		Files:  env.files,
		Logger: log.New(env.console, zerolog.New(&structured)),
	})
	require.NoError(t, err)
	op.Run(env.ctx)

	assert.Contains(t, structured.String(), `rule \"admin-only\" matches none of the 1 listed files`)
	assert.NotContains(t, env.console.String(), "admin-only", "console should carry only report lines")
	assert.NotNil(t, op.Summary())
}

func TestNewRewriteOperation_Validation(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, zerolog.Nop())

	_, err := operation.NewRewriteOperation(operation.Options{Logger: logger})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	_, err = operation.NewRewriteOperation(operation.Options{Config: config.Default()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger is required")

	cfg := config.Default()
	cfg.Rules = []config.Rule{{Pattern: "(", New: "x"}}
	_, err = operation.NewRewriteOperation(operation.Options{Config: cfg, Logger: logger})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling rules")
}

func TestPlan_DoesNotWrite(t *testing.T) {
	env := newTestEnv(t)
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	env.write(t, "a.html", materialPage)
	env.write(t, "b.html", modernPage)

	op, err := operation.NewPlanOperation(operation.Options{
		Config: &config.Config{
			Root:  env.root,
			Files: []string{"a.html", "b.html", "missing.html"},
			Rules: config.DefaultRules(),
		},
		Files:  env.files,
		Logger: log.New(env.console, zerolog.Nop()),
	})
	require.NoError(t, err)
	require.NoError(t, op.Execute(env.ctx))

	summary := op.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.NotFound)

	assert.Zero(t, env.files.totalWrites())
	assert.Equal(t, materialPage, env.read(t, "a.html"))
	assert.Contains(t, env.console.String(), "1 of 3 files would be updated")
}

// 🧪 recordingOp records execution order
type recordingOp struct {
	name string
	err  error
	log  *[]string
}

func (r *recordingOp) Name() string { return r.name }

func (r *recordingOp) Execute(ctx context.Context) error {
	*r.log = append(*r.log, r.name)
	return r.err
}

func TestRunner(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := operation.NewRunner(&logger)

	var order []string
	err := runner.Run(context.Background(),
		&recordingOp{name: "first", log: &order},
		&recordingOp{name: "second", log: &order, err: errors.New("boom")},
		&recordingOp{name: "third", log: &order},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing second: boom")
	assert.Equal(t, []string{"first", "second"}, order, "runner should stop at the first failure")
}
