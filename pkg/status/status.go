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

package status

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is the per-file result of a rewrite
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeUpdated           // content changed and was written
	OutcomeUnchanged         // content read, nothing to change
	OutcomeNotFound          // resolved path does not exist
	OutcomeError             // read, decode or write failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 Result describes what happened to one listed file
type Result struct {
	Path         string  // Path as listed, relative to the root
	Location     string  // Resolved location on disk
	Outcome      Outcome // What happened
	Replacements int     // Number of substitutions made
	Err          error   // Set when Outcome is OutcomeError
}

// 📈 Summary aggregates results in list order
type Summary struct {
	Results []Result

	Updated   int
	Unchanged int
	NotFound  int
	Errors    int
}

// Record adds a result and bumps the matching counter
func (s *Summary) Record(r Result) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case OutcomeUpdated:
		s.Updated++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeNotFound:
		s.NotFound++
	case OutcomeError:
		s.Errors++
	}
}

// Total is the number of recorded results
func (s *Summary) Total() int {
	return len(s.Results)
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	Location(path string) string
	FileExists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

var _ FileManager = (*Manager)(nil)

// 🔧 Manager implements FileManager on top of the local filesystem
type Manager struct {
	baseDir string
}

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 Location returns the on-disk location of a listed path
func (m *Manager) Location(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.Location(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.Location(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile replaces the file's content through a temp file in the same
// directory, keeping the permissions of the file it replaces. Symlinks are
// written through: the file they point to is replaced, the link stays.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath, err := resolveTarget(m.Location(path))
	if err != nil {
		return err
	}

	var mode os.FileMode = 0o644
	if st, err := os.Stat(absPath); err == nil {
		if perm := st.Mode().Perm(); perm != 0 {
			mode = perm
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Msg("file written")
	return nil
}

// resolveTarget follows symlinks to the real file; a missing file resolves to itself
func resolveTarget(absPath string) (string, error) {
	target, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return target, nil
	}
	if os.IsNotExist(err) {
		if _, lerr := os.Lstat(absPath); os.IsNotExist(lerr) {
			return absPath, nil
		}
	}
	return "", errors.Errorf("resolving symlinks: %w", err)
}
