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
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule is a single substitution applied to every listed file.
// Exactly one of Old (literal text) or Pattern (regular expression) is set.
type Rule struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Old     string `json:"old,omitempty" yaml:"old,omitempty" toml:"old,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	New     string `json:"new" yaml:"new" toml:"new"`
	Files   string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"` // doublestar glob over listed paths
}

// 📚 Config represents the complete configuration
type Config struct {
	Root  string   `json:"root" yaml:"root" toml:"root"`
	Title string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Files []string `json:"files" yaml:"files" toml:"files"`
	Rules []Rule   `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("root", cfg.Root).
		Int("files", len(cfg.Files)).
		Int("rules", len(cfg.Rules)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid, fills defaults and cleans paths.
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}
	if len(cfg.Files) == 0 {
		return errors.Errorf("files must list at least one path")
	}

	cfg.Root = filepath.Clean(cfg.Root)

	for i, f := range cfg.Files {
		clean, err := cleanRelativePath(f)
		if err != nil {
			return errors.Errorf("files[%d] %q: %w", i, f, err)
		}
		cfg.Files[i] = clean
	}

	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = DefaultRules()
	}

	for i, r := range cfg.Rules {
		if err := r.Validate(); err != nil {
			return errors.Errorf("rules[%d]: %w", i, err)
		}
	}

	return nil
}

// 🔍 Validate checks a single rule
func (r Rule) Validate() error {
	switch {
	case r.Old == "" && r.Pattern == "":
		return errors.Errorf("one of old or pattern is required")
	case r.Old != "" && r.Pattern != "":
		return errors.Errorf("old and pattern are mutually exclusive")
	}

	if r.Pattern != "" {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return errors.Errorf("compiling pattern %q: %w", r.Pattern, err)
		}
	}

	if r.Files != "" && !doublestar.ValidatePattern(r.Files) {
		return errors.Errorf("invalid files glob %q", r.Files)
	}

	return nil
}

// cleanRelativePath rejects absolute paths and paths escaping the root.
// The result uses forward slashes so globs match the same way on every platform.
func cleanRelativePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.Errorf("path is empty")
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return "", errors.Errorf("path must be relative to root")
	}
	c := filepath.ToSlash(filepath.Clean(p))
	if c == ".." || strings.HasPrefix(c, "../") {
		return "", errors.Errorf("path escapes root")
	}
	return c, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return cfg.Root + " (" + pluralize(len(cfg.Files), "file") + ", " + pluralize(len(cfg.Rules), "rule") + ")"
}

func pluralize(n int, word string) string {
	s := strconv.Itoa(n) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}
