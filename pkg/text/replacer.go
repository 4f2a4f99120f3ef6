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

package text

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/layoutrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule is a compiled substitution
type Rule struct {
	Name string

	old   string
	re    *regexp.Regexp
	new   string
	files string
}

// 🏭 NewRule compiles a configured rule
func NewRule(r config.Rule) (*Rule, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	rule := &Rule{
		Name:  r.Name,
		old:   r.Old,
		new:   r.New,
		files: r.Files,
	}

	if r.Pattern != "" {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Errorf("compiling pattern %q: %w", r.Pattern, err)
		}
		rule.re = re
	}

	if rule.Name == "" {
		if rule.re != nil {
			rule.Name = rule.re.String()
		} else {
			rule.Name = rule.old
		}
	}

	return rule, nil
}

// 🔍 AppliesTo reports whether the rule's file glob matches a listed path
func (r *Rule) AppliesTo(path string) bool {
	if r.files == "" {
		return true
	}
	// the glob was validated when the rule was compiled
	matched, _ := doublestar.Match(r.files, path)
	return matched
}

// Replace rewrites every non-overlapping match and returns the match count
func (r *Rule) Replace(content string) (string, int) {
	if r.re != nil {
		n := len(r.re.FindAllStringIndex(content, -1))
		if n == 0 {
			return content, 0
		}
		return r.re.ReplaceAllString(content, r.new), n
	}

	n := strings.Count(content, r.old)
	if n == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, r.old, r.new), n
}

// 📦 ReplacementResult holds the outcome of applying every rule to one file
type ReplacementResult struct {
	OriginalContent  string
	ModifiedContent  string
	WasModified      bool
	ReplacementCount int
	Applied          []RuleCount // rules that matched, in application order
}

// RuleCount is the number of matches a single rule made
type RuleCount struct {
	Rule  string
	Count int
}

// 🎯 Replacer applies an ordered list of rules
type Replacer struct {
	rules []*Rule
}

// 🏭 NewReplacer compiles the configured rules, keeping their order
func NewReplacer(rules []config.Rule) (*Replacer, error) {
	compiled := make([]*Rule, 0, len(rules))
	for i, r := range rules {
		c, err := NewRule(r)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	return &Replacer{rules: compiled}, nil
}

// 🔄 Apply runs each rule that applies to path over the output of the previous one.
// Content is considered modified only if the final text differs from the input.
func (r *Replacer) Apply(path, content string) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
	}

	current := content
	for _, rule := range r.rules {
		if !rule.AppliesTo(path) {
			continue
		}

		next, n := rule.Replace(current)
		if n > 0 {
			result.ReplacementCount += n
			result.Applied = append(result.Applied, RuleCount{Rule: rule.Name, Count: n})
		}
		current = next
	}

	result.ModifiedContent = current
	result.WasModified = current != content
	return result
}

// String summarizes the applied rules, e.g. "material-layout×1, html-lang×1"
func (res *ReplacementResult) String() string {
	parts := make([]string, 0, len(res.Applied))
	for _, a := range res.Applied {
		parts = append(parts, fmt.Sprintf("%s×%d", a.Rule, a.Count))
	}
	return strings.Join(parts, ", ")
}
