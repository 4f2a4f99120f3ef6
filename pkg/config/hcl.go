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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	root  = "src/main/resources/templates"
//	files = ["error/404.html"]
//
//	rule "material" {
//	  old = "layout:decorate=\"~{layout/material-layout}\""
//	  new = "layout:decorate=\"~{layout/modern-layout}\""
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "layoutrc.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// title = "${default_title} (staging)"
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_title": cty.StringVal(DefaultTitle),
		},
	}

	type hclConfig struct {
		Root  string   `hcl:"root"`
		Title string   `hcl:"title,optional"`
		Files []string `hcl:"files"`
		Rules []struct {
			Name    string `hcl:"name,label"`
			Old     string `hcl:"old,optional"`
			Pattern string `hcl:"pattern,optional"`
			New     string `hcl:"new"`
			Files   string `hcl:"files,optional"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Root:  hclCfg.Root,
		Title: hclCfg.Title,
		Files: hclCfg.Files,
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, Rule{
			Name:    r.Name,
			Old:     r.Old,
			Pattern: r.Pattern,
			New:     r.New,
			Files:   r.Files,
		})
	}

	return cfg, nil
}
