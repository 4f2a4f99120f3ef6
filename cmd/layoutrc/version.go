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

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// buildStamp is what the binary knows about the commit it was built from
type buildStamp struct {
	module   string
	revision string
	dirty    bool
}

func readBuildStamp() buildStamp {
	stamp := buildStamp{module: "(devel)"}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	if bi.Main.Version != "" {
		stamp.module = bi.Main.Version
	}
	for _, kv := range bi.Settings {
		switch kv.Key {
		case "vcs.revision":
			stamp.revision = kv.Value
		case "vcs.modified":
			stamp.dirty = kv.Value == "true"
		}
	}
	return stamp
}

// String renders one line: layoutrc <version> (<short rev>[, modified]) <go> <os>/<arch>
func (b buildStamp) String() string {
	var sb strings.Builder
	sb.WriteString("layoutrc ")
	sb.WriteString(b.module)
	if b.revision != "" {
		rev := b.revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		sb.WriteString(" (" + rev)
		if b.dirty {
			sb.WriteString(", modified")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return sb.String()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), readBuildStamp())
			return err
		},
	}
}
