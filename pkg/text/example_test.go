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

package text_test

import (
	"fmt"

	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/text"
)

func ExampleReplacer_Apply() {
	replacer, err := text.NewReplacer(config.DefaultRules())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result := replacer.Apply("error/404.html", `<html lang="en" layout:decorate="~{layout/material-layout}">`)

	fmt.Println(result.ModifiedContent)
	fmt.Println(result.WasModified, result.ReplacementCount)
	// Output:
	// <html lang="vi" layout:decorate="~{layout/modern-layout}">
	// true 2
}
