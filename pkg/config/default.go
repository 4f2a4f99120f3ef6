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

const (
	// DefaultTitle is printed between the opening banners
	DefaultTitle = "Updating HTML templates to use modern-layout"

	// DefaultRoot is the Spring Boot template directory, relative to the working directory
	DefaultRoot = "src/main/resources/templates"

	// ModernLayoutDecorator is the decoration every template ends up with
	ModernLayoutDecorator = `layout:decorate="~{layout/modern-layout}"`
)

// defaultFiles leaves out the login and register pages, which are not decorated
var defaultFiles = []string{
	"admin/certificates/eligible.html",
	"admin/certificates/list.html",
	"admin/certificates/view.html",
	"admin/classes/form.html",
	"admin/classes/list.html",
	"admin/classes/view.html",
	"admin/courses/form.html",
	"admin/courses/list.html",
	"admin/courses/view.html",
	"admin/enrollments/list-by-class.html",
	"admin/enrollments/list.html",
	"admin/enrollments/pending.html",
	"admin/enrollments/view.html",
	"admin/schedules/form.html",
	"admin/schedules/list.html",
	"admin/users/form.html",
	"admin/users/list.html",
	"admin/users/view.html",
	"error/403.html",
	"error/404.html",
	"error/500.html",
	"profile/view.html",
}

// 🔄 DefaultRules returns the layout migration rules in application order
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "material-layout",
			Old:  `layout:decorate="~{layout/material-layout}"`,
			New:  ModernLayoutDecorator,
		},
		{
			Name: "main-layout",
			Old:  `layout:decorate="~{layout/main-layout}"`,
			New:  ModernLayoutDecorator,
		},
		{
			Name: "html-lang",
			Old:  `<html lang="en"`,
			New:  `<html lang="vi"`,
		},
	}
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	files := make([]string, len(defaultFiles))
	copy(files, defaultFiles)
	return &Config{
		Root:  DefaultRoot,
		Title: DefaultTitle,
		Files: files,
		Rules: DefaultRules(),
	}
}
