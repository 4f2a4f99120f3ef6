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
	"fmt"
	"strings"
)

// BannerWidth is the number of '=' characters in a banner line
const BannerWidth = 60

// Banner returns the separator printed around the title and the summary
func Banner() string {
	return strings.Repeat("=", BannerWidth)
}

// Tag returns the leading marker of a result line
func (o Outcome) Tag() string {
	switch o {
	case OutcomeUpdated:
		return "[OK]"
	case OutcomeUnchanged:
		return "[SKIP]"
	case OutcomeNotFound:
		return "!"
	case OutcomeError:
		return "[ERROR]"
	default:
		return "[?]"
	}
}

// FormatResult formats the text after the tag
func FormatResult(r Result) string {
	switch r.Outcome {
	case OutcomeUpdated:
		return fmt.Sprintf("Updated: %s", r.Location)
	case OutcomeUnchanged:
		return fmt.Sprintf("No change: %s", r.Location)
	case OutcomeNotFound:
		return fmt.Sprintf("File not found: %s", r.Location)
	case OutcomeError:
		return fmt.Sprintf("Error updating %s: %v", r.Location, r.Err)
	default:
		return r.Location
	}
}

// FormatResultLine formats a full, uncolored result line
func FormatResultLine(r Result) string {
	return r.Outcome.Tag() + " " + FormatResult(r)
}

// FormatSummary formats the closing count of updated files
func FormatSummary(s *Summary) string {
	return fmt.Sprintf("Summary: %d files updated", s.Updated)
}
