// Copyright (c) 2025 ADBC Drivers Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//         http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package odbc

import "strings"

// ParseAttributes splits the attribute text of a driver into key/value
// pairs.  Pairs are separated by NUL (the SQLDrivers wire form) or by ';'.
// A pair without '=' maps to the empty string; later duplicates win.
func ParseAttributes(text string) map[string]string {
	attrs := make(map[string]string)
	for pair := range strings.FieldsFuncSeq(text, func(r rune) bool { return r == 0 || r == ';' }) {
		key, value, _ := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		attrs[key] = strings.TrimSpace(value)
	}
	return attrs
}
