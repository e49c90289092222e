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

import (
	"strings"

	"github.com/apache/arrow-adbc/go/adbc"
)

// ConnectionStringBuilder turns ADBC database options into an ODBC
// connection string.  Drivers can override this for data-source-specific
// keywords.
type ConnectionStringBuilder interface {
	BuildConnectionString(opts map[string]string) (string, error)
}

// DefaultConnectionStringBuilder accepts either a bare data source name or a
// full connection string as the URI and injects UID and PWD from the
// username and password options.
type DefaultConnectionStringBuilder struct{}

// ConnAttr is one keyword=value pair of a connection string.
type ConnAttr struct {
	Key   string
	Value string
}

func (d *DefaultConnectionStringBuilder) BuildConnectionString(opts map[string]string) (string, error) {
	uri := opts[adbc.OptionKeyURI]
	username := opts[adbc.OptionKeyUsername]
	password := opts[adbc.OptionKeyPassword]

	if uri == "" {
		return "", errorHelper.InvalidArgument("missing required option %s", adbc.OptionKeyURI)
	}

	var attrs []ConnAttr
	if strings.Contains(uri, "=") {
		var err error
		if attrs, err = ParseConnectionString(uri); err != nil {
			return "", err
		}
	} else {
		attrs = []ConnAttr{{Key: "DSN", Value: uri}}
	}

	if username != "" {
		attrs = setConnAttr(attrs, "UID", username)
	}
	if password != "" {
		attrs = setConnAttr(attrs, "PWD", password)
	}
	return FormatConnectionString(attrs), nil
}

// setConnAttr replaces key (compared case-insensitively, as drivers do) or
// appends it.
func setConnAttr(attrs []ConnAttr, key, value string) []ConnAttr {
	for i := range attrs {
		if strings.EqualFold(attrs[i].Key, key) {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, ConnAttr{Key: key, Value: value})
}

// ParseConnectionString splits a connection string into its pairs, in
// order.  Values may be enclosed in braces, with "}}" standing for a
// literal '}'.
func ParseConnectionString(s string) ([]ConnAttr, error) {
	var attrs []ConnAttr
	for len(s) > 0 {
		if s[0] == ';' || s[0] == ' ' {
			s = s[1:]
			continue
		}
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			return nil, errorHelper.InvalidArgument("connection string: missing '=' after %q", s)
		}
		key := strings.TrimSpace(s[:eq])
		s = s[eq+1:]

		var value string
		if strings.HasPrefix(s, "{") {
			var b strings.Builder
			i := 1
			for {
				if i >= len(s) {
					return nil, errorHelper.InvalidArgument("connection string: unterminated '{' in value of %s", key)
				}
				if s[i] == '}' {
					if i+1 < len(s) && s[i+1] == '}' {
						b.WriteByte('}')
						i += 2
						continue
					}
					break
				}
				b.WriteByte(s[i])
				i++
			}
			value = b.String()
			s = s[i+1:]
		} else {
			end := strings.IndexByte(s, ';')
			if end < 0 {
				end = len(s)
			}
			value = strings.TrimSpace(s[:end])
			s = s[end:]
		}
		attrs = append(attrs, ConnAttr{Key: key, Value: value})
	}
	return attrs, nil
}

// FormatConnectionString renders pairs as KEY=value;... quoting values
// that would not survive ParseConnectionString otherwise.
func FormatConnectionString(attrs []ConnAttr) string {
	var b strings.Builder
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(quoteConnValue(a.Value))
	}
	return b.String()
}

func quoteConnValue(v string) string {
	if !strings.ContainsAny(v, ";{}=") && strings.TrimSpace(v) == v {
		return v
	}
	return "{" + strings.ReplaceAll(v, "}", "}}") + "}"
}
