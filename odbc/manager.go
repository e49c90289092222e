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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adbc-drivers/odbc/driverbase"
	"github.com/apache/arrow-adbc/go/adbc"
)

// DriverManager is the subset of the ODBC driver manager API used to
// enumerate installed drivers and configured data sources.
//
// Buffers are owned by the caller.  The manager writes NUL-terminated text
// into them and reports the untruncated text length, which may exceed the
// buffer.
type DriverManager interface {
	AllocEnv() (Handle, Return)
	FreeEnv(env Handle) Return
	Drivers(ctx context.Context, env Handle, dir FetchDirection, description, attributes []byte) (descLen, attrLen int16, ret Return)
	DataSources(ctx context.Context, env Handle, dir FetchDirection, name, description []byte) (nameLen, descLen int16, ret Return)
	// Diagnostics returns every diagnostic record attached to h.
	Diagnostics(ht HandleType, h Handle) []DiagRecord
}

// DiagRecord is one record returned by SQLGetDiagRec.
type DiagRecord struct {
	SQLState    string
	NativeError int32
	Message     string
}

func (r DiagRecord) String() string {
	return fmt.Sprintf("[%s] %s (native %d)", r.SQLState, r.Message, r.NativeError)
}

var errorHelper = driverbase.ErrorHelper{DriverName: "odbc", ErrorInspector: diagInspector{}}

// ErrEnvironment matches any failure reported by the driver manager against
// an environment handle.
var ErrEnvironment = errors.New("odbc: environment error")

// EnvironmentError is a failed driver manager call together with the
// diagnostic records of the environment handle.
type EnvironmentError struct {
	Func    string
	Return  Return
	Records []DiagRecord
}

func (e *EnvironmentError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s returned %s", e.Func, e.Return)
	for _, r := range e.Records {
		b.WriteString(": ")
		b.WriteString(r.String())
	}
	return b.String()
}

func (e *EnvironmentError) Is(target error) bool {
	return target == ErrEnvironment
}

// diagInspector surfaces the first diagnostic record of an
// EnvironmentError as the SQLSTATE and vendor code of the adbc.Error.
type diagInspector struct{}

func (diagInspector) InspectError(err error, defaultStatus adbc.Status) driverbase.ErrorInfo {
	info := driverbase.ErrorInfo{Status: defaultStatus}
	var envErr *EnvironmentError
	if !errors.As(err, &envErr) {
		return info
	}
	for _, r := range envErr.Records {
		info.Details = append(info.Details, &adbc.TextErrorDetail{Name: "odbc.diag", Detail: r.String()})
	}
	if len(envErr.Records) == 0 {
		return info
	}
	first := envErr.Records[0]
	info.SqlState = first.SQLState
	info.VendorCode = first.NativeError
	info.Status = statusForSQLState(first.SQLState, defaultStatus)
	return info
}

func statusForSQLState(state string, defaultStatus adbc.Status) adbc.Status {
	switch {
	case state == "HYT00" || state == "HYT01":
		return adbc.StatusTimeout
	case state == "HY008":
		return adbc.StatusCancelled
	case state == "HY001" || state == "HY013":
		return adbc.StatusInternal
	case strings.HasPrefix(state, "IM"):
		return adbc.StatusInvalidState
	default:
		return defaultStatus
	}
}
