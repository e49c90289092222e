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

// Package odbc contains the ODBC plumbing shared by ADBC drivers that talk
// to a driver manager: enumeration of installed drivers and data sources,
// conversion between Go values and the ODBC date/time/GUID structs, and
// resolution of the C and SQL type tags used when binding values.
package odbc

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/adbc-drivers/odbc/driverbase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DriverMap maps a driver description to its attribute text.
type DriverMap map[string]string

// DSNMap maps a data source name to its description.
type DSNMap map[string]string

// Scope selects which data sources DataSourcesScoped enumerates.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeUser
	ScopeSystem
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeUser:
		return "user"
	case ScopeSystem:
		return "system"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

type envHandle struct {
	handle Handle
}

// Environment owns an ODBC environment handle.  It is safe for concurrent
// use; calls against the handle are serialized.
type Environment struct {
	mgr    DriverManager
	shared *driverbase.Shared[envHandle]
	tracer trace.Tracer
}

// NewEnvironment allocates an environment handle from mgr.  The handle is
// released by Close.
func NewEnvironment(mgr DriverManager, opts ...EnvironmentOption) (*Environment, error) {
	if mgr == nil {
		return nil, errorHelper.InvalidArgument("NewEnvironment: driver manager is nil")
	}

	cfg := defaultEnvConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logged := &LoggingManager{Manager: mgr, Logger: cfg.logger}
	h, ret := logged.AllocEnv()
	if !ret.Succeeded() {
		return nil, errorHelper.WrapIO(&EnvironmentError{Func: "SQLAllocHandle", Return: ret}, "NewEnvironment")
	}

	env := &Environment{
		mgr:    logged,
		tracer: cfg.tracer,
	}
	env.shared = driverbase.NewShared(&envHandle{handle: h}, func(eh *envHandle) error {
		if ret := env.mgr.FreeEnv(eh.handle); !ret.Succeeded() {
			return env.environmentError(eh, "SQLFreeHandle", ret)
		}
		return nil
	})
	return env, nil
}

// Close releases the environment handle.  It is safe to call more than once.
func (e *Environment) Close() error {
	return e.shared.Close()
}

// Drivers adds every installed driver to drivers and returns it.  A nil map
// is allocated.  Entries already present are left untouched.  On failure the
// map holds whatever was added before the failing call.
//
// The attribute text is kept up to its first NUL.  DriverReader exposes the
// full attribute list.
func (e *Environment) Drivers(ctx context.Context, drivers DriverMap) (DriverMap, error) {
	if drivers == nil {
		drivers = DriverMap{}
	}
	err := e.enumerateDrivers(ctx, func(desc, attrs []byte, _ int16) bool {
		return insert(drivers, cString(desc), cString(attrs))
	})
	return drivers, err
}

// enumerateDrivers runs the SQLDrivers fetch loop, calling visit for every
// successful fetch.  visit reports whether it kept the entry.
func (e *Environment) enumerateDrivers(ctx context.Context, visit func(desc, attrs []byte, attrLen int16) bool) error {
	ctx, span := e.tracer.Start(ctx, "odbc.SQLDrivers")
	defer span.End()

	var (
		desc   [DriverBufferLength]byte
		attrs  [DriverBufferLength]byte
		ret    Return
		called bool
		count  int
	)
	err := e.shared.Run(func(eh *envHandle) error {
		dir := FetchFirst
		for {
			if err := ctx.Err(); err != nil {
				return wrapContextError(err, "SQLDrivers")
			}
			clear(desc[:])
			clear(attrs[:])
			var attrLen int16
			_, attrLen, ret = e.mgr.Drivers(ctx, eh.handle, dir, desc[:], attrs[:])
			called = true
			if !ret.Succeeded() {
				break
			}
			if visit(desc[:], attrs[:], attrLen) {
				count++
			}
			dir = FetchNext
		}
		if ret != ReturnNoData {
			return e.environmentError(eh, "SQLDrivers", ret)
		}
		return nil
	})
	endSpan(span, count, ret, called, err)
	return err
}

// DataSources adds every configured data source, user and system, to dsns
// and returns it.  It follows the same rules as Drivers.
func (e *Environment) DataSources(ctx context.Context, dsns DSNMap) (DSNMap, error) {
	return e.DataSourcesScoped(ctx, dsns, ScopeAll)
}

// DataSourcesScoped is DataSources restricted to user or system data
// sources.
func (e *Environment) DataSourcesScoped(ctx context.Context, dsns DSNMap, scope Scope) (DSNMap, error) {
	if dsns == nil {
		dsns = DSNMap{}
	}

	var dir FetchDirection
	switch scope {
	case ScopeAll:
		dir = FetchNext
	case ScopeUser:
		dir = FetchFirstUser
	case ScopeSystem:
		dir = FetchFirstSystem
	default:
		return dsns, errorHelper.InvalidArgument("DataSources: unknown scope %s", scope)
	}

	ctx, span := e.tracer.Start(ctx, "odbc.SQLDataSources", trace.WithAttributes(
		attribute.String("odbc.scope", scope.String()),
	))
	defer span.End()

	var (
		name  [MaxDSNLength + 1]byte
		desc  [DriverBufferLength]byte
		ret    Return
		called bool
		count  int
	)
	err := e.shared.Run(func(eh *envHandle) error {
		for {
			if err := ctx.Err(); err != nil {
				return wrapContextError(err, "SQLDataSources")
			}
			clear(name[:])
			clear(desc[:])
			_, _, ret = e.mgr.DataSources(ctx, eh.handle, dir, name[:MaxDSNLength], desc[:])
			called = true
			if !ret.Succeeded() {
				break
			}
			if insert(dsns, cString(name[:]), cString(desc[:])) {
				count++
			}
			dir = FetchNext
		}
		if ret != ReturnNoData {
			return e.environmentError(eh, "SQLDataSources", ret)
		}
		return nil
	})
	endSpan(span, count, ret, called, err)
	return dsns, err
}

// environmentError must be called with the handle held so the diagnostic
// records still belong to the failed call.
func (e *Environment) environmentError(eh *envHandle, fn string, ret Return) error {
	envErr := &EnvironmentError{
		Func:    fn,
		Return:  ret,
		Records: e.mgr.Diagnostics(HandleEnv, eh.handle),
	}
	return errorHelper.WrapIO(envErr, "%s failed (rc=%d)", fn, int16(ret))
}

// wrapContextError maps a done context to StatusTimeout for deadlines and
// StatusCancelled otherwise.
func wrapContextError(err error, fn string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errorHelper.WrapTimeout(err, "%s", fn)
	}
	return errorHelper.WrapCancelled(err, "%s", fn)
}

// endSpan records the outcome.  The return code is only set when the driver
// manager was actually called.
func endSpan(span trace.Span, count int, ret Return, called bool, err error) {
	span.SetAttributes(attribute.Int("odbc.entries", count))
	if called {
		span.SetAttributes(attribute.Int("odbc.return_code", int(ret)))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// insert adds key unless it is already present.
func insert[M ~map[string]string](m M, key, value string) bool {
	if _, ok := m[key]; ok {
		return false
	}
	m[key] = value
	return true
}

// attributeText returns the attribute list in buf: NUL-separated pairs
// ending at the first double NUL, bounded by the length the driver manager
// reported.
func attributeText(buf []byte, attrLen int16) string {
	limit := len(buf)
	if attrLen >= 0 && int(attrLen) < limit {
		limit = int(attrLen)
	}
	text := buf[:limit]
	if i := bytes.Index(text, []byte{0, 0}); i >= 0 {
		text = text[:i]
	}
	return string(bytes.TrimRight(text, "\x00"))
}

// cString returns the text of buf up to its first NUL.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
