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

package testutil

import (
	"context"
	"sync"

	"github.com/adbc-drivers/odbc/odbc"
)

// fakeEnv is the handle FakeManager hands out.
const fakeEnv odbc.Handle = 0xe1

// Entry is one driver or data source known to a FakeManager.
type Entry struct {
	Name  string
	Value string
}

// Call records one enumeration call made against a FakeManager.
type Call struct {
	Func string
	Dir  odbc.FetchDirection
	// Sizes of the two buffers passed in.
	BufLen [2]int
	// Return is what the call returned.
	Return odbc.Return
}

// FakeManager is a scripted odbc.DriverManager.  Drivers are returned in
// DriverList order; data sources in UserDSNs then SystemDSNs order.
// Text that does not fit is truncated with SQL_SUCCESS_WITH_INFO, as a real
// driver manager does.
type FakeManager struct {
	DriverList []Entry
	UserDSNs   []Entry
	SystemDSNs []Entry

	// Failures keyed by the 0-based index of the SQLDrivers or
	// SQLDataSources call.
	DriverFailures     map[int]odbc.Return
	DataSourceFailures map[int]odbc.Return
	// Diags is reported for the environment handle.
	Diags       []odbc.DiagRecord
	AllocReturn odbc.Return
	FreeReturn  odbc.Return

	mu          sync.Mutex
	calls       []Call
	allocated   bool
	freed       int
	driverCalls int
	dsnCalls    int
	driverPos   int
	dsnList     []Entry
	dsnPos      int
	dsnActive   bool
}

var _ odbc.DriverManager = (*FakeManager)(nil)

func (f *FakeManager) AllocEnv() (odbc.Handle, odbc.Return) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.AllocReturn.Succeeded() {
		return 0, f.AllocReturn
	}
	f.allocated = true
	return fakeEnv, f.AllocReturn
}

func (f *FakeManager) FreeEnv(env odbc.Handle) odbc.Return {
	f.mu.Lock()
	defer f.mu.Unlock()
	if env != fakeEnv || !f.allocated {
		return odbc.ReturnInvalidHandle
	}
	f.freed++
	if f.FreeReturn.Succeeded() {
		f.allocated = false
	}
	return f.FreeReturn
}

func (f *FakeManager) Drivers(ctx context.Context, env odbc.Handle, dir odbc.FetchDirection, description, attributes []byte) (int16, int16, odbc.Return) {
	f.mu.Lock()
	defer f.mu.Unlock()
	descLen, attrLen, ret := f.drivers(env, dir, description, attributes)
	f.calls = append(f.calls, Call{Func: "SQLDrivers", Dir: dir, BufLen: [2]int{len(description), len(attributes)}, Return: ret})
	return descLen, attrLen, ret
}

func (f *FakeManager) drivers(env odbc.Handle, dir odbc.FetchDirection, description, attributes []byte) (int16, int16, odbc.Return) {
	idx := f.driverCalls
	f.driverCalls++

	if env != fakeEnv || !f.allocated {
		return 0, 0, odbc.ReturnInvalidHandle
	}
	if ret, ok := f.DriverFailures[idx]; ok {
		return 0, 0, ret
	}
	if dir == odbc.FetchFirst {
		f.driverPos = 0
	}
	if f.driverPos >= len(f.DriverList) {
		f.driverPos = 0
		return 0, 0, odbc.ReturnNoData
	}
	e := f.DriverList[f.driverPos]
	f.driverPos++
	return putEntry(e, description, attributes)
}

func (f *FakeManager) DataSources(ctx context.Context, env odbc.Handle, dir odbc.FetchDirection, name, description []byte) (int16, int16, odbc.Return) {
	f.mu.Lock()
	defer f.mu.Unlock()
	nameLen, descLen, ret := f.dataSources(env, dir, name, description)
	f.calls = append(f.calls, Call{Func: "SQLDataSources", Dir: dir, BufLen: [2]int{len(name), len(description)}, Return: ret})
	return nameLen, descLen, ret
}

func (f *FakeManager) dataSources(env odbc.Handle, dir odbc.FetchDirection, name, description []byte) (int16, int16, odbc.Return) {
	idx := f.dsnCalls
	f.dsnCalls++

	if env != fakeEnv || !f.allocated {
		return 0, 0, odbc.ReturnInvalidHandle
	}
	if ret, ok := f.DataSourceFailures[idx]; ok {
		return 0, 0, ret
	}
	switch {
	case dir == odbc.FetchFirstUser:
		f.dsnList, f.dsnPos, f.dsnActive = f.UserDSNs, 0, true
	case dir == odbc.FetchFirstSystem:
		f.dsnList, f.dsnPos, f.dsnActive = f.SystemDSNs, 0, true
	case dir == odbc.FetchFirst || !f.dsnActive:
		f.dsnList, f.dsnPos, f.dsnActive = f.allDSNs(), 0, true
	}
	if f.dsnPos >= len(f.dsnList) {
		f.dsnActive = false
		return 0, 0, odbc.ReturnNoData
	}
	e := f.dsnList[f.dsnPos]
	f.dsnPos++
	return putEntry(e, name, description)
}

func (f *FakeManager) Diagnostics(ht odbc.HandleType, h odbc.Handle) []odbc.DiagRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ht != odbc.HandleEnv || h != fakeEnv {
		return nil
	}
	return append([]odbc.DiagRecord(nil), f.Diags...)
}

// Calls returns the enumeration calls made so far.
func (f *FakeManager) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Freed returns how many times FreeEnv was called on the handle.
func (f *FakeManager) Freed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.freed
}

func (f *FakeManager) allDSNs() []Entry {
	all := make([]Entry, 0, len(f.UserDSNs)+len(f.SystemDSNs))
	all = append(all, f.UserDSNs...)
	return append(all, f.SystemDSNs...)
}

func putEntry(e Entry, first, second []byte) (int16, int16, odbc.Return) {
	ret := odbc.ReturnSuccess
	okName := putText(first, e.Name)
	okValue := putText(second, e.Value)
	if !okName || !okValue {
		ret = odbc.ReturnSuccessWithInfo
	}
	return int16(len(e.Name)), int16(len(e.Value)), ret
}

// putText writes s NUL-terminated into buf and reports whether it fit.
func putText(buf []byte, s string) bool {
	if len(buf) == 0 {
		return s == ""
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
	return n == len(s)
}
