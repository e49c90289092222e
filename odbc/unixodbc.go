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

//go:build unixodbc && cgo

package odbc

/*
#cgo LDFLAGS: -lodbc
#include <sql.h>
#include <sqlext.h>
*/
import "C"

import (
	"context"
	"unsafe"
)

// UnixODBC is the DriverManager backed by the system unixODBC library.
type UnixODBC struct{}

var _ DriverManager = UnixODBC{}

func (UnixODBC) AllocEnv() (Handle, Return) {
	var h C.SQLHANDLE
	ret := Return(C.SQLAllocHandle(C.SQL_HANDLE_ENV, C.SQLHANDLE(nil), &h))
	if !ret.Succeeded() {
		return 0, ret
	}
	version := unsafe.Pointer(uintptr(C.SQL_OV_ODBC3))
	if r := Return(C.SQLSetEnvAttr(C.SQLHENV(h), C.SQL_ATTR_ODBC_VERSION, C.SQLPOINTER(version), 0)); !r.Succeeded() {
		C.SQLFreeHandle(C.SQL_HANDLE_ENV, h)
		return 0, r
	}
	return Handle(uintptr(h)), ret
}

func (UnixODBC) FreeEnv(env Handle) Return {
	return Return(C.SQLFreeHandle(C.SQL_HANDLE_ENV, toSQLHandle(env)))
}

func (UnixODBC) Drivers(ctx context.Context, env Handle, dir FetchDirection, description, attributes []byte) (int16, int16, Return) {
	var descLen, attrLen C.SQLSMALLINT
	ret := C.SQLDrivers(C.SQLHENV(toSQLHandle(env)), C.SQLUSMALLINT(dir),
		charPtr(description), C.SQLSMALLINT(len(description)), &descLen,
		charPtr(attributes), C.SQLSMALLINT(len(attributes)), &attrLen)
	return int16(descLen), int16(attrLen), Return(ret)
}

func (UnixODBC) DataSources(ctx context.Context, env Handle, dir FetchDirection, name, description []byte) (int16, int16, Return) {
	var nameLen, descLen C.SQLSMALLINT
	ret := C.SQLDataSources(C.SQLHENV(toSQLHandle(env)), C.SQLUSMALLINT(dir),
		charPtr(name), C.SQLSMALLINT(len(name)), &nameLen,
		charPtr(description), C.SQLSMALLINT(len(description)), &descLen)
	return int16(nameLen), int16(descLen), Return(ret)
}

func (UnixODBC) Diagnostics(ht HandleType, h Handle) []DiagRecord {
	var (
		records []DiagRecord
		state   [6]byte
		msg     [C.SQL_MAX_MESSAGE_LENGTH]byte
		native  C.SQLINTEGER
		msgLen  C.SQLSMALLINT
	)
	for i := 1; ; i++ {
		clear(state[:])
		clear(msg[:])
		ret := Return(C.SQLGetDiagRec(C.SQLSMALLINT(ht), toSQLHandle(h), C.SQLSMALLINT(i),
			charPtr(state[:]), &native, charPtr(msg[:]), C.SQLSMALLINT(len(msg)), &msgLen))
		if !ret.Succeeded() {
			return records
		}
		records = append(records, DiagRecord{
			SQLState:    cString(state[:]),
			NativeError: int32(native),
			Message:     cString(msg[:]),
		})
	}
}

func toSQLHandle(h Handle) C.SQLHANDLE {
	return C.SQLHANDLE(unsafe.Pointer(uintptr(h)))
}

func charPtr(buf []byte) *C.SQLCHAR {
	if len(buf) == 0 {
		return nil
	}
	return (*C.SQLCHAR)(unsafe.Pointer(&buf[0]))
}
