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

import "fmt"

// Handle is an opaque driver manager handle (SQLHANDLE).
type Handle uintptr

// HandleType identifies the kind of handle passed to SQLGetDiagRec.
type HandleType int16

const (
	HandleEnv  HandleType = 1
	HandleDbc  HandleType = 2
	HandleStmt HandleType = 3
	HandleDesc HandleType = 4
)

// Return is an SQLRETURN status code.
type Return int16

const (
	ReturnSuccess         Return = 0
	ReturnSuccessWithInfo Return = 1
	ReturnStillExecuting  Return = 2
	ReturnNeedData        Return = 99
	ReturnNoData          Return = 100
	ReturnError           Return = -1
	ReturnInvalidHandle   Return = -2
)

// Succeeded is SQL_SUCCEEDED: success, possibly with info.
func (r Return) Succeeded() bool {
	return r == ReturnSuccess || r == ReturnSuccessWithInfo
}

func (r Return) String() string {
	switch r {
	case ReturnSuccess:
		return "SQL_SUCCESS"
	case ReturnSuccessWithInfo:
		return "SQL_SUCCESS_WITH_INFO"
	case ReturnStillExecuting:
		return "SQL_STILL_EXECUTING"
	case ReturnNeedData:
		return "SQL_NEED_DATA"
	case ReturnNoData:
		return "SQL_NO_DATA"
	case ReturnError:
		return "SQL_ERROR"
	case ReturnInvalidHandle:
		return "SQL_INVALID_HANDLE"
	default:
		return fmt.Sprintf("SQLRETURN(%d)", int16(r))
	}
}

// FetchDirection is the direction argument of SQLDrivers and SQLDataSources.
type FetchDirection uint16

const (
	FetchNext        FetchDirection = 1
	FetchFirst       FetchDirection = 2
	FetchFirstUser   FetchDirection = 31
	FetchFirstSystem FetchDirection = 32
)

func (d FetchDirection) String() string {
	switch d {
	case FetchNext:
		return "SQL_FETCH_NEXT"
	case FetchFirst:
		return "SQL_FETCH_FIRST"
	case FetchFirstUser:
		return "SQL_FETCH_FIRST_USER"
	case FetchFirstSystem:
		return "SQL_FETCH_FIRST_SYSTEM"
	default:
		return fmt.Sprintf("FetchDirection(%d)", uint16(d))
	}
}

const (
	// MaxDSNLength is SQL_MAX_DSN_LENGTH.
	MaxDSNLength = 32
	// DriverBufferLength is the size of the description and attribute
	// buffers handed to the driver manager during enumeration.
	DriverBufferLength = 512
)

// CType is a C data type identifier (SQL_C_*): the in-memory representation
// of a bound value.
type CType int16

const (
	signedOffset   = -20
	unsignedOffset = -22
)

const (
	CChar          CType = 1
	CNumeric       CType = 2
	CLong          CType = 4
	CShort         CType = 5
	CFloat         CType = 7
	CDouble        CType = 8
	CDefault       CType = 99
	CTypeDate      CType = 91
	CTypeTime      CType = 92
	CTypeTimestamp CType = 93
	CBinary        CType = -2
	CTinyInt       CType = -6
	CBit           CType = -7
	CWChar         CType = -8
	CGUID          CType = -11
	CSBigInt       CType = -5 + signedOffset
	CUBigInt       CType = -5 + unsignedOffset
	CSLong         CType = CLong + signedOffset
	CULong         CType = CLong + unsignedOffset
	CSShort        CType = CShort + signedOffset
	CUShort        CType = CShort + unsignedOffset
	CSTinyInt      CType = CTinyInt + signedOffset
	CUTinyInt      CType = CTinyInt + unsignedOffset
)

func (c CType) String() string {
	switch c {
	case CChar:
		return "SQL_C_CHAR"
	case CNumeric:
		return "SQL_C_NUMERIC"
	case CLong:
		return "SQL_C_LONG"
	case CShort:
		return "SQL_C_SHORT"
	case CFloat:
		return "SQL_C_FLOAT"
	case CDouble:
		return "SQL_C_DOUBLE"
	case CDefault:
		return "SQL_C_DEFAULT"
	case CTypeDate:
		return "SQL_C_TYPE_DATE"
	case CTypeTime:
		return "SQL_C_TYPE_TIME"
	case CTypeTimestamp:
		return "SQL_C_TYPE_TIMESTAMP"
	case CBinary:
		return "SQL_C_BINARY"
	case CTinyInt:
		return "SQL_C_TINYINT"
	case CBit:
		return "SQL_C_BIT"
	case CWChar:
		return "SQL_C_WCHAR"
	case CGUID:
		return "SQL_C_GUID"
	case CSBigInt:
		return "SQL_C_SBIGINT"
	case CUBigInt:
		return "SQL_C_UBIGINT"
	case CSLong:
		return "SQL_C_SLONG"
	case CULong:
		return "SQL_C_ULONG"
	case CSShort:
		return "SQL_C_SSHORT"
	case CUShort:
		return "SQL_C_USHORT"
	case CSTinyInt:
		return "SQL_C_STINYINT"
	case CUTinyInt:
		return "SQL_C_UTINYINT"
	default:
		return fmt.Sprintf("SQL_C(%d)", int16(c))
	}
}

// SQLType is an SQL data type identifier: the type of a value as the
// database sees it.
type SQLType int16

const (
	SQLUnknownType   SQLType = 0
	SQLChar          SQLType = 1
	SQLNumeric       SQLType = 2
	SQLDecimal       SQLType = 3
	SQLInteger       SQLType = 4
	SQLSmallInt      SQLType = 5
	SQLFloat         SQLType = 6
	SQLReal          SQLType = 7
	SQLDouble        SQLType = 8
	SQLDateTime      SQLType = 9
	SQLVarChar       SQLType = 12
	SQLTypeDate      SQLType = 91
	SQLTypeTime      SQLType = 92
	SQLTypeTimestamp SQLType = 93
	SQLLongVarChar   SQLType = -1
	SQLBinary        SQLType = -2
	SQLVarBinary     SQLType = -3
	SQLLongVarBinary SQLType = -4
	SQLBigInt        SQLType = -5
	SQLTinyInt       SQLType = -6
	SQLBit           SQLType = -7
	SQLWChar         SQLType = -8
	SQLWVarChar      SQLType = -9
	SQLWLongVarChar  SQLType = -10
	SQLGUID          SQLType = -11
)

func (t SQLType) String() string {
	switch t {
	case SQLUnknownType:
		return "UNKNOWN"
	case SQLChar:
		return "CHAR"
	case SQLNumeric:
		return "NUMERIC"
	case SQLDecimal:
		return "DECIMAL"
	case SQLInteger:
		return "INTEGER"
	case SQLSmallInt:
		return "SMALLINT"
	case SQLFloat:
		return "FLOAT"
	case SQLReal:
		return "REAL"
	case SQLDouble:
		return "DOUBLE"
	case SQLDateTime:
		return "DATETIME"
	case SQLVarChar:
		return "VARCHAR"
	case SQLTypeDate:
		return "DATE"
	case SQLTypeTime:
		return "TIME"
	case SQLTypeTimestamp:
		return "TIMESTAMP"
	case SQLLongVarChar:
		return "LONGVARCHAR"
	case SQLBinary:
		return "BINARY"
	case SQLVarBinary:
		return "VARBINARY"
	case SQLLongVarBinary:
		return "LONGVARBINARY"
	case SQLBigInt:
		return "BIGINT"
	case SQLTinyInt:
		return "TINYINT"
	case SQLBit:
		return "BIT"
	case SQLWChar:
		return "WCHAR"
	case SQLWVarChar:
		return "WVARCHAR"
	case SQLWLongVarChar:
		return "WLONGVARCHAR"
	case SQLGUID:
		return "GUID"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int16(t))
	}
}

// TimestampStruct is SQL_TIMESTAMP_STRUCT.  Fraction is in billionths of a
// second.
type TimestampStruct struct {
	Year     int16
	Month    uint16
	Day      uint16
	Hour     uint16
	Minute   uint16
	Second   uint16
	Fraction uint32
}

// DateStruct is SQL_DATE_STRUCT.
type DateStruct struct {
	Year  int16
	Month uint16
	Day   uint16
}

// TimeStruct is SQL_TIME_STRUCT.
type TimeStruct struct {
	Hour   uint16
	Minute uint16
	Second uint16
}

// GUIDStruct is SQLGUID.  Data1-Data3 are native-endian integers, Data4 is
// a byte array, so the layout differs from the RFC 4122 byte order.
type GUIDStruct struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}
