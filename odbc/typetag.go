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
	"errors"
	"fmt"
	"reflect"
	"time"
	"unicode/utf16"
	"unsafe"

	"github.com/apache/arrow-adbc/go/adbc"
	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// OptionBindStringAsLongVarChar makes CChar values bind as SQL_LONGVARCHAR
// instead of SQL_VARCHAR.  Some drivers truncate long VARCHAR parameters.
const OptionBindStringAsLongVarChar = "adbc.odbc.bind_string_as_long_varchar"

// ErrUnknownType is matched by errors for Go types with no C type tag.
var ErrUnknownType = errors.New("unknown type")

// WideString is text bound as UTF-16 (SQL_C_WCHAR).
type WideString string

// UTF16 returns the UTF-16 code units of s without a terminator.
func (s WideString) UTF16() []uint16 {
	return utf16.Encode([]rune(string(s)))
}

// BLOB is binary large-object data.
type BLOB []byte

// CLOB is character large-object data.  It is bound as binary.
type CLOB string

var uuidType = reflect.TypeFor[uuid.UUID]()

type typeTag struct {
	t reflect.Type
	c CType
}

// cTypes is searched in order; the first entry whose type matches wins.
var cTypes = []typeTag{
	{reflect.TypeFor[string](), CChar},
	{reflect.TypeFor[WideString](), CWChar},
	{reflect.TypeFor[bool](), CBit},
	{reflect.TypeFor[int8](), CSTinyInt},
	{reflect.TypeFor[uint8](), CUTinyInt},
	{reflect.TypeFor[int16](), CSShort},
	{reflect.TypeFor[uint16](), CUShort},
	{reflect.TypeFor[int32](), CSLong},
	{reflect.TypeFor[uint32](), CULong},
	{reflect.TypeFor[int64](), CSBigInt},
	{reflect.TypeFor[uint64](), CUBigInt},
	{reflect.TypeFor[float32](), CFloat},
	{reflect.TypeFor[float64](), CDouble},
	{reflect.TypeFor[DateTime](), CTypeTimestamp},
	{reflect.TypeFor[time.Time](), CTypeTimestamp},
	{reflect.TypeFor[Date](), CTypeDate},
	{reflect.TypeFor[Time](), CTypeTime},
	{reflect.TypeFor[BLOB](), CBinary},
	{reflect.TypeFor[CLOB](), CBinary},
	{uuidType, CBinary},
	{reflect.TypeFor[int](), integerCType[int]()},
	{reflect.TypeFor[uint](), integerCType[uint]()},
}

// integerCType picks the integer tag matching the width and signedness of T.
func integerCType[T constraints.Integer]() CType {
	var zero T
	signed := ^zero < 0
	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return CSTinyInt
		}
		return CUTinyInt
	case 2:
		if signed {
			return CSShort
		}
		return CUShort
	case 4:
		if signed {
			return CSLong
		}
		return CULong
	default:
		if signed {
			return CSBigInt
		}
		return CUBigInt
	}
}

// SQLTypeMapper maps a C type tag to the SQL type it binds as by default.
type SQLTypeMapper interface {
	SQLType(c CType) (SQLType, error)
}

// SQLTypeMap is a table-driven SQLTypeMapper.
type SQLTypeMap map[CType]SQLType

func (m SQLTypeMap) SQLType(c CType) (SQLType, error) {
	if t, ok := m[c]; ok {
		return t, nil
	}
	return SQLUnknownType, errorHelper.NotFound("no SQL type for C type %s", c)
}

// StandardSQLTypes pairs every C type tag with its usual SQL type.
var StandardSQLTypes = SQLTypeMap{
	CBit:           SQLBit,
	CTinyInt:       SQLTinyInt,
	CSTinyInt:      SQLTinyInt,
	CUTinyInt:      SQLTinyInt,
	CShort:         SQLSmallInt,
	CSShort:        SQLSmallInt,
	CUShort:        SQLSmallInt,
	CLong:          SQLInteger,
	CSLong:         SQLInteger,
	CULong:         SQLInteger,
	CSBigInt:       SQLBigInt,
	CUBigInt:       SQLBigInt,
	CFloat:         SQLReal,
	CDouble:        SQLDouble,
	CNumeric:       SQLNumeric,
	CTypeDate:      SQLTypeDate,
	CTypeTime:      SQLTypeTime,
	CTypeTimestamp: SQLTypeTimestamp,
	CBinary:        SQLLongVarBinary,
	CChar:          SQLLongVarChar,
	CWChar:         SQLWLongVarChar,
	CGUID:          SQLGUID,
}

// Resolver maps Go types to the C and SQL type tags used to bind them.
// The zero value is ready to use.
type Resolver struct {
	// BindStringAsLongVarChar is set through OptionBindStringAsLongVarChar.
	BindStringAsLongVarChar bool
	// Fallback resolves SQL types for C types not special-cased by
	// SQLType.  StandardSQLTypes is used when nil.
	Fallback SQLTypeMapper
}

// SetOption sets a resolver option.  Only OptionBindStringAsLongVarChar is
// recognized.
func (r *Resolver) SetOption(key, value string) error {
	switch key {
	case OptionBindStringAsLongVarChar:
		switch value {
		case adbc.OptionValueEnabled:
			r.BindStringAsLongVarChar = true
		case adbc.OptionValueDisabled:
			r.BindStringAsLongVarChar = false
		default:
			return errorHelper.InvalidArgument("invalid value %q for option %s", value, key)
		}
		return nil
	default:
		return errorHelper.Errorf(adbc.StatusNotImplemented, "unknown option %s", key)
	}
}

// GetOption returns the value of a resolver option.
func (r *Resolver) GetOption(key string) (string, error) {
	switch key {
	case OptionBindStringAsLongVarChar:
		if r.BindStringAsLongVarChar {
			return adbc.OptionValueEnabled, nil
		}
		return adbc.OptionValueDisabled, nil
	default:
		return "", errorHelper.NotFound("unknown option %s", key)
	}
}

// CType returns the C type tag that values of type t are bound with.
func (r *Resolver) CType(t reflect.Type) (CType, error) {
	return cTypeFor(t)
}

// SQLType returns the SQL type for a value of Go type t bound as c.
// Binary, narrow and wide text are decided here; every other tag goes to
// DefaultSQLType.
func (r *Resolver) SQLType(c CType, t reflect.Type) (SQLType, error) {
	switch c {
	case CBinary:
		if t == uuidType {
			return SQLGUID, nil
		}
		return SQLLongVarBinary, nil
	case CChar:
		if r.BindStringAsLongVarChar {
			return SQLLongVarChar, nil
		}
		return SQLVarChar, nil
	case CWChar:
		return SQLWLongVarChar, nil
	default:
		return r.DefaultSQLType(c)
	}
}

// DefaultSQLType resolves c through the Fallback mapper alone.
func (r *Resolver) DefaultSQLType(c CType) (SQLType, error) {
	if r.Fallback != nil {
		return r.Fallback.SQLType(c)
	}
	return StandardSQLTypes.SQLType(c)
}

// CTypeOf returns the C type tag of the dynamic type of v.
func CTypeOf(v any) (CType, error) {
	return cTypeFor(reflect.TypeOf(v))
}

func cTypeFor(t reflect.Type) (CType, error) {
	if t != nil {
		for _, tag := range cTypes {
			if tag.t == t {
				return tag.c, nil
			}
		}
	}
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return 0, errorHelper.WrapNotImplemented(fmt.Errorf("%w: %s", ErrUnknownType, name), "CType")
}

// DefaultCType is the C type a column of SQL type t is fetched as when the
// caller has no preference.
func DefaultCType(t SQLType) CType {
	switch t {
	case SQLBit:
		return CBit
	case SQLTinyInt:
		return CSTinyInt
	case SQLSmallInt:
		return CSShort
	case SQLInteger:
		return CSLong
	case SQLBigInt:
		return CSBigInt
	case SQLReal:
		return CFloat
	case SQLFloat, SQLDouble:
		return CDouble
	case SQLTypeDate:
		return CTypeDate
	case SQLTypeTime:
		return CTypeTime
	case SQLDateTime, SQLTypeTimestamp:
		return CTypeTimestamp
	case SQLBinary, SQLVarBinary, SQLLongVarBinary:
		return CBinary
	case SQLWChar, SQLWVarChar, SQLWLongVarChar:
		return CWChar
	case SQLGUID:
		return CGUID
	default:
		// NUMERIC and DECIMAL included: their text form keeps full precision.
		return CChar
	}
}
