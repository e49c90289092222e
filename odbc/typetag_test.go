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

package odbc_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/adbc-drivers/odbc/odbc"
	"github.com/apache/arrow-adbc/go/adbc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestResolver(t *testing.T) {
	suite.Run(t, &ResolverTest{})
}

type ResolverTest struct {
	suite.Suite
	resolver *odbc.Resolver
}

func (s *ResolverTest) SetupTest() {
	s.resolver = &odbc.Resolver{}
}

func (s *ResolverTest) TestCType() {
	platformInt, platformUint := odbc.CSBigInt, odbc.CUBigInt
	if strconv.IntSize == 32 {
		platformInt, platformUint = odbc.CSLong, odbc.CULong
	}

	for _, tc := range []struct {
		value any
		want  odbc.CType
	}{
		{"text", odbc.CChar},
		{odbc.WideString("text"), odbc.CWChar},
		{true, odbc.CBit},
		{int8(1), odbc.CSTinyInt},
		{uint8(1), odbc.CUTinyInt},
		{int16(1), odbc.CSShort},
		{uint16(1), odbc.CUShort},
		{int32(1), odbc.CSLong},
		{uint32(1), odbc.CULong},
		{int64(1), odbc.CSBigInt},
		{uint64(1), odbc.CUBigInt},
		{float32(1), odbc.CFloat},
		{float64(1), odbc.CDouble},
		{odbc.DateTime{}, odbc.CTypeTimestamp},
		{time.Time{}, odbc.CTypeTimestamp},
		{odbc.Date{}, odbc.CTypeDate},
		{odbc.Time{}, odbc.CTypeTime},
		{odbc.BLOB{1, 2}, odbc.CBinary},
		{odbc.CLOB("x"), odbc.CBinary},
		{uuid.New(), odbc.CBinary},
		{int(1), platformInt},
		{uint(1), platformUint},
	} {
		s.Run(reflect.TypeOf(tc.value).String(), func() {
			got, err := s.resolver.CType(reflect.TypeOf(tc.value))
			s.Require().NoError(err)
			s.Equal(tc.want, got, "got %s", got)

			got, err = odbc.CTypeOf(tc.value)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *ResolverTest) TestCTypeUnknown() {
	type custom struct{}
	for _, tc := range []struct {
		t    reflect.Type
		name string
	}{
		{reflect.TypeFor[complex128](), "complex128"},
		{reflect.TypeFor[custom](), "odbc_test.custom"},
		{reflect.TypeFor[[]byte](), "[]uint8"},
		{nil, "<nil>"},
	} {
		s.Run(tc.name, func() {
			_, err := s.resolver.CType(tc.t)
			s.ErrorIs(err, odbc.ErrUnknownType)
			s.ErrorContains(err, "unknown type: "+tc.name)

			var adbcErr adbc.Error
			s.Require().True(errors.As(err, &adbcErr))
			s.Equal(adbc.StatusNotImplemented, adbcErr.Code)
		})
	}

	_, err := odbc.CTypeOf(nil)
	s.ErrorIs(err, odbc.ErrUnknownType)
}

func (s *ResolverTest) TestSQLTypeSpecialCases() {
	uuidType := reflect.TypeFor[uuid.UUID]()
	blobType := reflect.TypeFor[odbc.BLOB]()

	got, err := s.resolver.SQLType(odbc.CBinary, uuidType)
	s.NoError(err)
	s.Equal(odbc.SQLGUID, got)

	got, err = s.resolver.SQLType(odbc.CBinary, blobType)
	s.NoError(err)
	s.Equal(odbc.SQLLongVarBinary, got)

	got, err = s.resolver.SQLType(odbc.CBinary, nil)
	s.NoError(err)
	s.Equal(odbc.SQLLongVarBinary, got)

	got, err = s.resolver.SQLType(odbc.CChar, reflect.TypeFor[string]())
	s.NoError(err)
	s.Equal(odbc.SQLVarChar, got)

	s.Require().NoError(s.resolver.SetOption(odbc.OptionBindStringAsLongVarChar, adbc.OptionValueEnabled))
	got, err = s.resolver.SQLType(odbc.CChar, reflect.TypeFor[string]())
	s.NoError(err)
	s.Equal(odbc.SQLLongVarChar, got)

	got, err = s.resolver.SQLType(odbc.CWChar, reflect.TypeFor[odbc.WideString]())
	s.NoError(err)
	s.Equal(odbc.SQLWLongVarChar, got)
}

func (s *ResolverTest) TestSQLTypeFallback() {
	for c, want := range map[odbc.CType]odbc.SQLType{
		odbc.CBit:           odbc.SQLBit,
		odbc.CSTinyInt:      odbc.SQLTinyInt,
		odbc.CUTinyInt:      odbc.SQLTinyInt,
		odbc.CSShort:        odbc.SQLSmallInt,
		odbc.CSLong:         odbc.SQLInteger,
		odbc.CULong:         odbc.SQLInteger,
		odbc.CSBigInt:       odbc.SQLBigInt,
		odbc.CFloat:         odbc.SQLReal,
		odbc.CDouble:        odbc.SQLDouble,
		odbc.CTypeDate:      odbc.SQLTypeDate,
		odbc.CTypeTime:      odbc.SQLTypeTime,
		odbc.CTypeTimestamp: odbc.SQLTypeTimestamp,
	} {
		got, err := s.resolver.SQLType(c, nil)
		s.NoError(err, "%s", c)
		s.Equal(want, got, "%s", c)
	}

	// The single-argument form has no special cases.
	got, err := s.resolver.DefaultSQLType(odbc.CChar)
	s.NoError(err)
	s.Equal(odbc.SQLLongVarChar, got)

	_, err = s.resolver.SQLType(odbc.CDefault, nil)
	var adbcErr adbc.Error
	s.Require().True(errors.As(err, &adbcErr))
	s.Equal(adbc.StatusNotFound, adbcErr.Code)
	s.Contains(adbcErr.Msg, "SQL_C_DEFAULT")
}

func (s *ResolverTest) TestCustomFallback() {
	s.resolver.Fallback = odbc.SQLTypeMap{odbc.CSLong: odbc.SQLBigInt}

	got, err := s.resolver.SQLType(odbc.CSLong, reflect.TypeFor[int32]())
	s.NoError(err)
	s.Equal(odbc.SQLBigInt, got)

	// Special cases are decided before the fallback.
	got, err = s.resolver.SQLType(odbc.CWChar, nil)
	s.NoError(err)
	s.Equal(odbc.SQLWLongVarChar, got)

	_, err = s.resolver.SQLType(odbc.CDouble, nil)
	s.Error(err)
}

func (s *ResolverTest) TestOptions() {
	v, err := s.resolver.GetOption(odbc.OptionBindStringAsLongVarChar)
	s.NoError(err)
	s.Equal(adbc.OptionValueDisabled, v)

	s.NoError(s.resolver.SetOption(odbc.OptionBindStringAsLongVarChar, adbc.OptionValueEnabled))
	s.True(s.resolver.BindStringAsLongVarChar)
	v, err = s.resolver.GetOption(odbc.OptionBindStringAsLongVarChar)
	s.NoError(err)
	s.Equal(adbc.OptionValueEnabled, v)

	s.NoError(s.resolver.SetOption(odbc.OptionBindStringAsLongVarChar, adbc.OptionValueDisabled))
	s.False(s.resolver.BindStringAsLongVarChar)

	var adbcErr adbc.Error
	err = s.resolver.SetOption(odbc.OptionBindStringAsLongVarChar, "maybe")
	s.Require().True(errors.As(err, &adbcErr))
	s.Equal(adbc.StatusInvalidArgument, adbcErr.Code)

	err = s.resolver.SetOption("adbc.odbc.nope", "true")
	s.Require().True(errors.As(err, &adbcErr))
	s.Equal(adbc.StatusNotImplemented, adbcErr.Code)

	_, err = s.resolver.GetOption("adbc.odbc.nope")
	s.Require().True(errors.As(err, &adbcErr))
	s.Equal(adbc.StatusNotFound, adbcErr.Code)
}

func (s *ResolverTest) TestResolversAreIndependent() {
	other := &odbc.Resolver{}
	s.NoError(s.resolver.SetOption(odbc.OptionBindStringAsLongVarChar, adbc.OptionValueEnabled))

	got, err := other.SQLType(odbc.CChar, nil)
	s.NoError(err)
	s.Equal(odbc.SQLVarChar, got)
}

func (s *ResolverTest) TestDefaultCType() {
	for t, want := range map[odbc.SQLType]odbc.CType{
		odbc.SQLBit:           odbc.CBit,
		odbc.SQLTinyInt:       odbc.CSTinyInt,
		odbc.SQLSmallInt:      odbc.CSShort,
		odbc.SQLInteger:       odbc.CSLong,
		odbc.SQLBigInt:        odbc.CSBigInt,
		odbc.SQLReal:          odbc.CFloat,
		odbc.SQLFloat:         odbc.CDouble,
		odbc.SQLDouble:        odbc.CDouble,
		odbc.SQLTypeDate:      odbc.CTypeDate,
		odbc.SQLTypeTime:      odbc.CTypeTime,
		odbc.SQLTypeTimestamp: odbc.CTypeTimestamp,
		odbc.SQLVarBinary:     odbc.CBinary,
		odbc.SQLWVarChar:      odbc.CWChar,
		odbc.SQLGUID:          odbc.CGUID,
		odbc.SQLDecimal:       odbc.CChar,
		odbc.SQLVarChar:       odbc.CChar,
		odbc.SQLType(1234):    odbc.CChar,
	} {
		s.Equal(want, odbc.DefaultCType(t), "%s", t)
	}
}

func (s *ResolverTest) TestNames() {
	s.Equal("SQL_C_SBIGINT", odbc.CSBigInt.String())
	s.Equal("SQL_C_UTINYINT", odbc.CUTinyInt.String())
	s.Equal("SQL_C(1234)", odbc.CType(1234).String())
	s.Equal("WLONGVARCHAR", odbc.SQLWLongVarChar.String())
	s.Equal("UNKNOWN(77)", odbc.SQLType(77).String())
	s.Equal("SQL_NO_DATA", odbc.ReturnNoData.String())
	s.Equal("SQL_FETCH_FIRST_SYSTEM", odbc.FetchFirstSystem.String())
	s.True(odbc.ReturnSuccessWithInfo.Succeeded())
	s.False(odbc.ReturnNoData.Succeeded())
}

func (s *ResolverTest) TestWideString() {
	units := odbc.WideString("hé😀").UTF16()
	s.Equal([]uint16{'h', 0xe9, 0xd83d, 0xde00}, units)
}
