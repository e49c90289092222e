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
	"testing"

	"github.com/adbc-drivers/odbc/driverbase"
	"github.com/adbc-drivers/odbc/odbc"
	"github.com/apache/arrow-adbc/go/adbc"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXdbcDataType(t *testing.T) {
	assert.Equal(t, driverbase.XdbcDataTypeVarChar, odbc.XdbcDataType(odbc.SQLVarChar))
	assert.Equal(t, driverbase.XdbcDataTypeNChar, odbc.XdbcDataType(odbc.SQLWChar))
	assert.Equal(t, driverbase.XdbcDataTypeNVarChar, odbc.XdbcDataType(odbc.SQLWVarChar))
	assert.Equal(t, driverbase.XdbcDataTypeLongNVarChar, odbc.XdbcDataType(odbc.SQLWLongVarChar))
	assert.Equal(t, driverbase.XdbcDataTypeBinary, odbc.XdbcDataType(odbc.SQLGUID))
	assert.Equal(t, driverbase.XdbcDataTypeTimestamp, odbc.XdbcDataType(odbc.SQLTypeTimestamp))
	assert.Equal(t, driverbase.XdbcDataTypeBigint, odbc.XdbcDataType(odbc.SQLBigInt))
	assert.Equal(t, driverbase.XdbcDataTypeOther, odbc.XdbcDataType(odbc.SQLUnknownType))
}

func TestArrowType(t *testing.T) {
	for sqlType, want := range map[odbc.SQLType]arrow.DataType{
		odbc.SQLBit:           arrow.FixedWidthTypes.Boolean,
		odbc.SQLTinyInt:       arrow.PrimitiveTypes.Int8,
		odbc.SQLSmallInt:      arrow.PrimitiveTypes.Int16,
		odbc.SQLInteger:       arrow.PrimitiveTypes.Int32,
		odbc.SQLBigInt:        arrow.PrimitiveTypes.Int64,
		odbc.SQLReal:          arrow.PrimitiveTypes.Float32,
		odbc.SQLDouble:        arrow.PrimitiveTypes.Float64,
		odbc.SQLTypeDate:      arrow.FixedWidthTypes.Date32,
		odbc.SQLTypeTime:      arrow.FixedWidthTypes.Time64us,
		odbc.SQLTypeTimestamp: arrow.FixedWidthTypes.Timestamp_us,
		odbc.SQLLongVarBinary: arrow.BinaryTypes.Binary,
		odbc.SQLWVarChar:      arrow.BinaryTypes.String,
		odbc.SQLNumeric:       arrow.BinaryTypes.String,
	} {
		assert.True(t, arrow.TypeEqual(want, odbc.ArrowType(sqlType)), "%s: got %s", sqlType, odbc.ArrowType(sqlType))
	}

	guid, ok := odbc.ArrowType(odbc.SQLGUID).(arrow.ExtensionType)
	require.True(t, ok)
	assert.Equal(t, "arrow.uuid", guid.ExtensionName())
}

func TestArrowFieldDecimal(t *testing.T) {
	f, err := odbc.ArrowField(odbc.ColumnInfo{
		Name: "id", TypeName: "NUMERIC", Type: odbc.SQLNumeric,
		ColumnSize: 18, DecimalDigits: 0, Nullable: driverbase.XdbcColumnNoNulls,
	})
	require.NoError(t, err)
	assert.Equal(t, "id", f.Name)
	assert.False(t, f.Nullable)
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int64, f.Type))
	md := f.Metadata
	v, _ := md.GetValue(odbc.MetaKeyPrecision)
	assert.Equal(t, "18", v)
	v, _ = md.GetValue(odbc.MetaKeyScale)
	assert.Equal(t, "0", v)
	v, _ = md.GetValue(odbc.MetaKeyDatabaseTypeName)
	assert.Equal(t, "NUMERIC", v)
	v, _ = md.GetValue(odbc.MetaKeyXdbcDataType)
	assert.Equal(t, "2", v)

	f, err = odbc.ArrowField(odbc.ColumnInfo{Name: "amount", Type: odbc.SQLDecimal, ColumnSize: 30, DecimalDigits: 2, Nullable: driverbase.XdbcColumnNullable})
	require.NoError(t, err)
	assert.True(t, f.Nullable)
	assert.Equal(t, arrow.DECIMAL128, f.Type.ID())
	dec := f.Type.(arrow.DecimalType)
	assert.Equal(t, int32(30), dec.GetPrecision())
	assert.Equal(t, int32(2), dec.GetScale())

	f, err = odbc.ArrowField(odbc.ColumnInfo{Name: "huge", Type: odbc.SQLDecimal, ColumnSize: 50, DecimalDigits: 10})
	require.NoError(t, err)
	assert.Equal(t, arrow.DECIMAL256, f.Type.ID())

	f, err = odbc.ArrowField(odbc.ColumnInfo{Name: "loose", Type: odbc.SQLDecimal, DecimalDigits: -1})
	require.NoError(t, err)
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, f.Type))

	_, err = odbc.ArrowField(odbc.ColumnInfo{Name: "bad", Type: odbc.SQLDecimal, ColumnSize: 100, DecimalDigits: 2})
	var adbcErr adbc.Error
	require.True(t, errors.As(err, &adbcErr))
	assert.Equal(t, adbc.StatusInvalidArgument, adbcErr.Code)
}

func TestArrowFieldTemporal(t *testing.T) {
	for _, tc := range []struct {
		name   string
		col    odbc.ColumnInfo
		want   arrow.DataType
		digits string
	}{
		{"timestamp ms", odbc.ColumnInfo{Type: odbc.SQLTypeTimestamp, DecimalDigits: 3}, &arrow.TimestampType{Unit: arrow.Millisecond}, "3"},
		{"timestamp clamped", odbc.ColumnInfo{Type: odbc.SQLTypeTimestamp, DecimalDigits: 12}, &arrow.TimestampType{Unit: arrow.Nanosecond}, "12"},
		{"timestamp unknown", odbc.ColumnInfo{Type: odbc.SQLTypeTimestamp, DecimalDigits: -1}, arrow.FixedWidthTypes.Timestamp_us, ""},
		{"time s", odbc.ColumnInfo{Type: odbc.SQLTypeTime, DecimalDigits: 0}, &arrow.Time32Type{Unit: arrow.Second}, "0"},
		{"time us", odbc.ColumnInfo{Type: odbc.SQLTypeTime, DecimalDigits: 6}, &arrow.Time64Type{Unit: arrow.Microsecond}, "6"},
		{"time ns", odbc.ColumnInfo{Type: odbc.SQLTypeTime, DecimalDigits: 9}, &arrow.Time64Type{Unit: arrow.Nanosecond}, "9"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := odbc.ArrowField(tc.col)
			require.NoError(t, err)
			assert.True(t, arrow.TypeEqual(tc.want, f.Type), "got %s", f.Type)
			v, ok := f.Metadata.GetValue(odbc.MetaKeyFractionalSecondsPrecision)
			assert.Equal(t, tc.digits != "", ok)
			assert.Equal(t, tc.digits, v)
		})
	}
}

func TestArrowFieldOther(t *testing.T) {
	f, err := odbc.ArrowField(odbc.ColumnInfo{Name: "name", Type: odbc.SQLWVarChar, ColumnSize: 64, Nullable: driverbase.XdbcColumnNullableUnknown})
	require.NoError(t, err)
	assert.True(t, f.Nullable)
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, f.Type))
	v, _ := f.Metadata.GetValue(odbc.MetaKeyLength)
	assert.Equal(t, "64", v)
	v, _ = f.Metadata.GetValue(odbc.MetaKeySQLType)
	assert.Equal(t, "WVARCHAR", v)
	v, _ = f.Metadata.GetValue(odbc.MetaKeyXdbcDataType)
	assert.Equal(t, "-9", v)
	_, ok := f.Metadata.GetValue(odbc.MetaKeyDatabaseTypeName)
	assert.False(t, ok)
}
