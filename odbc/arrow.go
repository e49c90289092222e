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
	"fmt"
	"strconv"

	"github.com/adbc-drivers/odbc/driverbase"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/extensions"
)

const (
	MetaKeyDatabaseTypeName           = "odbc.database_type_name"
	MetaKeyColumnName                 = "odbc.column_name"
	MetaKeySQLType                    = "odbc.sql_type"
	MetaKeyXdbcDataType               = "odbc.xdbc_data_type"
	MetaKeyPrecision                  = "odbc.precision"
	MetaKeyScale                      = "odbc.scale"
	MetaKeyFractionalSecondsPrecision = "odbc.fractional_seconds_precision"
	MetaKeyLength                     = "odbc.length"
)

// ColumnInfo describes a result column as reported by SQLDescribeCol.
type ColumnInfo struct {
	Name string
	// TypeName is the data-source-specific type name, if known.
	TypeName string
	Type     SQLType
	// ColumnSize is the length of character and binary columns and the
	// precision of numeric ones.  Zero means unknown.
	ColumnSize int64
	// DecimalDigits is the scale of numeric columns and the fractional
	// seconds precision of time columns.  Negative means unknown.
	DecimalDigits int64
	// Nullable is one of the driverbase.XdbcColumn* codes.
	Nullable int16
}

// XdbcDataType maps an ODBC SQL type to its XDBC (JDBC) code.
func XdbcDataType(t SQLType) int16 {
	switch t {
	case SQLChar:
		return driverbase.XdbcDataTypeChar
	case SQLVarChar:
		return driverbase.XdbcDataTypeVarChar
	case SQLLongVarChar:
		return driverbase.XdbcDataTypeLongVarChar
	case SQLWChar:
		return driverbase.XdbcDataTypeNChar
	case SQLWVarChar:
		return driverbase.XdbcDataTypeNVarChar
	case SQLWLongVarChar:
		return driverbase.XdbcDataTypeLongNVarChar
	case SQLNumeric:
		return driverbase.XdbcDataTypeNumeric
	case SQLDecimal:
		return driverbase.XdbcDataTypeDecimal
	case SQLBit:
		return driverbase.XdbcDataTypeBit
	case SQLTinyInt:
		return driverbase.XdbcDataTypeTinyint
	case SQLSmallInt:
		return driverbase.XdbcDataTypeSmallint
	case SQLInteger:
		return driverbase.XdbcDataTypeInteger
	case SQLBigInt:
		return driverbase.XdbcDataTypeBigint
	case SQLReal:
		return driverbase.XdbcDataTypeReal
	case SQLFloat:
		return driverbase.XdbcDataTypeFloat
	case SQLDouble:
		return driverbase.XdbcDataTypeDouble
	case SQLBinary, SQLGUID:
		return driverbase.XdbcDataTypeBinary
	case SQLVarBinary:
		return driverbase.XdbcDataTypeVarBinary
	case SQLLongVarBinary:
		return driverbase.XdbcDataTypeLongVarBinary
	case SQLDateTime, SQLTypeTimestamp:
		return driverbase.XdbcDataTypeTimestamp
	case SQLTypeDate:
		return driverbase.XdbcDataTypeDate
	case SQLTypeTime:
		return driverbase.XdbcDataTypeTime
	default:
		return driverbase.XdbcDataTypeOther
	}
}

// convertPrecisionToTimeUnit converts fractional seconds precision to an
// Arrow TimeUnit, clamped to nanoseconds.
func convertPrecisionToTimeUnit(precision int64) arrow.TimeUnit {
	if precision > 9 {
		precision = 9
	}
	return arrow.TimeUnit(precision / 3)
}

// ArrowType returns the Arrow type a column of SQL type t is read into when
// nothing else is known about it.  Types with no better match are read as
// text.
func ArrowType(t SQLType) arrow.DataType {
	switch t {
	case SQLBit:
		return arrow.FixedWidthTypes.Boolean
	case SQLTinyInt:
		return arrow.PrimitiveTypes.Int8
	case SQLSmallInt:
		return arrow.PrimitiveTypes.Int16
	case SQLInteger:
		return arrow.PrimitiveTypes.Int32
	case SQLBigInt:
		return arrow.PrimitiveTypes.Int64
	case SQLReal:
		return arrow.PrimitiveTypes.Float32
	case SQLFloat, SQLDouble:
		return arrow.PrimitiveTypes.Float64
	case SQLTypeDate:
		return arrow.FixedWidthTypes.Date32
	case SQLTypeTime:
		return arrow.FixedWidthTypes.Time64us
	case SQLDateTime, SQLTypeTimestamp:
		return arrow.FixedWidthTypes.Timestamp_us
	case SQLBinary, SQLVarBinary, SQLLongVarBinary:
		return arrow.BinaryTypes.Binary
	case SQLGUID:
		return extensions.NewUUIDType()
	default:
		return arrow.BinaryTypes.String
	}
}

// ArrowField converts a column description into an Arrow field, keeping the
// ODBC details in the field metadata.
func ArrowField(col ColumnInfo) (arrow.Field, error) {
	md := map[string]string{
		MetaKeyColumnName:   col.Name,
		MetaKeySQLType:      col.Type.String(),
		MetaKeyXdbcDataType: driverbase.FormatXdbcDataType(XdbcDataType(col.Type)),
	}
	if col.TypeName != "" {
		md[MetaKeyDatabaseTypeName] = col.TypeName
	}

	var dt arrow.DataType
	switch col.Type {
	case SQLNumeric, SQLDecimal:
		if col.ColumnSize > 0 && col.DecimalDigits >= 0 {
			precision, scale := col.ColumnSize, col.DecimalDigits
			md[MetaKeyPrecision] = strconv.FormatInt(precision, 10)
			md[MetaKeyScale] = strconv.FormatInt(scale, 10)
			if scale == 0 && precision <= 19 { // max digits for int64
				dt = arrow.PrimitiveTypes.Int64
				break
			}
			var err error
			dt, err = arrow.NarrowestDecimalType(int32(precision), int32(scale))
			if err != nil {
				return arrow.Field{}, errorHelper.InvalidArgument("column %q: invalid decimal precision/scale (%d, %d): %s", col.Name, precision, scale, err)
			}
		} else {
			// Precision unknown: text keeps every digit.
			dt = arrow.BinaryTypes.String
		}
	case SQLDateTime, SQLTypeTimestamp:
		dt = arrow.FixedWidthTypes.Timestamp_us
		if col.DecimalDigits >= 0 {
			md[MetaKeyFractionalSecondsPrecision] = strconv.FormatInt(col.DecimalDigits, 10)
			dt = &arrow.TimestampType{Unit: convertPrecisionToTimeUnit(col.DecimalDigits)}
		}
	case SQLTypeTime:
		dt = arrow.FixedWidthTypes.Time64us
		if col.DecimalDigits >= 0 {
			md[MetaKeyFractionalSecondsPrecision] = strconv.FormatInt(col.DecimalDigits, 10)
			// Time32 holds seconds and milliseconds, Time64 the rest.
			unit := convertPrecisionToTimeUnit(col.DecimalDigits)
			if unit == arrow.Second || unit == arrow.Millisecond {
				dt = &arrow.Time32Type{Unit: unit}
			} else {
				dt = &arrow.Time64Type{Unit: unit}
			}
		}
	default:
		dt = ArrowType(col.Type)
		if col.ColumnSize > 0 {
			md[MetaKeyLength] = fmt.Sprintf("%d", col.ColumnSize)
		}
	}

	return arrow.Field{
		Name:     col.Name,
		Type:     dt,
		Nullable: driverbase.XdbcNullable(col.Nullable),
		Metadata: arrow.MetadataFrom(md),
	}, nil
}
