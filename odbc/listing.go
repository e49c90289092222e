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
	"io"
	"maps"
	"slices"

	"github.com/adbc-drivers/odbc/driverbase"
	"github.com/adbc-drivers/odbc/driverbase/arrowext"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

var (
	// DriverSchema is the schema of the stream returned by DriverReader.
	DriverSchema = arrow.NewSchema([]arrow.Field{
		{Name: "driver_name", Type: arrow.BinaryTypes.String},
		{Name: "driver_attributes", Type: arrow.MapOf(arrow.BinaryTypes.String, arrow.BinaryTypes.String), Nullable: true},
	}, nil)
	// DataSourceSchema is the schema of the stream returned by
	// DataSourceReader.
	DataSourceSchema = arrow.NewSchema([]arrow.Field{
		{Name: "data_source_name", Type: arrow.BinaryTypes.String},
		{Name: "description", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
)

// DriverReader enumerates the installed drivers as an Arrow stream, one row
// per driver ordered by name, with the full attribute list parsed into a
// map.
func (e *Environment) DriverReader(ctx context.Context, alloc memory.Allocator) (array.RecordReader, error) {
	drivers := make(map[string]string)
	err := e.enumerateDrivers(ctx, func(desc, attrs []byte, attrLen int16) bool {
		return insert(drivers, cString(desc), attributeText(attrs, attrLen))
	})
	if err != nil {
		return nil, err
	}
	return newCatalogReader(ctx, alloc, DriverSchema, drivers, true)
}

// DataSourceReader enumerates the data sources in scope as an Arrow stream,
// one row per data source ordered by name.
func (e *Environment) DataSourceReader(ctx context.Context, alloc memory.Allocator, scope Scope) (array.RecordReader, error) {
	dsns, err := e.DataSourcesScoped(ctx, nil, scope)
	if err != nil {
		return nil, err
	}
	return newCatalogReader(ctx, alloc, DataSourceSchema, dsns, false)
}

func newCatalogReader[M ~map[string]string](ctx context.Context, alloc memory.Allocator, schema *arrow.Schema, entries M, parse bool) (array.RecordReader, error) {
	if len(entries) == 0 {
		return arrowext.NewEmptyReader(schema), nil
	}
	impl := &catalogRows{
		schema:  schema,
		names:   slices.Sorted(maps.Keys(entries)),
		entries: entries,
		parse:   parse,
	}
	rr := &driverbase.BaseRecordReader{}
	if err := rr.Init(ctx, alloc, 0, impl); err != nil {
		return nil, errorHelper.WrapInternal(err, "newCatalogReader")
	}
	return rr, nil
}

// catalogRows yields one row per map entry.  With parse set, the value is
// driver attribute text and is written as a map column.
type catalogRows struct {
	schema  *arrow.Schema
	names   []string
	entries map[string]string
	parse   bool
	pos     int
}

func (c *catalogRows) Schema() *arrow.Schema {
	return c.schema
}

func (c *catalogRows) AppendRow(ctx context.Context, builder *array.RecordBuilder) error {
	if c.pos >= len(c.names) {
		return io.EOF
	}
	name := c.names[c.pos]
	value := c.entries[name]
	c.pos++

	builder.Field(0).(*array.StringBuilder).Append(name)
	if !c.parse {
		builder.Field(1).(*array.StringBuilder).Append(value)
		return nil
	}

	mb := builder.Field(1).(*array.MapBuilder)
	keys := mb.KeyBuilder().(*array.StringBuilder)
	items := mb.ItemBuilder().(*array.StringBuilder)
	mb.Append(true)
	attrs := ParseAttributes(value)
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		keys.Append(k)
		items.Append(attrs[k])
	}
	return nil
}

func (c *catalogRows) Close() error {
	c.entries = nil
	c.names = nil
	return nil
}
