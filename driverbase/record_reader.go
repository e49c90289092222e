// Copyright (c) 2025 Columnar Technologies, Inc.
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

package driverbase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// RecordReaderImpl is a row-wise source of records.  The driverbase pivots
// it into an array.RecordReader.
type RecordReaderImpl interface {
	io.Closer
	Schema() *arrow.Schema
	// Return io.EOF once no more rows can be appended.
	AppendRow(ctx context.Context, builder *array.RecordBuilder) error
}

// BaseRecordReader is an array.RecordReader based on a row-wise interface.
type BaseRecordReader struct {
	refCount  int64
	ctx       context.Context
	alloc     memory.Allocator
	batchSize int64
	impl      RecordReaderImpl
	builder   *array.RecordBuilder
	schema    *arrow.Schema

	// The next record to be yielded
	record arrow.RecordBatch
	// All errors encountered
	err  error
	done bool
}

// Init initializes the state for the record reader.  A batchSize of zero
// selects the default of 65536 rows.
func (rr *BaseRecordReader) Init(ctx context.Context, alloc memory.Allocator, batchSize int64, impl RecordReaderImpl) error {
	rr.refCount = 1

	if ctx == nil {
		return errors.New("driverbase: BaseRecordReader: must provide ctx")
	} else if alloc == nil {
		return errors.New("driverbase: BaseRecordReader: must provide alloc")
	} else if impl == nil {
		return errors.New("driverbase: BaseRecordReader: must provide impl")
	} else if batchSize == 0 {
		batchSize = 65536
	} else if batchSize < 0 {
		return errors.New("driverbase: BaseRecordReader: batchSize must be non-negative")
	}

	rr.ctx = ctx
	rr.alloc = alloc
	rr.batchSize = batchSize
	rr.impl = impl
	rr.schema = impl.Schema()
	rr.builder = array.NewRecordBuilder(rr.alloc, rr.schema)
	return nil
}

func (rr *BaseRecordReader) Close() {
	if rr.record != nil {
		rr.record.Release()
		rr.record = nil
	}
	if rr.builder != nil {
		rr.builder.Release()
		rr.builder = nil
	}
	if rr.impl != nil {
		if err := rr.impl.Close(); err != nil {
			rr.err = errors.Join(rr.err, err)
		}
		rr.impl = nil
	}
}

func (rr *BaseRecordReader) Next() bool {
	if rr.impl == nil || rr.err != nil {
		return false
	}
	if rr.record != nil {
		rr.record.Release()
		rr.record = nil
	}
	if rr.done {
		rr.Close()
		return false
	}

	rows := int64(0)
	for rows < rr.batchSize {
		if err := rr.ctx.Err(); err != nil {
			rr.err = err
			return false
		}
		err := rr.impl.AppendRow(rr.ctx, rr.builder)
		if err == io.EOF {
			// Defer cleanup to the next call to Next: the
			// builder is still needed below.
			rr.done = true
			break
		} else if err != nil {
			rr.err = err
			return false
		}
		rows++
	}
	if rows == 0 {
		rr.Close()
		return false
	}
	rr.record = rr.builder.NewRecordBatch()
	return true
}

func (rr *BaseRecordReader) Release() {
	if atomic.AddInt64(&rr.refCount, -1) == 0 {
		rr.Close()
	}
}

func (rr *BaseRecordReader) Retain() {
	atomic.AddInt64(&rr.refCount, 1)
}

func (rr *BaseRecordReader) Schema() *arrow.Schema {
	return rr.schema
}

func (rr *BaseRecordReader) Record() arrow.RecordBatch {
	return rr.record
}

func (rr *BaseRecordReader) RecordBatch() arrow.RecordBatch {
	return rr.record
}

func (rr *BaseRecordReader) Err() error {
	return rr.err
}

var _ array.RecordReader = (*BaseRecordReader)(nil)
