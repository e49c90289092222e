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
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

// Date is a calendar date bound as SQL_C_TYPE_DATE.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a time of day bound as SQL_C_TYPE_TIME.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// DateTime is a calendar timestamp bound as SQL_C_TYPE_TIMESTAMP.  Unlike
// time.Time its fields are stored verbatim and never normalized.
type DateTime struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Microsecond int
}

// DateOf returns the date part of t.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// TimeOf returns the time-of-day part of t, truncated to seconds.
func TimeOf(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// DateTimeOf converts t, truncating below microseconds.
func DateTimeOf(t time.Time) DateTime {
	ns := t.Nanosecond()
	return DateTime{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: ns / 1_000_000,
		Microsecond: (ns / 1_000) % 1_000,
	}
}

// Time converts dt to a time.Time in loc.  Out-of-range fields are
// normalized the way time.Date does.
func (dt DateTime) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	ns := (dt.Millisecond*1_000 + dt.Microsecond) * 1_000
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, ns, loc)
}

// DateTimeFromTimestamp copies a wire timestamp into a DateTime.  The
// nanosecond fraction is split into milliseconds and microseconds; anything
// finer is dropped.
func DateTimeFromTimestamp(ts TimestampStruct) DateTime {
	msec := ts.Fraction / 1_000_000
	usec := (ts.Fraction / 1_000) % 1_000
	return DateTime{
		Year:        int(ts.Year),
		Month:       int(ts.Month),
		Day:         int(ts.Day),
		Hour:        int(ts.Hour),
		Minute:      int(ts.Minute),
		Second:      int(ts.Second),
		Millisecond: int(msec),
		Microsecond: int(usec),
	}
}

// TimestampFromDateTime copies a DateTime into a wire timestamp.
//
// The fraction only carries milliseconds: SQL Server's DATETIME rejects
// fractions it cannot represent (see KB 263872), so Microsecond is not
// written.
func TimestampFromDateTime(dt DateTime) TimestampStruct {
	return TimestampStruct{
		Year:     int16(dt.Year),
		Month:    uint16(dt.Month),
		Day:      uint16(dt.Day),
		Hour:     uint16(dt.Hour),
		Minute:   uint16(dt.Minute),
		Second:   uint16(dt.Second),
		Fraction: uint32(dt.Millisecond * 1_000_000),
	}
}

// DateToStruct copies a Date into a wire date.
func DateToStruct(d Date) DateStruct {
	return DateStruct{
		Year:  int16(d.Year),
		Month: uint16(d.Month),
		Day:   uint16(d.Day),
	}
}

// DateFromStruct copies a wire date into a Date.
func DateFromStruct(ds DateStruct) Date {
	return Date{Year: int(ds.Year), Month: int(ds.Month), Day: int(ds.Day)}
}

// TimeToStruct copies a Time into a wire time.
func TimeToStruct(t Time) TimeStruct {
	return TimeStruct{
		Hour:   uint16(t.Hour),
		Minute: uint16(t.Minute),
		Second: uint16(t.Second),
	}
}

// TimeFromStruct copies a wire time into a Time.
func TimeFromStruct(ts TimeStruct) Time {
	return Time{Hour: int(ts.Hour), Minute: int(ts.Minute), Second: int(ts.Second)}
}

// GUIDToStruct converts an RFC 4122 UUID into the SQLGUID layout.
func GUIDToStruct(u uuid.UUID) GUIDStruct {
	g := GUIDStruct{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g
}

// GUIDFromStruct converts an SQLGUID into an RFC 4122 UUID.
func GUIDFromStruct(g GUIDStruct) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}

func (g GUIDStruct) String() string {
	return GUIDFromStruct(g).String()
}
