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
	"testing"
	"time"

	"github.com/adbc-drivers/odbc/odbc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeFromTimestamp(t *testing.T) {
	for _, tc := range []struct {
		name     string
		fraction uint32
		msec     int
		usec     int
	}{
		{"zero", 0, 0, 0},
		{"split", 123_456_789, 123, 456},
		{"max", 999_999_999, 999, 999},
		{"sub-microsecond dropped", 999, 0, 0},
		{"microseconds only", 7_000, 0, 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dt := odbc.DateTimeFromTimestamp(odbc.TimestampStruct{
				Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 58,
				Fraction: tc.fraction,
			})
			assert.Equal(t, odbc.DateTime{
				Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 58,
				Millisecond: tc.msec, Microsecond: tc.usec,
			}, dt)
		})
	}
}

func TestTimestampFromDateTime(t *testing.T) {
	ts := odbc.TimestampFromDateTime(odbc.DateTime{
		Year: 1999, Month: 12, Day: 31, Hour: 1, Minute: 2, Second: 3,
		Millisecond: 123, Microsecond: 456,
	})
	// Microseconds are not carried.
	assert.Equal(t, odbc.TimestampStruct{
		Year: 1999, Month: 12, Day: 31, Hour: 1, Minute: 2, Second: 3,
		Fraction: 123_000_000,
	}, ts)

	back := odbc.DateTimeFromTimestamp(ts)
	assert.Equal(t, 123, back.Millisecond)
	assert.Equal(t, 0, back.Microsecond)
}

func TestStructsAreNotValidated(t *testing.T) {
	ts := odbc.TimestampFromDateTime(odbc.DateTime{Year: 2023, Month: 13, Day: 40, Hour: 25, Minute: 61, Second: 61})
	assert.Equal(t, uint16(13), ts.Month)
	assert.Equal(t, uint16(40), ts.Day)
	assert.Equal(t, uint16(25), ts.Hour)

	ds := odbc.DateToStruct(odbc.Date{Year: 2023, Month: 2, Day: 30})
	assert.Equal(t, odbc.DateStruct{Year: 2023, Month: 2, Day: 30}, ds)

	dt := odbc.DateTimeFromTimestamp(odbc.TimestampStruct{Year: 0, Month: 0, Day: 0})
	assert.Equal(t, odbc.DateTime{}, dt)
}

func TestDateAndTimeStructs(t *testing.T) {
	d := odbc.Date{Year: 2025, Month: 7, Day: 4}
	ds := odbc.DateToStruct(d)
	assert.Equal(t, odbc.DateStruct{Year: 2025, Month: 7, Day: 4}, ds)
	assert.Equal(t, d, odbc.DateFromStruct(ds))

	tm := odbc.Time{Hour: 13, Minute: 14, Second: 15}
	ts := odbc.TimeToStruct(tm)
	assert.Equal(t, odbc.TimeStruct{Hour: 13, Minute: 14, Second: 15}, ts)
	assert.Equal(t, tm, odbc.TimeFromStruct(ts))

	// Negative years survive the int16 round trip.
	assert.Equal(t, int16(-44), odbc.DateToStruct(odbc.Date{Year: -44, Month: 3, Day: 15}).Year)
}

func TestDateTimeAndTime(t *testing.T) {
	tt := time.Date(2024, time.March, 10, 8, 30, 15, 123_456_789, time.UTC)

	dt := odbc.DateTimeOf(tt)
	assert.Equal(t, odbc.DateTime{
		Year: 2024, Month: 3, Day: 10, Hour: 8, Minute: 30, Second: 15,
		Millisecond: 123, Microsecond: 456,
	}, dt)
	assert.Equal(t, tt.Truncate(time.Microsecond), dt.Time(time.UTC))
	assert.Equal(t, time.UTC, dt.Time(nil).Location())

	assert.Equal(t, odbc.Date{Year: 2024, Month: 3, Day: 10}, odbc.DateOf(tt))
	assert.Equal(t, odbc.Time{Hour: 8, Minute: 30, Second: 15}, odbc.TimeOf(tt))
}

func TestGUIDStruct(t *testing.T) {
	u := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")

	g := odbc.GUIDToStruct(u)
	assert.Equal(t, uint32(0x00112233), g.Data1)
	assert.Equal(t, uint16(0x4455), g.Data2)
	assert.Equal(t, uint16(0x6677), g.Data3)
	assert.Equal(t, [8]byte{0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, g.Data4)

	require.Equal(t, u, odbc.GUIDFromStruct(g))
	assert.Equal(t, "00112233-4455-6677-8899-aabbccddeeff", g.String())

	random := uuid.New()
	assert.Equal(t, random, odbc.GUIDFromStruct(odbc.GUIDToStruct(random)))
}
