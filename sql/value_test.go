// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValueDisplay(t *testing.T) {
	testCases := []struct {
		name     string
		value    Value
		expected string
	}{
		{"int", NewNumberFromInt(101), "101"},
		{"float", NewNumber(decimal.RequireFromString("10.1")), "10.1"},
		{"true", True(), "TRUE"},
		{"false", False(), "FALSE"},
		{"big", NewNumber(decimal.RequireFromString("12312312312312312312312312313123")), "12312312312312312312312312313123"},
		{"date", NewDate(time.Date(2018, 4, 21, 0, 0, 0, 0, time.UTC)), "2018-04-21"},
		{"timestamp", NewTimestamp(time.Date(2018, 4, 21, 10, 12, 40, 11000000, time.UTC)), "2018-04-21 10:12:40.011"},
		{"timestamp no fraction", NewTimestamp(time.Date(2018, 4, 21, 10, 12, 40, 0, time.UTC)), "2018-04-21 10:12:40"},
		{"string", NewString("test"), "test"},
		{"empty", Empty, ""},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestInferValue(t *testing.T) {
	testCases := []struct {
		in       string
		expected Value
	}{
		{"", Empty},
		{"test", NewString("test")},
		{"2018-04-21 10:12:40", NewTimestamp(time.Date(2018, 4, 21, 10, 12, 40, 0, time.UTC))},
		{"2018-04-21", NewDate(time.Date(2018, 4, 21, 0, 0, 0, 0, time.UTC))},
		{"-2001", NewNumberFromInt(-2001)},
		{"TRUE", True()},
		{"FALSE", False()},
		{"3.25", NewNumber(decimal.RequireFromString("3.25"))},
		{"325123142355765678123412453653.123412453456256456", NewNumber(decimal.RequireFromString("325123142355765678123412453653.123412453456256456"))},
		{"true", NewString("true")},
	}
	for _, tt := range testCases {
		t.Run(tt.in, func(t *testing.T) {
			require.True(t, tt.expected.Equal(InferValue(tt.in)))
		})
	}
}

func TestValueTotalOrder(t *testing.T) {
	// one representative per variant, in rank order
	ordered := []Value{
		Empty,
		False(),
		NewNumberFromInt(1000),
		NewString("a"),
		NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		NewTimestamp(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	for i, left := range ordered {
		for j, right := range ordered {
			cmp := left.Compare(right)
			switch {
			case i < j:
				require.Negative(t, cmp)
			case i > j:
				require.Positive(t, cmp)
			default:
				require.Zero(t, cmp)
			}
		}
	}
}

func TestValueOrderWithinVariant(t *testing.T) {
	require.Negative(t, False().Compare(True()))
	require.Negative(t, NewNumberFromInt(1).Compare(NewNumberFromInt(2)))
	require.Negative(t, NewString("a").Compare(NewString("b")))
	require.Positive(t, NewDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)).
		Compare(NewDate(time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))))
}

func TestCanonicalNormalizesNumbers(t *testing.T) {
	a := NewNumber(decimal.RequireFromString("1.10"))
	b := NewNumber(decimal.RequireFromString("1.1"))
	require.Equal(t, a.Canonical(), b.Canonical())
	require.NotEqual(t, NewString("1.1").Canonical(), b.Canonical())
}

func TestParseTimestampOptionalFraction(t *testing.T) {
	ts, ok := ParseTimestamp("2024-11-23 16:20:21.003")
	require.True(t, ok)
	require.Equal(t, "2024-11-23 16:20:21.003", ts.String())

	ts, ok = ParseTimestamp("2024-11-23 16:20:21")
	require.True(t, ok)
	require.Equal(t, "2024-11-23 16:20:21", ts.String())

	_, ok = ParseTimestamp("not a time")
	require.False(t, ok)
}
