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

package expression

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/csvsql/go-csvsql/sql"
)

func TestParseTargetType(t *testing.T) {
	testCases := []struct {
		typeName string
		expected TargetType
	}{
		{"TEXT", TargetStr},
		{"varchar", TargetStr},
		{"CHARACTER VARYING", TargetStr},
		{"CLOB", TargetStr},
		{"DECIMAL", TargetNumber},
		{"int", TargetNumber},
		{"BIGINT", TargetNumber},
		{"UNSIGNED INT", TargetNumber},
		{"DOUBLE PRECISION", TargetNumber},
		{"BOOL", TargetBool},
		{"BOOLEAN", TargetBool},
		{"DATE", TargetDate},
		{"TIMESTAMP", TargetTimestamp},
		{"DATETIME", TargetTimestamp},
	}
	for _, tt := range testCases {
		t.Run(tt.typeName, func(t *testing.T) {
			target, err := ParseTargetType(tt.typeName)
			require.NoError(t, err)
			require.Equal(t, tt.expected, target)
		})
	}

	_, err := ParseTargetType("GEOMETRY")
	require.True(t, sql.ErrUnsupported.Is(err))
}

func TestCastConversions(t *testing.T) {
	date := sql.NewDate(time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC))
	ts := sql.NewTimestamp(time.Date(2024, 5, 22, 11, 11, 11, 0, time.UTC))

	testCases := []struct {
		name     string
		target   TargetType
		in       sql.Value
		expected sql.Value
	}{
		{"number to string", TargetStr, sql.NewNumberFromInt(101), sql.NewString("101")},
		{"bool to string", TargetStr, sql.True(), sql.NewString("TRUE")},
		{"string passthrough", TargetStr, sql.NewString("test"), sql.NewString("test")},
		{"string to number", TargetNumber, sql.NewString("1.32"), sql.NewNumber(decimal.RequireFromString("1.32"))},
		{"bad number", TargetNumber, sql.NewString("not a number"), sql.Empty},
		{"bool to number", TargetNumber, sql.False(), sql.Empty},
		{"number to bool nonzero", TargetBool, sql.NewNumberFromInt(12), sql.True()},
		{"number to bool zero", TargetBool, sql.NewNumberFromInt(0), sql.False()},
		{"yes to bool", TargetBool, sql.NewString("YES"), sql.True()},
		{"lower yes to bool", TargetBool, sql.NewString("yes"), sql.True()},
		{"no to bool", TargetBool, sql.NewString("n"), sql.False()},
		{"bad bool", TargetBool, sql.NewString("test"), sql.Empty},
		{"date from string", TargetDate, sql.NewString("2024-05-22"), date},
		{"date from timestamp", TargetDate, ts, date},
		{"bad date", TargetDate, sql.NewString("nope"), sql.Empty},
		{"timestamp from string", TargetTimestamp, sql.NewString("2024-05-22 11:11:11"), ts},
		{"timestamp from date", TargetTimestamp, date, sql.NewTimestamp(time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC))},
		{"bad timestamp", TargetTimestamp, sql.True(), sql.Empty},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.expected.Equal(tt.target.Convert(tt.in)),
				"got %s", tt.target.Convert(tt.in))
		})
	}
}

func TestCastIsTotalOnEmpty(t *testing.T) {
	for _, target := range []TargetType{TargetStr, TargetNumber, TargetBool, TargetDate, TargetTimestamp} {
		require.True(t, target.Convert(sql.Empty).IsEmpty())
	}
}

func TestCastIdempotence(t *testing.T) {
	values := []sql.Value{
		sql.NewString("2024-05-22"),
		sql.NewNumberFromInt(42),
		sql.True(),
		sql.NewString("junk"),
		sql.Empty,
	}
	targets := []TargetType{TargetStr, TargetNumber, TargetBool, TargetDate, TargetTimestamp}
	for _, v := range values {
		for _, target := range targets {
			once := target.Convert(v)
			twice := target.Convert(once)
			require.True(t, once.Equal(twice))
		}
	}
}
