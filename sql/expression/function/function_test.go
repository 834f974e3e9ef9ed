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

package function

import (
	"os/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/csvsql/go-csvsql/sql"
)

// call invokes a scalar with values inferred from their string form, the
// same way cells come off a scan.
func call(t *testing.T, name string, args ...string) sql.Value {
	t.Helper()
	fn, ok := LookupScalar(name)
	require.True(t, ok, "function %s not registered", name)
	values := make([]sql.Value, len(args))
	for i, a := range args {
		values[i] = sql.InferValue(a)
	}
	return fn.Call(values)
}

func TestScalarFunctions(t *testing.T) {
	testCases := []struct {
		fn       string
		args     []string
		expected string
	}{
		{"ABS", []string{"11.44"}, "11.44"},
		{"ABS", []string{"-0.44"}, "0.44"},
		{"ABS", []string{"test"}, ""},

		{"ASCII", []string{"a"}, "97"},
		{"ASCII", []string{"abc"}, "97"},
		{"ASCII", []string{"100"}, ""},

		{"CHR", []string{"97"}, "a"},
		{"CHR", []string{"-100"}, ""},
		{"CHR", []string{"97.1"}, "a"},
		{"CHR", []string{"abc"}, ""},

		{"LENGTH", []string{"hello"}, "5"},
		{"LENGTH", []string{"-100"}, ""},

		{"COALESCE", []string{"", "", "5", "6"}, "5"},
		{"COALESCE", []string{"", "", ""}, ""},
		{"COALESCE", []string{"a", "b"}, "a"},
		{"COALESCE", []string{}, ""},

		{"CONCAT", []string{"a", "b", "cd", "e"}, "abcde"},
		{"CONCAT", []string{"a", "1", "b"}, "a1b"},

		{"CONCAT_WS", []string{"|", "a", "b", "cd", "e"}, "a|b|cd|e"},

		{"GREATEST", []string{"10", "400040", "1044", "-134522352"}, "400040"},
		{"GREATEST", []string{}, ""},

		{"LEAST", []string{"10", "400040", "1044", "-4", "-1"}, "-4"},
		{"LEAST", []string{}, ""},

		{"IF", []string{"TRUE", "100", "-100"}, "100"},
		{"IF", []string{"FALSE", "100", "-100"}, "-100"},
		{"IF", []string{"test", "100", "-100"}, ""},

		{"NULLIF", []string{"hello", "hello"}, ""},
		{"NULLIF", []string{"hello", "world"}, "hello"},

		{"LOWER", []string{"HeLLo"}, "hello"},
		{"LOWER", []string{"123"}, ""},

		{"LEFT", []string{"test", "2"}, "te"},
		{"LEFT", []string{"test", "4"}, "test"},
		{"LEFT", []string{"test", "12"}, "test"},
		{"LEFT", []string{"test", "five"}, ""},
		{"LEFT", []string{"10", "10"}, ""},

		{"LPAD", []string{"text", "10", "pad"}, "padpadtext"},
		{"LPAD", []string{"text", "12", "pad"}, "padpadpatext"},
		{"LPAD", []string{"text", "3", "pad"}, "tex"},
		{"LPAD", []string{"text", "4", "pad"}, "text"},
		{"LPAD", []string{"text", "-122", "pad"}, ""},
		{"LPAD", []string{"12", "10", "pad"}, ""},
		{"LPAD", []string{"text", "me", "pad"}, ""},
		{"LPAD", []string{"text", "10", "2"}, ""},

		{"LTRIM", []string{"  hello"}, "hello"},
		{"LTRIM", []string{"12"}, ""},

		{"SUBSTRING", []string{"abcdef", "3"}, "cdef"},
		{"SUBSTRING", []string{"abcdef", "-3"}, ""},
		{"SUBSTRING", []string{"abcdef", "0"}, "abcdef"},
		{"SUBSTRING", []string{"abcdef", "1"}, "abcdef"},
		{"SUBSTRING", []string{"abcdef", "20"}, ""},
		{"SUBSTRING", []string{"abcdef", "test"}, ""},
		{"SUBSTRING", []string{"204234", "2"}, ""},
		{"SUBSTRING", []string{"abcdef", "3", "2"}, "cd"},
		{"SUBSTRING", []string{"abcdef", "3", "20"}, "cdef"},
		{"SUBSTRING", []string{"abcdef", "3", "4"}, "cdef"},
		{"SUBSTRING", []string{"abcdef", "3", "-4"}, ""},
		{"SUBSTRING", []string{"abcdef", "3", "test"}, ""},

		{"POSITION", []string{"bar", "foobarbar"}, "4"},
		{"POSITION", []string{"xbar", "foobarbar"}, "0"},
		{"POSITION", []string{"bar", "foobarbar", "5"}, "7"},
		{"POSITION", []string{"5", "foobarbar", "5"}, ""},
		{"POSITION", []string{"bar", "20", "5"}, ""},
		{"POSITION", []string{"bar", "foobarbar", "a"}, ""},
		{"POSITION", []string{"bar", "foobarbar", "25"}, "0"},

		{"TO_TIMESTAMP", []string{"1400234525"}, "2014-05-16 10:02:05"},
		{"TO_TIMESTAMP", []string{"test"}, ""},

		{"FORMAT", []string{"2024-11-23", "%d/%m/%Y"}, "23/11/2024"},
		// a numeric second argument is not a pattern
		{"FORMAT", []string{"2024-11-23 16:20:21.003", "123"}, ""},
		{"FORMAT", []string{"3", "%d/%m/%Y"}, ""},
	}
	for _, tt := range testCases {
		t.Run(tt.fn+"/"+tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, call(t, tt.fn, tt.args...).String())
		})
	}
}

func TestSubstringEqualsFromOne(t *testing.T) {
	// SUBSTRING(s, 0, ...) behaves as SUBSTRING(s, 1, ...)
	require.Equal(t,
		call(t, "SUBSTRING", "abcdef", "1", "3"),
		call(t, "SUBSTRING", "abcdef", "0", "3"))
}

func TestAliases(t *testing.T) {
	for alias, canonical := range map[string]string{
		"CHAR_LENGTH": "LENGTH",
		"LCASE":       "LOWER",
		"MID":         "SUBSTRING",
		"LOCATE":      "POSITION",
		"TO_CHAR":     "FORMAT",
		"CURTIME":     "NOW",
		"USER":        "CURRENT_USER",
	} {
		fn, ok := LookupScalar(alias)
		require.True(t, ok, alias)
		require.Equal(t, canonical, fn.Name())
	}
}

func TestNiladicFunctions(t *testing.T) {
	now := call(t, "NOW")
	ts, ok := now.Time()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().UTC(), ts, 10*time.Second)

	today := call(t, "CURRENT_DATE")
	require.Equal(t, sql.KindDate, today.Kind())

	pi := call(t, "PI")
	n, ok := pi.Number()
	require.True(t, ok)
	f, _ := n.Float64()
	require.Greater(t, f, 3.14)
	require.Less(t, f, 3.15)

	if u, err := user.Current(); err == nil {
		require.Equal(t, u.Username, call(t, "USER").String())
	}
}

func agg(t *testing.T, name string, values ...string) sql.Value {
	t.Helper()
	fn, ok := LookupAggregate(name)
	require.True(t, ok)
	vals := make([]sql.Value, len(values))
	for i, v := range values {
		vals[i] = sql.InferValue(v)
	}
	return fn.Compute(vals)
}

func TestAggregates(t *testing.T) {
	require.Equal(t, "5", agg(t, "COUNT", "1", "2", "3", "4", "1").String())
	require.Equal(t, "0", agg(t, "COUNT").String())

	require.Equal(t, "7", agg(t, "AVG", "5", "11", "11", "1").String())
	require.Equal(t, "11", agg(t, "AVG", "10", "", "nop", "12").String())
	require.Equal(t, "", agg(t, "AVG", "a", "", "nop", "").String())

	require.Equal(t, "7", agg(t, "SUM", "1", "1", "2", "3").String())
	require.Equal(t, "22", agg(t, "SUM", "10", "", "nop", "12").String())
	require.Equal(t, "0", agg(t, "SUM", "a", "", "nop", "").String())

	require.Equal(t, "1", agg(t, "MIN", "1", "1", "2", "3").String())
	require.Equal(t, "b", agg(t, "MIN", "e", "b", "d", "q").String())
	require.Equal(t, "", agg(t, "MIN").String())

	require.Equal(t, "3", agg(t, "MAX", "1", "1", "2", "3").String())
	require.Equal(t, "q", agg(t, "MAX", "e", "b", "d", "q").String())
	require.Equal(t, "", agg(t, "MAX").String())

	require.Equal(t, "a", agg(t, "ANY_VALUE", "a", "b", "2", "3").String())
	require.Equal(t, "", agg(t, "ANY_VALUE").String())
}

func TestOnlyCountSupportsStar(t *testing.T) {
	count, _ := LookupAggregate("COUNT")
	require.True(t, count.SupportsStar)
	for _, name := range []string{"AVG", "SUM", "MIN", "MAX", "ANY_VALUE"} {
		fn, ok := LookupAggregate(name)
		require.True(t, ok)
		require.False(t, fn.SupportsStar)
	}
}

func TestNamesIsSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		require.LessOrEqual(t, names[i-1], names[i])
	}
}
