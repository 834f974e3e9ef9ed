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

package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csvsql/go-csvsql/sql"
)

func TestDefaultHeader(t *testing.T) {
	testCases := []struct {
		index    int
		expected string
	}{
		{0, "A$"},
		{1, "B$"},
		{25, "Z$"},
		{26, "AA$"},
		{27, "AB$"},
		{51, "AZ$"},
		{52, "BA$"},
	}
	for _, tt := range testCases {
		require.Equal(t, tt.expected, defaultHeader(tt.index))
	}
}

func TestScanWithHeaders(t *testing.T) {
	name := sql.NewName("tab")
	rs, err := scanCSV(strings.NewReader("id,name\n1,one\n2,two\n"), name, true)
	require.NoError(t, err)
	require.Equal(t, 2, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 2)

	colName, ok := rs.Metadata.ColumnName(sql.Column(0))
	require.True(t, ok)
	require.Equal(t, "tab.id", colName.FullName())
	require.True(t, sql.NewNumberFromInt(1).Equal(rs.Data[0].Get(sql.Column(0))))
	require.True(t, sql.NewString("one").Equal(rs.Data[0].Get(sql.Column(1))))
}

func TestScanWithoutHeaders(t *testing.T) {
	name := sql.NewName("tab")
	rs, err := scanCSV(strings.NewReader("col1\n1,2\n2\n"), name, false)
	require.NoError(t, err)
	require.Equal(t, 2, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 3)

	first, _ := rs.Metadata.ColumnName(sql.Column(0))
	second, _ := rs.Metadata.ColumnName(sql.Column(1))
	require.Equal(t, "A$", first.ShortName())
	require.Equal(t, "B$", second.ShortName())
}

func TestScanWidensOnWideRecords(t *testing.T) {
	name := sql.NewName("tab")
	rs, err := scanCSV(strings.NewReader("col1\n1,2\n2\n"), name, true)
	require.NoError(t, err)
	require.Equal(t, 2, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 2)

	second, _ := rs.Metadata.ColumnName(sql.Column(1))
	require.Equal(t, "B$", second.ShortName())
	// the narrow record reads Empty in the widened column
	require.True(t, rs.Data[1].Get(sql.Column(1)).IsEmpty())
}

func TestScanInfersCellValues(t *testing.T) {
	name := sql.NewName("tab")
	rs, err := scanCSV(strings.NewReader("a,b,c,d\n1.5,TRUE,2020-01-02,text\n"), name, true)
	require.NoError(t, err)
	row := rs.Data[0]
	require.Equal(t, sql.KindNumber, row.Get(sql.Column(0)).Kind())
	require.Equal(t, sql.KindBool, row.Get(sql.Column(1)).Kind())
	require.Equal(t, sql.KindDate, row.Get(sql.Column(2)).Kind())
	require.Equal(t, sql.KindStr, row.Get(sql.Column(3)).Kind())
}
