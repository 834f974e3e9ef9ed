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

	"github.com/stretchr/testify/require"
)

func customersMetadata() *SimpleMetadata {
	name := NewName("db", "customers")
	md := NewSimpleMetadata(&name)
	md.AddColumn("id")
	md.AddColumn("name")
	return md
}

func TestSimpleMetadataLookup(t *testing.T) {
	md := customersMetadata()
	require.Equal(t, 2, md.NumColumns())

	for _, lookup := range []Name{
		NewName("id"),
		NewName("customers", "id"),
		NewName("db", "customers", "id"),
	} {
		col, err := md.ColumnIndex(lookup)
		require.NoError(t, err)
		require.Equal(t, 0, col.Index())
	}

	_, err := md.ColumnIndex(NewName("missing"))
	require.True(t, ErrNoSuchColumn.Is(err))
}

func TestSimpleMetadataAmbiguity(t *testing.T) {
	md := NewSimpleMetadata(nil)
	md.AddColumnName(NewName("a", "id"))
	md.AddColumnName(NewName("b", "id"))

	_, err := md.ColumnIndex(NewName("id"))
	require.True(t, ErrAmbiguousColumnName.Is(err))

	col, err := md.ColumnIndex(NewName("a", "id"))
	require.NoError(t, err)
	require.Equal(t, 0, col.Index())

	col, err = md.ColumnIndex(NewName("b", "id"))
	require.NoError(t, err)
	require.Equal(t, 1, col.Index())
}

func TestProductMetadata(t *testing.T) {
	left := customersMetadata()
	rightName := NewName("db", "orders")
	right := NewSimpleMetadata(&rightName)
	right.AddColumn("id")
	right.AddColumn("total")

	product := NewProductMetadata(left, right)
	require.Equal(t, 4, product.NumColumns())

	// unique on the right side resolves with a shifted index
	col, err := product.ColumnIndex(NewName("total"))
	require.NoError(t, err)
	require.Equal(t, 3, col.Index())

	// resolvable on both sides is ambiguous
	_, err = product.ColumnIndex(NewName("id"))
	require.True(t, ErrAmbiguousColumnName.Is(err))

	// qualification disambiguates
	col, err = product.ColumnIndex(NewName("orders", "id"))
	require.NoError(t, err)
	require.Equal(t, 2, col.Index())

	_, err = product.ColumnIndex(NewName("missing"))
	require.True(t, ErrNoSuchColumn.Is(err))

	name, ok := product.ColumnName(Column(3))
	require.True(t, ok)
	require.Equal(t, "db.orders.total", name.FullName())
}

func TestGroupedMetadataResolvesKeysOnly(t *testing.T) {
	parent := customersMetadata()
	keys := NewSimpleMetadata(nil)
	keys.AddColumn("name")
	grouped := NewGroupedMetadata(parent, keys)

	col, err := grouped.ColumnIndex(NewName("name"))
	require.NoError(t, err)
	require.Equal(t, 0, col.Index())

	_, err = grouped.ColumnIndex(NewName("id"))
	require.True(t, ErrNoSuchColumn.Is(err))
}

func TestRowArityMatchesMetadata(t *testing.T) {
	md := customersMetadata()
	rs := &ResultSet{
		Metadata: md,
		Data: []DataRow{
			{NewNumberFromInt(1), NewString("one")},
			{NewNumberFromInt(2), NewString("two")},
		},
	}
	for _, row := range rs.Data {
		require.Len(t, row, rs.Metadata.NumColumns())
	}
	// reads past the row width are Empty, never a panic
	require.True(t, rs.Data[0].Get(Column(9)).IsEmpty())
}
