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

// ResultSet is the shape every pipeline stage consumes and produces: a
// metadata plus rows whose arity matches the metadata's column count. Row
// order is significant only after ORDER BY; otherwise it is the scan order
// of the source.
type ResultSet struct {
	Metadata Metadata
	Data     []DataRow
}

func (r *ResultSet) Columns() []Column { return Columns(r.Metadata) }

// Value resolves a name against the result's metadata and reads it from
// the given row; unresolvable names read as Empty.
func (r *ResultSet) Value(name Name, row DataRow) Value {
	col, err := r.Metadata.ColumnIndex(name)
	if err != nil {
		return Empty
	}
	return row.Get(col)
}

// GroupedResultSet is the intermediate shape between GROUP BY and
// projection: rows carry a bag of child rows for aggregate arguments.
type GroupedResultSet struct {
	Metadata Metadata
	Rows     []*GroupRow
}

// Ungrouped wraps a plain result set row-per-row with empty bags, leaving
// the metadata untouched.
func Ungrouped(rs *ResultSet) *GroupedResultSet {
	rows := make([]*GroupRow, len(rs.Data))
	for i, row := range rs.Data {
		rows[i] = NewGroupRow(row)
	}
	return &GroupedResultSet{Metadata: rs.Metadata, Rows: rows}
}

// NamedValue pairs a column name with a single value for one-row summary
// results.
type NamedValue struct {
	Name  string
	Value Value
}

// BuildSimpleResults builds the one-row result set that mutation
// statements return.
func BuildSimpleResults(values []NamedValue) *ResultSet {
	metadata := NewSimpleMetadata(nil)
	row := make(DataRow, 0, len(values))
	for _, nv := range values {
		metadata.AddColumn(nv.Name)
		row = append(row, nv.Value)
	}
	return &ResultSet{Metadata: metadata, Data: []DataRow{row}}
}

// BuildEmptyResults builds a single all-Empty row under the given headers.
func BuildEmptyResults(cols ...string) *ResultSet {
	metadata := NewSimpleMetadata(nil)
	for _, col := range cols {
		metadata.AddColumn(col)
	}
	row := make(DataRow, metadata.NumColumns())
	return &ResultSet{Metadata: metadata, Data: []DataRow{row}}
}
