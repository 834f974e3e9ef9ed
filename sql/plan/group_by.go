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
	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/expression"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// groupBy buckets rows by the key-expression tuple. Without GROUP BY the
// result stays ungrouped unless the projection needs aggregates, in which
// case a single synthetic group over all rows is made.
func groupBy(rt *sql.Runtime, keys []parse.Expr, rs *sql.ResultSet, forceGroup bool) (*sql.GroupedResultSet, error) {
	if len(keys) == 0 {
		if forceGroup {
			return forceGroupBy(rs), nil
		}
		return sql.Ungrouped(rs), nil
	}

	projections := make([]sql.Projection, 0, len(keys))
	for _, key := range keys {
		compiled, err := expression.Compile(key, rs.Metadata)
		if err != nil {
			return nil, err
		}
		projections = append(projections, compiled)
	}

	var resultName *sql.Name
	if name, ok := rs.Metadata.ResultName(); ok {
		resultName = &name
	}
	keyMetadata := sql.NewSimpleMetadata(resultName)
	for _, p := range projections {
		keyMetadata.AddColumn(p.Name())
	}

	type bucket struct {
		key  sql.DataRow
		rows []*sql.GroupRow
	}
	buckets := map[uint64]*bucket{}
	var order []uint64
	for _, row := range rs.Data {
		groupRow := sql.NewGroupRow(row)
		key := make(sql.DataRow, 0, len(projections))
		for _, p := range projections {
			key = append(key, p.Get(groupRow))
		}
		hash := sql.HashValues(key)
		b, ok := buckets[hash]
		if !ok {
			b = &bucket{key: key}
			buckets[hash] = b
			order = append(order, hash)
		}
		b.rows = append(b.rows, groupRow)
	}

	rows := make([]*sql.GroupRow, 0, len(order))
	for _, hash := range order {
		b := buckets[hash]
		rows = append(rows, &sql.GroupRow{Data: b.key, GroupRows: b.rows})
	}
	return &sql.GroupedResultSet{
		Metadata: sql.NewGroupedMetadata(rs.Metadata, keyMetadata),
		Rows:     rows,
	}, nil
}

// forceGroupBy makes the single synthetic group used when the projection
// contains an aggregate but no GROUP BY was written.
func forceGroupBy(rs *sql.ResultSet) *sql.GroupedResultSet {
	children := make([]*sql.GroupRow, len(rs.Data))
	for i, row := range rs.Data {
		children[i] = sql.NewGroupRow(row)
	}
	var resultName *sql.Name
	if name, ok := rs.Metadata.ResultName(); ok {
		resultName = &name
	}
	return &sql.GroupedResultSet{
		Metadata: sql.NewGroupedMetadata(rs.Metadata, sql.NewSimpleMetadata(resultName)),
		Rows:     []*sql.GroupRow{{Data: sql.DataRow{}, GroupRows: children}},
	}
}
