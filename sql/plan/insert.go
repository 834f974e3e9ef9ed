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
	"github.com/csvsql/go-csvsql/sql/parse"
)

func insertInto(ctx *sql.Context, rt *sql.Runtime, ins *parse.Insert) (*sql.ResultSet, error) {
	name := sql.NewName(ins.Table...)
	handle, err := rt.Resolve(name)
	if err != nil {
		return nil, err
	}
	if handle.ReadOnly {
		return nil, sql.ErrReadOnlyMode.New()
	}
	current, err := ReadTable(ctx, rt, name)
	if err != nil {
		return nil, err
	}

	var columns []sql.Column
	if len(ins.Columns) == 0 {
		columns = current.Columns()
	} else {
		for _, colName := range ins.Columns {
			col, err := current.Metadata.ColumnIndex(sql.NewName(colName))
			if err != nil {
				return nil, err
			}
			columns = append(columns, col)
		}
	}

	if ins.Source == nil {
		return nil, sql.ErrNoInsertSource.New()
	}
	var source *sql.ResultSet
	if ins.Source.Query != nil {
		source, err = ExtractQuery(ctx, rt, ins.Source.Query)
	} else {
		source, err = extractValues(ins.Source.Values)
	}
	if err != nil {
		return nil, err
	}
	if source.Metadata.NumColumns() != len(columns) {
		return nil, sql.ErrInsertMismatch.New()
	}

	width := current.Metadata.NumColumns()
	rows := make([]sql.DataRow, 0, len(source.Data))
	for _, row := range source.Data {
		out := make(sql.DataRow, width)
		for j, col := range columns {
			out.Set(col, row.Get(sql.Column(j)))
		}
		rows = append(rows, out)
	}

	appended := &sql.ResultSet{Metadata: current.Metadata, Data: rows}
	if err := appendTableFile(handle.Path, appended); err != nil {
		return nil, err
	}
	ctx.Logger().WithField("rows", len(rows)).Info("insert")

	return sql.BuildSimpleResults([]sql.NamedValue{
		{Name: "action", Value: sql.NewString("INSERT")},
		{Name: "number_of_rows", Value: sql.NewNumberFromInt(int64(len(rows)))},
	}), nil
}
