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

func updateTable(ctx *sql.Context, rt *sql.Runtime, upd *parse.Update) (*sql.ResultSet, error) {
	name := sql.NewName(upd.Table...)
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

	var condition sql.Projection
	if upd.Where != nil {
		condition, err = expression.Compile(upd.Where, current.Metadata)
		if err != nil {
			return nil, err
		}
	}

	type assignment struct {
		col   sql.Column
		value sql.Projection
	}
	var assignments []assignment
	assigned := map[sql.Column]bool{}
	for _, a := range upd.Assignments {
		value, err := expression.Compile(a.Value, current.Metadata)
		if err != nil {
			return nil, err
		}
		col, err := current.Metadata.ColumnIndex(sql.NewName(a.Column...))
		if err != nil {
			return nil, err
		}
		if assigned[col] {
			return nil, sql.ErrMultiplyAssignment.New()
		}
		assigned[col] = true
		assignments = append(assignments, assignment{col: col, value: value})
	}

	count := 0
	for i, row := range current.Data {
		groupRow := sql.NewGroupRow(row)
		use := true
		if condition != nil {
			b, ok := condition.Get(groupRow).Bool()
			use = ok && b
		}
		if !use {
			continue
		}
		updated := make(sql.DataRow, current.Metadata.NumColumns())
		copy(updated, row)
		for _, a := range assignments {
			updated.Set(a.col, a.value.Get(groupRow))
		}
		current.Data[i] = updated
		count++
	}

	if err := writeTableFile(handle.Path, current, rt.FirstLineAsName); err != nil {
		return nil, err
	}
	ctx.Logger().WithField("rows", count).Info("update")

	return sql.BuildSimpleResults([]sql.NamedValue{
		{Name: "action", Value: sql.NewString("UPDATE")},
		{Name: "number_of_rows", Value: sql.NewNumberFromInt(int64(count))},
	}), nil
}
