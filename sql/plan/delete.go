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

func deleteFrom(ctx *sql.Context, rt *sql.Runtime, del *parse.Delete) (*sql.ResultSet, error) {
	if len(del.From) > 1 {
		return nil, sql.ErrMultiplyTableDelete.New()
	}
	if len(del.From) == 0 {
		return nil, sql.ErrNothingToDelete.New()
	}
	name := sql.NewName(del.From[0]...)
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
	if del.Where != nil {
		condition, err = expression.Compile(del.Where, current.Metadata)
		if err != nil {
			return nil, err
		}
	}

	var kept []sql.DataRow
	count := 0
	for _, row := range current.Data {
		remove := true
		if condition != nil {
			b, ok := condition.Get(sql.NewGroupRow(row)).Bool()
			remove = ok && b
		}
		if remove {
			count++
		} else {
			kept = append(kept, row)
		}
	}
	current.Data = kept

	if err := writeTableFile(handle.Path, current, rt.FirstLineAsName); err != nil {
		return nil, err
	}
	ctx.Logger().WithField("rows", count).Info("delete")

	return sql.BuildSimpleResults([]sql.NamedValue{
		{Name: "action", Value: sql.NewString("DELETED")},
		{Name: "number_of_rows", Value: sql.NewNumberFromInt(int64(count))},
	}), nil
}
