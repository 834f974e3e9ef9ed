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

func alterTable(ctx *sql.Context, rt *sql.Runtime, alter *parse.AlterTable) (*sql.ResultSet, error) {
	name := sql.NewName(alter.Name...)
	handle, err := rt.Resolve(name)
	if err != nil {
		return nil, err
	}
	if handle.ReadOnly {
		return nil, sql.ErrReadOnlyMode.New()
	}
	current, err := ReadTable(ctx, rt, name)
	if err != nil {
		if sql.ErrTableNotExists.Is(err) && alter.IfExists {
			return sql.BuildEmptyResults("action", "table", "file"), nil
		}
		return nil, err
	}

	for _, op := range alter.Ops {
		switch op := op.(type) {
		case *parse.AddColumn:
			current, err = addColumn(current, op)
		case *parse.DropColumn:
			current, err = dropColumn(current, op)
		case *parse.RenameColumn:
			current, err = renameColumn(current, op)
		default:
			err = sql.ErrUnsupported.New("ALTER TABLE operation")
		}
		if err != nil {
			return nil, err
		}
	}

	if err := writeTableFile(handle.Path, current, rt.FirstLineAsName); err != nil {
		return nil, err
	}
	ctx.Logger().WithField("table", handle.ResultName.FullName()).Info("alter table")

	return sql.BuildSimpleResults([]sql.NamedValue{
		{Name: "action", Value: sql.NewString("ALTERED")},
		{Name: "table", Value: sql.NewString(handle.ResultName.FullName())},
		{Name: "file", Value: sql.NewString(rt.FileName(handle))},
	}), nil
}

// addColumn appends a column; cells of existing rows default to Empty.
func addColumn(rs *sql.ResultSet, op *parse.AddColumn) (*sql.ResultSet, error) {
	name := sql.NewName(op.Def.Name)
	_, err := rs.Metadata.ColumnIndex(name)
	exists := err == nil || sql.ErrAmbiguousColumnName.Is(err)
	if exists {
		if op.IfNotExists {
			return rs, nil
		}
		return nil, sql.ErrColumnAlreadyExists.New(op.Def.Name)
	}
	if _, err := expression.ParseTargetType(op.Def.Type); err != nil {
		return nil, err
	}

	metadata := copyMetadata(rs, nil)
	metadata.AddColumn(name.ShortName())
	rows := make([]sql.DataRow, 0, len(rs.Data))
	for _, row := range rs.Data {
		widened := make(sql.DataRow, rs.Metadata.NumColumns()+1)
		copy(widened, row)
		rows = append(rows, widened)
	}
	return &sql.ResultSet{Metadata: metadata, Data: rows}, nil
}

func dropColumn(rs *sql.ResultSet, op *parse.DropColumn) (*sql.ResultSet, error) {
	col, err := rs.Metadata.ColumnIndex(sql.NewName(op.Name))
	if err != nil {
		if op.IfExists {
			return rs, nil
		}
		return nil, err
	}
	metadata := copyMetadata(rs, func(c sql.Column, short string) (string, bool) {
		return short, c != col
	})
	rows := make([]sql.DataRow, 0, len(rs.Data))
	for _, row := range rs.Data {
		rows = append(rows, row.DeleteAt(col))
	}
	return &sql.ResultSet{Metadata: metadata, Data: rows}, nil
}

func renameColumn(rs *sql.ResultSet, op *parse.RenameColumn) (*sql.ResultSet, error) {
	col, err := rs.Metadata.ColumnIndex(sql.NewName(op.From))
	if err != nil {
		return nil, err
	}
	metadata := copyMetadata(rs, func(c sql.Column, short string) (string, bool) {
		if c == col {
			return op.To, true
		}
		return short, true
	})
	return &sql.ResultSet{Metadata: metadata, Data: rs.Data}, nil
}

// copyMetadata rebuilds a simple metadata from a result's columns; rename
// may rewrite or drop entries per column.
func copyMetadata(rs *sql.ResultSet, rename func(sql.Column, string) (string, bool)) *sql.SimpleMetadata {
	var resultName *sql.Name
	if name, ok := rs.Metadata.ResultName(); ok {
		resultName = &name
	}
	metadata := sql.NewSimpleMetadata(resultName)
	for _, col := range rs.Columns() {
		short := ""
		if name, ok := rs.Metadata.ColumnName(col); ok {
			short = name.ShortName()
		}
		if rename != nil {
			renamed, keep := rename(col, short)
			if !keep {
				continue
			}
			short = renamed
		}
		metadata.AddColumn(short)
	}
	return metadata
}
