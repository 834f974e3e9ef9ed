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

func createTable(ctx *sql.Context, rt *sql.Runtime, c *parse.CreateTable) (*sql.ResultSet, error) {
	name := sql.NewName(c.Name...)
	var handle sql.FileHandle
	var err error
	if c.Temporary {
		handle, err = rt.CreateTempFile(name)
	} else {
		handle, err = rt.Resolve(name)
	}
	if err != nil {
		return nil, err
	}
	if handle.ReadOnly {
		return nil, sql.ErrReadOnlyMode.New()
	}
	if handle.IsTemp && !c.Temporary {
		return nil, sql.ErrTemporaryTableExists.New(handle.ResultName.FullName())
	}

	var data *sql.ResultSet
	switch {
	case len(c.Columns) > 0:
		metadata := sql.NewSimpleMetadata(nil)
		for _, col := range c.Columns {
			if _, err := expression.ParseTargetType(col.Type); err != nil {
				return nil, err
			}
			metadata.AddColumn(col.Name)
		}
		data = &sql.ResultSet{Metadata: metadata}
	case c.Query != nil:
		data, err = ExtractQuery(ctx, rt, c.Query)
		if err != nil {
			return nil, err
		}
	case len(c.Like) > 0:
		like, err := ReadTable(ctx, rt, sql.NewName(c.Like...))
		if err != nil {
			return nil, err
		}
		data = &sql.ResultSet{Metadata: like.Metadata}
	case len(c.Clone) > 0:
		data, err = ReadTable(ctx, rt, sql.NewName(c.Clone...))
		if err != nil {
			return nil, err
		}
	default:
		return nil, sql.ErrNoTableStructure.New(handle.ResultName.FullName())
	}

	tableName := handle.ResultName.FullName()
	if handle.Exists {
		if !c.IfNotExists {
			return nil, sql.ErrTableAlreadyExists.New(tableName)
		}
	} else {
		if err := writeTableFile(handle.Path, data, rt.FirstLineAsName); err != nil {
			return nil, err
		}
	}
	ctx.Logger().WithField("table", tableName).Info("create table")

	return sql.BuildSimpleResults([]sql.NamedValue{
		{Name: "action", Value: sql.NewString("CREATED")},
		{Name: "table", Value: sql.NewString(tableName)},
		{Name: "file", Value: sql.NewString(rt.FileName(handle))},
	}), nil
}
